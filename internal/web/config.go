package web

// Config controls the stylesheet routes.
type Config struct {
	// BasePath prefixes the stylesheet name in the emitted href.
	BasePath string `env:"STYLE_BASE_PATH" envDefault:"common/"`
	// StaticPrefix is the URL path the stylesheets are served under. Empty
	// disables static serving, e.g. when BasePath points at a CDN.
	StaticPrefix string `env:"STYLE_STATIC_PREFIX" envDefault:"/common"`
	// Dir serves stylesheets from disk instead of the embedded defaults.
	Dir string `env:"STYLE_DIR"`
	// LegacySearch selects markers with the historical single-pass matcher.
	LegacySearch bool `env:"STYLE_LEGACY_SEARCH" envDefault:"false"`
}
