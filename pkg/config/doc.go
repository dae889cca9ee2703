// Package config loads typed configuration from the process environment.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Each configuration type
// is parsed once and served from an in-memory cache afterwards.
//
//	type StyleConfig struct {
//	    BasePath     string `env:"STYLE_BASE_PATH" envDefault:"common/"`
//	    LegacySearch bool   `env:"STYLE_LEGACY_SEARCH" envDefault:"false"`
//	}
//
//	var cfg StyleConfig
//	if err := config.Load(&cfg); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
//
// Tests that change the environment call ResetCache between loads.
package config
