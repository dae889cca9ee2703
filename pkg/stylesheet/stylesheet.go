package stylesheet

import (
	"github.com/dmitrymomot/docstyle/pkg/strsearch"
	"github.com/dmitrymomot/docstyle/pkg/useragent"
)

// Name is a stylesheet file name.
type Name string

const (
	IE       Name = "ie.css"
	Opera    Name = "opera.css"
	Netscape Name = "netscape.css"

	// Default is chosen when the vendor is not recognized.
	Default = Opera
)

// Markers searched for in the identification string of a Netscape-reporting
// browser. Both present means Opera on BeOS.
const (
	MarkerOpera = "Opera"
	MarkerBeOS  = "BeOS"
)

// DefaultBasePath is prepended to the stylesheet name to build the href.
const DefaultBasePath = "common/"

// Names returns the closed set of stylesheet names.
func Names() []Name {
	return []Name{IE, Opera, Netscape}
}

// Valid reports whether n is one of the known stylesheets.
func (n Name) Valid() bool {
	switch n {
	case IE, Opera, Netscape:
		return true
	}
	return false
}

func (n Name) String() string { return string(n) }

// Decision records a single selection.
type Decision struct {
	Vendor    string `json:"vendor"`
	UserAgent string `json:"user_agent"`
	Name      Name   `json:"stylesheet"`
	Href      string `json:"href"`
}

// Selector chooses stylesheets. The zero value is not usable; call New.
// A Selector is immutable and safe for concurrent use.
type Selector struct {
	find     strsearch.Func
	basePath string
}

// New returns a Selector using strsearch.Index and DefaultBasePath unless
// overridden by opts.
func New(opts ...Option) *Selector {
	s := &Selector{
		find:     strsearch.Index,
		basePath: DefaultBasePath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSelector = New()

// Select chooses a stylesheet with the default selector.
func Select(vendor, userAgent string) Name {
	return defaultSelector.Select(vendor, userAgent)
}

// Select chooses a stylesheet for the given vendor name and identification
// string.
func (s *Selector) Select(vendor, userAgent string) Name {
	switch vendor {
	case useragent.VendorMSIE:
		return IE
	case useragent.VendorNetscape:
		if strsearch.Contains(s.find, userAgent, MarkerOpera) &&
			strsearch.Contains(s.find, userAgent, MarkerBeOS) {
			return Opera
		}
		return Netscape
	default:
		return Default
	}
}

// Href returns the link target for name.
func (s *Selector) Href(name Name) string {
	return s.basePath + string(name)
}

// BasePath returns the prefix used by Href.
func (s *Selector) BasePath() string {
	return s.basePath
}

// Decide runs Select and returns the full Decision.
func (s *Selector) Decide(vendor, userAgent string) Decision {
	name := s.Select(vendor, userAgent)
	return Decision{
		Vendor:    vendor,
		UserAgent: userAgent,
		Name:      name,
		Href:      s.Href(name),
	}
}
