package useragent

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Info is the result of parsing a User-Agent header.
type Info struct {
	raw        string
	vendor     string
	browser    string
	browserVer string
	os         string
}

// Raw returns the header as received.
func (i Info) Raw() string { return i.raw }

// String returns the header as received.
func (i Info) String() string { return i.raw }

// Vendor returns the navigator.appName equivalent, or "" if unknown.
func (i Info) Vendor() string { return i.vendor }

// Browser returns the browser family.
func (i Info) Browser() string { return i.browser }

// BrowserVer returns the browser version, if present in the header.
func (i Info) BrowserVer() string { return i.browserVer }

// OS returns the operating system.
func (i Info) OS() string { return i.os }

// ShortIdentifier returns a compact label for logs, e.g.
// "Opera/5.0 (BeOS)" or "Unknown client".
func (i Info) ShortIdentifier() string {
	if i.browser == BrowserUnknown && i.os == OSUnknown {
		return "Unknown client"
	}

	title := cases.Title(language.English)
	name := title.String(i.browser)
	if i.browser == BrowserIE {
		name = "IE"
	}
	ver := i.browserVer
	if ver == "" {
		ver = "?"
	}

	os := title.String(i.os)
	switch i.os {
	case OSMacOS:
		os = "macOS"
	case OSiOS:
		os = "iOS"
	case OSBeOS:
		os = "BeOS"
	}

	return fmt.Sprintf("%s/%s (%s)", name, ver, os)
}

// Parse classifies ua. An empty header yields ErrEmptyUserAgent and a header
// that does not map to a vendor yields ErrUnknownVendor; in both cases the
// returned Info is still valid and reports an empty vendor.
func Parse(ua string) (Info, error) {
	if ua == "" {
		return Info{browser: BrowserUnknown, os: OSUnknown}, ErrEmptyUserAgent
	}

	lowerUA := strings.ToLower(ua)
	browser, ver := parseBrowser(lowerUA)
	info := Info{
		raw:        ua,
		vendor:     Vendor(ua),
		browser:    browser,
		browserVer: ver,
		os:         parseOS(lowerUA),
	}

	if info.vendor == "" {
		return info, ErrUnknownVendor
	}
	return info, nil
}
