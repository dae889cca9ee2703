package useragent

import (
	"regexp"
	"sort"
	"strings"
)

type browserPattern struct {
	name      string
	keywords  []string
	excludes  []string
	version   *regexp.Regexp
	orderHint int
}

func (p browserPattern) match(lowerUA string) bool {
	found := false
	for _, kw := range p.keywords {
		if strings.Contains(lowerUA, kw) {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for _, ex := range p.excludes {
		if strings.Contains(lowerUA, ex) {
			return false
		}
	}
	return true
}

// Patterns are matched in orderHint order. Browsers embedding another
// browser's token (Edge and Opera carry "chrome", Chrome carries "safari")
// must come first.
var browserPatterns = []browserPattern{
	{
		name:      BrowserEdge,
		keywords:  []string{"edg/", "edge/"},
		version:   regexp.MustCompile(`(?:edge|edg)/([\d.]+)`),
		orderHint: 10,
	},
	{
		name:      BrowserOpera,
		keywords:  []string{"opr/", "opera"},
		version:   regexp.MustCompile(`(?:opr|opera)[/ ]([\d.]+)`),
		orderHint: 20,
	},
	{
		name:      BrowserIE,
		keywords:  []string{"msie ", "trident/"},
		version:   regexp.MustCompile(`(?:msie |rv:)([\d.]+)`),
		orderHint: 30,
	},
	{
		name:      BrowserChrome,
		keywords:  []string{"chrome/", "crios/"},
		version:   regexp.MustCompile(`(?:chrome|crios)/([\d.]+)`),
		orderHint: 40,
	},
	{
		name:      BrowserFirefox,
		keywords:  []string{"firefox/", "fxios/"},
		version:   regexp.MustCompile(`(?:firefox|fxios)/([\d.]+)`),
		orderHint: 50,
	},
	{
		name:      BrowserSafari,
		keywords:  []string{"safari/"},
		excludes:  []string{"chrome", "chromium", "android"},
		version:   regexp.MustCompile(`version/([\d.]+)`),
		orderHint: 60,
	},
	{
		name:      BrowserNetscape,
		keywords:  []string{"netscape", "navigator/"},
		version:   regexp.MustCompile(`(?:netscape\d?|navigator)/([\d.]+)`),
		orderHint: 70,
	},
}

func init() {
	sort.Slice(browserPatterns, func(i, j int) bool {
		return browserPatterns[i].orderHint < browserPatterns[j].orderHint
	})
}

// parseBrowser returns the browser family and version for a lower-cased UA.
func parseBrowser(lowerUA string) (name, version string) {
	for _, p := range browserPatterns {
		if !p.match(lowerUA) {
			continue
		}
		if m := p.version.FindStringSubmatch(lowerUA); len(m) > 1 {
			version = m[1]
		}
		return p.name, version
	}
	return BrowserUnknown, ""
}
