package stylesheet

import (
	"strings"

	"github.com/dmitrymomot/docstyle/pkg/strsearch"
)

// Option configures a Selector.
type Option func(*Selector)

// WithMatcher sets the substring search used for marker detection.
// Pass strsearch.LegacyIndex to reproduce the historical matcher exactly.
// Nil is ignored.
func WithMatcher(find strsearch.Func) Option {
	return func(s *Selector) {
		if find != nil {
			s.find = find
		}
	}
}

// WithBasePath sets the prefix for generated hrefs. A trailing slash is
// added when missing; an empty path makes hrefs bare file names.
func WithBasePath(path string) Option {
	return func(s *Selector) {
		if path != "" && !strings.HasSuffix(path, "/") {
			path += "/"
		}
		s.basePath = path
	}
}
