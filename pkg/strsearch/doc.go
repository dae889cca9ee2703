// Package strsearch finds the first occurrence of a pattern in a short
// haystack string.
//
// Two matchers are provided. Index is a correct first-occurrence search and
// is what callers should use. LegacyIndex reproduces a historical
// single-pass matcher that never re-examines characters after a mismatch;
// it is kept for callers that depend on its exact results.
//
// Both return a zero-based byte offset, or NotFound when the pattern does
// not occur. An empty pattern matches at offset 0.
//
//	if strsearch.Index(ua, "Opera") != strsearch.NotFound {
//	    // ...
//	}
//
// Matchers share the Func signature so they can be injected:
//
//	sel := stylesheet.New(stylesheet.WithMatcher(strsearch.LegacyIndex))
package strsearch
