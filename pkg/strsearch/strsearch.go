package strsearch

import "strings"

// NotFound is returned when the pattern does not occur in the haystack.
const NotFound = -1

// Func reports the offset of the first occurrence of pattern in haystack,
// or NotFound.
type Func func(haystack, pattern string) int

// Index returns the offset of the first occurrence of pattern in haystack.
// An empty pattern matches at 0.
func Index(haystack, pattern string) int {
	if pattern == "" {
		return 0
	}
	if len(pattern) > len(haystack) {
		return NotFound
	}
	return strings.Index(haystack, pattern)
}

// LegacyIndex scans haystack once, left to right, advancing a cursor into
// pattern on every matching byte and resetting it to zero on a mismatch.
//
// The mismatching byte is not compared against the start of the pattern
// again, so a match that begins inside or right after a failed partial
// match is missed: LegacyIndex("aaab", "aab") and
// LegacyIndex("OpOpera", "Opera") are both NotFound.
func LegacyIndex(haystack, pattern string) int {
	if pattern == "" {
		return 0
	}

	pos := 0
	for i := 0; i < len(haystack); i++ {
		if haystack[i] != pattern[pos] {
			pos = 0
			continue
		}
		pos++
		if pos == len(pattern) {
			return i - len(pattern) + 1
		}
	}

	return NotFound
}

// Contains reports whether pattern occurs in haystack according to find.
// A nil find uses Index.
func Contains(find Func, haystack, pattern string) bool {
	if find == nil {
		find = Index
	}
	return find(haystack, pattern) != NotFound
}
