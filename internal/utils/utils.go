package utils

import "unicode/utf8"

// TruncateRunes returns s cut down to at most max characters.
// A non-positive max leaves s untouched.
func TruncateRunes(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}

	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}
