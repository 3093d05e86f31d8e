// Package cmdline obtains the raw command line of the running process and
// strips the utility's own invocation token from it.
package cmdline

// SplitSelfInvocation returns the part of raw that follows the leading
// invocation token and any spaces after it. The result is always a suffix
// of raw; an unterminated quote yields an empty remainder.
func SplitSelfInvocation(raw string) string {
	i := 0
	if i < len(raw) && raw[i] == '"' {
		i++
		for i < len(raw) && raw[i] != '"' {
			i++
		}
		if i < len(raw) {
			i++ // closing quote
		}
	} else {
		for i < len(raw) && !isASCIISpace(raw[i]) {
			i++
		}
	}

	// Only plain spaces separate the token from the child command line
	for i < len(raw) && raw[i] == ' ' {
		i++
	}
	return raw[i:]
}

// isASCIISpace reports the separators that end an unquoted token. Unicode
// spaces such as U+00A0 belong to the token, as they do for Windows.
func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
