package common

import "unicode"

// UnknownStr is the String() value of unrecognised enum values.
const UnknownStr = "unknown"

// HasUpperAt reports whether s has an upper-case letter right after prefix.
func HasUpperAt(s string, prefix string) bool {
	if len(s) <= len(prefix) || s[:len(prefix)] != prefix {
		return false
	}

	for _, r := range s[len(prefix):] {
		return unicode.IsUpper(r)
	}

	return false
}
