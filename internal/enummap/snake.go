package enummap

import (
	"strings"
	"unicode"
)

// CamelToUpperSnake inserts an underscore before every upper-case letter
// except the first and upper-cases the result: "StatusCode" -> "STATUS_CODE".
// Runs of capitals are not treated as acronyms: "HTTPCode" -> "H_T_T_P_CODE".
func CamelToUpperSnake(s string) string {
	var b strings.Builder

	b.Grow(len(s) + len(s)/2)

	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}

		b.WriteRune(unicode.ToUpper(r))
	}

	return b.String()
}
