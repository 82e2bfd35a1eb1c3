package match

import (
	"strings"
	"unicode"
)

// stripSuffixes are dropped by NormalizeIdentWithSuffixStrip, longest first.
var stripSuffixes = []string{"timestamp", "ids", "utc", "id", "at"}

// NormalizeIdent folds an identifier for fuzzy matching: it splits camel
// case and separators into tokens, lower-cases them and joins them back.
// "OrderID", "orderId" and "order_id" all become "orderid".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// NormalizeIdentWithSuffixStrip normalizes s and drops one trailing
// bookkeeping token (id, ids, at, utc, timestamp) unless that would leave
// nothing.
func NormalizeIdentWithSuffixStrip(s string) string {
	normalized := NormalizeIdent(s)

	for _, suffix := range stripSuffixes {
		if rest, ok := strings.CutSuffix(normalized, suffix); ok && rest != "" {
			return rest
		}
	}

	return normalized
}

// TokenizeIdent splits an identifier into lower-case tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits on separators, on lower-to-upper transitions and
// before the last capital of an acronym followed by a lower-case letter:
//   - "OrderID" -> ["Order", "ID"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "shipping_address" -> ["shipping", "address"]
func tokenizeCamelCase(s string) []string {
	var (
		tokens  []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current = append(current, r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

func startsToken(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) || isSeparator(runes[i-1]) {
		return false
	}

	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
