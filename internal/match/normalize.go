package match

import (
	"strings"
	"unicode"
)

// keycodePrefixes are stripped before comparing labels with keycodes.
var keycodePrefixes = []string{"kc", "qk"}

// NormalizeLabel normalizes a key label or keycode for fuzzy matching.
// The normalization pipeline:
// 1. Tokenize CamelCase.
// 2. Case-fold to lower.
// 3. Strip separators (_, -, spaces).
// 4. Strip a leading keycode prefix (KC_, QK_).
func NormalizeLabel(s string) string {
	tokens := TokenizeLabel(s)
	if len(tokens) > 1 {
		for _, p := range keycodePrefixes {
			if tokens[0] == p {
				tokens = tokens[1:]
				break
			}
		}
	}

	return stripSeparators(strings.Join(tokens, ""))
}

// TokenizeLabel splits a label into normalized lowercase tokens.
func TokenizeLabel(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase or separated string into tokens.
// Examples:
//   - "PageUp" -> ["Page", "Up"]
//   - "KC_PGUP" -> ["KC", "PGUP"]
//   - "LSFT_T" -> ["LSFT", "T"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// shouldStartNewToken determines if position i starts a new CamelCase token.
func shouldStartNewToken(runes []rune, i int) bool {
	curr := runes[i]
	prev := runes[i-1]

	// lower -> Upper: "pageUp"
	if unicode.IsLower(prev) && unicode.IsUpper(curr) {
		return true
	}

	// Upper -> Upper lower: the second upper starts a token ("XMLParser")
	if unicode.IsUpper(prev) && unicode.IsUpper(curr) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true
	}

	return false
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '\t'
}

// stripSeparators removes separators from a string.
func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
