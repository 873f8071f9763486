package keycode

import (
	"maps"
	"strings"
	"unicode"
	"unicode/utf8"
)

// excludedPatterns filter numeric-pad and non-US keycodes out of the dictionary.
var excludedPatterns = []string{"KC_KP_", "NONUS", "KC_INT", "KC_LANG", "KC_LNG"}

// Dictionary maps capitalized labels to keycode tokens.
type Dictionary struct {
	entries map[string]string
	reverse map[string]string
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		entries: map[string]string{},
		reverse: map[string]string{},
	}
}

// Add registers label for token. A later registration of the same label wins;
// the reverse lookup keeps the first label registered for a token.
func (d *Dictionary) Add(label, token string) {
	label = Capitalize(strings.TrimSpace(label))
	if label == "" || token == "" {
		return
	}

	d.entries[label] = token
	if _, ok := d.reverse[token]; !ok {
		d.reverse[token] = label
	}
}

// Lookup returns the token for a label. The label is capitalized first.
func (d *Dictionary) Lookup(label string) (string, bool) {
	token, ok := d.entries[Capitalize(label)]
	return token, ok
}

// Label returns the first label registered for token.
func (d *Dictionary) Label(token string) (string, bool) {
	label, ok := d.reverse[token]
	return label, ok
}

// Entries returns a copy of all label to token entries.
func (d *Dictionary) Entries() map[string]string {
	return maps.Clone(d.entries)
}

// Len returns the number of labels.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Excluded reports whether a keycode belongs to the numeric pad or a non-US layout.
func Excluded(keycode string) bool {
	for _, p := range excludedPatterns {
		if strings.Contains(keycode, p) {
			return true
		}
	}

	return false
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
