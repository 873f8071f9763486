package kanata

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"keyboard-generator/internal/layout"
)

// Translator resolves cells through the Symbol table only. Anything after the
// first space of a cell is commentary.
type Translator struct {
	symbols layout.Symbols
}

// NewTranslator creates a translator backed by symbols.
func NewTranslator(symbols layout.Symbols) *Translator {
	return &Translator{symbols: symbols}
}

// Resolve never fails; unsupported keys are reported when rendering.
func (t *Translator) Resolve(label string) (string, error) {
	label, _, _ = strings.Cut(label, " ")

	return t.symbols.Replace(label), nil
}

// OutputKey converts a resolved label into a kanata output key. Keycodes and
// custom commands (upper case, or numbers longer than one digit) are not
// supported and yield XX with ok set to false.
func OutputKey(key string) (string, bool) {
	if key == "" || key == layout.Blocked {
		return layout.Blocked, true
	}

	if isNumber(key) {
		if len(key) == 1 {
			return key, true
		}

		return layout.Blocked, false
	}

	r, _ := utf8.DecodeRuneInString(key)
	if unicode.IsUpper(r) {
		return layout.Blocked, false
	}

	return key, true
}

// InputKey extracts the key name of a source cell written as "(q)".
func InputKey(cell string) string {
	if _, after, ok := strings.Cut(cell, "("); ok {
		cell = after
	}

	before, _, _ := strings.Cut(cell, ")")

	return before
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
