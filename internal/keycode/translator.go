package keycode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"keyboard-generator/internal/layout"
	"keyboard-generator/internal/match"
)

// ErrUntranslatedKey is returned for a token that is not a known keycode form.
var ErrUntranslatedKey = errors.New("untranslated key")

// recognizedPrefixes are the call forms Assert accepts.
var recognizedPrefixes = []string{
	"KC_", "QK_",
	"S(", "C(", "A(", "G(", "RCS(",
	"LSFT_T(", "LCTL_T(", "LALT_T(", "LGUI_T(",
	"RSFT_T(", "RCTL_T(", "RALT_T(", "RGUI_T(",
	"SFT_T(", "CTL_T(", "ALT_T(", "GUI_T(",
	"MO(", "LT(", "LM(", "TG(", "TO(", "OSM(", "OSL(",
}

const (
	suggestionCount     = 3
	suggestionThreshold = 0.5
)

// Translator resolves labels of one layout.
type Translator struct {
	symbols layout.Symbols
	layers  map[string]int
	dict    *Dictionary
	custom  map[string]struct{}
}

// NewTranslator creates a translator for the given layer names (in index order)
// and custom keycodes.
func NewTranslator(symbols layout.Symbols, layerNames []string, dict *Dictionary, custom []string) *Translator {
	t := &Translator{
		symbols: symbols,
		layers:  make(map[string]int, len(layerNames)),
		dict:    dict,
		custom:  make(map[string]struct{}, len(custom)),
	}

	for i, name := range layerNames {
		t.layers[name] = i
	}

	for _, c := range custom {
		t.custom[c] = struct{}{}
	}

	return t
}

// Translate resolves label without validating the result.
func (t *Translator) Translate(label string) string {
	s := t.symbols.Replace(label)
	s = t.substituteLayers(s)

	if token, ok := t.dict.Lookup(s); ok {
		return token
	}

	return s
}

// Resolve translates label and asserts that the result is a keycode.
func (t *Translator) Resolve(label string) (string, error) {
	token := t.Translate(label)
	if err := t.Assert(token); err != nil {
		if token != label {
			return "", fmt.Errorf("%w (label %q)", err, label)
		}

		return "", err
	}

	return token, nil
}

// Assert checks that token is the blocked sentinel, the combo marker, a custom
// keycode or starts with one of the recognized call forms.
func (t *Translator) Assert(token string) error {
	if token == layout.Blocked || token == layout.ComboTrigger {
		return nil
	}

	if _, ok := t.custom[token]; ok {
		return nil
	}

	for _, p := range recognizedPrefixes {
		if strings.HasPrefix(token, p) {
			return nil
		}
	}

	msg := fmt.Sprintf("%v %q", ErrUntranslatedKey, token)
	if s := t.Suggest(token); len(s) > 0 {
		msg += ", did you mean " + strings.Join(s, ", ") + "?"
	}

	return &untranslatedError{msg: msg}
}

// Reverse returns the label a token was resolved from, for diagnostics.
// Layer indexes are not reversed; unknown tokens are returned unchanged.
func (t *Translator) Reverse(token string) string {
	if label, ok := t.dict.Label(token); ok {
		return label
	}

	return token
}

// Suggest returns dictionary labels that resemble label, best first.
func (t *Translator) Suggest(label string) []string {
	return match.RankCandidates(label, t.dict.Entries()).
		AboveThreshold(suggestionThreshold).
		Top(suggestionCount).
		Labels()
}

// LayerIndex returns the index of a layer name.
func (t *Translator) LayerIndex(name string) (int, bool) {
	i, ok := t.layers[name]
	return i, ok
}

// substituteLayers replaces every identifier that names a layer with the
// layer's index ("MO(Nav)" becomes "MO(5)").
func (t *Translator) substituteLayers(s string) string {
	if len(t.layers) == 0 {
		return s
	}

	var (
		out   strings.Builder
		ident strings.Builder
	)

	flush := func() {
		if ident.Len() == 0 {
			return
		}

		word := ident.String()
		if i, ok := t.layers[word]; ok {
			word = strconv.Itoa(i)
		}

		out.WriteString(word)
		ident.Reset()
	}

	for _, r := range s {
		if isIdentRune(r) {
			ident.WriteRune(r)
			continue
		}

		flush()
		out.WriteRune(r)
	}

	flush()

	return out.String()
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

type untranslatedError struct {
	msg string
}

func (e *untranslatedError) Error() string {
	return e.msg
}

func (e *untranslatedError) Unwrap() error {
	return ErrUntranslatedKey
}
