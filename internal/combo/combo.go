package combo

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"keyboard-generator/internal/layout"
)

//go:generate go tool stringer -type=Type -output=type_string.go

// Type distinguishes macro combos from text substitutions.
type Type int

const (
	_ Type = iota // zero value is invalid

	TypeCombo
	TypeSubstitution
)

// Template returns the definition line format of the type; it takes the
// name, the result and the joined triggers.
func (t Type) Template() string {
	switch t {
	case TypeSubstitution:
		return "SUBS(%s, %s, %s)"
	default:
		return "COMB(%s, %s, %s)"
	}
}

// ErrUnboundTrigger is returned for a combo that depends on an unbound key.
var ErrUnboundTrigger = errors.New("unbound key in combo triggers")

const (
	namePrefix        = "C_"
	shiftModifier     = "S"
	shiftedNamePrefix = "S"
)

var (
	singleLetter   = regexp.MustCompile(`^KC_[A-Z]$`)
	nameStripChars = regexp.MustCompile(`[()"]`)
)

// Combo is a rule mapping a set of simultaneously pressed keys to an output.
type Combo struct {
	Type Type
	Name string
	// Result is the firmware call or the quoted literal.
	Result string
	// Triggers are sorted by their modified label.
	Triggers []layout.Key
	// Timeout in milliseconds, 0 for the firmware default.
	Timeout int
}

// New creates a combo with canonically sorted triggers.
func New(typ Type, name, result string, triggers []layout.Key, timeout int) (Combo, error) {
	for _, k := range triggers {
		if k.Unbound() {
			return Combo{}, fmt.Errorf("%w: %s, %s", ErrUnboundTrigger, name, joinKeys(triggers))
		}
	}

	sorted := make([]layout.Key, len(triggers))
	copy(sorted, triggers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WithModifier < sorted[j].WithModifier
	})

	return Combo{
		Type:     typ,
		Name:     name,
		Result:   result,
		Triggers: sorted,
		Timeout:  timeout,
	}, nil
}

// TriggerKey identifies the trigger set independent of input order.
func (c Combo) TriggerKey() string {
	return joinKeys(c.Triggers)
}

// TriggerCodes returns the keycodes of the triggers.
func (c Combo) TriggerCodes() []string {
	codes := make([]string, len(c.Triggers))
	for i, k := range c.Triggers {
		codes[i] = k.Code()
	}

	return codes
}

// Definition renders the combo as a definition line, e.g. COMB(C_BASE_KC_E, KC_E, KC_A, KC_E).
func (c Combo) Definition() string {
	return fmt.Sprintf(c.Type.Template(), c.Name, c.Result, strings.Join(c.TriggerCodes(), ", "))
}

// identity covers every field; equal identities are structural duplicates.
func (c Combo) identity() string {
	return fmt.Sprintf("%d|%s|%s|%s|%d", c.Type, c.Name, c.Result, c.TriggerKey(), c.Timeout)
}

// Name builds a combo name from its parts: upper-cased, dots replaced by
// underscores, parentheses and quotes removed, joined by underscores.
// Empty parts are skipped.
func Name(parts ...string) string {
	cleaned := make([]string, 0, len(parts))

	for _, p := range parts {
		if p == "" {
			continue
		}

		p = strings.ToUpper(p)
		p = strings.ReplaceAll(p, ".", "_")
		p = nameStripChars.ReplaceAllString(p, "")
		cleaned = append(cleaned, p)
	}

	return namePrefix + strings.Join(cleaned, "_")
}

// shiftSibling returns the shifted variant of a combo producing a single
// letter. The sibling itself never qualifies again, so expansion stops after
// one level.
func shiftSibling(c Combo) (Combo, bool, error) {
	if !singleLetter.MatchString(c.Result) {
		return Combo{}, false, nil
	}

	triggers := make([]layout.Key, len(c.Triggers))
	for i, k := range c.Triggers {
		triggers[i] = k.WithMods(shiftModifier)
	}

	sibling, err := New(
		c.Type,
		shiftedNamePrefix+c.Name,
		layout.AddMods(shiftModifier, c.Result),
		triggers,
		c.Timeout,
	)
	if err != nil {
		return Combo{}, false, err
	}

	return sibling, true, nil
}

func joinKeys(keys []layout.Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.WithModifier
	}

	return strings.Join(parts, ", ")
}
