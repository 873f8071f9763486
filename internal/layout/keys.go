package layout

import (
	"strconv"
	"strings"
)

// Sentinel tokens shared by the translator, the combo engine and the renderers.
const (
	// Blocked marks a position that is intentionally left empty.
	Blocked = "XX"
	// Transparent falls through to the layer below.
	Transparent = "KC_TRNS"
	// NoKey is the firmware's unbound keycode.
	NoKey = "KC_NO"
	// ComboTrigger marks an anchor column in a combo-definition row.
	ComboTrigger = "\U0001F48E" // 💎
)

const timeoutSeparator = "@"

// Key is a resolved table cell.
type Key struct {
	// Label is the resolved token used for placement and lookups.
	Label string
	// WithModifier is Label wrapped in any pending modifier (e.g. a home-row mod-tap).
	WithModifier string
	// Timeout is the combo timeout override in milliseconds, 0 if unset.
	Timeout int
}

// NewKey creates a key without a pending modifier.
func NewKey(label string) Key {
	return Key{Label: label, WithModifier: label}
}

// Inert reports whether the position is blocked, transparent or unbound.
func (k Key) Inert() bool {
	switch k.Label {
	case Blocked, Transparent, NoKey:
		return true
	default:
		return false
	}
}

// Unbound reports whether the key would not produce a keycode on the keyboard.
func (k Key) Unbound() bool {
	return k.WithModifier == Blocked || k.WithModifier == NoKey
}

// Code is the keycode the firmware sees for this position.
func (k Key) Code() string {
	if k.WithModifier == Blocked {
		return NoKey
	}

	return k.WithModifier
}

// WithMods wraps both the label and the modified label in a modifier call.
func (k Key) WithMods(mod string) Key {
	return Key{
		Label:        AddMods(mod, k.Label),
		WithModifier: AddMods(mod, k.WithModifier),
		Timeout:      k.Timeout,
	}
}

func (k Key) String() string {
	return k.WithModifier
}

// AddMods wraps key in a modifier call such as S(KC_A).
func AddMods(mod, key string) string {
	return mod + "(" + key + ")"
}

// IsLiteral reports whether the cell is a quoted substitution literal.
func IsLiteral(cell string) bool {
	return len(cell) >= 2 && strings.HasPrefix(cell, `"`) && strings.HasSuffix(cell, `"`)
}

// ParseCell splits a raw cell into its label and an optional timeout suffix
// ("e@50" is label "e" with a 50ms combo timeout).
func ParseCell(cell string) (string, int) {
	if IsLiteral(cell) {
		return cell, 0
	}

	i := strings.LastIndex(cell, timeoutSeparator)
	if i <= 0 || i == len(cell)-1 {
		return cell, 0
	}

	timeout, err := strconv.Atoi(cell[i+1:])
	if err != nil || timeout <= 0 {
		return cell, 0
	}

	return cell[:i], timeout
}
