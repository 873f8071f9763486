package combo

import (
	"fmt"
	"strings"

	"keyboard-generator/internal/layout"
)

//go:generate go tool stringer -type=Modifier -output=modifier_string.go

// Modifier is a modifier a layer can be activated with.
type Modifier int

const (
	Shift Modifier = iota
	Ctrl
	Alt
)

// Code returns the QMK modifier mask of m.
func (m Modifier) Code() string {
	switch m {
	case Shift:
		return "MOD_LSFT"
	case Ctrl:
		return "MOD_LCTL"
	case Alt:
		return "MOD_LALT"
	default:
		return ""
	}
}

// ModTrigger describes which extra keys, held with a layer's activation key,
// activate the layer with a modifier mask.
type ModTrigger struct {
	// Mods are the modifiers in the order they appear in the mask.
	Mods []Modifier
	// Triggers are logical columns of the modifier hand, counted from its outer edge.
	Triggers []int
	// Name distinguishes the combo from its unmodified sibling.
	Name string
}

// Command returns the firmware call that activates layer with the rule's modifiers.
func (r ModTrigger) Command(layer int) string {
	if len(r.Mods) == 0 {
		return fmt.Sprintf("MO(%d)", layer)
	}

	codes := make([]string, len(r.Mods))
	for i, m := range r.Mods {
		codes[i] = m.Code()
	}

	return fmt.Sprintf("LM(%d, %s)", layer, strings.Join(codes, " | "))
}

var modTriggers = []ModTrigger{
	{},
	{Mods: []Modifier{Shift}, Triggers: []int{1, 2}, Name: "S"},
	{Mods: []Modifier{Ctrl}, Triggers: []int{2, 4}, Name: "C"},
	{Mods: []Modifier{Alt}, Triggers: []int{1, 4}, Name: "A"},
	{Mods: []Modifier{Ctrl, Shift}, Triggers: []int{1, 2, 3}, Name: "CS"},
	{Mods: []Modifier{Shift, Alt}, Triggers: []int{1, 2, 4}, Name: "SA"},
	{Mods: []Modifier{Ctrl, Alt}, Triggers: []int{2, 3, 4}, Name: "CA"},
	{Mods: []Modifier{Ctrl, Alt, Shift}, Triggers: []int{1, 2, 3, 4}, Name: "CSA"},
}

// ModTriggers returns a copy of the fixed rule table.
func ModTriggers() []ModTrigger {
	out := make([]ModTrigger, len(modTriggers))
	copy(out, modTriggers)

	return out
}

// activation is a located layer-activation key.
type activation struct {
	key  layout.Key
	hand layout.HandKind
}

// ModCombos generates the modifier combos of one layer. The modifier keys are
// always taken from the finger hand opposite the layer's activation keys.
func ModCombos(l *layout.Layout, layer layout.Layer) ([]Combo, error) {
	if len(layer.Activation) == 0 {
		return nil, nil
	}

	base, ok := l.Base()
	if !ok {
		return nil, nil
	}

	activations, err := locateActivation(base, layer, l.Hands())
	if err != nil {
		return nil, err
	}

	layerTrigger := make([]layout.Key, len(activations))
	for i, a := range activations {
		layerTrigger[i] = a.key
	}

	var (
		combos   []Combo
		bareDone bool
	)

	for _, hand := range layout.FingerHands(l.Options.Dimensions) {
		if holdsActivation(hand, activations) {
			continue
		}

		modRow := hand.Row(base.Base[l.Options.ModifierRow])

		generated, bare, err := comboWithMods(modRow, hand, layer, layerTrigger, !bareDone)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", hand.Name(), err)
		}

		bareDone = bareDone || bare
		combos = append(combos, generated...)
	}

	return combos, nil
}

func comboWithMods(
	base []layout.Key,
	hand layout.Hand,
	layer layout.Layer,
	layerTrigger []layout.Key,
	withBare bool,
) ([]Combo, bool, error) {
	var (
		combos []Combo
		bare   bool
	)

	for _, rule := range modTriggers {
		comboKeys, ok := ruleKeys(rule, base, hand)
		if !ok {
			// the hand is too small for this rule
			continue
		}

		allKeys := append(append([]layout.Key{}, layerTrigger...), comboKeys...)
		if len(allKeys) < 2 {
			// the layer key alone activates the layer
			continue
		}

		command := rule.Command(layer.Number)

		var name string

		if len(comboKeys) == 0 {
			// a bare layer switch is the same for both hands
			if !withBare {
				continue
			}

			name = Name(layer.Name)
			bare = true
		} else {
			name = Name(layer.Name, hand.Name(), rule.Name)
		}

		c, err := New(TypeCombo, name, command, allKeys, 0)
		if err != nil {
			return nil, false, err
		}

		combos = append(combos, c)
	}

	return combos, bare, nil
}

func ruleKeys(rule ModTrigger, base []layout.Key, hand layout.Hand) ([]layout.Key, bool) {
	keys := make([]layout.Key, 0, len(rule.Triggers))

	for _, logical := range rule.Triggers {
		col := hand.Translate(logical)
		if col < 0 || col >= len(base) {
			return nil, false
		}

		keys = append(keys, base[col])
	}

	return keys, true
}

// locateActivation finds the base-layer keys named by the layer's activation labels.
func locateActivation(base layout.Layer, layer layout.Layer, hands []layout.Hand) ([]activation, error) {
	activations := make([]activation, 0, len(layer.Activation))

	for _, label := range layer.Activation {
		a, ok := findKey(base, label, hands)
		if !ok {
			return nil, fmt.Errorf("%w: activation key %s of layer %s not in layer %s",
				layout.ErrMissingBaseKey, label, layer.Name, base.Name)
		}

		activations = append(activations, a)
	}

	return activations, nil
}

func findKey(base layout.Layer, label string, hands []layout.Hand) (activation, bool) {
	for _, hand := range hands {
		for _, k := range hand.Part(hand.Rows(base)) {
			if k.Label == label {
				return activation{key: k, hand: hand.Kind}, true
			}
		}
	}

	return activation{}, false
}

func holdsActivation(hand layout.Hand, activations []activation) bool {
	for _, a := range activations {
		if a.hand == hand.Kind {
			return true
		}
	}

	return false
}
