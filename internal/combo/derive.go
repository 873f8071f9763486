package combo

import (
	"fmt"
	"slices"

	"keyboard-generator/internal/layout"
)

// Derive generates the combos defined in the combo rows of one layer.
func Derive(layer layout.Layer, hands []layout.Hand) ([]Combo, error) {
	var combos []Combo

	for _, hand := range hands {
		base := hand.Part(hand.Rows(layer))

		for _, group := range layer.Combos {
			if !hand.Applies(group) {
				continue
			}

			derived, err := deriveGroup(hand.Part(group.Rows), base, layer)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", hand.Name(), group.Name, err)
			}

			combos = append(combos, derived...)
		}
	}

	return distinct(combos), nil
}

// deriveGroup builds the combos of one flattened definition part. Every active
// cell is combined with the base keys below it and below every anchor.
func deriveGroup(definition, base []layout.Key, layer layout.Layer) ([]Combo, error) {
	var anchors []int

	for i, k := range definition {
		if k.Label == layout.ComboTrigger {
			anchors = append(anchors, i)
		}
	}

	var combos []Combo

	for i, k := range definition {
		if k.Inert() || k.Label == layout.ComboTrigger {
			continue
		}

		var triggers []layout.Key

		for j, b := range base {
			if j == i || slices.Contains(anchors, j) {
				triggers = append(triggers, b)
			}
		}

		if len(triggers) < 2 {
			continue
		}

		typ := TypeCombo
		if layout.IsLiteral(k.Label) {
			typ = TypeSubstitution
		}

		c, err := New(typ, Name(layer.Name, k.Label), k.Label, triggers, k.Timeout)
		if err != nil {
			return nil, err
		}

		combos = append(combos, c)

		sibling, ok, err := shiftSibling(c)
		if err != nil {
			return nil, err
		}

		if ok {
			combos = append(combos, sibling)
		}
	}

	return combos, nil
}

// distinct removes structural duplicates, keeping the first occurrence.
func distinct(combos []Combo) []Combo {
	seen := make(map[string]struct{}, len(combos))
	out := make([]Combo, 0, len(combos))

	for _, c := range combos {
		id := c.identity()
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, c)
	}

	return out
}
