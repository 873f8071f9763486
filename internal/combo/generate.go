package combo

import (
	"fmt"

	"keyboard-generator/internal/diagnostic"
	"keyboard-generator/internal/layout"
)

// Result holds the validated combos of a layout.
type Result struct {
	Combos      []Combo
	Diagnostics diagnostic.Diagnostics
}

// Generate derives, synthesizes and validates all combos of a layout.
// labels may be nil; it only improves error messages.
func Generate(l *layout.Layout, labels Labeler) (*Result, error) {
	hands := l.Hands()

	var all []Combo

	for _, layer := range l.Layers {
		derived, err := Derive(layer, hands)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", layer.Name, err)
		}

		mods, err := ModCombos(l, layer)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", layer.Name, err)
		}

		all = append(all, derived...)
		all = append(all, mods...)
	}

	combos, diags, err := Validate(all, labels)
	if err != nil {
		return nil, err
	}

	return &Result{Combos: combos, Diagnostics: diags}, nil
}

// Timeouts returns the combos with a timeout override.
func (r *Result) Timeouts() []Combo {
	var out []Combo

	for _, c := range r.Combos {
		if c.Timeout > 0 {
			out = append(out, c)
		}
	}

	return out
}
