package combo

import (
	"errors"
	"fmt"
	"strings"

	"keyboard-generator/internal/diagnostic"
)

// ErrDuplicateTriggers is returned when combos share a trigger set.
var ErrDuplicateTriggers = errors.New("duplicate triggers")

// Labeler maps a keycode back to the label it was written as.
type Labeler interface {
	Reverse(token string) string
}

// CheckDuplicateTriggers fails if two combos share a trigger set. The error
// names every conflicting group.
func CheckDuplicateTriggers(combos []Combo, labels Labeler) error {
	groups, order := groupBy(combos, Combo.TriggerKey)

	var conflicts []string

	for _, key := range order {
		group := groups[key]
		if len(group) < 2 {
			continue
		}

		names := make([]string, len(group))
		for i, idx := range group {
			names[i] = combos[idx].Name
		}

		conflicts = append(conflicts, fmt.Sprintf("%s%s in %s",
			key, describeLabels(combos[group[0]], labels), strings.Join(names, ", ")))
	}

	if len(conflicts) > 0 {
		return fmt.Errorf("%w %s", ErrDuplicateTriggers, strings.Join(conflicts, "; "))
	}

	return nil
}

// DisambiguateNames returns a copy of combos in which every member of a group
// of equally named combos gets an index suffix in generation order, starting
// at zero. Suffixes that would collide with an existing name are skipped.
func DisambiguateNames(combos []Combo) ([]Combo, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	out := make([]Combo, len(combos))
	copy(out, combos)

	groups, order := groupBy(combos, func(c Combo) string { return c.Name })

	taken := make(map[string]struct{}, len(groups))
	for name := range groups {
		taken[name] = struct{}{}
	}

	for _, name := range order {
		group := groups[name]
		if len(group) < 2 {
			continue
		}

		suffix := 0

		for _, idx := range group {
			renamed := fmt.Sprintf("%s_%d", name, suffix)
			for {
				if _, ok := taken[renamed]; !ok {
					break
				}

				suffix++
				renamed = fmt.Sprintf("%s_%d", name, suffix)
			}

			suffix++
			taken[renamed] = struct{}{}
			out[idx].Name = renamed

			diags.AddWarning(diagnostic.CodeComboRenamed,
				fmt.Sprintf("renamed to %s, %d combos share the name", renamed, len(group)),
				"", name)
		}
	}

	return out, diags
}

// Validate runs both global passes.
func Validate(combos []Combo, labels Labeler) ([]Combo, diagnostic.Diagnostics, error) {
	if err := CheckDuplicateTriggers(combos, labels); err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	renamed, diags := DisambiguateNames(combos)

	return renamed, diags, nil
}

// groupBy returns the indexes of combos per key and the keys in order of first appearance.
func groupBy(combos []Combo, key func(Combo) string) (map[string][]int, []string) {
	groups := make(map[string][]int)

	var order []string

	for i, c := range combos {
		k := key(c)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}

		groups[k] = append(groups[k], i)
	}

	return groups, order
}

func describeLabels(c Combo, labels Labeler) string {
	if labels == nil {
		return ""
	}

	parts := make([]string, len(c.Triggers))
	changed := false

	for i, k := range c.Triggers {
		parts[i] = labels.Reverse(k.Label)
		if parts[i] != k.WithModifier {
			changed = true
		}
	}

	if !changed {
		return ""
	}

	return " (" + strings.Join(parts, ", ") + ")"
}
