package layout

import "strings"

type modTap struct {
	tap  string // wrapper for a bound key
	bare string // modifier key for a blocked position
}

// Mod-taps by logical column, counted from the outer edge of the hand.
var (
	leftModTaps = map[int]modTap{
		1: {"LALT_T", "KC_LALT"},
		2: {"LCTL_T", "KC_LCTL"},
		3: {"LSFT_T", "KC_LSFT"},
	}
	rightModTaps = map[int]modTap{
		1: {"LALT_T", "KC_LALT"},
		2: {"RCTL_T", "KC_RCTL"},
		3: {"RSFT_T", "KC_RSFT"},
	}
)

// AddModTaps returns row with mod-tap wrappers applied to the columns of h
// if the modifier type selects this finger row.
func AddModTaps(h Hand, m ModifierType, rowNumber int, row []Key) []Key {
	out := make([]Key, len(row))
	copy(out, row)

	if h.IsThumb() || !m.MatchesRow(rowNumber) {
		return out
	}

	taps := leftModTaps
	if h.IsRight() {
		taps = rightModTaps
	}

	for c := 0; c < h.Columns && h.Skip+c < len(out); c++ {
		tap, ok := taps[h.Translate(c)]
		if !ok {
			continue
		}

		k := &out[h.Skip+c]

		switch {
		case k.Label == Blocked:
			k.WithModifier = tap.bare
		case k.Label == Transparent || k.Label == NoKey || strings.Contains(k.Label, "("):
		default:
			k.WithModifier = AddMods(tap.tap, k.Label)
		}
	}

	return out
}
