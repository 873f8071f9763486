package combo

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"keyboard-generator/internal/layout"
)

// keys builds plain keys from labels.
func keys(labels ...string) []layout.Key {
	out := make([]layout.Key, len(labels))
	for i, l := range labels {
		out[i] = layout.NewKey(l)
	}

	return out
}

func row(labels ...string) []layout.Key {
	return keys(labels...)
}

func smallDimensions() layout.Dimensions {
	return layout.Dimensions{Rows: 1, Columns: 3, ThumbRows: 1, ThumbColumns: 1}
}

func names(combos []Combo) []string {
	out := make([]string, len(combos))
	for i, c := range combos {
		out[i] = c.Name
	}

	return out
}

func dumpOnFailure(t *testing.T, ok bool, v any) {
	t.Helper()

	if !ok {
		t.Log(spew.Sdump(v))
	}
}

// splitLayout is a 2x5+2 split keyboard with activation keys on the thumbs.
func splitLayout() *layout.Layout {
	opts := layout.DefaultOptions()
	opts.Rows = 2

	base := layout.Layer{
		Name:   "Base",
		Number: 0,
		Base: [][]layout.Key{
			row("KC_Q", "KC_W", "KC_E", "KC_R", "KC_T", "KC_Y", "KC_U", "KC_I", "KC_O", "KC_P"),
			row("KC_A", "KC_S", "KC_D", "KC_F", "KC_G", "KC_H", "KC_J", "KC_K", "KC_L", "KC_SCLN"),
			row("MO(1)", "KC_SPC", "KC_ENT", "MO(2)"),
		},
		Combos: []layout.ComboGroup{
			{
				Name: "Combo",
				Rows: [][]layout.Key{
					row(layout.Blocked, layout.Blocked, layout.Blocked, layout.Blocked, layout.Blocked,
						layout.Blocked, layout.Blocked, layout.Blocked, layout.Blocked, layout.Blocked),
					row(layout.Blocked, layout.ComboTrigger, "KC_X", layout.Blocked, layout.Blocked,
						layout.Blocked, layout.Blocked, "KC_MINS", layout.ComboTrigger, layout.Blocked),
				},
			},
			{
				Name:  "Thumb Combo",
				Thumb: true,
				Rows:  [][]layout.Key{row(layout.ComboTrigger, "KC_ESC", layout.Blocked, layout.Blocked)},
			},
		},
	}

	nav := layout.Layer{
		Name:       "Nav",
		Number:     1,
		Activation: []string{"MO(1)"},
		Base: [][]layout.Key{
			row("KC_1", "KC_2", "KC_3", "KC_4", "KC_5", "KC_6", "KC_7", "KC_8", "KC_9", "KC_0"),
			row("KC_LEFT", "KC_DOWN", "KC_UP", "KC_RGHT", layout.Blocked, layout.Blocked,
				"KC_HOME", "KC_PGDN", "KC_PGUP", "KC_END"),
			row(layout.Transparent, layout.Transparent, layout.Transparent, layout.Transparent),
		},
		Combos: []layout.ComboGroup{
			{
				Name: "Combo",
				Rows: [][]layout.Key{
					row(layout.ComboTrigger, `"the"`, layout.Blocked, layout.Blocked, layout.Blocked,
						layout.Blocked, layout.Blocked, layout.Blocked, layout.Blocked, layout.Blocked),
				},
			},
		},
	}

	fun := layout.Layer{
		Name:       "Fun",
		Number:     2,
		Activation: []string{"KC_SPC", "KC_ENT"},
		Base: [][]layout.Key{
			row("KC_F1", "KC_F2", "KC_F3", "KC_F4", "KC_F5", "KC_F6", "KC_F7", "KC_F8", "KC_F9", "KC_F10"),
			row(layout.Blocked, layout.Blocked, layout.Blocked, layout.Blocked, layout.Blocked,
				layout.Blocked, layout.Blocked, layout.Blocked, layout.Blocked, layout.Blocked),
			row(layout.Transparent, layout.Transparent, layout.Transparent, layout.Transparent),
		},
	}

	return &layout.Layout{Options: opts, Layers: []layout.Layer{base, nav, fun}}
}
