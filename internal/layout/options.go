package layout

import (
	"errors"
	"fmt"
	"strconv"

	"keyboard-generator/internal/table"
)

// Option names understood by the generators.
const (
	OptionRows          = "Rows"
	OptionColumns       = "Columns"
	OptionThumbRows     = "Thumb Rows"
	OptionThumbColumns  = "Thumb Columns"
	OptionLeftModifier  = "Left Modifier"
	OptionRightModifier = "Right Modifier"
	OptionModifierRow   = "Modifier Row"
	OptionLayoutMacro   = "Layout Macro"
	OptionExitLayout    = "Exit Layout"
)

// ErrUnknownModifierType is returned for an unsupported modifier placement.
var ErrUnknownModifierType = errors.New("unknown modifier type")

// ModifierType selects the row that carries home-row style mod-taps.
type ModifierType int

const (
	ModifierNone ModifierType = iota
	ModifierHomeRow
	ModifierBottomRow
)

// ParseModifierType parses the value of a modifier option.
func ParseModifierType(s string) (ModifierType, error) {
	switch s {
	case "":
		return ModifierNone, nil
	case "HomeRow":
		return ModifierHomeRow, nil
	case "BottomRow":
		return ModifierBottomRow, nil
	default:
		return ModifierNone, fmt.Errorf("%w %q", ErrUnknownModifierType, s)
	}
}

// MatchesRow reports whether finger row (0-based) carries the mod-taps.
func (m ModifierType) MatchesRow(row int) bool {
	switch m {
	case ModifierHomeRow:
		return row == 1
	case ModifierBottomRow:
		return row == 2
	default:
		return false
	}
}

// Dimensions describes the shape of the key grid.
type Dimensions struct {
	// Rows is the number of finger rows.
	Rows int
	// Columns is the number of finger columns per hand.
	Columns int
	// ThumbRows is the number of thumb rows.
	ThumbRows int
	// ThumbColumns is the number of thumb keys per hand.
	ThumbColumns int
}

// FingerWidth is the number of cells in a finger row.
func (d Dimensions) FingerWidth() int {
	return 2 * d.Columns
}

// ThumbWidth is the number of cells in a thumb row.
func (d Dimensions) ThumbWidth() int {
	return 2 * d.ThumbColumns
}

// Options holds the settings of the Option table.
type Options struct {
	Dimensions

	LeftModifier  ModifierType
	RightModifier ModifierType
	// ModifierRow is the finger row the modifier combos read their keys from.
	ModifierRow int
	LayoutMacro string
	ExitLayout  string

	// Values holds every raw option, including unknown ones.
	Values map[string]string
}

// DefaultOptions returns the options for a split 3x5+2 keyboard.
func DefaultOptions() Options {
	return Options{
		Dimensions: Dimensions{
			Rows:         3,
			Columns:      5,
			ThumbRows:    1,
			ThumbColumns: 2,
		},
		ModifierRow: 1,
		LayoutMacro: "LAYOUT_split_3x5_2",
		Values:      map[string]string{},
	}
}

// ParseOptions reads the Option table. A nil table yields the defaults.
func ParseOptions(t table.Table) (Options, error) {
	opts := DefaultOptions()
	if t == nil {
		return opts, nil
	}

	opts.Values = t.Pairs()

	ints := []struct {
		name string
		dst  *int
		min  int
	}{
		{OptionRows, &opts.Rows, 1},
		{OptionColumns, &opts.Columns, 1},
		{OptionThumbRows, &opts.ThumbRows, 0},
		{OptionThumbColumns, &opts.ThumbColumns, 0},
		{OptionModifierRow, &opts.ModifierRow, 0},
	}

	for _, o := range ints {
		raw, ok := opts.Values[o.name]
		if !ok || raw == "" {
			continue
		}

		v, err := strconv.Atoi(raw)
		if err != nil {
			return Options{}, fmt.Errorf("option %q: %w", o.name, err)
		}

		if v < o.min {
			return Options{}, fmt.Errorf("option %q: %d is less than %d", o.name, v, o.min)
		}

		*o.dst = v
	}

	if opts.ModifierRow >= opts.Rows {
		return Options{}, fmt.Errorf("option %q: row %d outside of %d rows", OptionModifierRow, opts.ModifierRow, opts.Rows)
	}

	var err error
	if opts.LeftModifier, err = ParseModifierType(opts.Values[OptionLeftModifier]); err != nil {
		return Options{}, fmt.Errorf("option %q: %w", OptionLeftModifier, err)
	}

	if opts.RightModifier, err = ParseModifierType(opts.Values[OptionRightModifier]); err != nil {
		return Options{}, fmt.Errorf("option %q: %w", OptionRightModifier, err)
	}

	if v := opts.Values[OptionLayoutMacro]; v != "" {
		opts.LayoutMacro = v
	}

	opts.ExitLayout = opts.Values[OptionExitLayout]

	return opts, nil
}
