package layout

import (
	"fmt"
	"strings"

	"keyboard-generator/internal/table"
)

// Table and row names of the layout document.
const (
	TableLayer  = "Layer"
	TableOption = "Option"
	TableSymbol = "Symbol"
	TableCustom = "Custom"

	rowThumb      = "Thumb"
	rowCombo      = "Combo"
	rowThumbCombo = "Thumb Combo"
)

// Layer table columns: name, activation, row kind, then the cells.
const (
	colName = iota
	colActivation
	colRow
	colCells
)

// Translator resolves a cell label into a target token.
type Translator interface {
	Resolve(label string) (string, error)
}

// ReadSymbols builds the alias table from the optional Symbol table.
func ReadSymbols(tables table.Tables) (Symbols, error) {
	t, err := tables.Optional(TableSymbol)
	if err != nil {
		return Symbols{}, err
	}

	return NewSymbols(t.Pairs()), nil
}

// ReadCustom returns the custom keycodes of the optional Custom table.
func ReadCustom(tables table.Tables) ([]string, error) {
	t, err := tables.Optional(TableCustom)
	if err != nil {
		return nil, err
	}

	var custom []string

	for _, row := range t.Body() {
		if name := row.Cell(0); name != "" {
			custom = append(custom, name)
		}
	}

	return custom, nil
}

// ReadLayerNames returns the validated layer names in order of appearance.
func ReadLayerNames(tables table.Tables) ([]string, error) {
	t, err := tables.Single(TableLayer)
	if err != nil {
		return nil, err
	}

	var (
		names []string
		last  string
	)

	for _, row := range t.Body() {
		name := row.Cell(colName)
		if name == "" || name == last {
			continue
		}

		if err := ValidateLayerName(name); err != nil {
			return nil, err
		}

		for _, n := range names {
			if n == name {
				return nil, fmt.Errorf("layer %s: rows must be contiguous", name)
			}
		}

		names = append(names, name)
		last = name
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("table %q defines no layers", TableLayer)
	}

	return names, nil
}

// Build creates the layout model, resolving every cell with tr.
func Build(tables table.Tables, tr Translator) (*Layout, error) {
	optionTable, err := tables.Optional(TableOption)
	if err != nil {
		return nil, err
	}

	opts, err := ParseOptions(optionTable)
	if err != nil {
		return nil, err
	}

	custom, err := ReadCustom(tables)
	if err != nil {
		return nil, err
	}

	names, err := ReadLayerNames(tables)
	if err != nil {
		return nil, err
	}

	layerTable, err := tables.Single(TableLayer)
	if err != nil {
		return nil, err
	}

	b := &builder{opts: opts, tr: tr}
	for i, name := range names {
		b.layers = append(b.layers, &layerBuilder{layer: Layer{Name: name, Number: i}})
	}

	current := -1

	for _, row := range layerTable.Body() {
		if name := row.Cell(colName); name != "" && (current < 0 || name != names[current]) {
			current++
		}

		if current < 0 {
			return nil, fmt.Errorf("table %q: row without layer name", TableLayer)
		}

		if err := b.addRow(b.layers[current], row); err != nil {
			return nil, fmt.Errorf("layer %s: %w", names[current], err)
		}
	}

	layout := &Layout{Options: opts, Custom: custom}

	for _, lb := range b.layers {
		layer, err := b.finish(lb)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", lb.layer.Name, err)
		}

		layout.Layers = append(layout.Layers, layer)
	}

	return layout, nil
}

type builder struct {
	opts   Options
	tr     Translator
	layers []*layerBuilder
}

type layerBuilder struct {
	layer  Layer
	finger [][]Key
	thumb  [][]Key
	groups map[string]int
}

func (b *builder) addRow(lb *layerBuilder, row table.Row) error {
	if activation := row.Cell(colActivation); activation != "" && lb.layer.Activation == nil {
		for _, label := range strings.Fields(activation) {
			token, err := b.tr.Resolve(label)
			if err != nil {
				return fmt.Errorf("activation %q: %w", label, err)
			}

			lb.layer.Activation = append(lb.layer.Activation, token)
		}
	}

	var cells []string
	if len(row) > colCells {
		cells = row[colCells:]
	}

	kind := row.Cell(colRow)

	switch {
	case kind == "":
		keys, err := b.baseRow(cells, b.opts.FingerWidth(), len(lb.finger))
		if err != nil {
			return err
		}

		lb.finger = append(lb.finger, keys)
	case kind == rowThumb:
		keys, err := b.baseRow(cells, b.opts.ThumbWidth(), b.opts.Rows+len(lb.thumb))
		if err != nil {
			return err
		}

		lb.thumb = append(lb.thumb, keys)
	case strings.HasPrefix(kind, rowThumbCombo):
		return b.comboRow(lb, kind, true, cells, b.opts.ThumbWidth())
	case strings.HasPrefix(kind, rowCombo):
		return b.comboRow(lb, kind, false, cells, b.opts.FingerWidth())
	default:
		return fmt.Errorf("unknown row kind %q", kind)
	}

	return nil
}

func (b *builder) baseRow(cells []string, width, rowNumber int) ([]Key, error) {
	if len(cells) < width {
		return nil, fmt.Errorf("%w: row %d has %d of %d keys", ErrMissingBaseKey, rowNumber, len(cells), width)
	}

	keys := make([]Key, width)

	for i, cell := range cells[:width] {
		k, err := b.key(cell)
		if err != nil {
			return nil, fmt.Errorf("row %d column %d: %w", rowNumber, i, err)
		}

		keys[i] = k
	}

	return keys, nil
}

func (b *builder) comboRow(lb *layerBuilder, name string, thumb bool, cells []string, width int) error {
	keys := make([]Key, width)

	for i := range keys {
		if i >= len(cells) {
			keys[i] = NewKey(Blocked)
			continue
		}

		k, err := b.key(cells[i])
		if err != nil {
			return fmt.Errorf("%s column %d: %w", name, i, err)
		}

		keys[i] = k
	}

	if lb.groups == nil {
		lb.groups = map[string]int{}
	}

	idx, ok := lb.groups[name]
	if !ok {
		idx = len(lb.layer.Combos)
		lb.groups[name] = idx
		lb.layer.Combos = append(lb.layer.Combos, ComboGroup{Name: name, Thumb: thumb})
	}

	lb.layer.Combos[idx].Rows = append(lb.layer.Combos[idx].Rows, keys)

	return nil
}

func (b *builder) key(cell string) (Key, error) {
	label, timeout := ParseCell(cell)

	token := label
	if !IsLiteral(label) {
		var err error

		token, err = b.tr.Resolve(label)
		if err != nil {
			return Key{}, err
		}
	}

	k := NewKey(token)
	k.Timeout = timeout

	return k, nil
}

func (b *builder) finish(lb *layerBuilder) (Layer, error) {
	d := b.opts.Dimensions
	if len(lb.finger) != d.Rows {
		return Layer{}, fmt.Errorf("%w: %d of %d finger rows", ErrMissingBaseKey, len(lb.finger), d.Rows)
	}

	if len(lb.thumb) != d.ThumbRows {
		return Layer{}, fmt.Errorf("%w: %d of %d thumb rows", ErrMissingBaseKey, len(lb.thumb), d.ThumbRows)
	}

	for _, g := range lb.layer.Combos {
		limit := d.Rows
		if g.Thumb {
			limit = d.ThumbRows
		}

		if len(g.Rows) > limit {
			return Layer{}, fmt.Errorf("combo group %q has %d rows, at most %d allowed", g.Name, len(g.Rows), limit)
		}
	}

	layer := lb.layer

	hands := FingerHands(d)
	for r, row := range lb.finger {
		row = AddModTaps(hands[0], b.opts.LeftModifier, r, row)
		row = AddModTaps(hands[1], b.opts.RightModifier, r, row)
		layer.Base = append(layer.Base, row)
	}

	layer.Base = append(layer.Base, lb.thumb...)

	return layer, nil
}
