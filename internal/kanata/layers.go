package kanata

import (
	"fmt"
	"strings"
	"unicode"

	"keyboard-generator/internal/layout"
	"keyboard-generator/internal/table"
)

// keyColumn is the first key column of a Layer table with input keys in its header.
const keyColumn = 2

// Layer is one layer as kanata renders it.
type Layer struct {
	Name string
	// Activation are the keys that switch to the layer. Hold actions naming
	// one of them are not aliased on the layer.
	Activation []string
	// Fingers are the resolved labels of the finger positions.
	Fingers []string
	// Thumbs are the resolved labels of the thumb positions; nil uses the taps
	// of the thumb positions.
	Thumbs []string
}

// Keymap is the input of the renderer.
type Keymap struct {
	Layers  []Layer
	Fingers Positions
	Thumbs  Positions
	// Exit is appended to defsrc and every layer.
	Exit string
}

// LayerNames returns the layer names in order.
func (k Keymap) LayerNames() []string {
	names := make([]string, len(k.Layers))
	for i, l := range k.Layers {
		names[i] = l.Name
	}

	return names
}

// hasInputHeader reports whether the Layer table lists the input keys in its
// header, as in "| Layer | Activation | (q) | (w) |".
func hasInputHeader(t table.Table) bool {
	return len(t) > 0 && strings.HasPrefix(t[0].Cell(keyColumn), "(")
}

// ReadKeymap reads either document shape. A Layer table with input keys in
// its header is followed by a Hold row and one row per layer, with the thumb
// taps in the Thumb Pos table. Otherwise the layout is built from the row
// based Layer table together with the Finger Pos and Thumb Pos tables.
func ReadKeymap(tables table.Tables) (Keymap, error) {
	symbols, err := layout.ReadSymbols(tables)
	if err != nil {
		return Keymap{}, err
	}

	layerTable, err := tables.Single(layout.TableLayer)
	if err != nil {
		return Keymap{}, err
	}

	if hasInputHeader(layerTable) {
		return readHeaderKeymap(tables, layerTable, symbols)
	}

	return readRowKeymap(tables, symbols)
}

func readRowKeymap(tables table.Tables, symbols layout.Symbols) (Keymap, error) {
	l, err := layout.Build(tables, NewTranslator(symbols))
	if err != nil {
		return Keymap{}, err
	}

	d := l.Options.Dimensions

	fingers, err := ReadPositions(tables, TableFingerPos, d.Rows*d.FingerWidth(), symbols)
	if err != nil {
		return Keymap{}, err
	}

	thumbs, err := ReadPositions(tables, TableThumbPos, d.ThumbRows*d.ThumbWidth(), symbols)
	if err != nil {
		return Keymap{}, err
	}

	km := Keymap{Fingers: fingers, Thumbs: thumbs, Exit: l.Options.ExitLayout}

	for _, layer := range l.Layers {
		km.Layers = append(km.Layers, Layer{
			Name:       layer.Name,
			Activation: layer.Activation,
			Fingers:    labels(layer.FingerRows(d)),
			Thumbs:     labels(layer.ThumbRows(d)),
		})
	}

	return km, nil
}

func readHeaderKeymap(tables table.Tables, layerTable table.Table, symbols layout.Symbols) (Keymap, error) {
	fingers := newPositions(layerTable[0][keyColumn:])

	body := layerTable.Body()
	if len(body) == 0 {
		return Keymap{}, fmt.Errorf("%w: table %q has no %s row",
			layout.ErrMissingBaseKey, layout.TableLayer, rowHold)
	}

	fill(fingers.Hold, body[0], keyColumn, symbols)

	thumbs, err := readThumbRows(tables, symbols)
	if err != nil {
		return Keymap{}, err
	}

	exit, err := exitLayout(tables)
	if err != nil {
		return Keymap{}, err
	}

	tr := NewTranslator(symbols)
	km := Keymap{Fingers: fingers, Thumbs: thumbs, Exit: exit}

	for _, row := range body[1:] {
		name := row.Cell(0)
		if err := layout.ValidateLayerName(name); err != nil {
			return Keymap{}, fmt.Errorf("layer %s: %w", name, err)
		}

		layer := Layer{Name: name}

		for _, r := range row.Cell(1) {
			if !unicode.IsSpace(r) {
				layer.Activation = append(layer.Activation, string(r))
			}
		}

		for i := range fingers.Input {
			// Resolve never fails
			key, _ := tr.Resolve(row.Cell(i + keyColumn))
			layer.Fingers = append(layer.Fingers, key)
		}

		km.Layers = append(km.Layers, layer)
	}

	return km, nil
}

// exitLayout reads the Exit Layout option without interpreting the others.
func exitLayout(tables table.Tables) (string, error) {
	t, err := tables.Optional(layout.TableOption)
	if err != nil {
		return "", err
	}

	return t.Pairs()[layout.OptionExitLayout], nil
}

func labels(rows [][]layout.Key) []string {
	var out []string

	for _, row := range rows {
		for _, k := range row {
			out = append(out, k.Label)
		}
	}

	return out
}
