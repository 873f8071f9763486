package kanata

import (
	"fmt"

	"keyboard-generator/internal/layout"
	"keyboard-generator/internal/table"
)

// Tables describing the physical keys.
const (
	TableFingerPos = "Finger Pos"
	TableThumbPos  = "Thumb Pos"

	rowTap  = "Tap"
	rowHold = "Hold"
)

// Positions are the physical input keys of one key region, flattened row by
// row, with the tap and hold action of every position.
type Positions struct {
	Input []string
	// Tap is aligned with Input. It is the output of layers that define no
	// keys for the region.
	Tap []string
	// Hold is aligned with Input; positions without a hold action are blocked.
	Hold []string
}

// newPositions creates positions for header cells written as "(q)" with
// blocked tap and hold actions.
func newPositions(cells []string) Positions {
	p := Positions{
		Input: make([]string, len(cells)),
		Tap:   make([]string, len(cells)),
		Hold:  make([]string, len(cells)),
	}

	for i, cell := range cells {
		p.Input[i] = InputKey(cell)
		p.Tap[i] = layout.Blocked
		p.Hold[i] = layout.Blocked
	}

	return p
}

// fill replaces the actions with the cells of row, starting at column first.
func fill(actions []string, row table.Row, first int, symbols layout.Symbols) {
	for i := range actions {
		actions[i] = symbols.Replace(row.Cell(i + first))
	}
}

// ReadPositions reads a position table. The header lists the input keys
// after the table name; optional Tap and Hold rows give the actions. A region
// without keys needs no table.
func ReadPositions(tables table.Tables, name string, size int, symbols layout.Symbols) (Positions, error) {
	if size == 0 {
		return Positions{}, nil
	}

	t, err := tables.Single(name)
	if err != nil {
		return Positions{}, err
	}

	header := t[0]
	if len(header)-1 < size {
		return Positions{}, fmt.Errorf("%w: table %q has %d of %d input keys",
			layout.ErrMissingBaseKey, name, len(header)-1, size)
	}

	p := newPositions(header[1 : size+1])

	for _, row := range t.Body() {
		switch row.Cell(0) {
		case rowTap:
			fill(p.Tap, row, 1, symbols)
		case rowHold:
			fill(p.Hold, row, 1, symbols)
		}
	}

	return p, nil
}

// readThumbRows reads a Thumb Pos table whose first body row holds the taps
// and whose second holds the holds, whatever their names.
func readThumbRows(tables table.Tables, symbols layout.Symbols) (Positions, error) {
	t, err := tables.Single(TableThumbPos)
	if err != nil {
		return Positions{}, err
	}

	p := newPositions(t[0][1:])

	body := t.Body()
	if len(body) > 0 {
		fill(p.Tap, body[0], 1, symbols)
	}

	if len(body) > 1 {
		fill(p.Hold, body[1], 1, symbols)
	}

	return p, nil
}
