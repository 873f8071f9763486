package layout

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrIllegalLayerName is returned for a layer name that does not start with an uppercase letter.
	ErrIllegalLayerName = errors.New("layer name must start with an uppercase letter")
	// ErrMissingBaseKey is returned when a base row is short of keys or a referenced key is absent.
	ErrMissingBaseKey = errors.New("missing base key")
)

// ComboGroup is a set of combo-definition rows aligned with the base rows.
type ComboGroup struct {
	Name  string
	Thumb bool
	Rows  [][]Key
}

// Layer is a named, numbered key mapping.
type Layer struct {
	Name   string
	Number int
	// Activation holds the resolved labels of the base-layer keys that activate this layer.
	Activation []string
	// Base holds the finger rows followed by the thumb rows.
	Base   [][]Key
	Combos []ComboGroup
}

// ValidateLayerName checks the naming rule for layers.
func ValidateLayerName(name string) error {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || !unicode.IsUpper(r) {
		return fmt.Errorf("%w: %q", ErrIllegalLayerName, name)
	}

	return nil
}

// FingerRows returns the finger rows of the base layer.
func (l Layer) FingerRows(d Dimensions) [][]Key {
	return l.Base[:min(d.Rows, len(l.Base))]
}

// ThumbRows returns the thumb rows of the base layer.
func (l Layer) ThumbRows(d Dimensions) [][]Key {
	return l.Base[min(d.Rows, len(l.Base)):]
}

// Layout is the complete model of one compilation run.
type Layout struct {
	Options Options
	Layers  []Layer
	// Custom lists custom keycodes in declaration order.
	Custom []string
}

// Hands returns the hands of this layout.
func (l *Layout) Hands() []Hand {
	return Hands(l.Options.Dimensions)
}

// Base returns the first layer, which holds the layer-activation keys.
func (l *Layout) Base() (Layer, bool) {
	if len(l.Layers) == 0 {
		return Layer{}, false
	}

	return l.Layers[0], true
}

// LayerNames returns the layer names in index order.
func (l *Layout) LayerNames() []string {
	names := make([]string, len(l.Layers))
	for i, layer := range l.Layers {
		names[i] = layer.Name
	}

	return names
}
