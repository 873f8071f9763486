// Package keycode resolves human key labels into QMK keycode tokens.
//
// Resolution runs in two explicit stages. First the label is passed through
// the Symbol alias table and every identifier that names a layer is replaced
// by the layer's index. Then the capitalized result is looked up in a
// Dictionary built from the embedded defaults and any configured QMK keycode
// JSON or YAML files; unknown labels are returned unchanged. Assert rejects
// tokens that still do not look like keycodes, turning table typos into
// build-time errors.
package keycode
