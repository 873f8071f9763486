// Package gen renders the QMK firmware sources of a layout.
//
// Generation uses text/template for the layer listing and plain placeholder
// substitution for the user supplied layout template.
//
// Artifacts:
//   - combos.def: one COMB or SUBS line per combo
//   - layout.h: layer defines, custom keycodes, keymaps and combo terms
package gen
