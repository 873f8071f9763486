// Package kanata renders a layout as a kanata configuration: layer and
// activation aliases (defalias), the physical source keys (defsrc) and one
// deflayer block per layer.
//
// Kanata keys are lower-case key names. Cells are resolved through the
// Symbol table only; keycodes the renderer cannot express degrade to XX with
// a warning.
package kanata
