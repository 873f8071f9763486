// Package diagnostic provides structured warnings and errors for the layout
// compiler.
//
// Key capabilities:
//   - Recoverable corrections (renamed combos, degraded output keys)
//   - Location of a finding (layer and cell or combo)
//   - Suggestions for likely fixes
package diagnostic
