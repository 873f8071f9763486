// Package layout holds the value types a keyboard layout is compiled from.
//
// A Layout is built once from the parsed tables: every cell is resolved into
// a Key through a Translator, grouped into the base rows and combo-definition
// groups of a Layer. The four Hands describe which slice of a row belongs to
// which physical key region. Nothing in this package is mutated after Build
// returns.
package layout
