// Package combo derives the simultaneous-key-press rules of a layout.
//
// Generation runs in three steps:
//  1. Derive scans the combo-definition rows of every layer, hand by hand,
//     for anchor columns and builds one combo per active cell, adding a
//     shifted sibling for single letters.
//  2. ModCombos adds, per layer, the combos that activate the layer together
//     with a modifier mask from the fixed ModTrigger table.
//  3. Validate rejects combos sharing a trigger set and renames combos
//     sharing a name.
package combo
