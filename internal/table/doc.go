// Package table reads the pipe-delimited tables of a layout document.
//
// A document is a sequence of blocks separated by blank lines. A block whose
// first line starts with '|' is a table: every line is split on '|', the
// cells outside the outer delimiters are dropped, the remaining cells are
// trimmed and the header underline (second line) is discarded. Any other block
// is prose and is ignored.
package table
