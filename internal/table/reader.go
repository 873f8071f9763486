package table

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

const delimiter = "|"

var (
	// ErrTableNotFound is returned when a required table is absent.
	ErrTableNotFound = errors.New("table not found")
	// ErrDuplicateTable is returned when a table name occurs more than once.
	ErrDuplicateTable = errors.New("duplicate table")
)

var blockSeparator = regexp.MustCompile(`\n\s*\n`)

// Row is a single table line split into trimmed cells.
type Row []string

// Cell returns the cell at index i or an empty string if the row is shorter.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}

	return r[i]
}

// Table is a parsed table. The first row is the header.
type Table []Row

// Name returns the first header cell.
func (t Table) Name() string {
	if len(t) == 0 {
		return ""
	}

	return t[0].Cell(0)
}

// Body returns all rows below the header.
func (t Table) Body() []Row {
	if len(t) < 2 {
		return nil
	}

	return t[1:]
}

// Pairs maps the first cell of every body row to its second cell.
func (t Table) Pairs() map[string]string {
	pairs := make(map[string]string, len(t.Body()))
	for _, row := range t.Body() {
		pairs[row.Cell(0)] = row.Cell(1)
	}

	return pairs
}

// Tables is the ordered list of tables of one document.
type Tables []Table

// Lookup returns the tables with the given name.
func (ts Tables) Lookup(name string) []Table {
	var found []Table

	for _, t := range ts {
		if t.Name() == name {
			found = append(found, t)
		}
	}

	return found
}

// Single returns the one table with the given name.
func (ts Tables) Single(name string) (Table, error) {
	found := ts.Lookup(name)

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, name)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("%w: %q occurs %d times", ErrDuplicateTable, name, len(found))
	}
}

// Optional returns the table with the given name, or nil if it is absent.
func (ts Tables) Optional(name string) (Table, error) {
	t, err := ts.Single(name)
	if errors.Is(err, ErrTableNotFound) {
		return nil, nil
	}

	return t, err
}

// LoadFile reads and parses the document at path.
func LoadFile(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	return Parse(string(data)), nil
}

// Parse splits a document into its tables.
func Parse(doc string) Tables {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")

	var tables Tables

	for _, block := range blockSeparator.Split(doc, -1) {
		block = strings.TrimLeft(block, "\n")
		if !strings.HasPrefix(block, delimiter) {
			continue
		}

		tables = append(tables, parseBlock(block))
	}

	return tables
}

func parseBlock(block string) Table {
	var t Table

	for i, line := range strings.Split(block, "\n") {
		// below header
		if i == 1 || strings.TrimSpace(line) == "" {
			continue
		}

		t = append(t, splitLine(line))
	}

	return t
}

func splitLine(line string) Row {
	parts := strings.Split(strings.TrimSpace(line), delimiter)
	if len(parts) < 2 {
		return Row{}
	}

	// drop the cells outside the leading and trailing delimiter
	parts = parts[1 : len(parts)-1]

	row := make(Row, len(parts))
	for i, p := range parts {
		row[i] = strings.TrimSpace(p)
	}

	return row
}
