package layout

import "strings"

// Symbols maps human labels to their alias.
type Symbols struct {
	mapping map[string]string
}

// NewSymbols copies mapping into a new alias table.
func NewSymbols(mapping map[string]string) Symbols {
	m := make(map[string]string, len(mapping))
	for k, v := range mapping {
		m[k] = v
	}

	return Symbols{mapping: m}
}

// Replace returns the alias of key, or key itself if it has none.
// Blank results are normalized to Blocked.
func (s Symbols) Replace(key string) string {
	v, ok := s.mapping[key]
	if !ok {
		v = key
	}

	if strings.TrimSpace(v) == "" {
		return Blocked
	}

	return v
}

// Len returns the number of aliases.
func (s Symbols) Len() int {
	return len(s.mapping)
}
