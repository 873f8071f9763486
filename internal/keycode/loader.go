package keycode

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

//go:embed basic.yaml
var basicYAML []byte

var keycodesPath = jp.MustParseString("$.keycodes.*")

// Default returns the dictionary of the embedded basic keycodes.
func Default() (*Dictionary, error) {
	d := NewDictionary()
	if err := LoadYAML(d, basicYAML); err != nil {
		return nil, fmt.Errorf("embedded keycodes: %w", err)
	}

	return d, nil
}

// Load returns the default dictionary extended by the given files, in order.
func Load(paths ...string) (*Dictionary, error) {
	d, err := Default()
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		if err := LoadFile(d, path); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// LoadFile adds the entries of a QMK keycode JSON file or a YAML label map to d.
func LoadFile(d *Dictionary, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read keycode file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".hjson":
		err = LoadQMKJSON(d, data)
	case ".yaml", ".yml":
		err = LoadYAML(d, data)
	default:
		err = fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}

	if err != nil {
		return fmt.Errorf("keycode file %s: %w", path, err)
	}

	return nil
}

// LoadYAML adds a flat "label: token" YAML map to d.
func LoadYAML(d *Dictionary, data []byte) error {
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse keycode YAML: %w", err)
	}

	labels := make([]string, 0, len(entries))
	for label := range entries {
		labels = append(labels, label)
	}

	// deterministic reverse lookups
	sort.Strings(labels)

	for _, label := range labels {
		if Excluded(entries[label]) {
			continue
		}

		d.Add(label, entries[label])
	}

	return nil
}

// LoadQMKJSON adds the entries of a QMK keycode specification
// ({"keycodes": {"0x0004": {"key": "KC_A", "label": "A", "aliases": [...]}}}) to d.
// Every entry is registered under its label and under the names of its key and
// aliases without the KC_ prefix; the token is the shortest of key and aliases.
func LoadQMKJSON(d *Dictionary, data []byte) error {
	root, err := oj.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse keycode JSON: %w", err)
	}

	var specs []keycodeSpec

	for _, v := range keycodesPath.Get(root) {
		entry, ok := v.(map[string]any)
		if !ok {
			continue
		}

		spec := keycodeSpec{key: stringValue(entry["key"]), label: stringValue(entry["label"])}
		if spec.key == "" || Excluded(spec.key) {
			continue
		}

		if aliases, ok := entry["aliases"].([]any); ok {
			for _, a := range aliases {
				if s := stringValue(a); s != "" {
					spec.aliases = append(spec.aliases, s)
				}
			}
		}

		specs = append(specs, spec)
	}

	// JSON objects carry no order
	sort.Slice(specs, func(i, j int) bool { return specs[i].key < specs[j].key })

	for _, spec := range specs {
		token := spec.token()

		d.Add(spec.label, token)

		for _, name := range append([]string{spec.key}, spec.aliases...) {
			if after, ok := strings.CutPrefix(name, "KC_"); ok {
				d.Add(after, token)
			}
		}
	}

	return nil
}

type keycodeSpec struct {
	key     string
	label   string
	aliases []string
}

func (s keycodeSpec) token() string {
	token := s.key
	for _, a := range s.aliases {
		if len(a) < len(token) || (len(a) == len(token) && a < token) {
			token = a
		}
	}

	return token
}

func stringValue(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
