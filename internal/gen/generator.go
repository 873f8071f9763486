package gen

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"keyboard-generator/internal/combo"
	"keyboard-generator/internal/layout"
)

// ErrMissingPlaceholder is returned for a layout template without a layers placeholder.
var ErrMissingPlaceholder = errors.New("layout template has no placeholder")

// keyWidth pads keymap entries so that the columns line up.
const keyWidth = 20

// GeneratorConfig holds configuration for QMK generation.
type GeneratorConfig struct {
	// CombosFile is the name of the combo definition file.
	CombosFile string
	// LayoutFile is the name of the keymap header.
	LayoutFile string
	// Template is the layout template; empty uses the embedded default.
	Template string
	// GenerationNote is substituted for the generation note placeholder.
	GenerationNote string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		CombosFile:     "combos.def",
		LayoutFile:     "layout.h",
		GenerationNote: "file is generated by keyboard-generator",
	}
}

// Generator renders the QMK sources of a layout.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a rendered output file.
type GeneratedFile struct {
	// Filename is the path of the file, relative to the output directory unless absolute.
	Filename string
	// Content is the rendered text.
	Content []byte
}

// Generate renders both QMK artifacts. Nothing is returned unless both succeed.
func (g *Generator) Generate(l *layout.Layout, result *combo.Result) ([]GeneratedFile, error) {
	header, err := g.Layout(l, result.Timeouts())
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", g.config.LayoutFile, err)
	}

	return []GeneratedFile{
		{Filename: g.config.CombosFile, Content: g.Combos(result.Combos)},
		{Filename: g.config.LayoutFile, Content: header},
	}, nil
}

// Combos renders the combo definitions, one per line.
func (g *Generator) Combos(combos []combo.Combo) []byte {
	var buf bytes.Buffer

	for _, c := range combos {
		buf.WriteString(c.Definition())
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// layersData holds all data needed for the layers template.
type layersData struct {
	Layers   []layerData
	Custom   []string
	Macro    string
	Timeouts []combo.Combo
}

type layerData struct {
	Define string
	Number int
	Keys   string
}

// Layers renders the text substituted for the layers placeholder.
func (g *Generator) Layers(l *layout.Layout, timeouts []combo.Combo) (string, error) {
	data := layersData{
		Custom:   l.Custom,
		Macro:    l.Options.LayoutMacro,
		Timeouts: timeouts,
	}

	for _, layer := range l.Layers {
		data.Layers = append(data.Layers, layerData{
			Define: LayerDefine(layer.Name),
			Number: layer.Number,
			Keys:   keymap(layer),
		})
	}

	var buf bytes.Buffer

	err := layersTemplate.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing layers template: %w", err)
	}

	return buf.String(), nil
}

// Layout renders layout.h from the configured template.
func (g *Generator) Layout(l *layout.Layout, timeouts []combo.Combo) ([]byte, error) {
	tmpl := g.config.Template
	if tmpl == "" {
		tmpl = DefaultLayoutTemplate()
	}

	if !strings.Contains(tmpl, PlaceholderLayers) {
		return nil, fmt.Errorf("%w %s", ErrMissingPlaceholder, PlaceholderLayers)
	}

	layers, err := g.Layers(l, timeouts)
	if err != nil {
		return nil, err
	}

	r := strings.NewReplacer(
		PlaceholderGenerationNote, g.config.GenerationNote,
		PlaceholderLayers, layers,
	)

	return []byte(r.Replace(tmpl)), nil
}

// LayerDefine returns the preprocessor name of a layer ("Nav" becomes "_NAV").
func LayerDefine(name string) string {
	return "_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// keymap lists the keycodes of a layer row by row; thumb rows come last.
func keymap(layer layout.Layer) string {
	rows := make([]string, len(layer.Base))

	for i, row := range layer.Base {
		codes := make([]string, len(row))
		for j, k := range row {
			codes[j] = fmt.Sprintf("%*s", keyWidth, k.Code())
		}

		rows[i] = "\t\t" + strings.Join(codes, ", ")
	}

	return strings.Join(rows, ",\n")
}
