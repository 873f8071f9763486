package kanata

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"keyboard-generator/internal/diagnostic"
	"keyboard-generator/internal/keycode"
	"keyboard-generator/internal/layout"
	"keyboard-generator/internal/match"
	"keyboard-generator/internal/table"
)

// ErrMissingOption is returned when a required option is not set.
var ErrMissingOption = errors.New("missing option")

// holdDelay is the tap and hold timeout of activation aliases in milliseconds.
const holdDelay = 200

// Generator renders the kanata configuration of one keymap.
type Generator struct {
	keymap Keymap
	// keys suggests kanata names for keycodes and checks layer references.
	keys *keycode.Translator

	diags   diagnostic.Diagnostics
	aliases map[string]string
}

// NewGenerator creates a generator. The exit token is required; dict is used
// for suggestions only.
func NewGenerator(km Keymap, dict *keycode.Dictionary) (*Generator, error) {
	if km.Exit == "" {
		return nil, fmt.Errorf("%w %q", ErrMissingOption, layout.OptionExitLayout)
	}

	return &Generator{
		keymap: km,
		keys:   keycode.NewTranslator(layout.NewSymbols(nil), km.LayerNames(), dict, nil),
	}, nil
}

// Compile reads the keymap from tables and renders it.
func Compile(tables table.Tables) ([]byte, diagnostic.Diagnostics, error) {
	km, err := ReadKeymap(tables)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	dict, err := keycode.Default()
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	g, err := NewGenerator(km, dict)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	out, diags := g.Generate()

	return out, diags, nil
}

// Generate renders defalias, defsrc and the layers.
func (g *Generator) Generate() ([]byte, diagnostic.Diagnostics) {
	g.diags = diagnostic.Diagnostics{}
	g.aliases = map[string]string{}

	layers := g.keymap.Layers

	fingers := make([][]string, len(layers))
	thumbs := make([][]string, len(layers))

	for i, layer := range layers {
		fingers[i] = g.outputKeys(layer.Name, layer.Fingers)

		taps := layer.Thumbs
		if taps == nil {
			taps = g.keymap.Thumbs.Tap
		}

		thumbs[i] = g.outputKeys(layer.Name, taps)
	}

	alias := g.defAlias(fingers)

	blocks := make([]string, len(layers))
	for i, layer := range layers {
		blocks[i] = g.defLayer(layer.Name, fingers[i], thumbs[i])
	}

	out := strings.Join([]string{alias, g.defSrc(), strings.Join(blocks, "\n")}, "\n\n")

	return []byte(out), g.diags
}

func statement(header, body string) string {
	return "(" + header + "\n" + body + "\n)\n"
}

// block joins finger and thumb entries and appends the exit token.
func (g *Generator) block(blockSeparator, entrySeparator string, fingers, thumbs []string) string {
	return strings.Join(fingers, entrySeparator) +
		blockSeparator + strings.Join(thumbs, entrySeparator) +
		blockSeparator + g.keymap.Exit
}

// outputKeys converts labels into kanata keys, reporting every label that
// has no kanata equivalent.
func (g *Generator) outputKeys(layerName string, labels []string) []string {
	keys := make([]string, len(labels))

	for i, label := range labels {
		out, ok := OutputKey(label)
		if !ok {
			g.diags.AddWarning(diagnostic.CodeUnsupportedKey,
				fmt.Sprintf("cannot handle %s, rendered as %s", label, layout.Blocked),
				layerName, label, g.keySuggestions(label)...)
		}

		keys[i] = out
	}

	return keys
}

// keySuggestions proposes kanata names for a keycode: the lower-cased label
// it was resolved from, or similar dictionary labels.
func (g *Generator) keySuggestions(key string) []string {
	if label := g.keys.Reverse(key); label != key {
		return []string{strings.ToLower(label)}
	}

	suggestions := g.keys.Suggest(key)
	for i, s := range suggestions {
		suggestions[i] = strings.ToLower(s)
	}

	return suggestions
}

func (g *Generator) defAlias(fingers [][]string) string {
	names := g.keymap.LayerNames()

	toggles := make([]string, len(names))
	for i, name := range names {
		toggles[i] = fmt.Sprintf("  %s (layer-toggle %s)", name, name)
	}

	var activation []string

	for i, layer := range g.keymap.Layers {
		activation = append(activation, g.activation(layer, fingers[i], g.keymap.Fingers.Hold)...)
	}

	// separator line
	activation = append(activation, "")
	activation = append(activation, g.activation(Layer{}, g.keymap.Thumbs.Input, g.keymap.Thumbs.Hold)...)

	return statement("defalias",
		"  ;; layer aliases\n"+strings.Join(toggles, "\n")+"\n\n"+
			"  ;; layer activation\n"+strings.Join(activation, "\n"))
}

// activation defines a tap-hold alias for every key with a hold action. A
// layer never holds itself or one of its activation keys; the first
// definition of an alias wins.
func (g *Generator) activation(layer Layer, keys, holds []string) []string {
	var lines []string

	for i, key := range keys {
		if i >= len(holds) {
			break
		}

		hold := holds[i]
		if key == layout.Blocked || hold == layout.Blocked {
			continue
		}

		if hold == layer.Name || slices.Contains(layer.Activation, hold) {
			g.diags.AddInfo(diagnostic.CodeHoldIgnored,
				fmt.Sprintf("hold %s of %s would activate the layer itself", hold, key),
				layer.Name, key)

			continue
		}

		if !g.checkHold(layer.Name, key, hold) {
			continue
		}

		line := fmt.Sprintf("  %s (tap-hold-release %d %d %s %s)", key, holdDelay, holdDelay, key, holdCommand(hold))

		if existing, ok := g.aliases[key]; ok {
			if existing != line {
				g.diags.AddWarning(diagnostic.CodeDuplicateAlias,
					fmt.Sprintf("alias %s is already defined, ignoring hold %s", key, hold),
					layer.Name, key)
			}

			continue
		}

		g.aliases[key] = line
		lines = append(lines, line)
	}

	return lines
}

// checkHold reports a hold that refers to a layer that does not exist.
func (g *Generator) checkHold(layerName, key, hold string) bool {
	if !isLayerReference(hold) {
		return true
	}

	if _, ok := g.keys.LayerIndex(hold); ok {
		return true
	}

	known := make(map[string]string, len(g.keymap.Layers))
	for _, name := range g.keymap.LayerNames() {
		known[name] = name
	}

	var suggestions []string
	if best := match.RankCandidates(hold, known).Best(); best != nil {
		suggestions = append(suggestions, best.Label)
	}

	g.diags.AddError(diagnostic.CodeUnknownLayer,
		fmt.Sprintf("hold %s names no layer", hold),
		layerName, key, suggestions...)

	return false
}

// isLayerReference reports whether a hold action names a layer rather than a key.
func isLayerReference(hold string) bool {
	r, _ := utf8.DecodeRuneInString(hold)
	return unicode.IsUpper(r)
}

// holdCommand refers to a layer alias for layer names, anything else is a key.
func holdCommand(hold string) string {
	if isLayerReference(hold) {
		return "@" + hold
	}

	return hold
}

func (g *Generator) defSrc() string {
	return statement("defsrc", g.block("\n", " ", g.keymap.Fingers.Input, g.keymap.Thumbs.Input))
}

func (g *Generator) defLayer(name string, fingers, thumbs []string) string {
	return statement("deflayer "+name, g.block("\n\n", "\n", g.references(fingers), g.references(thumbs)))
}

// references uses the activation alias of every key that has one.
func (g *Generator) references(keys []string) []string {
	out := make([]string, len(keys))

	for i, key := range keys {
		if _, ok := g.aliases[key]; ok {
			out[i] = "@" + key
		} else {
			out[i] = key
		}
	}

	return out
}
