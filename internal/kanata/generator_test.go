package kanata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyboard-generator/internal/diagnostic"
	"keyboard-generator/internal/keycode"
	"keyboard-generator/internal/layout"
	"keyboard-generator/internal/table"
)

const options = `
| Option        | Value |
|---------------|-------|
| Rows          | 1     |
| Columns       | 2     |
| Thumb Columns | 1     |
| Modifier Row  | 0     |
| Exit Layout   | ralt  |
`

const positions = `
| Symbol | Value |
|--------|-------|
| ␣      | spc   |

| Finger Pos | (q) | (w) | (o) | (p)  |
|------------|-----|-----|-----|------|
| Hold       |     | Nav |     | lsft |

| Thumb Pos | (spc) | (ent) |
|-----------|-------|-------|
| Hold      | Nav   |       |
`

const layers = `
| Layer | Activation | Row   | 1    | 2     | 3    | 4 |
|-------|------------|-------|------|-------|------|---|
| Base  |            |       | a    | s     | KC_X | l |
|       |            | Thumb | ␣    | ent   |      |   |
| Nav   | ␣          |       | left | right | 12   | 1 |
|       |            | Thumb | spc  |       |      |   |
`

func TestCompile(t *testing.T) {
	out, diags, err := Compile(table.Parse(options + positions + layers))
	require.NoError(t, err)

	expected := "(defalias\n" +
		"  ;; layer aliases\n" +
		"  Base (layer-toggle Base)\n" +
		"  Nav (layer-toggle Nav)\n" +
		"\n" +
		"  ;; layer activation\n" +
		"  s (tap-hold-release 200 200 s @Nav)\n" +
		"  l (tap-hold-release 200 200 l lsft)\n" +
		"  1 (tap-hold-release 200 200 1 lsft)\n" +
		"\n" +
		"  spc (tap-hold-release 200 200 spc @Nav)\n" +
		")\n" +
		"\n\n" +
		"(defsrc\n" +
		"q w o p\n" +
		"spc ent\n" +
		"ralt\n" +
		")\n" +
		"\n\n" +
		"(deflayer Base\n" +
		"a\n@s\nXX\n@l\n" +
		"\n" +
		"@spc\nent\n" +
		"\n" +
		"ralt\n" +
		")\n" +
		"\n" +
		"(deflayer Nav\n" +
		"left\nright\nXX\n@1\n" +
		"\n" +
		"@spc\nXX\n" +
		"\n" +
		"ralt\n" +
		")\n"

	assert.Equal(t, expected, string(out))

	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, diagnostic.CodeUnsupportedKey, diags.Warnings[0].Code)
	assert.Equal(t, "Base", diags.Warnings[0].Layer)
	assert.Equal(t, "KC_X", diags.Warnings[0].Location)
	assert.Equal(t, "12", diags.Warnings[1].Location)
	assert.Equal(t, []string{"x"}, diags.Warnings[0].Suggestions)
	assert.False(t, diags.HasErrors())

	// Nav holds itself on the right key
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, diagnostic.CodeHoldIgnored, diags.Infos[0].Code)
	assert.Equal(t, "Nav", diags.Infos[0].Layer)
}

func TestCompile_ExitTokenEndsEveryBlock(t *testing.T) {
	out, _, err := Compile(table.Parse(options + positions + layers))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "spc ent\nralt\n)\n")
	assert.Contains(t, content, "ent\n\nralt\n)\n")
	assert.Contains(t, content, "XX\n\nralt\n)\n")
}

func TestCompile_Errors(t *testing.T) {
	noExit := `
| Option        | Value |
|---------------|-------|
| Rows          | 1     |
| Columns       | 2     |
| Thumb Columns | 1     |
| Modifier Row  | 0     |
`
	shortPos := `
| Finger Pos | (q) | (w) |
|------------|-----|-----|

| Thumb Pos | (spc) | (ent) |
|-----------|-------|-------|
`

	tests := []struct {
		name   string
		doc    string
		target error
	}{
		{name: "missing exit layout", doc: noExit + positions + layers, target: ErrMissingOption},
		{name: "missing finger positions", doc: options + layers, target: table.ErrTableNotFound},
		{name: "short finger positions", doc: options + shortPos + layers, target: layout.ErrMissingBaseKey},
		{name: "illegal layer name", doc: options + positions + "\n| Layer | A | R | 1 |\n|---|\n| base | | | a |\n", target: layout.ErrIllegalLayerName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := Compile(table.Parse(tt.doc))
			require.ErrorIs(t, err, tt.target)
			assert.Nil(t, out)
		})
	}
}

const headerDoc = `
| Option      | Value |
|-------------|-------|
| Exit Layout | ralt  |

| Symbol | Value |
|--------|-------|
| ␣      | spc   |

| Layer | Activation | (q)  | (w) | (o)  | (p) |
|-------|------------|------|-----|------|-----|
| Hold  |            |      | Nav | lsft |     |
| Base  |            | a    | s   | l    | p   |
| Nav   | s          | left | s   | KC_X | 1   |

| Thumb Pos | (spc) | (ent) |
|-----------|-------|-------|
| Tap       | ␣     | ent   |
| Hold      | Nav   |       |
`

func TestCompile_InputKeysInLayerHeader(t *testing.T) {
	out, diags, err := Compile(table.Parse(headerDoc))
	require.NoError(t, err)

	expected := "(defalias\n" +
		"  ;; layer aliases\n" +
		"  Base (layer-toggle Base)\n" +
		"  Nav (layer-toggle Nav)\n" +
		"\n" +
		"  ;; layer activation\n" +
		"  s (tap-hold-release 200 200 s @Nav)\n" +
		"  l (tap-hold-release 200 200 l lsft)\n" +
		"\n" +
		"  spc (tap-hold-release 200 200 spc @Nav)\n" +
		")\n" +
		"\n\n" +
		"(defsrc\n" +
		"q w o p\n" +
		"spc ent\n" +
		"ralt\n" +
		")\n" +
		"\n\n" +
		"(deflayer Base\n" +
		"a\n@s\n@l\np\n" +
		"\n" +
		"@spc\nent\n" +
		"\n" +
		"ralt\n" +
		")\n" +
		"\n" +
		"(deflayer Nav\n" +
		"left\n@s\nXX\n1\n" +
		"\n" +
		"@spc\nent\n" +
		"\n" +
		"ralt\n" +
		")\n"

	assert.Equal(t, expected, string(out))

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "KC_X", diags.Warnings[0].Location)
	assert.Equal(t, []string{"x"}, diags.Warnings[0].Suggestions)
	assert.Len(t, diags.Infos, 1)
	assert.False(t, diags.HasErrors())
}

func TestReadKeymap_InputKeysInLayerHeader(t *testing.T) {
	km, err := ReadKeymap(table.Parse(headerDoc))
	require.NoError(t, err)

	assert.Equal(t, "ralt", km.Exit)
	assert.Equal(t, []string{"q", "w", "o", "p"}, km.Fingers.Input)
	assert.Equal(t, []string{layout.Blocked, "Nav", "lsft", layout.Blocked}, km.Fingers.Hold)
	assert.Equal(t, []string{"spc", "ent"}, km.Thumbs.Tap)
	assert.Equal(t, []string{"Nav", layout.Blocked}, km.Thumbs.Hold)

	require.Len(t, km.Layers, 2)
	assert.Equal(t, []string{"s"}, km.Layers[1].Activation)
	assert.Equal(t, []string{"left", "s", "KC_X", "1"}, km.Layers[1].Fingers)
	assert.Nil(t, km.Layers[1].Thumbs)
}

func TestReadKeymap_Errors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		target error
	}{
		{
			name:   "no hold row",
			doc:    "| Layer | Activation | (q) |\n|---|---|---|\n",
			target: layout.ErrMissingBaseKey,
		},
		{
			name:   "no thumb table",
			doc:    "| Layer | Activation | (q) |\n|---|---|---|\n| Hold | | |\n| Base | | a |\n",
			target: table.ErrTableNotFound,
		},
		{
			name: "illegal layer name",
			doc: "| Layer | Activation | (q) |\n|---|---|---|\n| Hold | | |\n| base | | a |\n\n" +
				"| Thumb Pos | (spc) |\n|---|---|\n",
			target: layout.ErrIllegalLayerName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadKeymap(table.Parse(tt.doc))
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func newTestGenerator(t *testing.T, km Keymap) *Generator {
	t.Helper()

	dict, err := keycode.Default()
	require.NoError(t, err)

	g, err := NewGenerator(km, dict)
	require.NoError(t, err)

	return g
}

func TestGenerator_DuplicateAlias(t *testing.T) {
	g := newTestGenerator(t, Keymap{
		Layers: []Layer{
			{Name: "Base", Fingers: []string{"s", "a"}},
			{Name: "Nav", Fingers: []string{"a", "s"}},
			{Name: "Fun", Fingers: []string{"f", "g"}},
		},
		Fingers: Positions{Input: []string{"a", "b"}, Hold: []string{"Fun", "lsft"}},
		Exit:    "ralt",
	})

	out, diags := g.Generate()

	assert.Contains(t, string(out), "  s (tap-hold-release 200 200 s @Fun)\n")
	assert.Contains(t, string(out), "  a (tap-hold-release 200 200 a lsft)\n")
	assert.NotContains(t, string(out), "s lsft")

	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, diagnostic.CodeDuplicateAlias, diags.Warnings[0].Code)

	// a second run starts from scratch
	_, again := g.Generate()
	assert.Len(t, again.Warnings, 2)
}

func TestGenerator_HoldOfActivationKey(t *testing.T) {
	g := newTestGenerator(t, Keymap{
		Layers: []Layer{
			{Name: "Base", Fingers: []string{"a", "s"}},
			{Name: "Sym", Activation: []string{"lsft"}, Fingers: []string{"1", "2"}},
		},
		Fingers: Positions{Input: []string{"a", "s"}, Hold: []string{layout.Blocked, "lsft"}},
		Exit:    "ralt",
	})

	out, diags := g.Generate()

	assert.Contains(t, string(out), "  s (tap-hold-release 200 200 s lsft)\n")
	assert.NotContains(t, string(out), "  2 (tap-hold-release")

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "Sym", diags.Infos[0].Layer)
	assert.Equal(t, "2", diags.Infos[0].Location)
}

func TestGenerator_UnknownLayerHold(t *testing.T) {
	g := newTestGenerator(t, Keymap{
		Layers:  []Layer{{Name: "Base", Fingers: []string{"a"}}, {Name: "Num", Fingers: []string{"1"}}},
		Fingers: Positions{Input: []string{"a"}, Hold: []string{"Nun"}},
		Exit:    "ralt",
	})

	out, diags := g.Generate()

	assert.NotContains(t, string(out), "@Nun")
	require.True(t, diags.HasErrors())
	require.Len(t, diags.Errors, 2)
	assert.Equal(t, diagnostic.CodeUnknownLayer, diags.Errors[0].Code)
	assert.Equal(t, []string{"Num"}, diags.Errors[0].Suggestions)
	assert.ErrorContains(t, diags.Error(), "did you mean Num?")
}

func TestNewGenerator_MissingExit(t *testing.T) {
	dict, err := keycode.Default()
	require.NoError(t, err)

	_, err = NewGenerator(Keymap{}, dict)
	require.ErrorIs(t, err, ErrMissingOption)
}

func TestReadPositions(t *testing.T) {
	doc := `
| Thumb Pos | (spc) | (ent) | (tab) |
|-----------|-------|-------|-------|
| Hold      | Nav   |       |       |
| Tap       | ␣     | ent   |       |
`
	symbols := layout.NewSymbols(map[string]string{"␣": "spc"})

	p, err := ReadPositions(table.Parse(doc), TableThumbPos, 2, symbols)
	require.NoError(t, err)

	assert.Equal(t, []string{"spc", "ent"}, p.Input)
	assert.Equal(t, []string{"spc", "ent"}, p.Tap)
	assert.Equal(t, []string{"Nav", layout.Blocked}, p.Hold)
}

func TestReadPositions_NoKeys(t *testing.T) {
	p, err := ReadPositions(nil, TableThumbPos, 0, layout.Symbols{})
	require.NoError(t, err)
	assert.Empty(t, p.Input)
}
