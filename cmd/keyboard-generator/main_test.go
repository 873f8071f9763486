package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyboard-generator/internal/config"
	"keyboard-generator/internal/keycode"
)

const qmkDoc = `
| Option        | Value |
|---------------|-------|
| Rows          | 1     |
| Columns       | 2     |
| Thumb Columns | 1     |
| Modifier Row  | 0     |

| Layer | Activation | Row   | 1  | 2   | 3 | 4 |
|-------|------------|-------|----|-----|---|---|
| Base  |            |       | a  | b   | c | d |
|       |            | Thumb | e  | f   |   |   |
|       |            | Combo | 💎 | x   |   |   |
`

const kanataDoc = `
| Option        | Value |
|---------------|-------|
| Rows          | 1     |
| Columns       | 2     |
| Thumb Columns | 1     |
| Modifier Row  | 0     |
| Exit Layout   | ralt  |

| Finger Pos | (q) | (w) | (o) | (p) |
|------------|-----|-----|-----|-----|

| Thumb Pos | (spc) | (ent) |
|-----------|-------|-------|

| Layer | Activation | Row   | 1 | 2 | 3 | 4 |
|-------|------------|-------|---|---|---|---|
| Base  |            |       | a | s | l | p |
|       |            | Thumb | e | f |   |   |
`

func writeInput(t *testing.T, doc string) config.Config {
	t.Helper()

	dir := t.TempDir()
	input := filepath.Join(dir, "keyboard.md")
	require.NoError(t, os.WriteFile(input, []byte(doc), 0o600))

	return config.Config{
		Input: input,
		QMK: config.QMKConfig{
			Combos: filepath.Join(dir, "combos.def"),
			Layout: filepath.Join(dir, "layout.h"),
		},
		Kanata: config.KanataConfig{
			Output: filepath.Join(dir, "keyboard.kbd"),
		},
	}
}

func TestQMKSources(t *testing.T) {
	c := writeInput(t, qmkDoc)

	files, diags, err := qmkSources(c)
	require.NoError(t, err)
	assert.False(t, diags.HasErrors())
	require.Len(t, files, 2)

	assert.Equal(t, c.QMK.Combos, files[0].Filename)
	assert.Contains(t, string(files[0].Content), "C_BASE_KC_X")
	assert.Contains(t, string(files[0].Content), "KC_A")
	assert.Contains(t, string(files[0].Content), "KC_B")

	assert.Equal(t, c.QMK.Layout, files[1].Filename)
	layout := string(files[1].Content)
	assert.Contains(t, layout, "#include QMK_KEYBOARD_H")
	assert.Contains(t, layout, "file is generated from "+c.Input+" using keyboard-generator")
	assert.Contains(t, layout, "#define _BASE 0")
	assert.Contains(t, layout, "[_BASE] = LAYOUT_split_3x5_2(")

	require.NoError(t, write(files))
	assert.FileExists(t, c.QMK.Combos)
	assert.FileExists(t, c.QMK.Layout)
}

func TestQMKSources_CustomTemplate(t *testing.T) {
	c := writeInput(t, qmkDoc)
	c.QMK.Template = filepath.Join(t.TempDir(), "layout.tmpl")
	require.NoError(t, os.WriteFile(c.QMK.Template, []byte("// ${generationNote}\n${layers}"), 0o600))

	files, _, err := qmkSources(c)
	require.NoError(t, err)
	require.Len(t, files, 2)

	layout := string(files[1].Content)
	assert.NotContains(t, layout, "#include QMK_KEYBOARD_H")
	assert.Contains(t, layout, "// file is generated from")
	assert.Contains(t, layout, "#define _BASE 0")
}

func TestQMKSources_Errors(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		c := writeInput(t, qmkDoc)
		c.Input = filepath.Join(t.TempDir(), "missing.md")

		_, _, err := qmkSources(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing template", func(t *testing.T) {
		c := writeInput(t, qmkDoc)
		c.QMK.Template = filepath.Join(t.TempDir(), "missing.tmpl")

		_, _, err := qmkSources(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown key", func(t *testing.T) {
		c := writeInput(t, strings.Replace(qmkDoc, "| a  | b   | c | d |", "| a  | b   | c | not_a_key! |", 1))

		_, _, err := qmkSources(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, keycode.ErrUntranslatedKey)
	})
}

func TestKanataSources(t *testing.T) {
	c := writeInput(t, kanataDoc)

	files, diags, err := kanataSources(c)
	require.NoError(t, err)
	assert.False(t, diags.HasErrors())
	require.Len(t, files, 1)

	assert.Equal(t, c.Kanata.Output, files[0].Filename)
	content := string(files[0].Content)
	assert.Contains(t, content, "(defsrc\nq w o p\nspc ent\nralt\n)\n")
	assert.Contains(t, content, "(deflayer Base\na\ns\nl\np\n\ne\nf\n\nralt\n)\n")
}

func TestResolveLabels(t *testing.T) {
	dict, err := keycode.Default()
	require.NoError(t, err)

	c := config.Config{Input: filepath.Join(t.TempDir(), "missing.md")}
	tr, err := lookupTranslator(c)
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Positive(t, dict.Len())

	var out bytes.Buffer
	require.NoError(t, resolveLabels(&out, tr, []string{"e", "a"}))
	assert.Contains(t, out.String(), "KEYCODE")
	assert.Contains(t, out.String(), "KC_E")
	assert.NotContains(t, out.String(), "untranslated key")

	out.Reset()
	err = resolveLabels(&out, tr, []string{"e", "not_a_key!"})
	require.Error(t, err)
	assert.ErrorIs(t, err, keycode.ErrUntranslatedKey)
	assert.Contains(t, out.String(), "not_a_key!")
	assert.Contains(t, out.String(), "untranslated key")
}

func TestEmit_ErrorsWriteNothing(t *testing.T) {
	c := writeInput(t, strings.Replace(kanataDoc,
		"| Finger Pos | (q) | (w) | (o) | (p) |\n|------------|-----|-----|-----|-----|\n",
		"| Finger Pos | (q) | (w) | (o) | (p) |\n|------------|-----|-----|-----|-----|\n| Hold | Bsae | | | |\n", 1))

	files, diags, err := kanataSources(c)
	require.NoError(t, err)
	require.True(t, diags.HasErrors())

	err = emit(files, diags, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "did you mean Base?")
	assert.NoFileExists(t, c.Kanata.Output)
}

func TestEmit_Writes(t *testing.T) {
	c := writeInput(t, kanataDoc)

	require.NoError(t, emit(kanataSources(c)))
	assert.FileExists(t, c.Kanata.Output)
}
