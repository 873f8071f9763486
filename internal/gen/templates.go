package gen

import (
	_ "embed"
	"text/template"
)

// Placeholders of the layout template.
const (
	PlaceholderGenerationNote = "${generationNote}"
	PlaceholderLayers         = "${layers}"
)

//go:embed templates/layout.h
var defaultLayoutTemplate string

// DefaultLayoutTemplate returns the embedded layout.h template.
func DefaultLayoutTemplate() string {
	return defaultLayoutTemplate
}

var layersTemplate = template.Must(template.New("layers").Parse(`{{range .Layers}}#define {{.Define}} {{.Number}}
{{end}}
{{- if .Custom}}
enum custom_keycodes {
{{- range $i, $c := .Custom}}
	{{$c}}{{if eq $i 0}} = SAFE_RANGE{{end}},
{{- end}}
};
{{end}}
const uint16_t PROGMEM keymaps[][MATRIX_ROWS][MATRIX_COLS] = {
{{- range .Layers}}
	[{{.Define}}] = {{$.Macro}}(
{{.Keys}}),
{{- end}}
};
{{if .Timeouts}}
uint16_t get_combo_term(uint16_t index, combo_t *combo) {
	switch (index) {
{{- range .Timeouts}}
		case {{.Name}}:
			return {{.Timeout}};
{{- end}}
	}
	return COMBO_TERM;
}
{{end}}`))
