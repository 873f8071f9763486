package main

import (
	"fmt"
	"log/slog"
	"os"

	"keyboard-generator/internal/combo"
	"keyboard-generator/internal/config"
	"keyboard-generator/internal/diagnostic"
	"keyboard-generator/internal/gen"
	"keyboard-generator/internal/kanata"
	"keyboard-generator/internal/keycode"
	"keyboard-generator/internal/layout"
	"keyboard-generator/internal/table"
)

// qmkSources reads the layout and renders the QMK artifacts without writing them.
func qmkSources(c config.Config) ([]gen.GeneratedFile, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	tables, err := table.LoadFile(c.Input)
	if err != nil {
		return nil, diags, err
	}

	tr, err := translator(tables, c.Dictionaries)
	if err != nil {
		return nil, diags, err
	}

	l, err := layout.Build(tables, tr)
	if err != nil {
		return nil, diags, err
	}

	result, err := combo.Generate(l, tr)
	if err != nil {
		return nil, diags, err
	}

	diags.Merge(result.Diagnostics)

	genConfig := gen.DefaultGeneratorConfig()
	genConfig.CombosFile = c.QMK.Combos
	genConfig.LayoutFile = c.QMK.Layout
	genConfig.GenerationNote = fmt.Sprintf("file is generated from %s using keyboard-generator", c.Input)

	if c.QMK.Template != "" {
		data, err := os.ReadFile(c.QMK.Template)
		if err != nil {
			return nil, diags, fmt.Errorf("failed to read layout template %s: %w", c.QMK.Template, err)
		}

		genConfig.Template = string(data)
	}

	files, err := gen.NewGenerator(genConfig).Generate(l, result)
	if err != nil {
		return nil, diags, err
	}

	slog.Info("generated QMK sources",
		"layers", len(l.Layers),
		"combos", len(result.Combos),
		"timeouts", len(result.Timeouts()))

	return files, diags, nil
}

// kanataSources reads the layout and renders the kanata configuration without writing it.
func kanataSources(c config.Config) ([]gen.GeneratedFile, diagnostic.Diagnostics, error) {
	tables, err := table.LoadFile(c.Input)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, err
	}

	out, diags, err := kanata.Compile(tables)
	if err != nil {
		return nil, diags, err
	}

	return []gen.GeneratedFile{{Filename: c.Kanata.Output, Content: out}}, diags, nil
}

// translator builds the keycode translator of a layout document.
func translator(tables table.Tables, dictionaries []string) (*keycode.Translator, error) {
	dict, err := keycode.Load(dictionaries...)
	if err != nil {
		return nil, err
	}

	symbols, err := layout.ReadSymbols(tables)
	if err != nil {
		return nil, err
	}

	names, err := layout.ReadLayerNames(tables)
	if err != nil {
		return nil, err
	}

	custom, err := layout.ReadCustom(tables)
	if err != nil {
		return nil, err
	}

	slog.Debug("translator ready",
		"keycodes", dict.Len(),
		"symbols", symbols.Len(),
		"layers", len(names),
		"custom", len(custom))

	return keycode.NewTranslator(symbols, names, dict, custom), nil
}

// logDiagnostics reports non-fatal findings.
func logDiagnostics(diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		switch d.Severity {
		case diagnostic.SeverityError:
			slog.Error(d.String(), "code", d.Code)
		case diagnostic.SeverityWarning:
			slog.Warn(d.String(), "code", d.Code)
		default:
			slog.Info(d.String(), "code", d.Code)
		}
	}
}

// emit logs the diagnostics of a run and writes its files unless the run
// failed or reported errors.
func emit(files []gen.GeneratedFile, diags diagnostic.Diagnostics, err error) error {
	logDiagnostics(diags)

	if err != nil {
		return err
	}

	if diags.HasErrors() {
		return fmt.Errorf("%d errors, nothing written: %w", len(diags.Errors), diags.Error())
	}

	return write(files)
}

// write writes files only after the whole run succeeded.
func write(files []gen.GeneratedFile) error {
	if err := gen.WriteFiles(files, ""); err != nil {
		return err
	}

	for _, f := range files {
		slog.Info("wrote file", "path", f.Filename, "bytes", len(f.Content))
	}

	return nil
}
