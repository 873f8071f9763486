package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"keyboard-generator/internal/config"
	"keyboard-generator/internal/keycode"
	"keyboard-generator/internal/layout"
	"keyboard-generator/internal/table"
)

var keycodeCmd = &cobra.Command{
	Use:   "keycode <label>...",
	Short: "Show how labels resolve to keycodes",
	Long: `Resolves every label the way the qmk command does. The Symbol, Layer and Custom
tables of the input are used when the input file exists.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := lookupTranslator(cfg)
		if err != nil {
			return err
		}

		return resolveLabels(cmd.OutOrStdout(), tr, args)
	},
}

func init() {
	rootCmd.AddCommand(keycodeCmd)
}

// lookupTranslator uses the tables of the input if there is one.
func lookupTranslator(c config.Config) (*keycode.Translator, error) {
	tables, err := table.LoadFile(c.Input)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		dict, err := keycode.Load(c.Dictionaries...)
		if err != nil {
			return nil, err
		}

		return keycode.NewTranslator(layout.NewSymbols(nil), nil, dict, nil), nil
	}

	return translator(tables, c.Dictionaries)
}

// resolveLabels prints a table row per label; it fails if any label does not resolve.
func resolveLabels(w io.Writer, tr *keycode.Translator, labels []string) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Label", "Keycode", "Dictionary Label"})
	tw.SetAutoWrapText(false)
	tw.SetBorder(false)

	var failed []string

	for _, label := range labels {
		token, err := tr.Resolve(label)
		if err != nil {
			tw.Append([]string{label, "", err.Error()})

			failed = append(failed, label)

			continue
		}

		tw.Append([]string{label, token, tr.Reverse(token)})
	}

	tw.Render()

	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", keycode.ErrUntranslatedKey, strings.Join(failed, ", "))
	}

	return nil
}
