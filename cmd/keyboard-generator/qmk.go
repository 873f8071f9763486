package main

import (
	"github.com/spf13/cobra"

	"keyboard-generator/internal/config"
)

var qmkCmd = &cobra.Command{
	Use:   "qmk",
	Short: "Generate combos.def and layout.h for QMK",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return emit(qmkSources(cfg))
	},
}

func init() {
	f := qmkCmd.Flags()
	f.String("combos", "", "output path of the combo definitions")
	f.String("layout", "", "output path of the layout header")
	f.String("template", "", "layout header template with ${generationNote} and ${layers} placeholders")

	bindFlag(config.KeyQMKCombos, f, "combos")
	bindFlag(config.KeyQMKLayout, f, "layout")
	bindFlag(config.KeyQMKTemplate, f, "template")

	rootCmd.AddCommand(qmkCmd)
}
