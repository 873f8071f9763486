package main

import (
	"github.com/spf13/cobra"

	"keyboard-generator/internal/config"
)

var kanataCmd = &cobra.Command{
	Use:   "kanata",
	Short: "Generate a kanata configuration",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return emit(kanataSources(cfg))
	},
}

func init() {
	f := kanataCmd.Flags()
	f.StringP("output", "o", "", "output path of the kanata configuration")

	bindFlag(config.KeyKanataOutput, f, "output")

	rootCmd.AddCommand(kanataCmd)
}
