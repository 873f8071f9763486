package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"keyboard-generator/internal/config"
)

var (
	settings = config.New()
	cfg      config.Config
)

var rootCmd = &cobra.Command{
	Use:   "keyboard-generator",
	Short: "Generate QMK and kanata sources from a markdown keyboard layout",
	Long: `keyboard-generator reads the Layer, Option, Symbol and Custom tables of a
markdown document and renders firmware sources for QMK or a kanata configuration.

Settings are read from keyboard-generator.yaml in the working directory (or the
file named by KEYBOARD_GENERATOR_CONFIG), from KEYBOARD_GENERATOR_* environment
variables and from flags, in increasing order of precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		c, err := config.Load(settings)
		if err != nil {
			return err
		}

		cfg = c
		if cfg.Verbose {
			logLevel.Set(slog.LevelDebug)
		}

		slog.Debug("configuration loaded", "input", cfg.Input, "dictionaries", cfg.Dictionaries)

		return nil
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringP("input", "i", "", "markdown file with the layout tables")
	f.StringSlice("dictionary", nil, "additional keycode dictionary (QMK JSON or YAML), repeatable")
	f.BoolP("verbose", "v", false, "enable debug logging")

	bindFlag(config.KeyInput, f, "input")
	bindFlag(config.KeyDictionaries, f, "dictionary")
	bindFlag(config.KeyVerbose, f, "verbose")
}

// bindFlag lets a flag override the setting key.
func bindFlag(key string, flags *pflag.FlagSet, name string) {
	if err := settings.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(err)
	}
}
