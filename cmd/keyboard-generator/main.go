// Package main provides the CLI entrypoint for keyboard-generator.
//
// keyboard-generator compiles a markdown document of pipe tables describing a
// split keyboard into:
//   - QMK firmware sources (combos.def and layout.h)
//   - a kanata configuration
package main

import (
	"fmt"
	"log/slog"
	"os"
)

// logLevel is lowered to debug by --verbose.
var logLevel = new(slog.LevelVar)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
