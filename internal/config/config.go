// Package config loads the generator settings from defaults, an optional
// config file, the environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment and file names.
const (
	EnvPrefix  = "KEYBOARD_GENERATOR"
	EnvConfig  = EnvPrefix + "_CONFIG"
	configName = "keyboard-generator"
)

// Setting keys.
const (
	KeyInput          = "input"
	KeyDictionaries   = "dictionaries"
	KeyQMKCombos      = "qmk.combos"
	KeyQMKLayout      = "qmk.layout"
	KeyQMKTemplate    = "qmk.template"
	KeyKanataOutput   = "kanata.output"
	KeyVerbose        = "verbose"
	defaultInput      = "keyboard.md"
	defaultCombos     = "combos.def"
	defaultLayout     = "layout.h"
	defaultKanataFile = "keyboard.kbd"
)

// ErrNoInput is returned when no layout document is configured.
var ErrNoInput = errors.New("no input file configured")

// Config holds the generator configuration.
type Config struct {
	// Input is the markdown document with the layout tables.
	Input string
	// Dictionaries are additional keycode dictionaries, applied in order.
	Dictionaries []string
	QMK          QMKConfig
	Kanata       KanataConfig
	Verbose      bool
}

// QMKConfig holds the QMK output settings.
type QMKConfig struct {
	Combos string
	Layout string
	// Template is the path of the layout.h template, empty for the built-in one.
	Template string
}

// KanataConfig holds the kanata output settings.
type KanataConfig struct {
	Output string
}

// New returns a viper instance with defaults, environment binding and the
// config file location set up. Flags are bound by the caller.
func New() *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault(KeyInput, defaultInput)
	v.SetDefault(KeyDictionaries, []string{})
	v.SetDefault(KeyQMKCombos, defaultCombos)
	v.SetDefault(KeyQMKLayout, defaultLayout)
	v.SetDefault(KeyQMKTemplate, "")
	v.SetDefault(KeyKanataOutput, defaultKanataFile)
	v.SetDefault(KeyVerbose, false)

	v.SetConfigType("yaml")

	cfgPath := os.Getenv(EnvConfig)
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(configName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// Load reads the config file if present and decodes all settings. An
// explicitly configured file must exist.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || v.ConfigFileUsed() != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if c.Input == "" {
		return Config{}, ErrNoInput
	}

	return c, nil
}
