// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	_ "embed" // default enzyme catalog
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultCatalog is the enzyme catalog used until one is written to disk
//
//go:embed enzymes.txt
var DefaultCatalog string

const (
	// name of the settings directory in the user's home directory
	settingsDir = ".resite"

	// env variables are RESITE_<KEY>, ex: RESITE_MAX_EXPANSION
	envPrefix = "RESITE"
)

// Config is the root-level settings struct and is a mix
// of settings available in config.yaml, the environment and
// those available from the command line
type Config struct {
	// Catalog is the path to the enzyme catalog
	Catalog string `mapstructure:"catalog"`

	// MaxExpansion is the most literal sites a recognition sequence can expand to
	MaxExpansion int `mapstructure:"max-expansion"`

	// Workers is the number of enzymes scanned in parallel
	Workers int `mapstructure:"workers"`

	// Format of digest results: table, json or csv
	Format string `mapstructure:"format"`
}

// Setup loads settings into viper. cfgFile overrides the default
// $HOME/.resite/config.yaml. A missing default config file isn't an error.
func Setup(cfgFile string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to find the home directory: %w", err)
	}
	dir := filepath.Join(home, settingsDir)

	viper.SetDefault("catalog", filepath.Join(dir, "enzymes.txt"))
	viper.SetDefault("max-expansion", 4096)
	viper.SetDefault("workers", 1)
	viper.SetDefault("format", "table")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(dir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// New returns a new Config struct populated by Viper settings
// (defaults, config file, environment and bound flags)
func New() (*Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode the settings: %w", err)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return &c, nil
}
