// Package config loads CLI configuration from .attrkit.yaml and the
// environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds CLI-level settings. The engine itself takes everything as
// explicit parameters; this only shapes the tooling around it.
type Config struct {
	Registry string `mapstructure:"registry"` // Default registration file path
	Output   string `mapstructure:"output"`   // Default output format: table or json
	NoColor  bool   `mapstructure:"no_color"`
}

// Load reads .attrkit.yaml from the current directory, if present, and
// applies ATTRKIT_* environment overrides. Missing files fall back to
// defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("registry", "attrkit.yaml")
	v.SetDefault("output", "table")
	v.SetDefault("no_color", false)

	v.SetConfigName(".attrkit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ATTRKIT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Output != "table" && cfg.Output != "json" {
		return nil, fmt.Errorf("invalid output format %q (want table or json)", cfg.Output)
	}

	return &cfg, nil
}
