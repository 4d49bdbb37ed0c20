// Package config loads and validates drivestat configuration from a
// file, environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config captures all configurable behavior.
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority, applied by the caller)
//  2. Environment variables (DRIVESTAT_*)
//  3. Configuration file (drivestat.yaml)
//  4. Default values (lowest priority)
type Config struct {
	// Logging controls log output behavior.
	Logging Logging `mapstructure:"logging"`

	// Analysis contains engine tunables.
	Analysis Analysis `mapstructure:"analysis"`

	// Output is the report format.
	// Valid values: table, json
	Output string `mapstructure:"output" validate:"required,oneof=table json"`
}

// Logging controls log output behavior.
type Logging struct {
	// Level is the minimum log level to output.
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// Analysis contains engine tunables.
type Analysis struct {
	// TopN is the number of entries shown per ranked section.
	TopN int `mapstructure:"top_n" validate:"required,min=1,max=100"`

	// RecentDays is the modification window for recent large files.
	RecentDays int `mapstructure:"recent_days" validate:"required,min=1"`

	// StaleDays is the modification cutoff for old large files.
	StaleDays int `mapstructure:"stale_days" validate:"required,min=1"`
}

// Load reads configuration from the given file path, or from the
// default search locations when path is empty, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logging.level", "info")
	v.SetDefault("analysis.top_n", 10)
	v.SetDefault("analysis.recent_days", 30)
	v.SetDefault("analysis.stale_days", 180)
	v.SetDefault("output", "table")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("drivestat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/drivestat")
	}

	v.SetEnvPrefix("DRIVESTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError

		// A missing file is fine unless one was named explicitly.
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	cfg.Output = strings.ToLower(cfg.Output)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
