// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Config controls catalogue loading and lookup behaviour.
type Config struct {
	// Dir is the directory inside the catalogue file system that holds the
	// <locale>.po files.
	Dir string `env:"GETPROSE_DIR" yaml:"dir"`

	// Domain is the gettext domain translations are registered under.
	Domain string `env:"GETPROSE_DOMAIN" yaml:"domain"`

	// DefaultLocale is the locale used when none is set or negotiation
	// fails. It is always registered, with an empty catalogue if no .po
	// file exists for it, since source text needs no translation.
	DefaultLocale string `env:"GETPROSE_DEFAULT_LOCALE" yaml:"defaultLocale"`

	// StrictMissingKeys wraps missing translations as "⟦...⟧" and logs them.
	StrictMissingKeys bool `env:"GETPROSE_STRICT_MISSING_KEYS" yaml:"strictMissingKeys"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() Config {
	return Config{
		Dir:           "po",
		Domain:        defaultDomain,
		DefaultLocale: DefaultLocale.String(),
	}
}

// LoadConfig reads cfg from the YAML file at path, starting from
// DefaultConfig and finishing with GETPROSE_* environment overrides.
// A missing file is not an error; environment overrides still apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path) // #nosec G304 -- Only loading a config file
		if err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to read configuration file %s: %w", path, err)
		}

		if err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse YAML from %s: %w", path, err)
			}
		} else {
			Logger.Info().Str("path", path).Msg("No YAML configuration file found, skipping")
		}
	}

	if err := cfg.readEnv(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// readEnv applies GETPROSE_* environment variables on top of cfg.
func (cfg *Config) readEnv() error {
	if v := os.Getenv("GETPROSE_DIR"); v != "" {
		cfg.Dir = v
	}

	if v := os.Getenv("GETPROSE_DOMAIN"); v != "" {
		cfg.Domain = v
	}

	if v := os.Getenv("GETPROSE_DEFAULT_LOCALE"); v != "" {
		cfg.DefaultLocale = v
	}

	if v := os.Getenv("GETPROSE_STRICT_MISSING_KEYS"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid GETPROSE_STRICT_MISSING_KEYS value %q: %w", v, err)
		}

		cfg.StrictMissingKeys = strict
	}

	return nil
}
