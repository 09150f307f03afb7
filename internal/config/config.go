// SPDX-FileCopyrightText: 2022 Utrecht University
// SPDX-License-Identifier: GPL-3.0-only

// Package config reads the optional per-user tool configuration from
// ~/.ztools.yaml. A missing file yields the defaults.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

const configFile = ".ztools.yaml"

// DefaultMinDepth is the removal depth floor used when neither the
// config file nor the command line overrides it.
const DefaultMinDepth = 3

type Config struct {
	// API selects the zone backend: "icommands" (default) or "http".
	API string `yaml:"api"`

	// MinDepth overrides the default depth floor for rmtree.
	MinDepth *int `yaml:"min_depth"`

	// CleanupPatterns are matched against data object names by the
	// cleanup command, in addition to the built-in junk patterns.
	CleanupPatterns []string `yaml:"cleanup_patterns"`
}

func (c Config) EffectiveMinDepth() int {
	if c.MinDepth != nil {
		return *c.MinDepth
	}
	return DefaultMinDepth
}

// Load reads the config file from the user's home directory. A
// missing file is not an error.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(filepath.Join(home, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	defer file.Close()

	return parse(file)
}

func parse(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)

	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return Config{}, nil
		}
		return cfg, fmt.Errorf("decoding %s: %w", configFile, err)
	}

	if err := validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.API {
	case "", "icommands", "http":
	default:
		return fmt.Errorf("%s: unknown api %q", configFile, cfg.API)
	}

	if cfg.MinDepth != nil && *cfg.MinDepth < 0 {
		return fmt.Errorf("%s: min_depth must not be negative", configFile)
	}

	return nil
}
