// config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultOutputDir is the data directory created next to wherever
	// the tool is invoked from.
	DefaultOutputDir = "data"
	// DefaultSeed makes the wells completion draw reproducible across runs.
	DefaultSeed = 42
)

// Config carries everything the generators need. It is returned from
// Load and passed down explicitly rather than held in package state.
type Config struct {
	OutputDir string `yaml:"output_dir"`
	Seed      int64  `yaml:"seed"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		Seed:      DefaultSeed,
	}
}

// Load reads configuration from a YAML file. With an empty path it looks
// in a couple of common locations relative to the working directory and
// falls back to the defaults when none exists, so the tool runs with no
// required input. An explicitly named file must exist: a typo'd path
// should surface, not be masked by the defaults.
func Load(configPath string) (Config, error) {
	cfg := Default()

	if configPath == "" {
		potentialPaths := []string{
			"datagen.yaml",
			"config/datagen.yaml",
		}
		for _, p := range potentialPaths {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
		if configPath == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	// Unset keys keep their defaults; an explicit empty output_dir would
	// otherwise scatter files into the working directory root.
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	return cfg, nil
}
