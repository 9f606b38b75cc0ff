// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Validation behavior
	Genre     string `json:"genre,omitempty"`     // Genre label applied to every artifact
	Threshold int    `json:"threshold,omitempty"` // Pass threshold (composite score)

	// Rule overlays
	Bundles []string `json:"bundles,omitempty"` // Paths to custom genre bundle YAML files

	// Output
	JSONOutput  bool `json:"json_output,omitempty"`  // Emit structured JSON instead of text reports
	CheckSchema bool `json:"check_schema,omitempty"` // Verify emitted JSON against the output schema

	// Batch behavior
	Concurrency int `json:"concurrency,omitempty"` // Max parallel validations (0 = CPU count)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("config error: 'threshold' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	for _, bundle := range c.Bundles {
		if _, err := os.Stat(bundle); os.IsNotExist(err) {
			return fmt.Errorf("config error: bundle file not found: %s", bundle)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Genre == "" {
		result.Genre = defaults.Genre
	}
	if result.Threshold == 0 {
		result.Threshold = defaults.Threshold
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if len(result.Bundles) == 0 {
		result.Bundles = defaults.Bundles
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
