package main

import (
	"fmt"

	"github.com/jonathan/artifact-validator/internal/config"
	"github.com/jonathan/artifact-validator/internal/rules"
	"github.com/jonathan/artifact-validator/internal/scoring"
	"github.com/jonathan/artifact-validator/internal/validation"
)

// buildOptions turns CLI configuration into engine options: the scoring
// config (validated up front) and a registry extended with any custom genre
// bundle overlays.
func buildOptions(cfg *config.Config) (*validation.Options, error) {
	scoringCfg := scoring.DefaultConfig()
	if cfg.Threshold > 0 {
		scoringCfg.PassThreshold = cfg.Threshold
	}
	if err := scoringCfg.Validate(); err != nil {
		return nil, err
	}

	reg := rules.Default()
	if len(cfg.Bundles) > 0 {
		bundles := make([]*rules.GenreBundle, 0, len(cfg.Bundles))
		for _, path := range cfg.Bundles {
			bundle, err := rules.LoadBundleFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to load genre bundle: %w", err)
			}
			bundles = append(bundles, bundle)
		}
		reg = reg.WithBundles(bundles...)
	}

	return &validation.Options{Registry: reg, Scoring: scoringCfg}, nil
}

// mergeConfig layers an optional config file under the CLI flag values.
func mergeConfig(flagCfg config.Config, configPath string) (*config.Config, error) {
	merged := flagCfg
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		merged = flagCfg.MergeWithDefaults(*fileCfg)
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}
