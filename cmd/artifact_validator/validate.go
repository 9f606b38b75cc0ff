package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/artifact-validator/internal/config"
	"github.com/jonathan/artifact-validator/internal/report"
	"github.com/jonathan/artifact-validator/internal/schemas"
	"github.com/jonathan/artifact-validator/internal/types"
	"github.com/jonathan/artifact-validator/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate <artifact.html>",
	Short: "Validate a single artifact file",
	Long:  "Validates one generated artifact: structural completeness, script patterns, runtime integration wiring, and genre compliance. Prints a text report or JSON.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var (
	validateGenre       string
	validateThreshold   int
	validateJSON        bool
	validateCheckSchema bool
	validateBundles     []string
	validateConfigPath  string
)

func init() {
	validateCmd.Flags().StringVarP(&validateGenre, "genre", "g", "", "Genre label for genre-specific scoring")
	validateCmd.Flags().IntVarP(&validateThreshold, "threshold", "t", 0, "Pass threshold (default 80)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Emit the structured result as JSON")
	validateCmd.Flags().BoolVar(&validateCheckSchema, "check-schema", false, "Verify emitted JSON against the output contract schema")
	validateCmd.Flags().StringArrayVar(&validateBundles, "bundle", nil, "Path to a custom genre bundle YAML file (repeatable)")
	validateCmd.Flags().StringVar(&validateConfigPath, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := mergeConfig(config.Config{
		Genre:     validateGenre,
		Threshold: validateThreshold,
		Bundles:   validateBundles,
	}, validateConfigPath)
	if err != nil {
		return err
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	res, label, err := validateFile(path, cfg.Genre, opts)
	if err != nil {
		return err
	}

	if cfg.Genre != "" && res.Genre == "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: no genre bundle matches %q; known genres: %s\n",
			cfg.Genre, strings.Join(opts.Registry.GenreNames(), ", "))
	}

	if validateJSON || cfg.JSONOutput {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		if validateCheckSchema || cfg.CheckSchema {
			if err := schemas.ValidateResultJSON(data); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), report.Render(res, label))
	}

	if !res.IsValid {
		os.Exit(1)
	}
	return nil
}

// validateFile reads one artifact and runs the engine against it. The report
// label is the file's base name without extension.
func validateFile(path string, genreLabel string, opts *validation.Options) (*types.ValidationResult, string, error) {
	markup, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	label := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	req := &types.ValidationRequest{
		Markup: string(markup),
		Genre:  genreLabel,
		Title:  label,
	}
	return validation.ValidateWithOptions(req, opts), label, nil
}
