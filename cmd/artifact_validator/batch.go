package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/artifact-validator/internal/config"
	"github.com/jonathan/artifact-validator/internal/report"
	"github.com/jonathan/artifact-validator/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Validate every artifact in a directory",
	Long:  "Walks a directory for .html artifacts and validates them concurrently, bounded to available CPU parallelism. Prints per-file summaries and an aggregate.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

var (
	batchGenre       string
	batchThreshold   int
	batchJSON        bool
	batchConcurrency int
	batchBundles     []string
	batchConfigPath  string
)

func init() {
	batchCmd.Flags().StringVarP(&batchGenre, "genre", "g", "", "Genre label applied to every artifact")
	batchCmd.Flags().IntVarP(&batchThreshold, "threshold", "t", 0, "Pass threshold (default 80)")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Emit structured results as JSON")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Max parallel validations (default: CPU count)")
	batchCmd.Flags().StringArrayVar(&batchBundles, "bundle", nil, "Path to a custom genre bundle YAML file (repeatable)")
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(batchCmd)
}

// batchEntry is one artifact's outcome within a batch run.
type batchEntry struct {
	File   string                  `json:"file"`
	Label  string                  `json:"label"`
	Result *types.ValidationResult `json:"result"`
}

// batchSummary is the aggregate outcome of a batch run.
type batchSummary struct {
	RunID   string       `json:"run_id"`
	Total   int          `json:"total"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Entries []batchEntry `json:"entries"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := mergeConfig(config.Config{
		Genre:       batchGenre,
		Threshold:   batchThreshold,
		Concurrency: batchConcurrency,
		Bundles:     batchBundles,
	}, batchConfigPath)
	if err != nil {
		return err
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	files, err := collectArtifacts(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .html artifacts found under %s", dir)
	}

	limit := cfg.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	// Validations are CPU-bound and independent; a bounded errgroup keeps
	// parallelism at the configured width. Entries are indexed so output
	// order stays deterministic regardless of completion order.
	entries := make([]batchEntry, len(files))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			res, label, err := validateFile(file, cfg.Genre, opts)
			if err != nil {
				return err
			}
			entries[i] = batchEntry{File: file, Label: label, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	summary := batchSummary{
		RunID:   uuid.New().String(),
		Total:   len(entries),
		Entries: entries,
	}
	for _, entry := range entries {
		if entry.Result.IsValid {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	out := cmd.OutOrStdout()
	if batchJSON || cfg.JSONOutput {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal batch summary: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else {
		fmt.Fprintf(out, "Batch run %s: %d artifacts, %d passed, %d failed\n\n",
			summary.RunID, summary.Total, summary.Passed, summary.Failed)
		for _, entry := range entries {
			fmt.Fprint(out, report.Render(entry.Result, entry.Label))
			fmt.Fprintln(out)
		}
	}

	if summary.Failed > 0 {
		os.Exit(1)
	}
	return nil
}

// collectArtifacts returns the sorted .html files under dir, recursively.
func collectArtifacts(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".html") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
