// Package main provides the offline re-validation CLI for generated artifacts.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "artifact_validator",
	Short: "Artifact validation and scoring tool",
	Long:  "artifact_validator scores generated interactive artifacts (markup plus embedded script) for structural completeness, runtime integration wiring, known defect patterns, and genre fit.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
