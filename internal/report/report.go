// Package report renders a ValidationResult into a stable, human-readable
// text report. Section and item ordering follow discovery order, so identical
// input always yields identical output.
package report

import (
	"fmt"
	"strings"

	"github.com/jonathan/artifact-validator/internal/types"
)

const defaultLabel = "artifact"

// Render produces the text report for a result. The label identifies the
// artifact in the header; when empty it falls back to a generic label.
func Render(res *types.ValidationResult, label string) string {
	if label == "" {
		label = defaultLabel
	}

	var sb strings.Builder
	rule := strings.Repeat("=", 60)

	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("Validation report: %s\n", label))
	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("Score:  %d/%d (%s)\n", res.Score, res.MaxScore, res.Grade))
	status := "FAIL"
	if res.IsValid {
		status = "PASS"
	}
	sb.WriteString(fmt.Sprintf("Status: %s\n", status))
	if res.Genre != "" {
		sb.WriteString(fmt.Sprintf("Genre:  %s\n", res.Genre))
	}

	sb.WriteString("\nCategories:\n")
	for _, cat := range res.Categories {
		sb.WriteString(fmt.Sprintf("  %-16s %d/%d\n", cat.Name, cat.Score, cat.MaxScore))
	}

	writeSection(&sb, "Errors", res.Errors)
	writeSection(&sb, "Warnings", res.Warnings)
	writeSection(&sb, "Suggestions", res.Suggestions)

	if res.GenreCompliance != nil && len(res.GenreCompliance.Recommendations) > 0 {
		sb.WriteString("\nGenre recommendations:\n")
		for _, group := range res.GenreCompliance.Recommendations {
			sb.WriteString(fmt.Sprintf("  %s:\n", group.Category))
			for _, item := range group.Items {
				sb.WriteString(fmt.Sprintf("    - %s\n", item))
			}
		}
	}

	return sb.String()
}

// writeSection prints a numbered findings section; empty sections are omitted
// entirely.
func writeSection(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s:\n", title))
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, item))
	}
}
