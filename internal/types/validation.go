// Package types provides type definitions for structured data used throughout the artifact-validator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category names, in fixed evaluation and report order.
const (
	CategoryFiles           = "files"
	CategoryStructure       = "structure"
	CategoryScriptLogic     = "script-logic"
	CategoryIntegration     = "integration"
	CategoryGenreCompliance = "genre-compliance"
	CategoryPerformance     = "performance"
)

// Grade is a discrete letter grade derived from the composite score.
type Grade string

// Grade bands, best to worst.
const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeF     Grade = "F"
)

// ValidationRequest is the input to a single validation call. It is created
// per call and never retained by the engine.
type ValidationRequest struct {
	Markup string `json:"markup"`
	Genre  string `json:"genre,omitempty"`
	Title  string `json:"title,omitempty"`
}

// Category is one independently scored quality dimension.
// Invariant: 0 <= Score <= MaxScore.
type Category struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
}

// RecommendationGroup collects genre recommendations of one kind.
type RecommendationGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// GenreCompliance carries advisory genre findings. It is only present when a
// genre bundle matched the request's genre label.
type GenreCompliance struct {
	Recommendations []RecommendationGroup `json:"recommendations"`
}

// ValidationResult is the complete outcome of one validation call.
type ValidationResult struct {
	Categories      []Category       `json:"categories"`
	Score           int              `json:"score"`
	MaxScore        int              `json:"max_score"`
	Grade           Grade            `json:"grade"`
	IsValid         bool             `json:"is_valid"`
	Errors          []string         `json:"errors"`
	Warnings        []string         `json:"warnings"`
	Suggestions     []string         `json:"suggestions"`
	Genre           string           `json:"genre,omitempty"`
	GenreCompliance *GenreCompliance `json:"genre_compliance,omitempty"`
}

// Findings collects the human-readable outcomes of one analysis category.
// Entries keep discovery order so reports stay deterministic.
type Findings struct {
	Errors      []string
	Warnings    []string
	Suggestions []string
}

// Merge appends other's entries after f's own, preserving order.
func (f *Findings) Merge(other Findings) {
	f.Errors = append(f.Errors, other.Errors...)
	f.Warnings = append(f.Warnings, other.Warnings...)
	f.Suggestions = append(f.Suggestions, other.Suggestions...)
}
