// Package scoring combines per-category scores into a composite score, a
// letter grade, and the pass/fail verdict.
package scoring

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/artifact-validator/internal/rules"
	"github.com/jonathan/artifact-validator/internal/types"
)

// referenceMax is the composite maximum the grade bands are defined against.
const referenceMax = rules.TotalMax

// Pass thresholds, expressed against the reference maximum. The generic
// report path accepts a lower bar than the generation pipeline's
// auto-acceptance check; both are exported so each caller picks its own.
const (
	DefaultPassThreshold  = 80
	PipelinePassThreshold = 95
)

// Config carries the category weights and the caller-supplied pass threshold.
// Weights are validated at startup to sum to the declared total so the
// documented maximum cannot silently drift from the scoring arithmetic.
type Config struct {
	Files           int `validate:"required,gt=0"`
	Structure       int `validate:"required,gt=0"`
	ScriptLogic     int `validate:"required,gt=0"`
	Integration     int `validate:"required,gt=0"`
	GenreCompliance int `validate:"required,gt=0"`
	Performance     int `validate:"required,gt=0"`
	PassThreshold   int `validate:"gte=0"`
}

// DefaultConfig returns the reference weights (10/25/35/20/30/10 = 130) and
// the default pass threshold.
func DefaultConfig() Config {
	return Config{
		Files:           rules.FilesMax,
		Structure:       rules.StructureMax,
		ScriptLogic:     rules.ScriptLogicMax,
		Integration:     rules.IntegrationMax,
		GenreCompliance: rules.GenreComplianceMax,
		Performance:     rules.PerformanceMax,
		PassThreshold:   DefaultPassThreshold,
	}
}

// TotalMax returns the composite maximum including the genre category.
func (c Config) TotalMax() int {
	return c.Files + c.Structure + c.ScriptLogic + c.Integration + c.GenreCompliance + c.Performance
}

// Validate checks field constraints and that the weights sum to the declared
// total maximum.
func (c Config) Validate() error {
	if err := validator.New().Struct(&c); err != nil {
		return fmt.Errorf("invalid scoring config: %w", err)
	}
	if got := c.TotalMax(); got != rules.TotalMax {
		return fmt.Errorf("category weights sum to %d, want %d", got, rules.TotalMax)
	}
	return nil
}

// Aggregate sums the categories after clamping each to [0, MaxScore], so one
// deeply negative category cannot offset another. It returns the composite
// score and the composite maximum actually in play (genre omitted means a
// smaller maximum).
func Aggregate(categories []types.Category) (score, maxScore int) {
	for _, cat := range categories {
		s := cat.Score
		if s < 0 {
			s = 0
		}
		if s > cat.MaxScore {
			s = cat.MaxScore
		}
		score += s
		maxScore += cat.MaxScore
	}
	return score, maxScore
}

// gradeBands maps grades to their minimum score against the reference
// maximum, best first.
var gradeBands = []struct {
	grade types.Grade
	min   int
}{
	{types.GradeAPlus, 90},
	{types.GradeA, 80},
	{types.GradeBPlus, 70},
	{types.GradeB, 60},
	{types.GradeC, 50},
}

// GradeFor derives the letter grade for a score. Band thresholds are scaled
// proportionally when maxScore differs from the reference maximum, keeping
// the published bands stable. The mapping is monotonic in score.
func GradeFor(score, maxScore int) types.Grade {
	for _, band := range gradeBands {
		min := band.min
		if maxScore != referenceMax && maxScore > 0 {
			min = int(math.Round(float64(band.min) * float64(maxScore) / float64(referenceMax)))
		}
		if score >= min {
			return band.grade
		}
	}
	return types.GradeF
}

// IsValid applies the pass/fail predicate: no errors and a composite score at
// or above the configured threshold.
func IsValid(score int, errorCount int, passThreshold int) bool {
	return errorCount == 0 && score >= passThreshold
}
