package patterns

import (
	"regexp"

	"github.com/jonathan/artifact-validator/internal/rules"
	"github.com/jonathan/artifact-validator/internal/types"
)

// Sub-weights within the performance category.
const (
	animationFrameBonus = 4
	noIntervalBonus     = 3
	deltaTimeBonus      = 3
)

var (
	animationFrameRe = regexp.MustCompile(`requestAnimationFrame\s*\(`)
	setIntervalRe    = regexp.MustCompile(`setInterval\s*\(`)
	deltaTimeRe      = regexp.MustCompile(`performance\.now\s*\(|\b(delta|dt|timestamp|elapsed)\b`)
)

// AnalyzePerformance scores render-loop hygiene: requestAnimationFrame-driven
// animation, absence of interval-driven rendering, and frame-time awareness.
// Shortfalls here are advisory, never errors.
func AnalyzePerformance(script string) (types.Category, types.Findings) {
	var findings types.Findings
	score := 0

	if animationFrameRe.MatchString(script) {
		score += animationFrameBonus
	} else {
		findings.Suggestions = append(findings.Suggestions,
			"drive animation with requestAnimationFrame")
	}

	if setIntervalRe.MatchString(script) {
		findings.Warnings = append(findings.Warnings,
			"setInterval detected; prefer requestAnimationFrame for rendering")
	} else {
		score += noIntervalBonus
	}

	if deltaTimeRe.MatchString(script) {
		score += deltaTimeBonus
	} else {
		findings.Suggestions = append(findings.Suggestions,
			"track frame delta time for consistent movement speed")
	}

	return types.Category{
		Name:     types.CategoryPerformance,
		Score:    clamp(score, rules.PerformanceMax),
		MaxScore: rules.PerformanceMax,
	}, findings
}
