// Package validation orchestrates the full validation pipeline: structural,
// pattern, and genre analysis in fixed category order, aggregated into a
// single ValidationResult. A call never returns an error; every fault is
// resolved into score deductions and report entries.
package validation

import (
	"fmt"

	"github.com/jonathan/artifact-validator/internal/genre"
	"github.com/jonathan/artifact-validator/internal/patterns"
	"github.com/jonathan/artifact-validator/internal/rules"
	"github.com/jonathan/artifact-validator/internal/scoring"
	"github.com/jonathan/artifact-validator/internal/structural"
	"github.com/jonathan/artifact-validator/internal/types"
)

// Options provides optional parameters for a validation call. A zero-value
// Scoring config means "use the reference weights and default threshold".
type Options struct {
	Registry *rules.Registry
	Scoring  scoring.Config
}

// Validate runs the full pipeline against the request with the builtin
// registry and default scoring config.
func Validate(req *types.ValidationRequest) *types.ValidationResult {
	return ValidateWithOptions(req, nil)
}

// ValidateWithOptions runs the full pipeline. Categories are evaluated in
// fixed enumeration order (files, structure, script-logic, integration,
// genre-compliance, performance); a panic inside any single analyzer is
// contained to that category, which scores 0 with a diagnostic error while
// the remaining categories proceed.
func ValidateWithOptions(req *types.ValidationRequest, opts *Options) *types.ValidationResult {
	reg := rules.Default()
	cfg := scoring.DefaultConfig()
	if opts != nil {
		if opts.Registry != nil {
			reg = opts.Registry
		}
		if opts.Scoring.TotalMax() > 0 {
			cfg = opts.Scoring
		}
	}

	script := extractScript(req.Markup)

	var categories []types.Category
	var all types.Findings

	runCategory := func(name string, maxScore int, fn func() (types.Category, types.Findings)) {
		cat, findings := guard(name, maxScore, fn)
		categories = append(categories, cat)
		all.Merge(findings)
	}

	runCategory(types.CategoryFiles, cfg.Files, func() (types.Category, types.Findings) {
		return analyzeFiles(req, script)
	})
	runCategory(types.CategoryStructure, cfg.Structure, func() (types.Category, types.Findings) {
		return structural.Analyze(req.Markup, reg)
	})
	runCategory(types.CategoryScriptLogic, cfg.ScriptLogic, func() (types.Category, types.Findings) {
		return patterns.AnalyzeLogic(script, reg)
	})
	runCategory(types.CategoryIntegration, cfg.Integration, func() (types.Category, types.Findings) {
		return patterns.AnalyzeIntegration(script, reg)
	})

	var compliance *types.GenreCompliance
	genreCat, genreCompliance, genreFindings, matched := guardGenre(req.Genre, script, req.Markup, reg, cfg.GenreCompliance)
	if matched {
		categories = append(categories, genreCat)
		compliance = genreCompliance
		all.Merge(genreFindings)
	}

	runCategory(types.CategoryPerformance, cfg.Performance, func() (types.Category, types.Findings) {
		return patterns.AnalyzePerformance(script)
	})

	score, maxScore := scoring.Aggregate(categories)

	res := &types.ValidationResult{
		Categories:      categories,
		Score:           score,
		MaxScore:        maxScore,
		Grade:           scoring.GradeFor(score, maxScore),
		Errors:          emptyIfNil(all.Errors),
		Warnings:        emptyIfNil(all.Warnings),
		Suggestions:     emptyIfNil(all.Suggestions),
		GenreCompliance: compliance,
	}
	if matched {
		res.Genre = req.Genre
	}
	res.IsValid = scoring.IsValid(score, len(res.Errors), cfg.PassThreshold)
	return res
}

// extractScript isolates the pattern analyzers from markup parse faults; any
// panic degrades to an empty script text.
func extractScript(markup string) (script string) {
	defer func() {
		if r := recover(); r != nil {
			script = ""
		}
	}()
	return patterns.ExtractInlineScript(markup)
}

// guard runs one category analyzer, converting a panic into a zero score and
// a diagnostic error for that category only.
func guard(name string, maxScore int, fn func() (types.Category, types.Findings)) (cat types.Category, findings types.Findings) {
	defer func() {
		if r := recover(); r != nil {
			cat = types.Category{Name: name, Score: 0, MaxScore: maxScore}
			findings = types.Findings{
				Errors: []string{fmt.Sprintf("internal analysis fault in %s: %v", name, r)},
			}
		}
	}()
	return fn()
}

// guardGenre wraps the genre engine the same way. The bundle lookup happens
// before the guarded region, so a label with no matching bundle can never
// surface a genre category, faulting or not. A panic with a matched bundle
// yields a zeroed genre category plus a diagnostic error so the fault is
// visible.
func guardGenre(label, script, markup string, reg *rules.Registry, maxScore int) (cat types.Category, compliance *types.GenreCompliance, findings types.Findings, matched bool) {
	if reg.Genre(label) == nil {
		return types.Category{}, nil, types.Findings{}, false
	}
	defer func() {
		if r := recover(); r != nil {
			cat = types.Category{Name: types.CategoryGenreCompliance, Score: 0, MaxScore: maxScore}
			compliance = nil
			findings = types.Findings{
				Errors: []string{fmt.Sprintf("internal analysis fault in %s: %v", types.CategoryGenreCompliance, r)},
			}
		}
	}()
	cat, compliance, _ = genre.Evaluate(label, script, markup, reg)
	return cat, compliance, types.Findings{}, true
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
