package patterns

import (
	"fmt"
	"math"

	"github.com/jonathan/artifact-validator/internal/rules"
	"github.com/jonathan/artifact-validator/internal/types"
)

// Sub-weights within the script-logic category. Full coverage plus all three
// advanced idioms reaches rules.ScriptLogicMax exactly.
const (
	logicCoverageWeight = 29
	advancedBonus       = 2 // per advanced idiom
	syntaxPenalty       = 5 // per unbalanced delimiter kind
)

// Sub-weights within the integration category.
const (
	integrationPatternWeight = 16 // split across ready and start patterns
	unwrapBonus              = 4
	orderingPenalty          = 6
)

// AnalyzeLogic evaluates the generic script-logic category: required pattern
// coverage, delimiter balance, known misspellings, and advanced-idiom bonuses.
func AnalyzeLogic(script string, reg *rules.Registry) (types.Category, types.Findings) {
	var findings types.Findings
	score := 0

	required := reg.LogicRules()
	found := 0
	for _, rule := range required {
		if rule.Matches(script) {
			found++
		} else if rule.Required {
			findings.Errors = append(findings.Errors, fmt.Sprintf("missing %s", rule.Label))
		}
	}
	if len(required) > 0 {
		score += roundRatio(found, len(required), logicCoverageWeight)
	}

	syntaxFindings, deduction := checkSyntax(script, reg)
	findings.Merge(syntaxFindings)
	score -= deduction

	for _, rule := range reg.BonusRules() {
		if rule.Matches(script) {
			score += advancedBonus
		} else {
			findings.Suggestions = append(findings.Suggestions, fmt.Sprintf("consider adding %s", rule.Label))
		}
	}

	return types.Category{
		Name:     types.CategoryScriptLogic,
		Score:    clamp(score, rules.ScriptLogicMax),
		MaxScore: rules.ScriptLogicMax,
	}, findings
}

// AnalyzeIntegration evaluates the runtime integration contract: readiness
// and start signals, their relative order, and the defensive payload-access
// idiom. The ordering check compares first-occurrence text offsets only; it
// does not simulate execution.
func AnalyzeIntegration(script string, reg *rules.Registry) (types.Category, types.Findings) {
	var findings types.Findings
	score := 0

	ready := reg.ReadyRule()
	start := reg.StartRule()
	perPattern := integrationPatternWeight / 2

	readyIdx := ready.FirstIndex(script)
	if readyIdx >= 0 {
		score += perPattern
	} else {
		findings.Errors = append(findings.Errors, fmt.Sprintf("missing %s", ready.Label))
	}

	startIdx := start.FirstIndex(script)
	if startIdx >= 0 {
		score += perPattern
	} else {
		findings.Errors = append(findings.Errors, fmt.Sprintf("missing %s", start.Label))
	}

	if readyIdx >= 0 && startIdx >= 0 && startIdx < readyIdx {
		findings.Errors = append(findings.Errors,
			fmt.Sprintf("%s must come before %s", ready.Label, start.Label))
		score -= orderingPenalty
	}

	if unwrap := reg.UnwrapRule(); unwrap.Matches(script) {
		score += unwrapBonus
	} else {
		findings.Warnings = append(findings.Warnings,
			fmt.Sprintf("missing %s", unwrap.Label))
	}

	return types.Category{
		Name:     types.CategoryIntegration,
		Score:    clamp(score, rules.IntegrationMax),
		MaxScore: rules.IntegrationMax,
	}, findings
}

func clamp(score, max int) int {
	if score < 0 {
		return 0
	}
	if score > max {
		return max
	}
	return score
}

func roundRatio(found, total, weight int) int {
	return int(math.Round(float64(found) / float64(total) * float64(weight)))
}
