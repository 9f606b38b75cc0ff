package patterns

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/artifact-validator/internal/rules"
	"github.com/jonathan/artifact-validator/internal/types"
)

type delimiterPair struct {
	name  string
	open  rune
	close rune
}

var delimiterPairs = []delimiterPair{
	{"parenthesis", '(', ')'},
	{"brace", '{', '}'},
	{"bracket", '[', ']'},
}

// checkSyntax performs lightweight syntax sanity checks on the script text:
// balanced grouping delimiters (errors with a fixed deduction per unbalanced
// kind) and a known-misspelling dictionary scan (warnings only).
func checkSyntax(script string, reg *rules.Registry) (types.Findings, int) {
	var findings types.Findings
	deduction := 0

	for _, pair := range delimiterPairs {
		opening := strings.Count(script, string(pair.open))
		closing := strings.Count(script, string(pair.close))
		if opening != closing {
			findings.Errors = append(findings.Errors,
				fmt.Sprintf("unbalanced %s delimiters: %d opening, %d closing", pair.name, opening, closing))
			deduction += syntaxPenalty
		}
	}

	// Sorted keys keep warning order deterministic across runs.
	misspellings := reg.Misspellings()
	wrong := make([]string, 0, len(misspellings))
	for w := range misspellings {
		wrong = append(wrong, w)
	}
	sort.Strings(wrong)
	for _, w := range wrong {
		if strings.Contains(script, w) {
			findings.Warnings = append(findings.Warnings,
				fmt.Sprintf("possible misspelling %q (did you mean %q?)", w, misspellings[w]))
		}
	}

	return findings, deduction
}
