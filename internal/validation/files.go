package validation

import (
	"regexp"
	"strings"

	"github.com/jonathan/artifact-validator/internal/rules"
	"github.com/jonathan/artifact-validator/internal/types"
)

// Sub-weights within the files category.
const (
	markupPresentPoints = 4
	scriptPresentPoints = 3
	titlePresentPoints  = 3
)

var titleTagRe = regexp.MustCompile(`(?is)<title[^>]*>\s*[^<\s]`)

// analyzeFiles scores artifact completeness: non-empty markup, an inline
// script block, and a title (from the request or the markup itself).
func analyzeFiles(req *types.ValidationRequest, script string) (types.Category, types.Findings) {
	var findings types.Findings
	score := 0

	if strings.TrimSpace(req.Markup) != "" {
		score += markupPresentPoints
	} else {
		findings.Errors = append(findings.Errors, "artifact markup is empty")
	}

	if strings.TrimSpace(script) != "" {
		score += scriptPresentPoints
	} else {
		findings.Errors = append(findings.Errors, "artifact contains no inline script")
	}

	if strings.TrimSpace(req.Title) != "" || titleTagRe.MatchString(req.Markup) {
		score += titlePresentPoints
	} else {
		findings.Warnings = append(findings.Warnings, "artifact has no title")
	}

	return types.Category{
		Name:     types.CategoryFiles,
		Score:    score,
		MaxScore: rules.FilesMax,
	}, findings
}
