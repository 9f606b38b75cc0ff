// Package structural checks the markup side of an artifact: required
// elements, required external script references, and document scaffolding.
package structural

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/artifact-validator/internal/rules"
	"github.com/jonathan/artifact-validator/internal/types"
)

// Sub-weights within the structure category. They sum to rules.StructureMax.
const (
	elementWeight   = 10
	resourceWeight  = 8
	doctypeBonus    = 2
	sectioningBonus = 1 // per html/head/body tag
	metaBonus       = 1 // per charset/viewport tag
)

var (
	doctypeRe  = regexp.MustCompile(`(?i)<!doctype\s+html`)
	htmlTagRe  = regexp.MustCompile(`(?i)<html[\s>]`)
	headTagRe  = regexp.MustCompile(`(?i)<head[\s>]`)
	bodyTagRe  = regexp.MustCompile(`(?i)<body[\s>]`)
	charsetRe  = regexp.MustCompile(`(?i)<meta[^>]*charset`)
	viewportRe = regexp.MustCompile(`(?i)<meta[^>]*viewport`)
)

// Analyze evaluates the structure category against the registry's element and
// resource rules. Malformed or empty markup never fails the call; it degrades
// to unsatisfied rules and a zero score.
func Analyze(markup string, reg *rules.Registry) (types.Category, types.Findings) {
	var findings types.Findings
	score := 0

	doc := parseLenient(markup)

	// Element rules: ordered selector alternatives, first match satisfies.
	mandatoryTotal, mandatoryFound := 0, 0
	for _, rule := range reg.Elements() {
		found := doc != nil && matchesAny(doc, rule.Selectors)
		if rule.Required {
			mandatoryTotal++
			if found {
				mandatoryFound++
			} else {
				findings.Errors = append(findings.Errors, fmt.Sprintf("missing required %s", rule.Label))
			}
		} else if !found {
			findings.Warnings = append(findings.Warnings, fmt.Sprintf("missing %s", rule.Label))
		}
	}
	if mandatoryTotal > 0 {
		score += roundRatio(mandatoryFound, mandatoryTotal, elementWeight)
	}

	// Required external script references: exact src path match.
	refs := scriptRefs(doc)
	required := reg.ScriptRefs()
	refsFound := 0
	for _, want := range required {
		if refs[want] {
			refsFound++
		} else {
			findings.Errors = append(findings.Errors, fmt.Sprintf("missing required script reference %q", want))
		}
	}
	if len(required) > 0 {
		score += roundRatio(refsFound, len(required), resourceWeight)
	}

	// Document scaffolding bonuses. These are checked against the raw source
	// because the lenient parser synthesizes html/head/body for fragments.
	if doctypeRe.MatchString(markup) {
		score += doctypeBonus
	} else {
		findings.Warnings = append(findings.Warnings, "missing doctype declaration")
	}
	for _, re := range []*regexp.Regexp{htmlTagRe, headTagRe, bodyTagRe} {
		if re.MatchString(markup) {
			score += sectioningBonus
		}
	}
	if charsetRe.MatchString(markup) {
		score += metaBonus
	} else {
		findings.Suggestions = append(findings.Suggestions, "declare a meta charset tag")
	}
	if viewportRe.MatchString(markup) {
		score += metaBonus
	} else {
		findings.Suggestions = append(findings.Suggestions, "declare a meta viewport tag")
	}

	if score > rules.StructureMax {
		score = rules.StructureMax
	}

	return types.Category{
		Name:     types.CategoryStructure,
		Score:    score,
		MaxScore: rules.StructureMax,
	}, findings
}

// parseLenient parses markup into a queryable document. Any parse fault
// degrades to nil, which downstream checks treat as "no elements found".
func parseLenient(markup string) *goquery.Document {
	if strings.TrimSpace(markup) == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}
	return doc
}

func matchesAny(doc *goquery.Document, selectors []string) bool {
	for _, sel := range selectors {
		if doc.Find(sel).Length() > 0 {
			return true
		}
	}
	return false
}

// scriptRefs collects the src attribute of every script node.
func scriptRefs(doc *goquery.Document) map[string]bool {
	refs := make(map[string]bool)
	if doc == nil {
		return refs
	}
	doc.Find("script[src]").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && src != "" {
			refs[src] = true
		}
	})
	return refs
}

func roundRatio(found, total, weight int) int {
	return int(math.Round(float64(found) / float64(total) * float64(weight)))
}
