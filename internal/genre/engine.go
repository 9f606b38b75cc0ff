// Package genre scores an artifact against the rule bundle matching its
// externally classified genre label. Genre compliance is advisory-weighted:
// unmet rules become recommendations, not errors.
package genre

import (
	"math"
	"strings"

	"github.com/jonathan/artifact-validator/internal/rules"
	"github.com/jonathan/artifact-validator/internal/types"
)

// Sub-weights within the genre-compliance category.
const (
	patternWeight = 18
	featureWeight = 12
)

// Recommendation group labels.
const (
	GroupMissingCapability  = "missing required capability"
	GroupRecommendedFeature = "recommended feature"
)

// Evaluate scores the genre-compliance category. The bool result reports
// whether a bundle matched; when false the category is omitted entirely
// (contributing 0/0) and the compliance report is nil. An absent or unknown
// label is not an error.
func Evaluate(label, script, markup string, reg *rules.Registry) (types.Category, *types.GenreCompliance, bool) {
	bundle := reg.Genre(label)
	if bundle == nil {
		return types.Category{}, nil, false
	}

	score := 0
	compliance := &types.GenreCompliance{}

	// Pattern rules run against the script text only.
	var missingPatterns []string
	patternsFound := 0
	for _, rule := range bundle.Patterns {
		if rule.Matches(script) {
			patternsFound++
		} else {
			missingPatterns = append(missingPatterns, rule.Label)
		}
	}
	if len(bundle.Patterns) > 0 {
		score += roundRatio(patternsFound, len(bundle.Patterns), patternWeight)
	} else {
		score += patternWeight // nothing to miss
	}
	if len(missingPatterns) > 0 {
		compliance.Recommendations = append(compliance.Recommendations, types.RecommendationGroup{
			Category: GroupMissingCapability,
			Items:    missingPatterns,
		})
	}

	// Feature rules OR-match alias keywords over the full artifact text.
	fullText := strings.ToLower(script + "\n" + markup)
	var missingFeatures []string
	featuresFound := 0
	for _, rule := range bundle.Features {
		if rule.MatchesAny(fullText) {
			featuresFound++
		} else {
			missingFeatures = append(missingFeatures, rule.Name)
		}
	}
	if len(bundle.Features) > 0 {
		score += roundRatio(featuresFound, len(bundle.Features), featureWeight)
	} else {
		score += featureWeight
	}
	if len(missingFeatures) > 0 {
		compliance.Recommendations = append(compliance.Recommendations, types.RecommendationGroup{
			Category: GroupRecommendedFeature,
			Items:    missingFeatures,
		})
	}

	category := types.Category{
		Name:     types.CategoryGenreCompliance,
		Score:    score,
		MaxScore: rules.GenreComplianceMax,
	}
	return category, compliance, true
}

func roundRatio(found, total, weight int) int {
	return int(math.Round(float64(found) / float64(total) * float64(weight)))
}
