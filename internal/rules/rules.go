// Package rules holds the immutable validation rule registry: generic
// structural and script rules plus genre-keyed rule bundles. The registry is
// built once at startup and shared read-only across concurrent validations.
package rules

import (
	"regexp"
	"sort"
	"strings"
)

// Category weight constants. These are the single source of truth for the
// per-category maxima; scoring.Config validates against them at startup.
const (
	FilesMax           = 10
	StructureMax       = 25
	ScriptLogicMax     = 35
	IntegrationMax     = 20
	GenreComplianceMax = 30
	PerformanceMax     = 10

	// TotalMax is the composite maximum with a matched genre bundle.
	TotalMax = FilesMax + StructureMax + ScriptLogicMax + IntegrationMax + GenreComplianceMax + PerformanceMax
)

// PatternRule is a textual pattern whose presence (or absence, when not
// required) contributes to a category score.
type PatternRule struct {
	Name     string
	Label    string
	Expr     *regexp.Regexp
	Required bool
}

// Matches reports whether the rule's pattern occurs in text.
func (r PatternRule) Matches(text string) bool {
	return r.Expr.MatchString(text)
}

// FirstIndex returns the byte offset of the first occurrence of the rule's
// pattern in text, or -1 when absent.
func (r PatternRule) FirstIndex(text string) int {
	loc := r.Expr.FindStringIndex(text)
	if loc == nil {
		return -1
	}
	return loc[0]
}

// ElementRule requires that at least one of several alternative selectors
// matches the parsed markup. Alternatives are tried in declared order and the
// first match wins.
type ElementRule struct {
	Name      string
	Label     string
	Selectors []string
	Required  bool
}

// FeatureRule is a genre-specific named capability checked via
// case-insensitive keyword-alias presence.
type FeatureRule struct {
	Name    string
	Aliases []string
}

// MatchesAny reports whether any alias keyword occurs in the lowercased text.
func (r FeatureRule) MatchesAny(lowerText string) bool {
	for _, alias := range r.Aliases {
		if strings.Contains(lowerText, strings.ToLower(alias)) {
			return true
		}
	}
	return false
}

// GenreBundle is the rule collection for one genre.
type GenreBundle struct {
	Name     string
	Patterns []PatternRule
	Features []FeatureRule
}

// Registry is the immutable rule table. All accessors return the registry's
// internal slices; callers must treat them as read-only.
type Registry struct {
	elements     []ElementRule
	scriptRefs   []string
	logicRules   []PatternRule
	bonusRules   []PatternRule
	readyRule    PatternRule
	startRule    PatternRule
	unwrapRule   PatternRule
	misspellings map[string]string
	genres       map[string]*GenreBundle
}

// Elements returns the structural element rules in declared order.
func (reg *Registry) Elements() []ElementRule { return reg.elements }

// ScriptRefs returns the required external script paths.
func (reg *Registry) ScriptRefs() []string { return reg.scriptRefs }

// LogicRules returns the generic required script patterns.
func (reg *Registry) LogicRules() []PatternRule { return reg.logicRules }

// BonusRules returns the advanced-idiom bonus patterns.
func (reg *Registry) BonusRules() []PatternRule { return reg.bonusRules }

// ReadyRule returns the bridge readiness-signal pattern.
func (reg *Registry) ReadyRule() PatternRule { return reg.readyRule }

// StartRule returns the game start-call pattern.
func (reg *Registry) StartRule() PatternRule { return reg.startRule }

// UnwrapRule returns the defensive event-payload-unwrapping pattern.
func (reg *Registry) UnwrapRule() PatternRule { return reg.unwrapRule }

// Misspellings returns the known-misspelling dictionary (wrong -> correct).
func (reg *Registry) Misspellings() map[string]string { return reg.misspellings }

// Genre looks up a bundle by label, case-insensitively. Exact key match is
// tried first, then substring containment in either direction, so labels like
// "platformer game" still find the platformer bundle. A nil return means no
// genre-specific scoring applies; it is never an error.
func (reg *Registry) Genre(label string) *GenreBundle {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		return nil
	}
	if bundle, ok := reg.genres[key]; ok {
		return bundle
	}
	// Substring fallback walks keys in sorted order so a label matching more
	// than one bundle always resolves to the same one.
	for _, name := range reg.GenreNames() {
		if strings.Contains(key, name) || strings.Contains(name, key) {
			return reg.genres[name]
		}
	}
	return nil
}

// GenreNames returns the registered bundle keys in sorted order.
func (reg *Registry) GenreNames() []string {
	names := make([]string, 0, len(reg.genres))
	for name := range reg.genres {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithBundles returns a new Registry that shares the generic rules but adds
// (or replaces) the given genre bundles. The receiver is not modified, so the
// builtin registry stays immutable.
func (reg *Registry) WithBundles(bundles ...*GenreBundle) *Registry {
	merged := make(map[string]*GenreBundle, len(reg.genres)+len(bundles))
	for name, bundle := range reg.genres {
		merged[name] = bundle
	}
	for _, bundle := range bundles {
		merged[strings.ToLower(bundle.Name)] = bundle
	}
	next := *reg
	next.genres = merged
	return &next
}
