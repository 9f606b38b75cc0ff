package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/artifact-validator/internal/rules"
	"github.com/jonathan/artifact-validator/internal/types"
)

func TestAnalyzePerformance_CompleteScriptScoresMax(t *testing.T) {
	cat, findings := AnalyzePerformance(completeScript)

	assert.Equal(t, types.CategoryPerformance, cat.Name)
	assert.Equal(t, rules.PerformanceMax, cat.Score)
	assert.Empty(t, findings.Warnings)
	assert.Empty(t, findings.Suggestions)
}

func TestAnalyzePerformance_SetIntervalIsWarning(t *testing.T) {
	script := completeScript + "\nsetInterval(poll, 1000);"

	cat, findings := AnalyzePerformance(script)

	assert.Equal(t, rules.PerformanceMax-3, cat.Score)
	require.Len(t, findings.Warnings, 1)
	assert.Contains(t, findings.Warnings[0], "setInterval")
}

func TestAnalyzePerformance_EmptyScript(t *testing.T) {
	cat, findings := AnalyzePerformance("")

	assert.Equal(t, 3, cat.Score, "only the no-setInterval points apply")
	assert.Len(t, findings.Suggestions, 2)
}
