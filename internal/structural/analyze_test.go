package structural

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/artifact-validator/internal/rules"
	"github.com/jonathan/artifact-validator/internal/types"
)

const completeMarkup = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Bounce</title>
<script src="js/host-bridge.js"></script>
<script src="js/engine.js"></script>
</head>
<body>
<canvas id="game-canvas"></canvas>
<div id="score">0</div>
<div id="instructions">Use arrow keys</div>
</body>
</html>`

func TestAnalyze_CompleteMarkupScoresMax(t *testing.T) {
	cat, findings := Analyze(completeMarkup, rules.Default())

	assert.Equal(t, types.CategoryStructure, cat.Name)
	assert.Equal(t, rules.StructureMax, cat.MaxScore)
	assert.Equal(t, rules.StructureMax, cat.Score)
	assert.Empty(t, findings.Errors)
	assert.Empty(t, findings.Warnings)
}

func TestAnalyze_EmptyMarkupScoresZero(t *testing.T) {
	cat, findings := Analyze("", rules.Default())

	assert.Equal(t, 0, cat.Score)
	assert.NotEmpty(t, findings.Errors, "all mandatory rules fail on empty markup")
}

func TestAnalyze_BareFragmentScoresZero(t *testing.T) {
	cat, findings := Analyze("<div>hello</div>", rules.Default())

	assert.Equal(t, 0, cat.Score)
	// Missing canvas plus both script references.
	assert.GreaterOrEqual(t, len(findings.Errors), 3)
}

func TestAnalyze_MissingCanvasIsError(t *testing.T) {
	markup := strings.Replace(completeMarkup, `<canvas id="game-canvas"></canvas>`, "", 1)

	cat, findings := Analyze(markup, rules.Default())

	require.Len(t, findings.Errors, 1)
	assert.Contains(t, findings.Errors[0], "game canvas")
	assert.Equal(t, rules.StructureMax-10, cat.Score, "element weight lost entirely")
}

func TestAnalyze_SelectorAlternatives(t *testing.T) {
	// Plain canvas without the preferred id still satisfies the rule via the
	// last alternative.
	markup := strings.Replace(completeMarkup, `<canvas id="game-canvas"></canvas>`, "<canvas></canvas>", 1)

	_, findings := Analyze(markup, rules.Default())

	assert.Empty(t, findings.Errors)
}

func TestAnalyze_MissingOptionalElementIsWarning(t *testing.T) {
	markup := strings.Replace(completeMarkup, `<div id="instructions">Use arrow keys</div>`, "", 1)

	_, findings := Analyze(markup, rules.Default())

	assert.Empty(t, findings.Errors)
	require.Len(t, findings.Warnings, 1)
	assert.Contains(t, findings.Warnings[0], "instructions")
}

func TestAnalyze_ScriptRefNeedsExactPath(t *testing.T) {
	markup := strings.Replace(completeMarkup, "js/engine.js", "cdn/engine.min.js", 1)

	cat, findings := Analyze(markup, rules.Default())

	require.Len(t, findings.Errors, 1)
	assert.Contains(t, findings.Errors[0], "js/engine.js")
	assert.Equal(t, rules.StructureMax-4, cat.Score, "half the resource weight lost")
}

func TestAnalyze_MalformedMarkupDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		cat, _ := Analyze("<html><body><canvas id='game-canvas'><div <<<", rules.Default())
		assert.GreaterOrEqual(t, cat.Score, 0)
		assert.LessOrEqual(t, cat.Score, cat.MaxScore)
	})
}

func TestAnalyze_MissingDoctypeIsWarning(t *testing.T) {
	markup := strings.Replace(completeMarkup, "<!DOCTYPE html>\n", "", 1)

	cat, findings := Analyze(markup, rules.Default())

	assert.Equal(t, rules.StructureMax-2, cat.Score)
	require.NotEmpty(t, findings.Warnings)
	assert.Contains(t, findings.Warnings[0], "doctype")
}
