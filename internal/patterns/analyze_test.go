package patterns

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/artifact-validator/internal/rules"
	"github.com/jonathan/artifact-validator/internal/types"
)

// completeScript satisfies every generic logic rule, every advanced idiom,
// and the full integration contract.
const completeScript = `
const canvas = document.getElementById('game-canvas');
const ctx = canvas.getContext('2d');
let gameState = 'running';
let score = 0;

window.addEventListener('message', function (event) {
  const data = event.data || {};
  if (data.type === 'pause') {
    gameState = 'paused';
  }
});

Bridge.ready(function () {
  Bridge.start();
});

function update(dt) {
  score = Math.max(0, Math.min(9999, score + 1));
}

function draw() {
  ctx.clearRect(0, 0, canvas.width, canvas.height);
}

function loop(timestamp) {
  try {
    update(16);
    draw();
  } catch (err) {
    gameState = 'error';
  }
  requestAnimationFrame(loop);
}
requestAnimationFrame(loop);
`

func TestAnalyzeLogic_CompleteScriptScoresMax(t *testing.T) {
	cat, findings := AnalyzeLogic(completeScript, rules.Default())

	assert.Equal(t, types.CategoryScriptLogic, cat.Name)
	assert.Equal(t, rules.ScriptLogicMax, cat.Score)
	assert.Empty(t, findings.Errors)
	assert.Empty(t, findings.Warnings)
	assert.Empty(t, findings.Suggestions)
}

func TestAnalyzeLogic_EmptyScript(t *testing.T) {
	cat, findings := AnalyzeLogic("", rules.Default())

	assert.Equal(t, 0, cat.Score)
	assert.Len(t, findings.Errors, len(rules.Default().LogicRules()))
}

func TestAnalyzeLogic_MissingPatternEmitsNamedError(t *testing.T) {
	script := strings.ReplaceAll(completeScript, "getContext('2d')", "getCtx()")

	_, findings := AnalyzeLogic(script, rules.Default())

	require.Len(t, findings.Errors, 1)
	assert.Contains(t, findings.Errors[0], "canvas 2d rendering context")
}

func TestAnalyzeLogic_ExtraOpeningDelimiter(t *testing.T) {
	base, _ := AnalyzeLogic(completeScript, rules.Default())

	cat, findings := AnalyzeLogic(completeScript+"\nif (gameState) {", rules.Default())

	syntaxErrors := 0
	for _, e := range findings.Errors {
		if strings.Contains(e, "unbalanced") {
			syntaxErrors++
		}
	}
	assert.Equal(t, 1, syntaxErrors, "only the brace kind is unbalanced; the added parens pair up")
	assert.Equal(t, base.Score-5, cat.Score)
}

func TestAnalyzeLogic_MisspellingIsWarningOnly(t *testing.T) {
	script := completeScript + "\nconst n = arr.lenght;"

	cat, findings := AnalyzeLogic(script, rules.Default())

	assert.Empty(t, findings.Errors)
	require.Len(t, findings.Warnings, 1)
	assert.Contains(t, findings.Warnings[0], "lenght")
	assert.Contains(t, findings.Warnings[0], "length")
	assert.Equal(t, rules.ScriptLogicMax, cat.Score, "misspellings never deduct")
}

func TestAnalyzeLogic_MissingBonusIsSuggestion(t *testing.T) {
	script := strings.ReplaceAll(completeScript, "try {", "if (true) {")
	script = strings.ReplaceAll(script, "} catch (err) {", "} if (false) {")

	cat, findings := AnalyzeLogic(script, rules.Default())

	assert.Equal(t, rules.ScriptLogicMax-2, cat.Score)
	require.NotEmpty(t, findings.Suggestions)
	assert.Contains(t, findings.Suggestions[0], "try/catch")
}

func TestAnalyzeIntegration_CompleteContractScoresMax(t *testing.T) {
	cat, findings := AnalyzeIntegration(completeScript, rules.Default())

	assert.Equal(t, types.CategoryIntegration, cat.Name)
	assert.Equal(t, rules.IntegrationMax, cat.Score)
	assert.Empty(t, findings.Errors)
	assert.Empty(t, findings.Warnings)
}

func TestAnalyzeIntegration_StartBeforeReadyIsOrderingError(t *testing.T) {
	script := `
Bridge.start();
Bridge.ready(function () {});
const data = event.data || {};
`
	cat, findings := AnalyzeIntegration(script, rules.Default())

	require.Len(t, findings.Errors, 1)
	assert.Contains(t, findings.Errors[0], "must come before")
	assert.Equal(t, rules.IntegrationMax-6, cat.Score)
}

func TestAnalyzeIntegration_MissingUnwrapIsWarningOnly(t *testing.T) {
	script := `
Bridge.ready(function () {
  Bridge.start();
});
`
	cat, findings := AnalyzeIntegration(script, rules.Default())

	assert.Empty(t, findings.Errors)
	require.Len(t, findings.Warnings, 1)
	assert.Contains(t, findings.Warnings[0], "payload")
	assert.Equal(t, rules.IntegrationMax-4, cat.Score)
}

func TestAnalyzeIntegration_EmptyScript(t *testing.T) {
	cat, findings := AnalyzeIntegration("", rules.Default())

	assert.Equal(t, 0, cat.Score)
	assert.Len(t, findings.Errors, 2, "both contract signals missing")
}

func TestAnalyzeIntegration_NeverNegative(t *testing.T) {
	// Ordering violation alone: 16 earned minus penalty stays clamped at 0
	// when nothing else contributes.
	script := "Bridge.start(); Bridge.ready();"
	cat, _ := AnalyzeIntegration(script, rules.Default())

	assert.GreaterOrEqual(t, cat.Score, 0)
	assert.LessOrEqual(t, cat.Score, cat.MaxScore)
}
