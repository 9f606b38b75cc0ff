package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/artifact-validator/internal/rules"
	"github.com/jonathan/artifact-validator/internal/types"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, rules.TotalMax, cfg.TotalMax())
	assert.Equal(t, DefaultPassThreshold, cfg.PassThreshold)
}

func TestConfig_WeightDriftIsRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Structure++

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 131")
}

func TestConfig_ZeroWeightIsRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Files = 0

	require.Error(t, cfg.Validate())
}

func TestAggregate_ClampsPerCategory(t *testing.T) {
	categories := []types.Category{
		{Name: "a", Score: -50, MaxScore: 10},
		{Name: "b", Score: 99, MaxScore: 25},
		{Name: "c", Score: 7, MaxScore: 35},
	}

	score, maxScore := Aggregate(categories)

	assert.Equal(t, 0+25+7, score, "negative and overflowing categories clamp independently")
	assert.Equal(t, 70, maxScore)
}

func TestAggregate_Empty(t *testing.T) {
	score, maxScore := Aggregate(nil)

	assert.Zero(t, score)
	assert.Zero(t, maxScore)
}

func TestGradeFor_ReferenceBands(t *testing.T) {
	tests := []struct {
		score int
		want  types.Grade
	}{
		{130, types.GradeAPlus},
		{90, types.GradeAPlus},
		{89, types.GradeA},
		{80, types.GradeA},
		{79, types.GradeBPlus},
		{70, types.GradeBPlus},
		{69, types.GradeB},
		{60, types.GradeB},
		{59, types.GradeC},
		{50, types.GradeC},
		{49, types.GradeF},
		{0, types.GradeF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.score, rules.TotalMax), "score %d", tt.score)
	}
}

func TestGradeFor_ScalesToConfiguredMax(t *testing.T) {
	// Genre category omitted: max 100. A+ band scales to round(90*100/130)=69.
	assert.Equal(t, types.GradeAPlus, GradeFor(69, 100))
	assert.Equal(t, types.GradeA, GradeFor(68, 100))
}

func TestGradeFor_MonotonicInScore(t *testing.T) {
	rank := map[types.Grade]int{
		types.GradeF:     0,
		types.GradeC:     1,
		types.GradeB:     2,
		types.GradeBPlus: 3,
		types.GradeA:     4,
		types.GradeAPlus: 5,
	}
	prev := rank[GradeFor(0, rules.TotalMax)]
	for score := 1; score <= rules.TotalMax; score++ {
		cur := rank[GradeFor(score, rules.TotalMax)]
		assert.GreaterOrEqual(t, cur, prev, "grade regressed at score %d", score)
		prev = cur
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(80, 0, DefaultPassThreshold))
	assert.False(t, IsValid(79, 0, DefaultPassThreshold))
	assert.False(t, IsValid(130, 1, DefaultPassThreshold), "any error fails validation")
	assert.False(t, IsValid(94, 0, PipelinePassThreshold), "pipeline bar is stricter")
	assert.True(t, IsValid(95, 0, PipelinePassThreshold))
}
