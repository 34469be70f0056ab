package evidence

import (
	"testing"

	"github.com/jonathan/proofcard/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCalculateConfidenceScore_BaseFloor(t *testing.T) {
	score := CalculateConfidenceScore(types.EvidenceMetrics{})
	assert.InDelta(t, 0.2, score, 1e-9)
}

func TestCalculateConfidenceScore_ThresholdScenario(t *testing.T) {
	// 3 days, 3 sessions, 1 observed, error correction present:
	// 0.2 + min(0.3, 0.15) + min(0.15, 0.1) + min(0.2, 0.1) + 0.05 = 0.6.
	metrics := types.EvidenceMetrics{
		UniqueDays:               3,
		SessionCount:             3,
		ObservedSessionCount:     1,
		HasErrorCorrectionCycles: true,
	}

	score := CalculateConfidenceScore(metrics)
	assert.InDelta(t, 0.6, score, 1e-9)
	assert.Equal(t, types.LevelEarlyEvidence, ConfidenceLevelFor(score))
}

func TestCalculateConfidenceScore_UncappedTerms(t *testing.T) {
	metrics := types.EvidenceMetrics{
		UniqueDays:           1,
		SessionCount:         1,
		ObservedSessionCount: 0,
	}

	// 0.2 + 0.1 + 0.05 + 0 = 0.35
	score := CalculateConfidenceScore(metrics)
	assert.InDelta(t, 0.35, score, 1e-9)
	assert.Equal(t, types.LevelDeveloping, ConfidenceLevelFor(score))
}

func TestCalculateConfidenceScore_Bounds(t *testing.T) {
	extremes := []types.EvidenceMetrics{
		{},
		{UniqueDays: 1000, SessionCount: 1000, ObservedSessionCount: 1000, HasErrorCorrectionCycles: true},
	}

	for _, metrics := range extremes {
		score := CalculateConfidenceScore(metrics)
		assert.GreaterOrEqual(t, score, 0.2)
		assert.LessOrEqual(t, score, 0.6)
	}
}

func TestCalculateConfidenceScore_Monotonic(t *testing.T) {
	base := types.EvidenceMetrics{
		UniqueDays:           1,
		SessionCount:         1,
		ObservedSessionCount: 0,
	}
	baseScore := CalculateConfidenceScore(base)

	for i := 0; i <= 25; i++ {
		withDays := base
		withDays.UniqueDays = base.UniqueDays + i
		assert.GreaterOrEqual(t, CalculateConfidenceScore(withDays), baseScore)

		withSessions := base
		withSessions.SessionCount = base.SessionCount + i
		assert.GreaterOrEqual(t, CalculateConfidenceScore(withSessions), baseScore)

		withObserved := base
		withObserved.ObservedSessionCount = base.ObservedSessionCount + i
		assert.GreaterOrEqual(t, CalculateConfidenceScore(withObserved), baseScore)
	}
}

func TestConfidenceLevelFor_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		level types.ConfidenceLevel
	}{
		{0.29999, types.LevelEmerging},
		{0.3, types.LevelDeveloping},
		{0.44999, types.LevelDeveloping},
		{0.45, types.LevelEarlyEvidence},
		{0.6, types.LevelEarlyEvidence},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.level, ConfidenceLevelFor(tc.score), "score %v", tc.score)
	}
}
