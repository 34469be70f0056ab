package evidence

import (
	"github.com/jonathan/proofcard/internal/types"
)

// Confidence score bounds and term caps. The score is deliberately capped low:
// a proof card asserts early evidence of growth, never high certainty.
const (
	confidenceBase = 0.2
	confidenceMax  = 0.6

	daysCap     = 0.15
	sessionsCap = 0.1
	observedCap = 0.1
	errorBonus  = 0.05
)

// Confidence level bucket boundaries. Exact boundary values fall into the
// upper bucket.
const (
	developingFloor    = 0.3
	earlyEvidenceFloor = 0.45
)

// CalculateConfidenceScore computes the bounded strength-of-evidence score
// from the metrics. Each term is clamped before summing and the total is
// clamped to the cap, so the result is always within [0.2, 0.6] and is
// monotonic in unique days, session count, and observed session count.
// Only unlocked cards ever receive a score.
func CalculateConfidenceScore(metrics types.EvidenceMetrics) float64 {
	score := confidenceBase
	score += min(float64(metrics.UniqueDays)/10, daysCap)
	score += min(float64(metrics.SessionCount)/20, sessionsCap)
	score += min(float64(metrics.ObservedSessionCount)/5, observedCap)
	if metrics.HasErrorCorrectionCycles {
		score += errorBonus
	}
	return min(score, confidenceMax)
}

// ConfidenceLevelFor maps a confidence score to its discrete label.
func ConfidenceLevelFor(score float64) types.ConfidenceLevel {
	switch {
	case score < developingFloor:
		return types.LevelEmerging
	case score < earlyEvidenceFloor:
		return types.LevelDeveloping
	default:
		return types.LevelEarlyEvidence
	}
}
