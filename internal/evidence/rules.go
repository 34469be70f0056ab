package evidence

import (
	"fmt"

	"github.com/jonathan/proofcard/internal/types"
)

// Unlock thresholds. These are the audited constants behind every gate; there
// is exactly one implementation of the rules, and any preview surface must call
// it rather than re-derive these numbers.
const (
	// MinUniqueDays is the minimum number of distinct calendar days evidence must span.
	MinUniqueDays = 3
	// MinSessions is the minimum number of logged sessions.
	MinSessions = 3
	// MinObservedForGrowth is the observed-session count that satisfies the
	// growth-signal gate when no error-correction cycles were seen.
	MinObservedForGrowth = 2
)

// EvaluateUnlockRequirements applies the five fixed gates to the metrics.
// Each gate is evaluated independently so callers can report exactly which
// checks passed.
func EvaluateUnlockRequirements(metrics types.EvidenceMetrics) types.UnlockRequirements {
	return types.UnlockRequirements{
		MultipleDays:     metrics.UniqueDays >= MinUniqueDays,
		MultipleSessions: metrics.SessionCount >= MinSessions,
		ObservedEvidence: metrics.HasObservedEvidence,
		GrowthSignal:     metrics.HasErrorCorrectionCycles || metrics.ObservedSessionCount >= MinObservedForGrowth,
		Consistency:      len(metrics.ActivityTypes) > 0 && metrics.SessionCount >= MinSessions,
	}
}

// ShouldUnlock reports whether all five gates pass. This is the only path to
// an unlocked proof card; no probabilistic process may produce one.
func ShouldUnlock(req types.UnlockRequirements) bool {
	return req.MultipleDays &&
		req.MultipleSessions &&
		req.ObservedEvidence &&
		req.GrowthSignal &&
		req.Consistency
}

// MissingRequirements builds the ordered checklist of unmet gates. The order
// (days, sessions, observed evidence, growth signal, consistency) and the
// wording are part of the observable contract; downstream UIs render these
// messages directly.
func MissingRequirements(metrics types.EvidenceMetrics, req types.UnlockRequirements) []string {
	var missing []string

	if !req.MultipleDays {
		missing = append(missing, fmt.Sprintf(
			"Evidence spans only %d day(s). Need at least %d distinct days.",
			metrics.UniqueDays, MinUniqueDays))
	}
	if !req.MultipleSessions {
		missing = append(missing, fmt.Sprintf(
			"Only %d session(s) logged. Need at least %d sessions.",
			metrics.SessionCount, MinSessions))
	}
	if !req.ObservedEvidence {
		missing = append(missing,
			"No observed practice evidence yet. Complete at least 1 session inside a learning space.")
	}
	if !req.GrowthSignal {
		missing = append(missing, fmt.Sprintf(
			"No growth signal yet. Have %d observed session(s); need error-correction cycles or at least %d observed sessions.",
			metrics.ObservedSessionCount, MinObservedForGrowth))
	}
	if !req.Consistency {
		missing = append(missing, fmt.Sprintf(
			"Not enough consistent activity. Have %d session(s); need at least %d with at least one activity type.",
			metrics.SessionCount, MinSessions))
	}

	return missing
}
