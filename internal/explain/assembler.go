package explain

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/jonathan/proofcard/internal/evidence"
	"github.com/jonathan/proofcard/internal/types"
)

// encouragement is the fixed message attached to every locked result.
const encouragement = "Keep practicing! Each session you complete builds the evidence for your proof card."

// fallbackLimitations is the caveat used when the generator is unavailable.
const fallbackLimitations = "This card reflects early process evidence, not an assessment of proficiency."

// fallbackGrowthTrends is the fixed trend list used when the generator is unavailable.
var fallbackGrowthTrends = []string{
	"Practice sessions across multiple days",
	"Engagement with the learning process",
}

// Evaluate runs the full evaluation state machine for one skill: aggregate
// metrics, apply the unlock gates, and assemble either the locked or the
// unlocked terminal payload. The generator is consulted only after the
// deterministic gate has said yes, and its failure never surfaces to the
// caller; the deterministic fields are identical either way.
func Evaluate(ctx context.Context, gen Generator, req types.EvaluateRequest) types.ProofCardResult {
	metrics := evidence.CalculateEvidenceMetrics(req.Activities)
	requirements := evidence.EvaluateUnlockRequirements(metrics)

	if !evidence.ShouldUnlock(requirements) {
		return &types.LockedResult{
			Status:              types.StatusLocked,
			RequirementsMet:     requirements,
			MissingRequirements: evidence.MissingRequirements(metrics, requirements),
			CurrentProgress: types.Progress{
				DaysCount:           metrics.UniqueDays,
				SessionsCount:       metrics.SessionCount,
				HasObservedEvidence: metrics.HasObservedEvidence,
			},
			Encouragement: encouragement,
		}
	}

	score := evidence.CalculateConfidenceScore(metrics)
	trend := types.TrendStable
	if metrics.HasErrorCorrectionCycles {
		trend = types.TrendImproving
	}

	result := &types.UnlockedResult{
		Status:          types.StatusUnlocked,
		GrowthTrend:     trend,
		ConfidenceScore: score,
		ConfidenceLevel: evidence.ConfidenceLevelFor(score),
		TimeSpan:        buildTimeSpan(req.Activities),
		SessionCount:    metrics.SessionCount,
	}

	explanation := requestExplanation(ctx, gen, req, metrics)
	if explanation != nil {
		result.EvidenceSummary = explanation.EvidenceSummary
		result.ObservedGrowthTrends = explanation.ObservedGrowthTrends
		result.Limitations = explanation.Limitations
		result.Explanation = explanation.EvidenceSummary
	}

	// Fill any gaps from the deterministic template so the payload is always
	// complete, whether or not the generator cooperated.
	if result.EvidenceSummary == "" {
		result.EvidenceSummary = FallbackSummary(req.SkillName, metrics)
		result.Explanation = result.EvidenceSummary
	}
	if len(result.ObservedGrowthTrends) == 0 {
		result.ObservedGrowthTrends = append([]string(nil), fallbackGrowthTrends...)
	}
	if result.Limitations == "" {
		result.Limitations = fallbackLimitations
	}

	return result
}

// requestExplanation asks the generator for prose, returning nil on any
// failure. A nil generator (no API key configured) is simply skipped.
func requestExplanation(ctx context.Context, gen Generator, req types.EvaluateRequest, metrics types.EvidenceMetrics) *Explanation {
	if gen == nil {
		return nil
	}

	explanation, err := gen.GenerateExplanation(ctx, ExplanationRequest{
		SkillName:  req.SkillName,
		Category:   req.Category,
		Metrics:    metrics,
		Activities: sampleActivities(req.Activities),
	})
	if err != nil {
		// No retry: a retry could change which prose ships for logically
		// identical deterministic results.
		log.Printf("Explanation generator failed for skill %q, using fallback: %v", req.SkillName, err)
		return nil
	}
	return explanation
}

// FallbackSummary builds the deterministic evidence summary used when the
// generator errors, times out, or returns malformed output.
func FallbackSummary(skillName string, metrics types.EvidenceMetrics) string {
	return fmt.Sprintf(
		"Observed %d learning session(s) for %s across %d day(s) with process evidence.",
		metrics.SessionCount, skillName, metrics.UniqueDays)
}

// buildTimeSpan formats the activity date range: "Jan 2 – Mar 5, 2026" style
// range for multiple days, the single date when everything happened on one
// day, and "Recent" when no date parses at all.
func buildTimeSpan(activities []types.ActivitySummary) string {
	var dates []time.Time
	for i := range activities {
		if t, ok := evidence.ParseActivityDate(activities[i].Date); ok {
			dates = append(dates, t)
		}
	}
	if len(dates) == 0 {
		return "Recent"
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	first, last := dates[0], dates[len(dates)-1]

	if first.Format("2006-01-02") == last.Format("2006-01-02") {
		return first.Format("Jan 2, 2006")
	}
	if first.Year() == last.Year() {
		return fmt.Sprintf("%s – %s", first.Format("Jan 2"), last.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s – %s", first.Format("Jan 2, 2006"), last.Format("Jan 2, 2006"))
}
