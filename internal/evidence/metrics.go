// Package evidence implements the deterministic evaluation core: metric
// aggregation, the fixed unlock rules, and the bounded confidence score.
// Nothing in this package performs I/O or consults the generative layer.
package evidence

import (
	"sort"
	"time"

	"github.com/jonathan/proofcard/internal/types"
)

// dateLayouts are the accepted activity date formats, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseActivityDate parses an activity date string. The boolean is false when
// the value is empty or matches none of the accepted layouts.
func ParseActivityDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CalculateEvidenceMetrics reduces a skill's activities into a single
// EvidenceMetrics summary. It is a pure, total function: an empty input
// yields all-zero metrics, and individual records with unparseable dates
// simply do not contribute to the unique-day count. The caller supplies the
// relevant activity subset (typically filtered by skill tag and a trailing
// time window); no recency filtering happens here.
func CalculateEvidenceMetrics(activities []types.ActivitySummary) types.EvidenceMetrics {
	metrics := types.EvidenceMetrics{
		SessionCount:  len(activities),
		ActivityTypes: []string{},
	}

	days := make(map[string]bool)
	activityTypes := make(map[string]bool)

	for i := range activities {
		activity := &activities[i]

		if t, ok := ParseActivityDate(activity.Date); ok {
			days[t.Format("2006-01-02")] = true
		}

		if activity.Type != "" {
			activityTypes[activity.Type] = true
		}

		if activity.Observed() {
			metrics.HasObservedEvidence = true
			metrics.ObservedSessionCount++
		}

		if activity.LearningSignals != nil && activity.LearningSignals.ErrorCorrectionCycles > 0 {
			metrics.HasErrorCorrectionCycles = true
		}

		metrics.TotalDurationMinutes += activity.DurationMinutes
	}

	metrics.UniqueDays = len(days)
	for activityType := range activityTypes {
		metrics.ActivityTypes = append(metrics.ActivityTypes, activityType)
	}
	sort.Strings(metrics.ActivityTypes)

	return metrics
}
