package signals

import (
	"fmt"
	"time"

	"github.com/jonathan/proofcard/internal/types"
)

// CodingTracker reduces coding-session events (edits, runs, errors) into a
// LearningSignals snapshot. The zero value is not usable; construct with
// NewCodingTracker.
type CodingTracker struct {
	startedAt time.Time
	endedAt   time.Time

	editCount       int
	runCount        int
	errorCount      int
	successfulRuns  int
	correctionCount int
	finalCodeLength int

	runTimes []time.Time

	// pendingError is set after a failed run or error event; the next
	// successful run closes one error-correction cycle.
	pendingError bool
}

// NewCodingTracker starts tracking a coding session beginning at the given time.
func NewCodingTracker(startedAt time.Time) *CodingTracker {
	return &CodingTracker{startedAt: startedAt, endedAt: startedAt}
}

// Apply folds one event into the tracker state.
func (t *CodingTracker) Apply(ev Event) {
	if ev.At.After(t.endedAt) {
		t.endedAt = ev.At
	}

	switch ev.Type {
	case EventEdit:
		t.editCount++
		if ev.CodeLength > 0 {
			t.finalCodeLength = ev.CodeLength
		}
	case EventRun:
		t.runCount++
		t.runTimes = append(t.runTimes, ev.At)
		if ev.Success {
			t.successfulRuns++
			if t.pendingError {
				t.correctionCount++
				t.pendingError = false
			}
		} else {
			t.errorCount++
			t.pendingError = true
		}
	case EventError:
		t.errorCount++
		t.pendingError = true
	}
}

// Snapshot finalizes the session into an immutable LearningSignals record.
func (t *CodingTracker) Snapshot() types.LearningSignals {
	return types.LearningSignals{
		SessionKind:               types.SessionCoding,
		Version:                   types.SignalsVersion,
		EditCount:                 t.editCount,
		RunCount:                  t.runCount,
		ErrorCount:                t.errorCount,
		SuccessfulRuns:            t.successfulRuns,
		ErrorCorrectionCycles:     t.correctionCount,
		TimeBetweenRunsAvgSeconds: averageGapSeconds(t.runTimes),
		FinalCodeLength:           t.finalCodeLength,
		SessionDurationSeconds:    durationSeconds(t.startedAt, t.endedAt),
	}
}

// SuggestedTitle builds a human-readable title for the resulting activity.
func (t *CodingTracker) SuggestedTitle(skill string) string {
	if skill == "" {
		return "Coding practice session"
	}
	return fmt.Sprintf("Coding practice: %s", skill)
}

// SuggestedDescription summarizes the session in one sentence.
func (t *CodingTracker) SuggestedDescription() string {
	desc := fmt.Sprintf("Wrote and ran code (%d edits, %d runs", t.editCount, t.runCount)
	if t.correctionCount > 0 {
		desc += fmt.Sprintf(", %d error-correction cycles", t.correctionCount)
	}
	return desc + ")."
}
