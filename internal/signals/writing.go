package signals

import (
	"fmt"
	"time"

	"github.com/jonathan/proofcard/internal/types"
)

// WritingTracker reduces writing-session events (revisions, autosaves) into a
// LearningSignals snapshot. Construct with NewWritingTracker.
type WritingTracker struct {
	startedAt time.Time
	endedAt   time.Time

	revisionCount     int
	paragraphRewrites int
	structuralChanges int
	autoSaveCount     int
	finalWordCount    int

	wordCountChanges []int
	revisionTimes    []time.Time
}

// NewWritingTracker starts tracking a writing session beginning at the given time.
func NewWritingTracker(startedAt time.Time) *WritingTracker {
	return &WritingTracker{startedAt: startedAt, endedAt: startedAt}
}

// Apply folds one event into the tracker state.
func (t *WritingTracker) Apply(ev Event) {
	if ev.At.After(t.endedAt) {
		t.endedAt = ev.At
	}

	switch ev.Type {
	case EventRevision:
		t.revisionCount++
		t.revisionTimes = append(t.revisionTimes, ev.At)
		if ev.ParagraphRewrite {
			t.paragraphRewrites++
		}
		if ev.StructuralChange {
			t.structuralChanges++
		}
		if ev.WordCount >= 0 {
			t.wordCountChanges = append(t.wordCountChanges, ev.WordCount-t.finalWordCount)
			t.finalWordCount = ev.WordCount
		}
	case EventAutoSave:
		t.autoSaveCount++
	}
}

// Snapshot finalizes the session into an immutable LearningSignals record.
func (t *WritingTracker) Snapshot() types.LearningSignals {
	return types.LearningSignals{
		SessionKind:                    types.SessionWriting,
		Version:                        types.SignalsVersion,
		RevisionCount:                  t.revisionCount,
		ParagraphRewrites:              t.paragraphRewrites,
		StructuralChanges:              t.structuralChanges,
		WordCountChanges:               append([]int(nil), t.wordCountChanges...),
		TimeBetweenRevisionsAvgSeconds: averageGapSeconds(t.revisionTimes),
		FinalWordCount:                 t.finalWordCount,
		AutoSaveCount:                  t.autoSaveCount,
		SessionDurationSeconds:         durationSeconds(t.startedAt, t.endedAt),
	}
}

// SuggestedTitle builds a human-readable title for the resulting activity.
func (t *WritingTracker) SuggestedTitle(skill string) string {
	if skill == "" {
		return "Writing practice session"
	}
	return fmt.Sprintf("Writing practice: %s", skill)
}

// SuggestedDescription summarizes the session in one sentence.
func (t *WritingTracker) SuggestedDescription() string {
	desc := fmt.Sprintf("Drafted and revised text (%d revisions, %d words", t.revisionCount, t.finalWordCount)
	if t.structuralChanges > 0 {
		desc += fmt.Sprintf(", %d structural changes", t.structuralChanges)
	}
	return desc + ")."
}
