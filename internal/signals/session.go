// Package signals converts raw session-event streams from the learning spaces
// into immutable LearningSignals snapshots plus suggested titles and
// descriptions. Each tracker is an explicit reducer over discrete events; the
// evaluation engine only ever sees the finished snapshot.
package signals

import "time"

// EventType identifies a discrete session event.
type EventType string

// Session event types. Coding sessions emit edits, runs, and errors; writing
// sessions emit revisions and autosaves.
const (
	EventEdit     EventType = "edit"
	EventRun      EventType = "run"
	EventError    EventType = "error"
	EventRevision EventType = "revision"
	EventAutoSave EventType = "autosave"
)

// Event is one discrete occurrence inside a learning-space session.
type Event struct {
	Type EventType
	At   time.Time

	// Run events
	Success bool

	// Edit events
	CodeLength int

	// Revision events
	WordCount        int
	ParagraphRewrite bool
	StructuralChange bool
}

// averageGapSeconds computes the mean gap between consecutive timestamps.
// Returns nil when fewer than two timestamps exist, matching the snapshot
// invariant that the average is null without at least two timestamped events.
func averageGapSeconds(times []time.Time) *float64 {
	if len(times) < 2 {
		return nil
	}
	var total float64
	for i := 1; i < len(times); i++ {
		total += times[i].Sub(times[i-1]).Seconds()
	}
	avg := total / float64(len(times)-1)
	return &avg
}

// durationSeconds returns the whole-second span between start and end,
// clamped at zero for degenerate clocks.
func durationSeconds(start, end time.Time) int {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Seconds())
}
