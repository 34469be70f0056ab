package types

// SessionKind discriminates which learning space produced a LearningSignals snapshot.
type SessionKind string

const (
	// SessionCoding is a session in the code learning space.
	SessionCoding SessionKind = "coding"
	// SessionWriting is a session in the writing learning space.
	SessionWriting SessionKind = "writing"
)

// SignalsVersion is the current snapshot format version. Bump when fields change
// meaning so older persisted snapshots remain identifiable.
const SignalsVersion = 1

// LearningSignals is an immutable snapshot of process signals captured during one
// finished session in a learning space. The populated fields depend on SessionKind;
// all counters are non-negative, and the time-between averages are nil whenever
// fewer than two timestamped events occurred.
type LearningSignals struct {
	SessionKind SessionKind `json:"session_kind"`
	Version     int         `json:"signals_version"`

	// Coding sessions
	EditCount                 int      `json:"edit_count,omitempty"`
	RunCount                  int      `json:"run_count,omitempty"`
	ErrorCount                int      `json:"error_count,omitempty"`
	SuccessfulRuns            int      `json:"successful_runs,omitempty"`
	ErrorCorrectionCycles     int      `json:"error_correction_cycles,omitempty"`
	TimeBetweenRunsAvgSeconds *float64 `json:"time_between_runs_avg_seconds,omitempty"`
	FinalCodeLength           int      `json:"final_code_length,omitempty"`

	// Writing sessions
	RevisionCount                  int      `json:"revision_count,omitempty"`
	ParagraphRewrites              int      `json:"paragraph_rewrites,omitempty"`
	StructuralChanges              int      `json:"structural_changes,omitempty"`
	WordCountChanges               []int    `json:"word_count_changes,omitempty"`
	TimeBetweenRevisionsAvgSeconds *float64 `json:"time_between_revisions_avg_seconds,omitempty"`
	FinalWordCount                 int      `json:"final_word_count,omitempty"`
	AutoSaveCount                  int      `json:"auto_save_count,omitempty"`

	// Shared
	SessionDurationSeconds int `json:"session_duration_seconds"`
}
