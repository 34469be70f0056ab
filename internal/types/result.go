package types

// Result statuses for the evaluation outcome tag.
const (
	StatusLocked   = "locked"
	StatusUnlocked = "unlocked"
)

// GrowthTrend describes the deterministic trend classification on an unlocked card.
type GrowthTrend string

const (
	// TrendStable means evidence exists but no error-correction cycles were seen.
	TrendStable GrowthTrend = "stable"
	// TrendImproving means at least one activity reported error-correction cycles.
	TrendImproving GrowthTrend = "improving"
	// TrendStrongImprovement is reserved for future use by richer trend analysis.
	TrendStrongImprovement GrowthTrend = "strong_improvement"
)

// ConfidenceLevel is the discrete label derived from the confidence score.
type ConfidenceLevel string

const (
	// LevelEmerging covers scores below 0.3.
	LevelEmerging ConfidenceLevel = "emerging"
	// LevelDeveloping covers scores in [0.3, 0.45).
	LevelDeveloping ConfidenceLevel = "developing"
	// LevelEarlyEvidence covers scores of 0.45 and above.
	LevelEarlyEvidence ConfidenceLevel = "early_evidence"
)

// ProofCardResult is the tagged union of the two terminal evaluation outcomes.
// Modeling the outcomes as separate variants keeps illegal states (a locked
// result carrying a confidence score) unrepresentable.
type ProofCardResult interface {
	// ResultStatus returns the status tag ("locked" or "unlocked").
	ResultStatus() string
}

// Progress reports the current evidence counters shown with a locked result.
type Progress struct {
	DaysCount           int  `json:"days_count"`
	SessionsCount       int  `json:"sessions_count"`
	HasObservedEvidence bool `json:"has_observed_evidence"`
}

// LockedResult is the terminal payload when the unlock gate says no. A locked
// result is a normal outcome, not an error.
type LockedResult struct {
	Status              string             `json:"status"`
	RequirementsMet     UnlockRequirements `json:"requirements_met"`
	MissingRequirements []string           `json:"missing_requirements"`
	CurrentProgress     Progress           `json:"current_progress"`
	Encouragement       string             `json:"encouragement"`
}

// ResultStatus implements ProofCardResult.
func (r *LockedResult) ResultStatus() string { return StatusLocked }

// UnlockedResult is the terminal payload when all five gates pass. The
// evidence summary, growth trends, and limitations text may come from the
// generative collaborator or from the deterministic fallback; everything else
// is computed by the engine alone.
type UnlockedResult struct {
	Status               string          `json:"status"`
	EvidenceSummary      string          `json:"evidence_summary"`
	GrowthTrend          GrowthTrend     `json:"growth_trend"`
	ConfidenceScore      float64         `json:"confidence_score"`
	ConfidenceLevel      ConfidenceLevel `json:"confidence_level"`
	Explanation          string          `json:"explanation,omitempty"`
	TimeSpan             string          `json:"time_span"`
	SessionCount         int             `json:"session_count"`
	ObservedGrowthTrends []string        `json:"observed_growth_trends"`
	Limitations          string          `json:"limitations"`
}

// ResultStatus implements ProofCardResult.
func (r *UnlockedResult) ResultStatus() string { return StatusUnlocked }
