package types

// EvidenceMetrics summarizes one skill's activity history into the counts and
// flags the unlock rules and confidence scorer operate on. It is derived fresh
// on every evaluation and never persisted as a source of truth.
type EvidenceMetrics struct {
	UniqueDays               int      `json:"unique_days"`
	SessionCount             int      `json:"session_count"`
	HasObservedEvidence      bool     `json:"has_observed_evidence"`
	ObservedSessionCount     int      `json:"observed_session_count"`
	TotalDurationMinutes     int      `json:"total_duration_minutes"`
	HasErrorCorrectionCycles bool     `json:"has_error_correction_cycles"`
	ActivityTypes            []string `json:"activity_types"`
}

// UnlockRequirements reports each of the five fixed evidence gates independently,
// so callers can show exactly which checks passed.
type UnlockRequirements struct {
	MultipleDays     bool `json:"multiple_days"`
	MultipleSessions bool `json:"multiple_sessions"`
	ObservedEvidence bool `json:"observed_evidence"`
	GrowthSignal     bool `json:"growth_signal"`
	Consistency      bool `json:"consistency"`
}
