// Package types provides type definitions for structured data used throughout the proofcard system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies what kind of artifact or session an activity records.
type ActivityType string

// Activity type constants.
const (
	ActivityCode     ActivityType = "code"
	ActivityDocument ActivityType = "document"
	ActivityCommit   ActivityType = "commit"
	ActivityReview   ActivityType = "review"
	ActivityUpload   ActivityType = "upload"
	ActivityManual   ActivityType = "manual"
)

// EvidenceSource identifies how an activity's evidence was obtained.
type EvidenceSource string

const (
	// SourceSubmitted marks an artifact the learner uploaded or logged themselves.
	SourceSubmitted EvidenceSource = "submitted"
	// SourceObserved marks a session recorded inside an instrumented learning
	// space. Observed activities carry a LearningSignals snapshot.
	SourceObserved EvidenceSource = "observed_in_proof"
)

// Activity is one logged or observed learning session/artifact, tagged with skills.
// Activities are owned by the storage layer; the evaluation engine only reads them.
type Activity struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"user_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	SkillTags       []string         `json:"skill_tags"`
	Type            ActivityType     `json:"type"`
	CreatedAt       time.Time        `json:"created_at"`
	DurationMinutes int              `json:"duration_minutes,omitempty"`
	EvidenceSource  EvidenceSource   `json:"evidence_source"`
	LearningSignals *LearningSignals `json:"learning_signals,omitempty"`
}

// Summary converts a stored activity into the shape the evaluation engine consumes.
func (a *Activity) Summary() ActivitySummary {
	return ActivitySummary{
		Title:           a.Title,
		Description:     a.Description,
		Type:            string(a.Type),
		Date:            a.CreatedAt.Format(time.RFC3339),
		DurationMinutes: a.DurationMinutes,
		EvidenceSource:  string(a.EvidenceSource),
		LearningSignals: a.LearningSignals,
	}
}
