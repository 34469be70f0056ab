package types

import (
	"github.com/go-playground/validator/v10"
)

// ActivitySummary is the wire shape of one activity as supplied to the
// evaluation boundary. Date is an ISO-8601 string; the aggregator parses it
// defensively and never fails the batch over one bad record.
type ActivitySummary struct {
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	Type            string           `json:"type"`
	Date            string           `json:"date"`
	DurationMinutes int              `json:"duration_minutes,omitempty"`
	EvidenceSource  string           `json:"evidence_source,omitempty"`
	LearningSignals *LearningSignals `json:"learning_signals,omitempty"`
	Insights        string           `json:"insights,omitempty"`
}

// Observed reports whether this activity counts as observed process evidence.
// The rule is intentionally permissive: either the observed source tag or a
// signals payload qualifies, so a collaborator supplying signals without the
// tag still counts.
func (a *ActivitySummary) Observed() bool {
	return a.EvidenceSource == string(SourceObserved) || a.LearningSignals != nil
}

// EvaluateRequest is the request body for a proof-card evaluation.
type EvaluateRequest struct {
	SkillName       string            `json:"skill_name" validate:"required,min=1"`
	Category        string            `json:"category,omitempty"`
	Activities      []ActivitySummary `json:"activities"`
	TimePeriodLabel string            `json:"time_period_label,omitempty"`
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// BatchEvaluateRequest is the request body for evaluating several skills at once.
type BatchEvaluateRequest struct {
	Requests []EvaluateRequest `json:"requests" validate:"required,min=1,max=20,dive"`
}

// Validate validates the BatchEvaluateRequest using the validator.
func (r *BatchEvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
