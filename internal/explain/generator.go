// Package explain assembles the final proof-card payload. It merges the
// deterministic fields computed by the evidence package with prose from an
// injected explanatory-text provider, and guarantees the provider can never
// influence the unlock decision or the confidence score.
package explain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/proofcard/internal/llm"
	"github.com/jonathan/proofcard/internal/prompts"
	"github.com/jonathan/proofcard/internal/schemas"
	"github.com/jonathan/proofcard/internal/types"
)

// maxActivitySample caps how many activity summaries are shared with the
// generative collaborator.
const maxActivitySample = 10

// Explanation is the narrow record a Generator may return. It carries prose
// only; the type boundary is what keeps generative output away from the
// requirements and confidence computations.
type Explanation struct {
	EvidenceSummary      string   `json:"evidence_summary"`
	ObservedGrowthTrends []string `json:"observed_growth_trends,omitempty"`
	Limitations          string   `json:"limitations,omitempty"`
}

// ExplanationRequest is the input handed to a Generator: the skill, its
// metrics, and a capped sample of activity metadata. Raw session content is
// never included.
type ExplanationRequest struct {
	SkillName  string
	Category   string
	Metrics    types.EvidenceMetrics
	Activities []ActivitySample
}

// ActivitySample is the reduced activity view shared with the generator.
type ActivitySample struct {
	Title          string `json:"title"`
	Type           string `json:"type"`
	Date           string `json:"date"`
	EvidenceSource string `json:"evidence_source,omitempty"`
	HasSignals     bool   `json:"has_signals"`
}

// Generator produces the explanatory prose for an unlocked card. Any error or
// malformed output is treated as total failure and the caller takes the
// deterministic fallback path; generators are never retried.
type Generator interface {
	GenerateExplanation(ctx context.Context, req ExplanationRequest) (*Explanation, error)
}

// LLMGenerator implements Generator on top of the llm client.
type LLMGenerator struct {
	client llm.Client
}

// NewLLMGenerator creates a generator backed by the given LLM client.
func NewLLMGenerator(client llm.Client) *LLMGenerator {
	return &LLMGenerator{client: client}
}

// GenerateExplanation requests a structured explanation from the model and
// validates the response against the explanation schema before accepting it.
func (g *LLMGenerator) GenerateExplanation(ctx context.Context, req ExplanationRequest) (*Explanation, error) {
	template, err := prompts.Get("explain.json", "evidence_summary")
	if err != nil {
		return nil, fmt.Errorf("failed to load explanation prompt: %w", err)
	}

	metricsJSON, err := json.MarshalIndent(req.Metrics, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode metrics: %w", err)
	}
	activitiesJSON, err := json.MarshalIndent(req.Activities, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode activity sample: %w", err)
	}

	prompt := prompts.Format(template, map[string]string{
		"SkillName":  req.SkillName,
		"Category":   req.Category,
		"Metrics":    string(metricsJSON),
		"Activities": string(activitiesJSON),
	})

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("explanation generation failed: %w", err)
	}

	if err := schemas.ValidateExplanationJSON([]byte(raw)); err != nil {
		return nil, fmt.Errorf("explanation response rejected: %w", err)
	}

	var explanation Explanation
	if err := json.Unmarshal([]byte(raw), &explanation); err != nil {
		return nil, fmt.Errorf("failed to parse explanation response: %w", err)
	}
	if explanation.EvidenceSummary == "" {
		return nil, fmt.Errorf("explanation response missing evidence_summary")
	}

	return &explanation, nil
}

// sampleActivities reduces the request's activities to the capped,
// metadata-only view shared with the generator.
func sampleActivities(activities []types.ActivitySummary) []ActivitySample {
	n := len(activities)
	if n > maxActivitySample {
		n = maxActivitySample
	}
	sample := make([]ActivitySample, 0, n)
	for i := 0; i < n; i++ {
		a := &activities[i]
		sample = append(sample, ActivitySample{
			Title:          a.Title,
			Type:           a.Type,
			Date:           a.Date,
			EvidenceSource: a.EvidenceSource,
			HasSignals:     a.LearningSignals != nil,
		})
	}
	return sample
}
