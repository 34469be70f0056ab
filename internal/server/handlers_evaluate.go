package server

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/proofcard/internal/explain"
	"github.com/jonathan/proofcard/internal/types"
)

// maxConcurrentEvaluations bounds the fan-out of a batch request. Evaluations
// share no mutable state, so they can run concurrently; the bound keeps a
// single batch from monopolizing generator quota.
const maxConcurrentEvaluations = 4

// defaultEvaluationWindow is how far back the stored-activity evaluation
// looks when the request does not name a window.
const defaultEvaluationWindow = 30 * 24 * time.Hour

// handleEvaluate evaluates a single skill from activities supplied in the
// request body. Zero activities is a valid request and yields a locked card.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	result := explain.Evaluate(r.Context(), s.generator, req)
	s.jsonResponse(w, http.StatusOK, result)
}

// BatchEvaluateResponse pairs each requested skill with its result, in
// request order.
type BatchEvaluateResponse struct {
	Results []BatchEvaluateResult `json:"results"`
}

// BatchEvaluateResult is one entry of a batch response.
type BatchEvaluateResult struct {
	SkillName string                `json:"skill_name"`
	Result    types.ProofCardResult `json:"result"`
}

// handleEvaluateBatch evaluates several skills concurrently.
func (s *Server) handleEvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchEvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	results := make([]BatchEvaluateResult, len(req.Requests))

	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(maxConcurrentEvaluations)
	for i, evalReq := range req.Requests {
		g.Go(func() error {
			results[i] = BatchEvaluateResult{
				SkillName: evalReq.SkillName,
				Result:    explain.Evaluate(ctx, s.generator, evalReq),
			}
			return nil
		})
	}
	// Evaluate never errors; the group is used for bounded fan-out and
	// context propagation.
	_ = g.Wait()

	s.jsonResponse(w, http.StatusOK, BatchEvaluateResponse{Results: results})
}

// handleEvaluateStored evaluates a skill from the user's stored activity log.
// The optional ?since=RFC3339 parameter bounds the window; it defaults to the
// last 30 days.
func (s *Server) handleEvaluateStored(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizedUser(w, r)
	if !ok {
		return
	}

	skill := r.PathValue("skill")
	if skill == "" {
		s.errorResponse(w, http.StatusBadRequest, "Skill name is required")
		return
	}

	since := time.Now().Add(-defaultEvaluationWindow)
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid 'since' parameter: expected RFC3339 timestamp")
			return
		}
		since = parsed
	}

	activities, err := s.db.FetchActivities(r.Context(), userID, skill, since, 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	summaries := make([]types.ActivitySummary, 0, len(activities))
	for i := range activities {
		summaries = append(summaries, activities[i].Summary())
	}

	req := types.EvaluateRequest{
		SkillName:  skill,
		Category:   r.URL.Query().Get("category"),
		Activities: summaries,
	}

	result := explain.Evaluate(r.Context(), s.generator, req)
	s.jsonResponse(w, http.StatusOK, result)
}
