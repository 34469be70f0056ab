package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/proofcard/internal/server/middleware"
	"github.com/jonathan/proofcard/internal/types"
)

// CreateActivityRequest is the request body for logging an activity.
type CreateActivityRequest struct {
	Title           string                 `json:"title"`
	Description     string                 `json:"description,omitempty"`
	SkillTags       []string               `json:"skill_tags"`
	Type            string                 `json:"type"`
	Date            string                 `json:"date,omitempty"`
	DurationMinutes int                    `json:"duration_minutes,omitempty"`
	EvidenceSource  string                 `json:"evidence_source,omitempty"`
	LearningSignals *types.LearningSignals `json:"learning_signals,omitempty"`
}

func (s *Server) handleCreateActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizedUser(w, r)
	if !ok {
		return
	}

	var req CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" || req.Type == "" {
		s.errorResponse(w, http.StatusBadRequest, "Title and Type are required")
		return
	}
	if len(req.SkillTags) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "At least one skill tag is required")
		return
	}

	createdAt := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid date: expected RFC3339 timestamp")
			return
		}
		createdAt = parsed
	}

	source := types.EvidenceSource(req.EvidenceSource)
	if source == "" {
		source = types.SourceSubmitted
	}

	activity := &types.Activity{
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		SkillTags:       req.SkillTags,
		Type:            types.ActivityType(req.Type),
		CreatedAt:       createdAt,
		DurationMinutes: req.DurationMinutes,
		EvidenceSource:  source,
		LearningSignals: req.LearningSignals,
	}

	id, err := s.db.CreateActivity(r.Context(), activity)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizedUser(w, r)
	if !ok {
		return
	}

	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid 'since' parameter: expected RFC3339 timestamp")
			return
		}
		since = parsed
	}

	activities, err := s.db.FetchActivities(r.Context(), userID, r.URL.Query().Get("skill"), since, 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if activities == nil {
		activities = []types.Activity{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"activities": activities})
}

// authorizedUser parses the {id} path segment and checks it against the
// authenticated user. Users may only touch their own records.
func (s *Server) authorizedUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return uuid.Nil, false
	}

	authUserID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	if authUserID != userID {
		s.errorResponse(w, http.StatusForbidden, "Forbidden")
		return uuid.Nil, false
	}

	return userID, true
}
