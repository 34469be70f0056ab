package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/proofcard/internal/db"
	"github.com/jonathan/proofcard/internal/explain"
	"github.com/jonathan/proofcard/internal/server/middleware"
)

// SaveProofCardRequest is the request body for saving a card the user chose
// to share. Payload must be an unlocked evaluation result; anything else is
// rejected.
type SaveProofCardRequest struct {
	SkillName string          `json:"skill_name"`
	Category  string          `json:"category,omitempty"`
	Payload   json.RawMessage `json:"payload"`
}

func (s *Server) handleSaveProofCard(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SaveProofCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.SkillName == "" {
		s.errorResponse(w, http.StatusBadRequest, "Skill name is required")
		return
	}

	// Only well-formed unlocked payloads may be saved. Locked results,
	// truncated payloads, and anything else fail closed.
	var payload map[string]any
	if err := json.Unmarshal(req.Payload, &payload); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Payload is not a valid proof card")
		return
	}
	if !explain.IsValidUnlockedResponse(payload) {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Payload is not a valid unlocked proof card")
		return
	}

	id, err := s.db.SaveProofCard(r.Context(), userID, req.SkillName, req.Category, req.Payload)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleGetProofCard(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid proof card ID")
		return
	}

	card, err := s.db.GetProofCard(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrProofCardNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Proof card not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, card)
}

func (s *Server) handleListProofCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizedUser(w, r)
	if !ok {
		return
	}

	cards, err := s.db.ListProofCards(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if cards == nil {
		cards = []db.ProofCard{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"proof_cards": cards})
}
