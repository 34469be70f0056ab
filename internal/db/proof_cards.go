package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrProofCardNotFound is returned when no saved card matches the requested ID.
var ErrProofCardNotFound = errors.New("proof card not found")

// ProofCard is a saved, user-chosen snapshot of an unlocked evaluation
// payload. The engine itself never persists results; this table only holds
// cards the user explicitly saved.
type ProofCard struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	SkillName string          `json:"skill_name"`
	Category  string          `json:"category,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaveProofCard stores an unlocked payload as a shareable card and returns its ID.
// Callers are responsible for validating the payload first (fail closed).
func (db *DB) SaveProofCard(ctx context.Context, userID uuid.UUID, skillName, category string, payload json.RawMessage) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO proof_cards (user_id, skill_name, category, payload)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, skillName, category, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save proof card: %w", err)
	}
	return id, nil
}

// GetProofCard retrieves one saved card by ID.
func (db *DB) GetProofCard(ctx context.Context, id uuid.UUID) (*ProofCard, error) {
	var card ProofCard
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, skill_name, category, payload, created_at
		 FROM proof_cards WHERE id = $1`,
		id,
	).Scan(&card.ID, &card.UserID, &card.SkillName, &card.Category, &card.Payload, &card.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProofCardNotFound
		}
		return nil, fmt.Errorf("failed to get proof card: %w", err)
	}
	return &card, nil
}

// ListProofCards returns a user's saved cards, newest first.
func (db *DB) ListProofCards(ctx context.Context, userID uuid.UUID) ([]ProofCard, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, skill_name, category, payload, created_at
		 FROM proof_cards WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list proof cards: %w", err)
	}
	defer rows.Close()

	var cards []ProofCard
	for rows.Next() {
		var card ProofCard
		if err := rows.Scan(&card.ID, &card.UserID, &card.SkillName, &card.Category, &card.Payload, &card.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan proof card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read proof cards: %w", err)
	}
	return cards, nil
}
