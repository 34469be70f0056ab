package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/proofcard/internal/types"
)

// CreateActivity stores a new activity record and returns its ID.
// Learning signals, when present, are stored as JSONB alongside the row.
func (db *DB) CreateActivity(ctx context.Context, activity *types.Activity) (uuid.UUID, error) {
	var signalsJSON []byte
	if activity.LearningSignals != nil {
		var err error
		signalsJSON, err = json.Marshal(activity.LearningSignals)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal learning signals: %w", err)
		}
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO activities (user_id, title, description, skill_tags, type, created_at, duration_minutes, evidence_source, learning_signals)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		activity.UserID, activity.Title, activity.Description, activity.SkillTags,
		string(activity.Type), activity.CreatedAt, activity.DurationMinutes,
		string(activity.EvidenceSource), signalsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return id, nil
}

// FetchActivities returns a user's activities, optionally filtered by skill
// tag and a lower time bound. Results are ordered newest first. Pagination is
// the caller's concern via the limit parameter; limit <= 0 means no limit.
func (db *DB) FetchActivities(ctx context.Context, userID uuid.UUID, skill string, since time.Time, limit int) ([]types.Activity, error) {
	query := `SELECT id, user_id, title, description, skill_tags, type, created_at, duration_minutes, evidence_source, learning_signals
		 FROM activities
		 WHERE user_id = $1
		   AND ($2 = '' OR $2 = ANY(skill_tags))
		   AND ($3::timestamptz IS NULL OR created_at >= $3)
		 ORDER BY created_at DESC`

	var sinceArg any
	if !since.IsZero() {
		sinceArg = since
	}

	args := []any{userID, skill, sinceArg}
	if limit > 0 {
		query += " LIMIT $4"
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	defer rows.Close()

	var activities []types.Activity
	for rows.Next() {
		var activity types.Activity
		var activityType, evidenceSource string
		var signalsJSON []byte

		err := rows.Scan(&activity.ID, &activity.UserID, &activity.Title, &activity.Description,
			&activity.SkillTags, &activityType, &activity.CreatedAt, &activity.DurationMinutes,
			&evidenceSource, &signalsJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}

		activity.Type = types.ActivityType(activityType)
		activity.EvidenceSource = types.EvidenceSource(evidenceSource)

		if len(signalsJSON) > 0 {
			var signals types.LearningSignals
			if err := json.Unmarshal(signalsJSON, &signals); err == nil {
				activity.LearningSignals = &signals
			}
			// A corrupt signals blob degrades to no signals rather than
			// failing the whole fetch.
		}

		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activities: %w", err)
	}
	return activities, nil
}
