package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/repsense/internal/models"
	"github.com/claude/repsense/internal/sessionstats"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveSessionSummary stores a computed session result and returns its ID.
func (db *DB) SaveSessionSummary(ctx context.Context, userID int, performedAt time.Time, r sessionstats.Result) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO session_summaries (id, user_id, performed_at, duration_sec, calories,
			volume_kg, total_exercises, exercises_done, body_mass_kg)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, userID, performedAt, r.DurationSec, r.Calories,
		r.VolumeKg, r.TotalExercises, r.ExercisesDone, r.BodyMassKg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting session summary: %w", err)
	}
	return id, nil
}

// PreviousSessionSummary returns the most recent stored session of the user,
// or nil when there is none.
func (db *DB) PreviousSessionSummary(ctx context.Context, userID int) (*sessionstats.Previous, error) {
	var p sessionstats.Previous
	err := db.Pool.QueryRow(ctx,
		`SELECT duration_sec, volume_kg FROM session_summaries
		 WHERE user_id = $1
		 ORDER BY performed_at DESC, created_at DESC
		 LIMIT 1`,
		userID).Scan(&p.DurationSec, &p.VolumeKg)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying previous session summary: %w", err)
	}
	return &p, nil
}

// RecentSessionSummaries returns up to limit stored sessions, newest first.
func (db *DB) RecentSessionSummaries(ctx context.Context, userID, limit int) ([]models.SessionSummaryRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, performed_at, duration_sec, calories, volume_kg,
			total_exercises, exercises_done, body_mass_kg, created_at
		 FROM session_summaries
		 WHERE user_id = $1
		 ORDER BY performed_at DESC, created_at DESC
		 LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying session summaries: %w", err)
	}
	defer rows.Close()

	var result []models.SessionSummaryRow
	for rows.Next() {
		var s models.SessionSummaryRow
		if err := rows.Scan(&s.ID, &s.UserID, &s.PerformedAt, &s.DurationSec, &s.Calories, &s.VolumeKg,
			&s.TotalExercises, &s.ExercisesDone, &s.BodyMassKg, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning session summary: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
