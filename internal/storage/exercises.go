package storage

import (
	"context"
	"fmt"
)

// ExerciseSummary holds aggregated stats for a single exercise.
type ExerciseSummary struct {
	Name      string  `json:"name"`
	Sessions  int     `json:"sessions"`
	TotalSets int     `json:"total_sets"`
	TonnageKg float64 `json:"tonnage_kg"`
	MaxWeight float64 `json:"max_weight_kg"`
	LastDate  string  `json:"last_date"`
}

// ListExercises returns every exercise the user has logged working sets for,
// most recently trained first.
func (db *DB) ListExercises(ctx context.Context, userID int) ([]ExerciseSummary, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT exercise_name,
			COUNT(DISTINCT session_date)::int,
			COUNT(*)::int,
			COALESCE(SUM(weight_kg * reps), 0)::float8,
			COALESCE(MAX(weight_kg), 0)::float8,
			to_char(MAX(session_date), 'YYYY-MM-DD')
		FROM workout_sets
		WHERE user_id = $1 AND NOT is_warmup
		GROUP BY exercise_name
		ORDER BY MAX(session_date) DESC, exercise_name ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []ExerciseSummary
	for rows.Next() {
		var e ExerciseSummary
		if err := rows.Scan(&e.Name, &e.Sessions, &e.TotalSets, &e.TonnageKg, &e.MaxWeight, &e.LastDate); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
