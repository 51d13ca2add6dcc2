package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/claude/repsense/internal/models"
	"github.com/claude/repsense/internal/progression"
)

const (
	workoutSetColumns = 14
	// Postgres accepts at most 65535 bind parameters per statement.
	maxSetsPerInsert = 65535 / workoutSetColumns
)

// ReplaceWorkoutSets swaps the stored sets of the given sessions for rows in
// one transaction. A failure leaves the previous sets in place. Returns the
// number of rows inserted.
func (db *DB) ReplaceWorkoutSets(ctx context.Context, userID int, sessionDates []time.Time, rows []models.WorkoutSetRow) (_ int64, err error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning workout sets transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	for _, d := range sessionDates {
		if _, err = tx.Exec(ctx,
			`DELETE FROM workout_sets WHERE session_date = $1 AND user_id = $2`,
			d, userID); err != nil {
			return 0, fmt.Errorf("deleting workout sets for %s: %w", d.Format("2006-01-02"), err)
		}
	}

	var inserted int64
	for _, chunk := range chunkRows(rows, maxSetsPerInsert) {
		query, args := insertWorkoutSetsQuery(chunk)
		tag, execErr := tx.Exec(ctx, query, args...)
		if execErr != nil {
			return 0, fmt.Errorf("inserting workout sets: %w", execErr)
		}
		inserted += tag.RowsAffected()
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing workout sets: %w", err)
	}
	return inserted, nil
}

// insertWorkoutSetsQuery builds a multi-row INSERT for rows.
func insertWorkoutSetsQuery(rows []models.WorkoutSetRow) (string, []any) {
	query := `INSERT INTO workout_sets (user_id, session_name, session_date, session_duration_sec,
		exercise_number, exercise_name, equipment, target_reps, is_warmup, set_number,
		weight_kg, is_bodyweight_plus, reps, rir) VALUES `
	args := make([]any, 0, len(rows)*workoutSetColumns)
	valueStrings := make([]string, 0, len(rows))

	for i, r := range rows {
		valueStrings = append(valueStrings, placeholders(i*workoutSetColumns, workoutSetColumns))
		args = append(args, r.UserID, r.SessionName, r.SessionDate, r.SessionDurationSec,
			r.ExerciseNumber, r.ExerciseName, r.Equipment, r.TargetReps,
			r.IsWarmup, r.SetNumber, r.WeightKg, r.IsBodyweightPlus, r.Reps, r.RIR)
	}

	return query + strings.Join(valueStrings, ",") + " ON CONFLICT DO NOTHING", args
}

// chunkRows splits rows into consecutive slices of at most size rows.
func chunkRows(rows []models.WorkoutSetRow, size int) [][]models.WorkoutSetRow {
	var chunks [][]models.WorkoutSetRow
	for len(rows) > size {
		chunks = append(chunks, rows[:size])
		rows = rows[size:]
	}
	if len(rows) > 0 {
		chunks = append(chunks, rows)
	}
	return chunks
}

// historyRow is one working set of the exercise being looked up.
type historyRow struct {
	SessionDate      time.Time
	WeightKg         float64
	Reps             int
	IsBodyweightPlus bool
}

// ExerciseHistory returns the working sets of the two most recent sessions
// containing the exercise, and whether the latest one was logged as
// bodyweight. Names match case-insensitively.
func (db *DB) ExerciseHistory(ctx context.Context, userID int, exercise string) (progression.History, bool, error) {
	rows, err := db.Pool.Query(ctx, `
		WITH dates AS (
			SELECT DISTINCT session_date FROM workout_sets
			WHERE user_id = $1 AND lower(exercise_name) = lower($2) AND NOT is_warmup
			ORDER BY session_date DESC
			LIMIT 2
		)
		SELECT s.session_date, s.weight_kg, s.reps, s.is_bodyweight_plus
		FROM workout_sets s
		JOIN dates d ON d.session_date = s.session_date
		WHERE s.user_id = $1 AND lower(s.exercise_name) = lower($2) AND NOT s.is_warmup
		ORDER BY s.session_date DESC, s.exercise_number ASC, s.set_number ASC`,
		userID, exercise)
	if err != nil {
		return progression.History{}, false, fmt.Errorf("querying exercise history: %w", err)
	}
	defer rows.Close()

	var hist []historyRow
	for rows.Next() {
		var r historyRow
		if err := rows.Scan(&r.SessionDate, &r.WeightKg, &r.Reps, &r.IsBodyweightPlus); err != nil {
			return progression.History{}, false, fmt.Errorf("scanning exercise history: %w", err)
		}
		hist = append(hist, r)
	}
	if err := rows.Err(); err != nil {
		return progression.History{}, false, fmt.Errorf("reading exercise history: %w", err)
	}

	h, bodyweight := groupSessions(hist)
	return h, bodyweight, nil
}

// groupSessions splits rows ordered by date descending into the last and
// previous session. The latest session is bodyweight when every one of its
// sets uses +N notation.
func groupSessions(rows []historyRow) (progression.History, bool) {
	var h progression.History
	if len(rows) == 0 {
		return h, false
	}

	lastDate := rows[0].SessionDate
	bodyweight := true
	h.Last = &progression.Session{}
	for _, r := range rows {
		perf := progression.Perf{WeightKg: r.WeightKg, Reps: r.Reps}
		if r.SessionDate.Equal(lastDate) {
			h.Last.Sets = append(h.Last.Sets, perf)
			bodyweight = bodyweight && r.IsBodyweightPlus
			continue
		}
		if h.Previous == nil {
			h.Previous = &progression.Session{}
		}
		h.Previous.Sets = append(h.Previous.Sets, perf)
	}
	return h, bodyweight
}

// placeholders renders "($n+1,...,$n+count)".
func placeholders(offset, count int) string {
	var b strings.Builder
	b.WriteByte('(')
	for j := 1; j <= count; j++ {
		if j > 1 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "$%d", offset+j)
	}
	b.WriteByte(')')
	return b.String()
}
