package alpha

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/claude/repsense/internal/ingest"
	"github.com/claude/repsense/internal/models"
)

// SetStore persists workout sets. ReplaceWorkoutSets drops the stored sets
// of every listed session and inserts rows atomically.
type SetStore interface {
	ReplaceWorkoutSets(ctx context.Context, userID int, sessionDates []time.Time, rows []models.WorkoutSetRow) (int64, error)
}

// Provider processes Alpha Progression CSV exports.
type Provider struct {
	store SetStore
	log   *slog.Logger
}

// NewProvider creates a new Alpha Progression ingest provider.
func NewProvider(store SetStore, log *slog.Logger) *Provider {
	return &Provider{store: store, log: log}
}

// Ingest parses a CSV export and stores the workout set data.
func (p *Provider) Ingest(ctx context.Context, r io.Reader, userID int) (*ingest.Result, error) {
	sessions, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	result := &ingest.Result{SessionsReceived: len(sessions)}
	if len(sessions) == 0 {
		return result, nil
	}

	// Stored sets of each session are replaced so re-imports reflect the latest parser output.
	dates := make([]time.Time, 0, len(sessions))
	var rows []models.WorkoutSetRow
	for _, s := range sessions {
		dates = append(dates, s.Date)
		rows = append(rows, Rows(s, userID)...)
	}

	inserted, err := p.store.ReplaceWorkoutSets(ctx, userID, dates, rows)
	if err != nil {
		return nil, fmt.Errorf("replacing sets: %w", err)
	}
	result.SetsReceived = len(rows)
	result.SetsInserted = inserted
	result.SetsSkipped = int64(len(rows)) - inserted

	p.log.Info("alpha import",
		"user_id", userID,
		"sessions", result.SessionsReceived,
		"sets", result.SetsReceived,
		"inserted", result.SetsInserted,
	)
	return result, nil
}

// Rows flattens a session into workout_sets rows.
func Rows(s Session, userID int) []models.WorkoutSetRow {
	var rows []models.WorkoutSetRow
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			rows = append(rows, models.WorkoutSetRow{
				UserID:             userID,
				SessionName:        s.Name,
				SessionDate:        s.Date,
				SessionDurationSec: s.Duration.Seconds(),
				ExerciseNumber:     ex.Number,
				ExerciseName:       ex.Name,
				Equipment:          ex.Equipment,
				TargetReps:         ex.TargetReps,
				IsWarmup:           set.IsWarmup,
				SetNumber:          set.Number,
				WeightKg:           set.WeightKg,
				IsBodyweightPlus:   set.IsBodyweightPlus,
				Reps:               set.Reps,
				RIR:                set.RIR,
			})
		}
	}
	return rows
}
