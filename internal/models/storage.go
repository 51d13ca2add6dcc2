package models

import (
	"time"

	"github.com/google/uuid"
)

// HealthMetricRow is a row ready for insertion into the health_metrics table.
type HealthMetricRow struct {
	Time       time.Time
	UserID     int
	MetricName string
	Source     string
	Units      string
	Qty        *float64
}

// WorkoutSetRow is a row for the workout_sets table.
type WorkoutSetRow struct {
	UserID             int
	SessionName        string
	SessionDate        time.Time
	SessionDurationSec float64
	ExerciseNumber     int
	ExerciseName       string
	Equipment          string
	TargetReps         int
	IsWarmup           bool
	SetNumber          int
	WeightKg           float64
	IsBodyweightPlus   bool
	Reps               int
	RIR                float64
}

// SessionSummaryRow is a stored session-stats result.
type SessionSummaryRow struct {
	ID             uuid.UUID `json:"id"`
	UserID         int       `json:"user_id"`
	PerformedAt    time.Time `json:"performed_at"`
	DurationSec    float64   `json:"duration_sec"`
	Calories       float64   `json:"calories"`
	VolumeKg       float64   `json:"volume_kg"`
	TotalExercises int       `json:"total_exercises"`
	ExercisesDone  int       `json:"exercises_done"`
	BodyMassKg     float64   `json:"body_mass_kg"`
	CreatedAt      time.Time `json:"created_at"`
}
