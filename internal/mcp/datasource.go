package mcp

import (
	"context"

	"github.com/claude/repsense/internal/models"
	"github.com/claude/repsense/internal/progression"
	"github.com/claude/repsense/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB (local)
// and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	ExerciseHistory(ctx context.Context, userID int, exercise string) (progression.History, bool, error)
	ListExercises(ctx context.Context, userID int) ([]storage.ExerciseSummary, error)
	LatestBodyMass(ctx context.Context, userID int) (storage.BodyMassReadings, error)
	RecentSessionSummaries(ctx context.Context, userID, limit int) ([]models.SessionSummaryRow, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
