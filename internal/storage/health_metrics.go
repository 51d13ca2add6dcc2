package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/claude/repsense/internal/models"
	"github.com/claude/repsense/internal/sessionstats"
	"github.com/jackc/pgx/v5"
)

// MetricBodyMass is the health_metrics name body mass readings are stored under.
const MetricBodyMass = "weight_body_mass"

const (
	healthMetricColumns = 6
	kgPerPound          = 0.45359237
)

// InsertHealthMetrics batch-inserts health metric rows. Returns the number actually inserted
// (skipped duplicates via ON CONFLICT DO NOTHING).
func (db *DB) InsertHealthMetrics(ctx context.Context, rows []models.HealthMetricRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := `INSERT INTO health_metrics (time, user_id, metric_name, source, units, qty) VALUES `
	args := make([]any, 0, len(rows)*healthMetricColumns)
	valueStrings := make([]string, 0, len(rows))

	for i, r := range rows {
		valueStrings = append(valueStrings, placeholders(i*healthMetricColumns, healthMetricColumns))
		args = append(args, r.Time, r.UserID, r.MetricName, r.Source, r.Units, r.Qty)
	}

	query += strings.Join(valueStrings, ",") + " ON CONFLICT DO NOTHING"

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting health metrics: %w", err)
	}
	return tag.RowsAffected(), nil
}

// QueryHealthMetrics retrieves health metrics by name and time range.
func (db *DB) QueryHealthMetrics(ctx context.Context, metricName string, start, end time.Time, userID int) ([]models.HealthMetricRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT time, user_id, metric_name, source, units, qty
		 FROM health_metrics
		 WHERE metric_name = $1 AND time >= $2 AND time < $3 AND user_id = $4
		 ORDER BY time ASC`,
		metricName, start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("querying health metrics: %w", err)
	}
	defer rows.Close()

	return scanHealthMetricRows(rows)
}

// BodyMassReadings are the stored body mass values the calorie estimate
// can draw on, converted to kilograms.
type BodyMassReadings struct {
	Latest   *float64 `json:"latest_kg,omitempty"`
	Previous *float64 `json:"previous_kg,omitempty"`
	Initial  *float64 `json:"initial_kg,omitempty"`
}

// FillServer returns b with the readings in the server sources b left empty.
func (r BodyMassReadings) FillServer(b sessionstats.BodyMass) sessionstats.BodyMass {
	if b.ServerLatest == nil {
		b.ServerLatest = r.Latest
	}
	if b.ServerPrevious == nil {
		b.ServerPrevious = r.Previous
	}
	if b.ServerInitial == nil {
		b.ServerInitial = r.Initial
	}
	return b
}

// LatestBodyMass returns the latest, second latest and first body mass
// readings. Missing readings stay nil.
func (db *DB) LatestBodyMass(ctx context.Context, userID int) (BodyMassReadings, error) {
	var out BodyMassReadings

	recent, err := db.Pool.Query(ctx,
		`SELECT time, user_id, metric_name, source, units, qty
		 FROM health_metrics
		 WHERE metric_name = $1 AND user_id = $2 AND qty > 0
		 ORDER BY time DESC
		 LIMIT 2`,
		MetricBodyMass, userID)
	if err != nil {
		return out, fmt.Errorf("querying latest body mass: %w", err)
	}
	latest, err := scanHealthMetricRows(recent)
	recent.Close()
	if err != nil {
		return out, err
	}
	if len(latest) > 0 {
		out.Latest = toKg(latest[0])
	}
	if len(latest) > 1 {
		out.Previous = toKg(latest[1])
	}

	first, err := db.Pool.Query(ctx,
		`SELECT time, user_id, metric_name, source, units, qty
		 FROM health_metrics
		 WHERE metric_name = $1 AND user_id = $2 AND qty > 0
		 ORDER BY time ASC
		 LIMIT 1`,
		MetricBodyMass, userID)
	if err != nil {
		return out, fmt.Errorf("querying initial body mass: %w", err)
	}
	initial, err := scanHealthMetricRows(first)
	first.Close()
	if err != nil {
		return out, err
	}
	if len(initial) > 0 {
		out.Initial = toKg(initial[0])
	}
	return out, nil
}

// BodyMassPoint is one body mass reading in kilograms.
type BodyMassPoint struct {
	Time   time.Time `json:"time"`
	Kg     float64   `json:"kg"`
	Source string    `json:"source"`
}

// BodyMassHistory returns the body mass readings in [start, end), oldest
// first. Readings without a quantity are skipped.
func (db *DB) BodyMassHistory(ctx context.Context, userID int, start, end time.Time) ([]BodyMassPoint, error) {
	rows, err := db.QueryHealthMetrics(ctx, MetricBodyMass, start, end, userID)
	if err != nil {
		return nil, err
	}
	return bodyMassPoints(rows), nil
}

func bodyMassPoints(rows []models.HealthMetricRow) []BodyMassPoint {
	points := make([]BodyMassPoint, 0, len(rows))
	for _, r := range rows {
		if kg := toKg(r); kg != nil {
			points = append(points, BodyMassPoint{Time: r.Time, Kg: *kg, Source: r.Source})
		}
	}
	return points
}

// toKg returns the reading in kilograms, converting pound readings.
func toKg(r models.HealthMetricRow) *float64 {
	if r.Qty == nil {
		return nil
	}
	kg := *r.Qty
	switch strings.ToLower(strings.TrimSpace(r.Units)) {
	case "lb", "lbs":
		kg *= kgPerPound
	}
	return &kg
}

func scanHealthMetricRows(rows pgx.Rows) ([]models.HealthMetricRow, error) {
	var result []models.HealthMetricRow
	for rows.Next() {
		var r models.HealthMetricRow
		if err := rows.Scan(&r.Time, &r.UserID, &r.MetricName, &r.Source, &r.Units, &r.Qty); err != nil {
			return nil, fmt.Errorf("scanning health metric row: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
