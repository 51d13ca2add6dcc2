package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/claude/repsense/internal/models"
	"github.com/claude/repsense/internal/progression"
	"github.com/claude/repsense/internal/ptr"
	"github.com/claude/repsense/internal/sessionstats"
	"github.com/google/go-cmp/cmp"
)

// TestGroupSessions verifies rows split into last and previous sessions by date.
func TestGroupSessions(t *testing.T) {
	d1 := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	d0 := time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC)
	rows := []historyRow{
		{SessionDate: d1, WeightKg: 80, Reps: 10},
		{SessionDate: d1, WeightKg: 80, Reps: 9},
		{SessionDate: d0, WeightKg: 77.5, Reps: 10},
	}

	h, bodyweight := groupSessions(rows)
	want := progression.History{
		Last:     &progression.Session{Sets: []progression.Perf{{WeightKg: 80, Reps: 10}, {WeightKg: 80, Reps: 9}}},
		Previous: &progression.Session{Sets: []progression.Perf{{WeightKg: 77.5, Reps: 10}}},
	}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Errorf("groupSessions mismatch (-want +got):\n%s", diff)
	}
	if bodyweight {
		t.Error("bodyweight = true, want false")
	}
}

// TestGroupSessionsSingleAndEmpty covers a lone session and no rows.
func TestGroupSessionsSingleAndEmpty(t *testing.T) {
	h, _ := groupSessions(nil)
	if h.Last != nil || h.Previous != nil {
		t.Errorf("empty rows: got %+v, want zero history", h)
	}

	d := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	h, bodyweight := groupSessions([]historyRow{
		{SessionDate: d, WeightKg: 10, Reps: 12, IsBodyweightPlus: true},
		{SessionDate: d, WeightKg: 10, Reps: 11, IsBodyweightPlus: true},
	})
	if h.Previous != nil {
		t.Errorf("Previous = %+v, want nil", h.Previous)
	}
	if len(h.Last.Sets) != 2 {
		t.Errorf("len(Last.Sets) = %d, want 2", len(h.Last.Sets))
	}
	if !bodyweight {
		t.Error("bodyweight = false, want true")
	}
}

// TestPlaceholders verifies positional parameter rendering for batch inserts.
func TestPlaceholders(t *testing.T) {
	if got := placeholders(0, 3); got != "($1,$2,$3)" {
		t.Errorf("placeholders(0, 3) = %q, want ($1,$2,$3)", got)
	}
	if got := placeholders(6, 2); got != "($7,$8)" {
		t.Errorf("placeholders(6, 2) = %q, want ($7,$8)", got)
	}
}

// TestToKg verifies pound readings are converted and nil quantities stay nil.
func TestToKg(t *testing.T) {
	if got := toKg(models.HealthMetricRow{Units: "kg", Qty: ptr.Ref(80.0)}); got == nil || *got != 80 {
		t.Errorf("kg reading = %v, want 80", got)
	}
	got := toKg(models.HealthMetricRow{Units: "lb", Qty: ptr.Ref(200.0)})
	if got == nil || *got < 90.71 || *got > 90.72 {
		t.Errorf("lb reading = %v, want ~90.718", got)
	}
	if got := toKg(models.HealthMetricRow{Units: "kg"}); got != nil {
		t.Errorf("nil qty = %v, want nil", *got)
	}
}

// TestBodyMassReadingsFillServer verifies stored readings feed the body mass
// priority without replacing sources the caller already set.
func TestBodyMassReadingsFillServer(t *testing.T) {
	r := BodyMassReadings{Previous: ptr.Ref(72.0), Initial: ptr.Ref(75.0)}
	if got := r.FillServer(sessionstats.BodyMass{}).Resolve(); got != 72 {
		t.Errorf("Resolve() = %v, want 72", got)
	}

	b := r.FillServer(sessionstats.BodyMass{ServerPrevious: ptr.Ref(68.0)})
	if got := b.Resolve(); got != 68 {
		t.Errorf("Resolve() with caller previous = %v, want 68", got)
	}
	if b.ServerInitial == nil || *b.ServerInitial != 75 {
		t.Errorf("ServerInitial = %v, want 75", b.ServerInitial)
	}
}

// TestBodyMassPoints verifies readings are converted and empty ones dropped.
func TestBodyMassPoints(t *testing.T) {
	at := time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)
	got := bodyMassPoints([]models.HealthMetricRow{
		{Time: at, Units: "kg", Qty: ptr.Ref(80.0), Source: "scale"},
		{Time: at.Add(time.Hour), Units: "kg"},
	})
	want := []BodyMassPoint{{Time: at, Kg: 80, Source: "scale"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bodyMassPoints mismatch (-want +got):\n%s", diff)
	}
}

// TestChunkRows verifies inserts split at the bind parameter limit.
func TestChunkRows(t *testing.T) {
	if maxSetsPerInsert*workoutSetColumns > 65535 {
		t.Fatalf("chunk of %d rows exceeds the parameter limit", maxSetsPerInsert)
	}
	tests := []struct {
		rows int
		want []int
	}{
		{0, nil},
		{1, []int{1}},
		{maxSetsPerInsert, []int{maxSetsPerInsert}},
		{maxSetsPerInsert + 1, []int{maxSetsPerInsert, 1}},
		{2*maxSetsPerInsert + 5, []int{maxSetsPerInsert, maxSetsPerInsert, 5}},
	}
	for _, tt := range tests {
		var got []int
		for _, c := range chunkRows(make([]models.WorkoutSetRow, tt.rows), maxSetsPerInsert) {
			got = append(got, len(c))
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("chunkRows(%d) sizes mismatch (-want +got):\n%s", tt.rows, diff)
		}
	}
}

// TestInsertWorkoutSetsQuery verifies placeholders and args line up per row.
func TestInsertWorkoutSetsQuery(t *testing.T) {
	query, args := insertWorkoutSetsQuery(make([]models.WorkoutSetRow, 2))
	if len(args) != 2*workoutSetColumns {
		t.Errorf("args = %d, want %d", len(args), 2*workoutSetColumns)
	}
	if !strings.Contains(query, "($15,") || strings.Contains(query, "$29") {
		t.Errorf("query placeholders wrong: %s", query)
	}
	if !strings.HasSuffix(query, "ON CONFLICT DO NOTHING") {
		t.Errorf("query = %s, want ON CONFLICT DO NOTHING suffix", query)
	}
}
