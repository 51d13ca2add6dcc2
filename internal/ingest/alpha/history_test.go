package alpha

import (
	"strings"
	"testing"

	"github.com/claude/repsense/internal/progression"
	"github.com/claude/repsense/internal/workout"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T) []Session {
	t.Helper()
	sessions, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return sessions
}

// TestEntries verifies warmups are dropped and +N exercises become bodyweight.
func TestEntries(t *testing.T) {
	entries := mustParse(t)[0].Entries()
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	if entries[0].Kind != workout.KindStrength || len(entries[0].Sets) != 3 {
		t.Errorf("bench = %s with %d sets, want strength with 3", entries[0].Kind, len(entries[0].Sets))
	}
	if got := entries[0].Sets[2].Weight(); got != 77.5 {
		t.Errorf("bench set 3 weight = %v, want 77.5", got)
	}
	if entries[1].Kind != workout.KindBodyweight {
		t.Errorf("pull-ups kind = %s, want bodyweight", entries[1].Kind)
	}
	if got := entries[1].Sets[1].RepCount(); got != 8 {
		t.Errorf("pull-ups set 2 reps = %d, want 8", got)
	}
}

// TestEntriesZeroWeightLeftUnset verifies +0 sets carry reps but no weight.
func TestEntriesZeroWeightLeftUnset(t *testing.T) {
	s := Session{Exercises: []Exercise{{
		Name: "Dips",
		Sets: []Set{{Number: 1, IsBodyweightPlus: true, Reps: 12}},
	}}}
	e := s.Entries()[0]
	if e.Sets[0].WeightKg != nil {
		t.Errorf("WeightKg = %v, want nil", *e.Sets[0].WeightKg)
	}
}

// TestStatsInput verifies the recorded duration is carried into the stats input.
func TestStatsInput(t *testing.T) {
	in := mustParse(t)[0].StatsInput()
	if in.DurationSec != 3480 {
		t.Errorf("DurationSec = %v, want 3480", in.DurationSec)
	}
	if len(in.Entries) != 3 {
		t.Errorf("entries = %d, want 3", len(in.Entries))
	}
}

// TestHistoryFor verifies the two most recent sessions are picked by date,
// matching names regardless of case and accents.
func TestHistoryFor(t *testing.T) {
	sessions := mustParse(t)
	// Reverse order to exercise the date sort.
	sessions[0], sessions[1] = sessions[1], sessions[0]

	h, bodyweight := HistoryFor(sessions, "BENCH PRÉSS")
	want := progression.History{
		Last: &progression.Session{Sets: []progression.Perf{
			{WeightKg: 80, Reps: 8}, {WeightKg: 80, Reps: 8}, {WeightKg: 77.5, Reps: 9},
		}},
		Previous: &progression.Session{Sets: []progression.Perf{
			{WeightKg: 77.5, Reps: 8}, {WeightKg: 77.5, Reps: 8},
		}},
	}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Errorf("HistoryFor mismatch (-want +got):\n%s", diff)
	}
	if bodyweight {
		t.Error("bodyweight = true, want false")
	}
}

// TestHistoryForSingleAndMissing covers one matching session and none.
func TestHistoryForSingleAndMissing(t *testing.T) {
	sessions := mustParse(t)

	h, bodyweight := HistoryFor(sessions, "pull-ups")
	if h.Last == nil || h.Previous != nil {
		t.Fatalf("pull-ups history = %+v, want last only", h)
	}
	if !bodyweight {
		t.Error("pull-ups bodyweight = false, want true")
	}

	h, _ = HistoryFor(sessions, "Squat")
	if h.Last != nil {
		t.Errorf("squat history = %+v, want empty", h)
	}
}

// TestLatest verifies the newest session wins regardless of file order.
func TestLatest(t *testing.T) {
	sessions := mustParse(t)
	sessions[0], sessions[1] = sessions[1], sessions[0]

	got, ok := Latest(sessions)
	if !ok {
		t.Fatal("Latest reported no session")
	}
	if got.Date.Day() != 10 {
		t.Errorf("latest day = %d, want 10", got.Date.Day())
	}
	if _, ok := Latest(nil); ok {
		t.Error("Latest(nil) reported a session")
	}
}
