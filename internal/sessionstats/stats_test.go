package sessionstats

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/claude/repsense/internal/ptr"
	"github.com/claude/repsense/internal/workout"
)

func decode(t *testing.T, s string) workout.Fields {
	t.Helper()
	var f workout.Fields
	if err := json.Unmarshal([]byte(s), &f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return f
}

func strengthEntry(name string, sets ...workout.Set) workout.Entry {
	return workout.Entry{Name: name, Kind: workout.KindStrength, Sets: sets}
}

// TestComputeEndToEnd covers the reference session: one fully logged entry
// (3×10 @ 50 kg) and one entry with only empty sets, for an 80 kg user.
func TestComputeEndToEnd(t *testing.T) {
	in := Input{
		Entries: []workout.Entry{
			strengthEntry("Squat", workout.StrengthSet(50, 10), workout.StrengthSet(50, 10), workout.StrengthSet(50, 10)),
			strengthEntry("Leg curl", workout.Set{}, workout.Set{}),
		},
		BodyMass: BodyMass{Override: ptr.Ref(80.0)},
	}
	got := Compute(in)
	want := Result{
		DurationSec:    360,
		Calories:       34, // 3 sets × MET 4.0 × 3.5 × 80 / 200 × 2 min = 33.6
		VolumeKg:       1500,
		TotalExercises: 2,
		ExercisesDone:  1,
		PercentDone:    50,
		CardioPct:      0,
		MuscuPct:       100,
		BodyMassKg:     80,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compute mismatch (-want +got):\n%s", diff)
	}
}

// TestComputeEmptyInput verifies that empty input never yields NaN or Inf
// and that counts and splits are zero.
func TestComputeEmptyInput(t *testing.T) {
	for _, res := range []Result{
		Compute(Input{}),
		ComputeFields(workout.Fields{}, nil, nil),
		ComputeFields(nil, []workout.Fields{}, workout.Fields{}),
		ComputeFields(decode(t, `{"entries": [], "durationSec": "garbage", "calories": null}`), nil, nil),
	} {
		for name, v := range map[string]float64{
			"durationSec": res.DurationSec,
			"calories":    res.Calories,
			"volumeKg":    res.VolumeKg,
		} {
			if math.IsNaN(v) || math.IsInf(v, 0) || v != 0 {
				t.Errorf("%s = %v, want 0", name, v)
			}
		}
		if res.TotalExercises != 0 || res.PercentDone != 0 || res.CardioPct != 0 || res.MuscuPct != 0 {
			t.Errorf("counts = %+v, want zeros", res)
		}
		if res.Delta != nil {
			t.Errorf("delta = %+v, want nil", res.Delta)
		}
	}
}

// TestExplicitValuesWin verifies explicit duration and calories are echoed.
func TestExplicitValuesWin(t *testing.T) {
	in := Input{
		Entries:     []workout.Entry{strengthEntry("Bench", workout.StrengthSet(60, 8))},
		DurationSec: 1234.5,
		Calories:    99,
	}
	got := Compute(in)
	if got.DurationSec != 1234.5 {
		t.Errorf("durationSec = %v, want 1234.5", got.DurationSec)
	}
	if got.Calories != 99 {
		t.Errorf("calories = %v, want 99", got.Calories)
	}
}

// TestCardioCalories verifies the cardio MET formula with a labelled
// intensity and an explicit duration.
func TestCardioCalories(t *testing.T) {
	session := decode(t, `{"entries": [{"name": "Rameur", "cardioSets": [{"durationMin": 30, "intensity": "modéré"}]}]}`)
	got := ComputeFields(session, nil, workout.Fields{"bodyMassKg": 70.0})
	// 8.5 × 3.5 × 70 / 200 × 30 = 312.375
	if got.Calories != 312 {
		t.Errorf("calories = %v, want 312", got.Calories)
	}
	if got.DurationSec != 1800 {
		t.Errorf("durationSec = %v, want 1800", got.DurationSec)
	}
	if got.CardioPct != 100 || got.MuscuPct != 0 {
		t.Errorf("split = %d/%d, want 100/0", got.CardioPct, got.MuscuPct)
	}
	if got.VolumeKg != 0 {
		t.Errorf("volumeKg = %v, want 0 for cardio", got.VolumeKg)
	}
}

// TestBodyweightCalories verifies the inferred load for an unweighted set
// and the default body mass.
func TestBodyweightCalories(t *testing.T) {
	session := decode(t, `{"entries": [{"name": "Pompes", "sets": [{"reps": 20}]}]}`)
	got := ComputeFields(session, nil, nil)
	// load 0.35 × 85 = 29.75, volume/mass = 7 → +0.5, MET 5.0 → 14.875 kcal
	if got.Calories != 15 {
		t.Errorf("calories = %v, want 15", got.Calories)
	}
	if got.BodyMassKg != DefaultBodyMassKg {
		t.Errorf("bodyMassKg = %v, want %v", got.BodyMassKg, DefaultBodyMassKg)
	}
	if got.DurationSec != 120 {
		t.Errorf("durationSec = %v, want 120", got.DurationSec)
	}
}

// TestDurationFallbacks verifies per-set fallbacks: 300 s cardio, 120 s
// strength, explicit duration when present, and inert sets ignored.
func TestDurationFallbacks(t *testing.T) {
	in := Input{Entries: []workout.Entry{
		{Kind: workout.KindCardio, Sets: []workout.Set{{DistanceKm: ptr.Ref(2.0)}, {DurationSec: ptr.Ref(90.0)}}},
		strengthEntry("Row", workout.StrengthSet(40, 10), workout.Set{}),
	}}
	if got := Compute(in).DurationSec; got != 300+90+120 {
		t.Errorf("durationSec = %v, want 510", got)
	}
}

// TestVolumeRepsZeroCountsOnce verifies a weight-only set adds weight × 1.
func TestVolumeRepsZeroCountsOnce(t *testing.T) {
	in := Input{Entries: []workout.Entry{strengthEntry("Hold", workout.StrengthSet(42.4, 0), workout.StrengthSet(0.3, 0))}}
	if got := Compute(in).VolumeKg; got != 43 {
		t.Errorf("volumeKg = %v, want 43 (rounded once at the end)", got)
	}
}

// TestVolumePermutationInvariant verifies volume is a pure sum.
func TestVolumePermutationInvariant(t *testing.T) {
	entries := []workout.Entry{
		strengthEntry("A", workout.StrengthSet(50, 10), workout.StrengthSet(52.5, 8), workout.StrengthSet(55, 6)),
		strengthEntry("B", workout.StrengthSet(12.5, 12), workout.StrengthSet(12.5, 11)),
		{Kind: workout.KindBodyweight, Sets: []workout.Set{workout.StrengthSet(10, 7)}},
	}
	want := Compute(Input{Entries: entries}).VolumeKg

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := make([]workout.Entry, len(entries))
		for j, e := range entries {
			sets := append([]workout.Set(nil), e.Sets...)
			rng.Shuffle(len(sets), func(a, b int) { sets[a], sets[b] = sets[b], sets[a] })
			shuffled[j] = workout.Entry{Name: e.Name, Kind: e.Kind, Sets: sets}
		}
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		if got := Compute(Input{Entries: shuffled}).VolumeKg; got != want {
			t.Fatalf("permutation %d: volumeKg = %v, want %v", i, got, want)
		}
	}
}

// TestClientSummaryMerge verifies the max/min merge against local counts.
func TestClientSummaryMerge(t *testing.T) {
	entries := []workout.Entry{
		strengthEntry("A", workout.StrengthSet(50, 10)),
		strengthEntry("B", workout.Set{}),
	}
	tests := []struct {
		name      string
		cs        *ClientSummary
		wantTotal int
		wantDone  int
		wantPct   int
	}{
		{"none", nil, 2, 1, 50},
		{"more planned", &ClientSummary{Planned: ptr.Ref(4), Completed: ptr.Ref(3)}, 4, 3, 75},
		{"under reporting", &ClientSummary{Planned: ptr.Ref(1), Completed: ptr.Ref(0)}, 2, 1, 50},
		{"over completed", &ClientSummary{Completed: ptr.Ref(10)}, 2, 2, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(Input{Entries: entries, ClientSummary: tt.cs})
			if got.TotalExercises != tt.wantTotal || got.ExercisesDone != tt.wantDone || got.PercentDone != tt.wantPct {
				t.Errorf("got %d/%d (%d%%), want %d/%d (%d%%)",
					got.ExercisesDone, got.TotalExercises, got.PercentDone, tt.wantDone, tt.wantTotal, tt.wantPct)
			}
			if got.ExercisesDone > got.TotalExercises {
				t.Errorf("exercisesDone %d > totalExercises %d", got.ExercisesDone, got.TotalExercises)
			}
		})
	}
}

// TestClientSummaryFromExerciseList verifies done flags are counted when no
// explicit counts are given.
func TestClientSummaryFromExerciseList(t *testing.T) {
	opts := decode(t, `{"clientSummary": {"exercises": [{"done": true}, {"done": false}, {"done": "true"}]}}`)
	got := ComputeFields(workout.Fields{}, nil, opts)
	if got.TotalExercises != 3 || got.ExercisesDone != 2 || got.PercentDone != 67 {
		t.Errorf("got %d/%d (%d%%), want 2/3 (67%%)", got.ExercisesDone, got.TotalExercises, got.PercentDone)
	}
}

// TestReconcileEntriesLargerWins verifies the larger source wins and ties go
// to the session entries.
func TestReconcileEntriesLargerWins(t *testing.T) {
	a := []workout.Entry{{Name: "a"}}
	b := []workout.Entry{{Name: "b1"}, {Name: "b2"}}
	if got := ReconcileEntries(a, b); len(got) != 2 {
		t.Errorf("expected items to win, got %d entries", len(got))
	}
	if got := ReconcileEntries(b, a); got[0].Name != "b1" {
		t.Errorf("expected entries to win, got %q", got[0].Name)
	}
	tie := []workout.Entry{{Name: "item"}}
	if got := ReconcileEntries(a, tie); got[0].Name != "a" {
		t.Errorf("tie should keep entries, got %q", got[0].Name)
	}
}

// TestItemsNotMerged verifies items replace entries wholesale.
func TestItemsNotMerged(t *testing.T) {
	session := decode(t, `{"entries": [{"type": "strength", "sets": [{"weight": 100, "reps": 5}]}]}`)
	items := []workout.Fields{
		decode(t, `{"exercise": {"name": "Squat", "type": "strength"}, "sets": [{"weightKg": 60, "reps": 5}]}`),
		decode(t, `{"exercise": {"name": "Tapis"}, "cardioSets": [{"durationMin": 10}]}`),
	}
	got := ComputeFields(session, items, nil)
	if got.VolumeKg != 300 {
		t.Errorf("volumeKg = %v, want 300 (items only)", got.VolumeKg)
	}
	if got.CardioPct != 50 || got.MuscuPct != 50 {
		t.Errorf("split = %d/%d, want 50/50", got.CardioPct, got.MuscuPct)
	}
}

// TestDelta verifies deltas against the previous session and nil without one.
func TestDelta(t *testing.T) {
	in := Input{
		Entries:     []workout.Entry{strengthEntry("A", workout.StrengthSet(100, 5))},
		DurationSec: 3000,
		Previous:    &Previous{DurationSec: 3600, VolumeKg: 400},
	}
	got := Compute(in)
	want := &Delta{DurationSec: -600, VolumeKg: 100}
	if diff := cmp.Diff(want, got.Delta); diff != "" {
		t.Errorf("delta mismatch (-want +got):\n%s", diff)
	}

	in.Previous = nil
	if got := Compute(in); got.Delta != nil {
		t.Errorf("delta = %+v, want nil", got.Delta)
	}
}

// TestFromFieldsLooseSession verifies string numbers, aliases and unknown
// fields in the session object.
func TestFromFieldsLooseSession(t *testing.T) {
	session := decode(t, `{
		"exercises": [{"name": "Curl", "sets": [{"kg": "12,5", "reps": "10"}]}],
		"durationMin": "45",
		"kcal": "310",
		"previous": {"durationSec": 2400, "volume": "100"},
		"userWeight": 72,
		"somethingElse": [1, 2, 3]
	}`)
	in := FromFields(session, nil, nil)
	if in.DurationSec != 2700 {
		t.Errorf("durationSec = %v, want 2700", in.DurationSec)
	}
	if in.Calories != 310 {
		t.Errorf("calories = %v, want 310", in.Calories)
	}
	if in.Previous == nil || in.Previous.VolumeKg != 100 {
		t.Errorf("previous = %+v, want volume 100", in.Previous)
	}
	if got := in.BodyMass.Resolve(); got != 72 {
		t.Errorf("body mass = %v, want 72", got)
	}
	if len(in.Entries) != 1 || in.Entries[0].Kind != workout.KindStrength {
		t.Fatalf("entries = %+v", in.Entries)
	}
	res := Compute(in)
	if res.VolumeKg != 125 {
		t.Errorf("volumeKg = %v, want 125", res.VolumeKg)
	}
	if res.Delta == nil || res.Delta.DurationSec != 300 || res.Delta.VolumeKg != 25 {
		t.Errorf("delta = %+v, want {300 25}", res.Delta)
	}
}

// TestKindHint verifies the caller hint applies to entries without any
// usable shape or label.
func TestKindHint(t *testing.T) {
	session := decode(t, `{"entries": [{"name": "Gainage"}]}`)
	got := ComputeFields(session, nil, workout.Fields{"kindHint": "cardio"})
	if got.CardioPct != 100 {
		t.Errorf("cardioPct = %d, want 100", got.CardioPct)
	}
}
