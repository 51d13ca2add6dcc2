package progression

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestIsNewRecord verifies each record type and the order they are checked in.
func TestIsNewRecord(t *testing.T) {
	h := History{Last: sets(Perf{WeightKg: 50, Reps: 10})}
	tests := []struct {
		name    string
		current Perf
		want    Record
		ok      bool
	}{
		{"more reps same weight", Perf{50, 11}, Record{Type: RecordReps, Diff: 1}, true},
		{"more weight with 6 reps", Perf{52.5, 6}, Record{Type: RecordWeight, Diff: 2.5}, true},
		{"more weight too few reps", Perf{52.5, 5}, Record{}, false},
		{"volume above 5 percent", Perf{45, 13}, Record{Type: RecordVolume, Diff: 85}, true},
		{"volume within 5 percent", Perf{45, 11}, Record{}, false},
		{"equal", Perf{50, 10}, Record{}, false},
		{"missing reps", Perf{60, 0}, Record{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IsNewRecord(tt.current, h)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, ok := IsNewRecord(Perf{50, 11}, History{}); ok {
		t.Error("record without history, want none")
	}
}

// TestCalculateDifference verifies the comparison uses the last set, not the
// best one.
func TestCalculateDifference(t *testing.T) {
	h := History{Last: sets(Perf{60, 10}, Perf{50, 8})}
	got, ok := CalculateDifference(Perf{52.5, 9}, h)
	if !ok {
		t.Fatal("no difference")
	}
	if want := (Difference{WeightDiff: 2.5, RepsDiff: 1}); got != want {
		t.Errorf("difference = %+v, want %+v", got, want)
	}
	if _, ok := CalculateDifference(Perf{}, h); ok {
		t.Error("difference for an empty set, want none")
	}
	if _, ok := CalculateDifference(Perf{50, 8}, History{Last: sets()}); ok {
		t.Error("difference without sets, want none")
	}
}

// TestSuggestRepsChallengeFatigue verifies same-session fatigue comes before
// goal challenges.
func TestSuggestRepsChallengeFatigue(t *testing.T) {
	h := History{Last: sets(Perf{50, 10})}
	today := []Perf{{50, 10}, {50, 8}}

	got, ok := SuggestRepsChallenge(Perf{50, 8}, h, 1, today, "Rowing")
	if !ok || got.Type != ChallengeNormalFatigue || got.RepsDrop != 2 {
		t.Errorf("challenge = %+v, want normal fatigue drop 2", got)
	}
	got, _ = SuggestRepsChallenge(Perf{50, 5}, h, 1, today, "Rowing")
	if got.Type != ChallengeRestLonger || got.RepsDrop != 5 {
		t.Errorf("challenge = %+v, want rest longer drop 5", got)
	}
	got, _ = SuggestRepsChallenge(Perf{55, 8}, h, 1, today, "Rowing")
	if got.Type == ChallengeNormalFatigue || got.Type == ChallengeRestLonger {
		t.Errorf("weight change should not read as fatigue, got %s", got.Type)
	}
}

// TestSuggestRepsChallengeGoals verifies the per-goal rep targets and the
// switch to a weight increase at the top of each ladder.
func TestSuggestRepsChallengeGoals(t *testing.T) {
	tests := []struct {
		name    string
		last    Perf
		current Perf
		want    Challenge
	}{
		{"hypertrophy toward 12", Perf{50, 10}, Perf{50, 10}, Challenge{Type: ChallengeReps, Goal: GoalHypertrophy, TargetReps: i(12)}},
		{"hypertrophy done", Perf{50, 10}, Perf{50, 12}, Challenge{Type: ChallengeWeightIncrease, Goal: GoalHypertrophy, TargetWeightKg: f(52.5)}},
		{"endurance step", Perf{20, 18}, Perf{20, 22}, Challenge{Type: ChallengeReps, Goal: GoalEndurance, TargetReps: i(25)}},
		{"endurance top", Perf{20, 18}, Perf{20, 50}, Challenge{Type: ChallengeWeightIncrease, Goal: GoalEndurance, TargetWeightKg: f(22.5)}},
		{"strength step", Perf{100, 3}, Perf{100, 4}, Challenge{Type: ChallengeReps, Goal: GoalStrength, TargetReps: i(5)}},
		{"strength done", Perf{100, 3}, Perf{100, 6}, Challenge{Type: ChallengeWeightIncrease, Goal: GoalStrength, TargetWeightKg: f(102.5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SuggestRepsChallenge(tt.current, History{Last: sets(tt.last)}, 0, nil, "Rowing")
			if !ok {
				t.Fatal("no challenge")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("challenge mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestSuggestRepsChallengeNone verifies the cases that show nothing.
func TestSuggestRepsChallengeNone(t *testing.T) {
	h := History{Last: sets(Perf{50, 10})}
	if _, ok := SuggestRepsChallenge(Perf{40, 10}, h, 0, nil, "Rowing"); ok {
		t.Error("challenge below last best weight, want none")
	}
	if _, ok := SuggestRepsChallenge(Perf{50, 0}, h, 0, nil, "Rowing"); ok {
		t.Error("challenge without reps, want none")
	}
	if _, ok := SuggestRepsChallenge(Perf{50, 10}, History{}, 0, nil, "Rowing"); ok {
		t.Error("challenge without history, want none")
	}
	got, ok := SuggestRepsChallenge(Perf{600, 5}, h, 3, nil, "Rowing")
	if !ok || got.Type != ChallengeUnusualValues || !got.IsError {
		t.Errorf("outlier = %+v, want unusual values", got)
	}
}
