package progression

import (
	"strings"

	"github.com/claude/repsense/internal/workout"
)

const (
	lowerBodyIncrementKg = 5.0
	upperBodyIncrementKg = 2.5
)

// BestSet returns the set maximizing weight × reps, or reps alone for
// bodyweight exercises. Sets without reps, or without weight when weighted,
// are skipped. Ties keep the earliest set.
func BestSet(sets []Perf, bodyweight bool) (Perf, bool) {
	var best Perf
	var score float64
	found := false
	for _, s := range sets {
		if s.Reps <= 0 || (!bodyweight && s.WeightKg <= 0) {
			continue
		}
		v := s.Volume()
		if bodyweight {
			v = float64(s.Reps)
		}
		if !found || v > score {
			best, score, found = s, v, true
		}
	}
	return best, found
}

func averageReps(s *Session) (float64, bool) {
	if s == nil {
		return 0, false
	}
	var sum, n int
	for _, p := range s.Sets {
		if p.Reps > 0 {
			sum += p.Reps
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// DetectTrainingGoal buckets the average reps per set of the last session,
// averaged with the previous session's when one exists: 6 or fewer is
// strength, 15 or more is endurance, anything else hypertrophy.
func DetectTrainingGoal(h History) Goal {
	avg, ok := averageReps(h.Last)
	if !ok {
		return GoalHypertrophy
	}
	if prev, ok := averageReps(h.Previous); ok {
		avg = (avg + prev) / 2
	}
	switch {
	case avg <= 6:
		return GoalStrength
	case avg >= 15:
		return GoalEndurance
	default:
		return GoalHypertrophy
	}
}

var lowerBodyKeywords = []string{
	"squat", "jambe", "leg", "fessier", "glute", "mollet", "calf",
	"deadlift", "souleve", "presse", "press", "extension", "curl", "hack",
	"fente", "lunge", "thrust", "adducteur", "abducteur", "ischio", "quadri",
}

// IsLowerBody matches the folded exercise name against lower-body keywords.
// "press" and "curl" also match upper-body lifts such as bench press.
func IsLowerBody(name string) bool {
	folded := workout.Fold(name)
	if folded == "" {
		return false
	}
	for _, kw := range lowerBodyKeywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// Increment is the weight step for the exercise: 5 kg lower body, else 2.5 kg.
func Increment(name string) float64 {
	if IsLowerBody(name) {
		return lowerBodyIncrementKg
	}
	return upperBodyIncrementKg
}
