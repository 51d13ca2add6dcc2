package progression

import (
	"math"

	"github.com/claude/repsense/internal/ptr"
)

// RecordType tells which personal best a set beat.
type RecordType string

const (
	RecordReps   RecordType = "reps"
	RecordWeight RecordType = "weight"
	RecordVolume RecordType = "volume"
)

const (
	recordMinRepsForWeight = 6
	recordVolumeMargin     = 1.05
)

// Record is a new-best signal for the set being logged.
type Record struct {
	Type RecordType `json:"type"`
	Diff float64    `json:"diff"`
}

// IsNewRecord compares the set being logged against the last session's best
// set: same weight with more reps, more weight with at least 6 reps, or more
// than 5% extra volume, checked in that order.
func IsNewRecord(current Perf, h History) (Record, bool) {
	if current.WeightKg <= 0 || current.Reps <= 0 || h.Last == nil {
		return Record{}, false
	}
	best, ok := BestSet(h.Last.Sets, false)
	if !ok {
		return Record{}, false
	}
	diff := current.WeightKg - best.WeightKg
	switch {
	case math.Abs(diff) < weightTolerance && current.Reps > best.Reps:
		return Record{Type: RecordReps, Diff: float64(current.Reps - best.Reps)}, true
	case diff >= weightTolerance && current.Reps >= recordMinRepsForWeight:
		return Record{Type: RecordWeight, Diff: diff}, true
	case current.Volume() > best.Volume()*recordVolumeMargin:
		return Record{Type: RecordVolume, Diff: current.Volume() - best.Volume()}, true
	}
	return Record{}, false
}

// Difference is the signed change against the last set of the last session.
type Difference struct {
	WeightDiff float64 `json:"weightDiff"`
	RepsDiff   int     `json:"repsDiff"`
}

// CalculateDifference compares the set being logged to the final set of the
// last session.
func CalculateDifference(current Perf, h History) (Difference, bool) {
	if current.WeightKg <= 0 || current.Reps <= 0 || h.Last == nil || len(h.Last.Sets) == 0 {
		return Difference{}, false
	}
	ref := h.Last.Sets[len(h.Last.Sets)-1]
	return Difference{
		WeightDiff: current.WeightKg - ref.WeightKg,
		RepsDiff:   current.Reps - ref.Reps,
	}, true
}

// ChallengeType tags a live-entry advisory.
type ChallengeType string

const (
	ChallengeUnusualValues  ChallengeType = "unusual_values"
	ChallengeNormalFatigue  ChallengeType = "normal_fatigue"
	ChallengeRestLonger     ChallengeType = "rest_longer"
	ChallengeReps           ChallengeType = "reps_challenge"
	ChallengeWeightIncrease ChallengeType = "weight_increase"
)

const maxNormalFatigueDrop = 3

var (
	enduranceRepSteps = []int{15, 20, 25, 30, 40, 50}
	strengthRepSteps  = []int{3, 5, 6}
)

// Challenge is the advisory shown while a set is being logged.
type Challenge struct {
	Type           ChallengeType `json:"type"`
	Goal           Goal          `json:"goal,omitempty"`
	TargetReps     *int          `json:"targetReps,omitempty"`
	TargetWeightKg *float64      `json:"targetWeightKg,omitempty"`
	RepsDrop       int           `json:"repsDrop,omitempty"`
	IsError        bool          `json:"isError,omitempty"`
}

// SuggestRepsChallenge returns a same-session fatigue note when the set
// dropped reps at the weight of the set before it, otherwise a goal-specific
// target once the current weight reaches the last session's best.
// sessionSets are the sets already logged today and setIndex is the current
// set's position among them.
func SuggestRepsChallenge(current Perf, h History, setIndex int, sessionSets []Perf, exerciseName string) (Challenge, bool) {
	if current.WeightKg <= 0 || current.Reps <= 0 {
		return Challenge{}, false
	}
	if isOutlier(current) {
		return Challenge{Type: ChallengeUnusualValues, IsError: true}, true
	}

	if setIndex > 0 && setIndex-1 < len(sessionSets) {
		before := sessionSets[setIndex-1]
		drop := before.Reps - current.Reps
		if math.Abs(before.WeightKg-current.WeightKg) < weightTolerance && drop > 0 {
			if drop <= maxNormalFatigueDrop {
				return Challenge{Type: ChallengeNormalFatigue, RepsDrop: drop}, true
			}
			return Challenge{Type: ChallengeRestLonger, RepsDrop: drop}, true
		}
	}

	if h.Last == nil {
		return Challenge{}, false
	}
	best, ok := BestSet(h.Last.Sets, false)
	if !ok || current.WeightKg < best.WeightKg-weightTolerance {
		return Challenge{}, false
	}

	goal := DetectTrainingGoal(h)
	next := current.WeightKg + Increment(exerciseName)
	switch goal {
	case GoalHypertrophy:
		if current.Reps < hypertrophyTopReps {
			return repsChallenge(goal, hypertrophyTopReps), true
		}
	case GoalEndurance:
		if step, ok := nextStep(enduranceRepSteps, current.Reps); ok {
			return repsChallenge(goal, step), true
		}
	case GoalStrength:
		if step, ok := nextStep(strengthRepSteps, current.Reps); ok {
			return repsChallenge(goal, step), true
		}
	}
	return Challenge{Type: ChallengeWeightIncrease, Goal: goal, TargetWeightKg: ptr.Ref(next)}, true
}

func repsChallenge(goal Goal, reps int) Challenge {
	return Challenge{Type: ChallengeReps, Goal: goal, TargetReps: ptr.Ref(reps)}
}

// nextStep returns the first step above reps.
func nextStep(steps []int, reps int) (int, bool) {
	for _, s := range steps {
		if s > reps {
			return s, true
		}
	}
	return 0, false
}
