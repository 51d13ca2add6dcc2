// Package progression suggests the next target weight and reps for an
// exercise from its last two recorded sessions.
package progression

import (
	"math"

	"github.com/claude/repsense/internal/ptr"
	"github.com/claude/repsense/internal/workout"
)

// Goal is the training goal inferred from the rep ranges a user works in.
type Goal string

const (
	GoalStrength    Goal = "strength"
	GoalHypertrophy Goal = "hypertrophy"
	GoalEndurance   Goal = "endurance"
)

// Type tags the kind of suggestion, independent of the rule that produced it.
type Type string

const (
	TypeWeightIncrease   Type = "weight_increase"
	TypeStrengthIncrease Type = "strength_increase"
	TypeRepsIncrease     Type = "reps_increase"
	TypeHold             Type = "hold"
	TypeStagnation       Type = "stagnation"
	TypeDeload           Type = "deload"
	TypeDataError        Type = "data_error"
	TypeUnusualValues    Type = "unusual_values"
	TypeKeepGoing        Type = "keep_going"
)

const (
	maxPlausibleWeightKg = 500.0
	maxPlausibleReps     = 100

	// weightTolerance absorbs float noise from 2.5 kg steps and parsed strings.
	weightTolerance = 0.01
)

// Perf is one performed set reduced to what progression compares.
type Perf struct {
	WeightKg float64 `json:"weightKg"`
	Reps     int     `json:"reps"`
}

// Volume returns weight × reps.
func (p Perf) Volume() float64 { return p.WeightKg * float64(p.Reps) }

// Session holds every set of one exercise in one session, in order.
type Session struct {
	Sets []Perf `json:"allSets"`
}

// History is the last and, optionally, the previous session of an exercise.
type History struct {
	Last     *Session `json:"last,omitempty"`
	Previous *Session `json:"previous,omitempty"`
}

// Suggestion is the structured next-session advice. WeightKg is nil for
// bodyweight exercises and when a data-entry error was detected; the message
// shown to the user is derived from Reason and the numbers.
type Suggestion struct {
	Goal          Goal     `json:"goal"`
	WeightKg      *float64 `json:"weight,omitempty"`
	Reps          *int     `json:"reps,omitempty"`
	IsProgression bool     `json:"isProgression"`
	Type          Type     `json:"progressionType"`
	IsDeload      bool     `json:"isDeload,omitempty"`
	IsError       bool     `json:"isError,omitempty"`
	Reason        Reason   `json:"reason"`
	Increment     float64  `json:"increment,omitempty"`
	Best          Perf     `json:"best"`
	PreviousBest  *Perf    `json:"previousBest,omitempty"`
	WeightDiff    float64  `json:"weightDiff"`
	RepsDiff      int      `json:"repsDiff"`
}

// Calculate returns the suggestion for the next session. It reports false
// when the last session has no usable set: weight and reps above zero, or
// reps above zero for a bodyweight exercise.
func Calculate(h History, isBodyweight bool, exerciseName string) (Suggestion, bool) {
	if h.Last == nil {
		return Suggestion{}, false
	}
	best, ok := BestSet(h.Last.Sets, isBodyweight)
	if !ok {
		return Suggestion{}, false
	}

	c := comparison{
		goal:       DetectTrainingGoal(h),
		last:       best,
		increment:  Increment(exerciseName),
		bodyweight: isBodyweight,
	}
	if h.Previous != nil {
		if prev, ok := BestSet(h.Previous.Sets, isBodyweight); ok {
			c.prev = &prev
			c.weightDiff = best.WeightKg - prev.WeightKg
			c.repsDiff = best.Reps - prev.Reps
		}
	}

	if isOutlier(best) {
		return c.unusual(), true
	}
	return c.decide(), true
}

func isOutlier(p Perf) bool {
	return p.WeightKg > maxPlausibleWeightKg || p.Reps > maxPlausibleReps
}

// comparison is what every rule predicate and outcome sees.
type comparison struct {
	goal       Goal
	last       Perf
	prev       *Perf
	weightDiff float64
	repsDiff   int
	increment  float64
	bodyweight bool
}

func (c comparison) sameWeight() bool { return math.Abs(c.weightDiff) < weightTolerance }
func (c comparison) weightUp() bool { return c.weightDiff >= weightTolerance }

func (c comparison) decide() Suggestion {
	if c.bodyweight {
		return evaluate(bodyweightRules, c)
	}
	if c.prev == nil {
		return evaluate(firstSessionRules[c.goal], c)
	}
	if s, ok := firstMatch(goalRules[c.goal], c); ok {
		return s
	}
	return evaluate(fallbackRules, c)
}

// base fills the fields every suggestion carries.
func (c comparison) base(reason Reason, t Type) Suggestion {
	s := Suggestion{
		Goal:       c.goal,
		Type:       t,
		Reason:     reason,
		Increment:  c.increment,
		Best:       c.last,
		WeightDiff: c.weightDiff,
		RepsDiff:   c.repsDiff,
	}
	if c.prev != nil {
		s.PreviousBest = ptr.Ref(*c.prev)
	}
	if c.bodyweight {
		s.Increment = 0
	}
	return s
}

// target builds a suggestion with numbers. Bodyweight suggestions never carry
// a weight.
func (c comparison) target(reason Reason, t Type, weightKg float64, reps int) Suggestion {
	s := c.base(reason, t)
	if !c.bodyweight {
		s.WeightKg = ptr.Ref(weightKg)
	}
	s.Reps = ptr.Ref(reps)
	return s
}

func (c comparison) progress(reason Reason, t Type, weightKg float64, reps int) Suggestion {
	s := c.target(reason, t, weightKg, reps)
	s.IsProgression = true
	return s
}

func (c comparison) unusual() Suggestion {
	s := c.target(ReasonUnusualValues, TypeUnusualValues, c.last.WeightKg, c.last.Reps)
	s.IsError = true
	return s
}

// roundToHalf rounds a weight to the nearest 0.5 kg plate step.
func roundToHalf(kg float64) float64 {
	return workout.RoundHalfUp(kg*2) / 2
}
