package progression

import "math"

// Reason identifies the rule that produced a suggestion.
type Reason string

const (
	ReasonHypertrophyTopOfRange Reason = "hypertrophy_top_of_range"
	ReasonHypertrophyRepsUp     Reason = "hypertrophy_reps_up"
	ReasonHypertrophyWeightUp   Reason = "hypertrophy_weight_up"
	ReasonEnduranceRepsUp       Reason = "endurance_reps_up"
	ReasonStrengthTopOfRange    Reason = "strength_top_of_range"
	ReasonStrengthBuildReps     Reason = "strength_build_reps"
	ReasonDataEntryError        Reason = "data_entry_error"
	ReasonRepsJump              Reason = "reps_jump"
	ReasonWeightUpHold          Reason = "weight_up_hold"
	ReasonDeload                Reason = "deload"
	ReasonStagnation            Reason = "stagnation"
	ReasonKeepGoing             Reason = "keep_going"
	ReasonFirstHypertrophyTop   Reason = "first_hypertrophy_top"
	ReasonFirstHypertrophyBuild Reason = "first_hypertrophy_build"
	ReasonFirstEndurance        Reason = "first_endurance"
	ReasonFirstStrengthTop      Reason = "first_strength_top"
	ReasonFirstStrengthBuild    Reason = "first_strength_build"
	ReasonBodyweightImproved    Reason = "bodyweight_improved"
	ReasonBodyweightKeep        Reason = "bodyweight_keep"
	ReasonBodyweightFirst       Reason = "bodyweight_first"
	ReasonUnusualValues         Reason = "unusual_values"
)

const (
	hypertrophyTopReps   = 12
	hypertrophyResetReps = 8
	strengthTopReps      = 5
	strengthResetReps    = 3
	enduranceRepsStep    = 3
	deloadFactor         = 0.8
	errorIncrementFactor = 3
	errorRepsJump        = 10
)

// rule is one row of a decision table: when the predicate holds, the outcome
// is returned and evaluation stops.
type rule struct {
	reason Reason
	when   func(c comparison) bool
	then   func(c comparison, r Reason) Suggestion
}

func always(comparison) bool { return true }

func firstMatch(rules []rule, c comparison) (Suggestion, bool) {
	for _, r := range rules {
		if r.when(c) {
			return r.then(c, r.reason), true
		}
	}
	return Suggestion{}, false
}

// evaluate runs a table and falls back to a plain "keep going" hold.
func evaluate(rules []rule, c comparison) Suggestion {
	if s, ok := firstMatch(rules, c); ok {
		return s
	}
	return keepGoing(c, ReasonKeepGoing)
}

func keepGoing(c comparison, r Reason) Suggestion {
	return c.target(r, TypeKeepGoing, c.last.WeightKg, c.last.Reps)
}

func towardHypertrophyTop(reps int) int {
	return min(hypertrophyTopReps, reps+1)
}

// goalRules apply when both sessions have a best set. A goal whose rules all
// fall through continues with fallbackRules. The strength table ends in an
// always rule and hypertrophy matches any weight increase, so for those the
// data-entry guard in fallbackRules never sees a weight jump.
var goalRules = map[Goal][]rule{
	GoalHypertrophy: {
		{
			reason: ReasonHypertrophyTopOfRange,
			when: func(c comparison) bool {
				return c.sameWeight() && c.last.Reps >= hypertrophyTopReps
			},
			then: func(c comparison, r Reason) Suggestion {
				return c.progress(r, TypeWeightIncrease, c.last.WeightKg+c.increment, hypertrophyResetReps)
			},
		},
		{
			reason: ReasonHypertrophyRepsUp,
			when: func(c comparison) bool {
				return c.sameWeight() && c.repsDiff >= 1 && c.last.Reps < hypertrophyTopReps
			},
			then: func(c comparison, r Reason) Suggestion {
				return c.target(r, TypeRepsIncrease, c.last.WeightKg, towardHypertrophyTop(c.last.Reps))
			},
		},
		{
			reason: ReasonHypertrophyWeightUp,
			when:   func(c comparison) bool { return c.weightUp() },
			then: func(c comparison, r Reason) Suggestion {
				return c.target(r, TypeHold, c.last.WeightKg, towardHypertrophyTop(c.last.Reps))
			},
		},
	},
	GoalEndurance: {
		{
			reason: ReasonEnduranceRepsUp,
			when:   func(c comparison) bool { return c.sameWeight() && c.repsDiff >= 2 },
			then: func(c comparison, r Reason) Suggestion {
				return c.target(r, TypeRepsIncrease, c.last.WeightKg, c.last.Reps+enduranceRepsStep)
			},
		},
	},
	GoalStrength: {
		{
			reason: ReasonStrengthTopOfRange,
			when:   func(c comparison) bool { return c.last.Reps >= strengthTopReps },
			then: func(c comparison, r Reason) Suggestion {
				return c.progress(r, TypeStrengthIncrease, c.last.WeightKg+c.increment, strengthResetReps)
			},
		},
		{
			reason: ReasonStrengthBuildReps,
			when:   always,
			then: func(c comparison, r Reason) Suggestion {
				return c.target(r, TypeRepsIncrease, c.last.WeightKg, strengthTopReps)
			},
		},
	},
}

// fallbackRules run when the goal rules did not match. The data-entry guard
// is checked first.
var fallbackRules = []rule{
	{
		reason: ReasonDataEntryError,
		when: func(c comparison) bool {
			return math.Abs(c.weightDiff) > c.increment*errorIncrementFactor || abs(c.repsDiff) > errorRepsJump
		},
		then: func(c comparison, r Reason) Suggestion {
			s := c.base(r, TypeDataError)
			s.IsError = true
			return s
		},
	},
	{
		reason: ReasonRepsJump,
		when:   func(c comparison) bool { return c.sameWeight() && c.repsDiff >= 2 },
		then: func(c comparison, r Reason) Suggestion {
			return c.progress(r, TypeWeightIncrease, c.last.WeightKg+c.increment, max(hypertrophyResetReps, c.last.Reps-4))
		},
	},
	{
		reason: ReasonWeightUpHold,
		when:   func(c comparison) bool { return c.weightUp() && c.repsDiff >= -2 },
		then: func(c comparison, r Reason) Suggestion {
			return c.target(r, TypeHold, c.last.WeightKg, c.last.Reps)
		},
	},
	{
		reason: ReasonDeload,
		when:   func(c comparison) bool { return c.sameWeight() && c.repsDiff < -2 },
		then: func(c comparison, r Reason) Suggestion {
			s := c.target(r, TypeDeload, roundToHalf(c.last.WeightKg*deloadFactor), c.last.Reps)
			s.IsDeload = true
			return s
		},
	},
	{
		reason: ReasonStagnation,
		when:   func(c comparison) bool { return c.sameWeight() && c.repsDiff <= 0 },
		then: func(c comparison, r Reason) Suggestion {
			return c.target(r, TypeStagnation, c.last.WeightKg, c.last.Reps)
		},
	},
}

// firstSessionRules apply the goal thresholds to the last session alone.
var firstSessionRules = map[Goal][]rule{
	GoalHypertrophy: {
		{
			reason: ReasonFirstHypertrophyTop,
			when:   func(c comparison) bool { return c.last.Reps >= hypertrophyTopReps },
			then: func(c comparison, r Reason) Suggestion {
				return c.progress(r, TypeWeightIncrease, c.last.WeightKg+c.increment, hypertrophyResetReps)
			},
		},
		{
			reason: ReasonFirstHypertrophyBuild,
			when:   always,
			then: func(c comparison, r Reason) Suggestion {
				return c.target(r, TypeRepsIncrease, c.last.WeightKg, towardHypertrophyTop(c.last.Reps))
			},
		},
	},
	GoalEndurance: {
		{
			reason: ReasonFirstEndurance,
			when:   always,
			then: func(c comparison, r Reason) Suggestion {
				return c.target(r, TypeRepsIncrease, c.last.WeightKg, c.last.Reps+enduranceRepsStep)
			},
		},
	},
	GoalStrength: {
		{
			reason: ReasonFirstStrengthTop,
			when:   func(c comparison) bool { return c.last.Reps >= strengthTopReps },
			then: func(c comparison, r Reason) Suggestion {
				return c.progress(r, TypeStrengthIncrease, c.last.WeightKg+c.increment, strengthResetReps)
			},
		},
		{
			reason: ReasonFirstStrengthBuild,
			when:   always,
			then: func(c comparison, r Reason) Suggestion {
				return c.target(r, TypeRepsIncrease, c.last.WeightKg, strengthTopReps)
			},
		},
	},
}

// bodyweightRules only ever suggest reps.
var bodyweightRules = []rule{
	{
		reason: ReasonBodyweightImproved,
		when:   func(c comparison) bool { return c.prev != nil && c.repsDiff > 0 },
		then: func(c comparison, r Reason) Suggestion {
			return c.progress(r, TypeRepsIncrease, 0, c.last.Reps+1)
		},
	},
	{
		reason: ReasonBodyweightKeep,
		when:   func(c comparison) bool { return c.prev != nil },
		then: func(c comparison, r Reason) Suggestion {
			return c.target(r, TypeKeepGoing, 0, c.last.Reps+1)
		},
	},
	{
		reason: ReasonBodyweightFirst,
		when:   always,
		then: func(c comparison, r Reason) Suggestion {
			return c.target(r, TypeRepsIncrease, 0, c.last.Reps+1)
		},
	},
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
