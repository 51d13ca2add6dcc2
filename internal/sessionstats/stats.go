package sessionstats

import (
	"math"

	"github.com/claude/repsense/internal/workout"
)

// Result is the normalized summary of one session.
type Result struct {
	DurationSec    float64 `json:"durationSec"`
	Calories       float64 `json:"calories"`
	VolumeKg       float64 `json:"volumeKg"`
	TotalExercises int     `json:"totalExercises"`
	ExercisesDone  int     `json:"exercisesDone"`
	PercentDone    int     `json:"percentDone"`
	CardioPct      int     `json:"cardioPct"`
	MuscuPct       int     `json:"muscuPct"`
	CardioEntries  int     `json:"cardioEntries"`
	BodyMassKg     float64 `json:"bodyMassKg"`
	Delta          *Delta  `json:"delta"`
}

// Delta is the signed difference against the previous session.
type Delta struct {
	DurationSec float64 `json:"durationSec"`
	VolumeKg    float64 `json:"volumeKg"`
}

// AsPrevious returns the fields a later session compares against.
func (r Result) AsPrevious() Previous {
	return Previous{DurationSec: r.DurationSec, VolumeKg: r.VolumeKg}
}

// ComputeFields is Compute over the loose session, items and options objects.
func ComputeFields(session workout.Fields, items []workout.Fields, opts workout.Fields) Result {
	return Compute(FromFields(session, items, opts))
}

// Compute summarizes a session. It never fails: missing or malformed data
// degrades to zero values, and explicit duration or calories above zero are
// returned verbatim.
func Compute(in Input) Result {
	entries := ReconcileEntries(in.Entries, in.Items)
	mass := in.BodyMass.Resolve()

	var cardio, done int
	var volume, estimated, kcal float64
	for _, e := range entries {
		kind := resolveKind(e, in.KindHint)
		if kind == workout.KindCardio {
			cardio++
		}
		if e.Done() {
			done++
		}
		for _, s := range e.Sets {
			if !s.Filled() {
				continue
			}
			if kind != workout.KindCardio {
				// reps of 0 count as 1 so a weight-only set still registers
				volume += s.Weight() * float64(max(1, s.RepCount()))
			}
			estimated += SetDurationSec(kind, s)
			kcal += SetCalories(kind, s, mass)
		}
	}

	res := Result{BodyMassKg: mass, CardioEntries: cardio}
	res.TotalExercises, res.ExercisesDone = ReconcileCounts(len(entries), done, in.ClientSummary)
	res.PercentDone = percent(res.ExercisesDone, res.TotalExercises)
	if len(entries) > 0 {
		res.CardioPct = percent(cardio, len(entries))
		res.MuscuPct = 100 - res.CardioPct
	}

	res.VolumeKg = workout.Finite(workout.RoundHalfUp(volume))
	if in.DurationSec > 0 && !math.IsInf(in.DurationSec, 0) {
		res.DurationSec = in.DurationSec
	} else {
		res.DurationSec = workout.Finite(estimated)
	}
	if in.Calories > 0 && !math.IsInf(in.Calories, 0) {
		res.Calories = in.Calories
	} else {
		res.Calories = workout.Finite(workout.RoundHalfUp(math.Max(0, kcal)))
	}

	if in.Previous != nil {
		res.Delta = &Delta{
			DurationSec: workout.Finite(res.DurationSec - in.Previous.DurationSec),
			VolumeKg:    workout.Finite(res.VolumeKg - in.Previous.VolumeKg),
		}
	}
	return res
}

// resolveKind infers a kind for entries built without one.
func resolveKind(e workout.Entry, hint workout.Kind) workout.Kind {
	if e.Kind != "" {
		return e.Kind
	}
	shape := workout.Shape{StrengthSets: len(e.Sets)}
	for _, s := range e.Sets {
		if s.Weight() > 0 {
			shape.AnyWeight = true
		}
	}
	return workout.InferKind(shape, hint)
}

// percent returns round(100·part/whole), 0 when whole is 0.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(workout.RoundHalfUp(100 * float64(part) / float64(whole)))
}
