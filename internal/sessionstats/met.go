package sessionstats

import (
	"math"

	"github.com/claude/repsense/internal/workout"
)

const (
	cardioFallbackSec   = 300.0
	strengthFallbackSec = 120.0

	unknownCardioMET  = 7.5
	lowCardioMET      = 4.5
	moderateCardioMET = 8.5
	highCardioMET     = 12.0

	strengthBaseMET   = 3.5
	bodyweightBaseMET = 4.5
	minStrengthMET    = 3.0
	maxStrengthMET    = 8.0

	minBodyweightLoadKg = 12.0
)

// SetDurationSec returns the set's explicit duration, or the per-kind fallback
// (300 s cardio, 120 s strength and bodyweight).
func SetDurationSec(kind workout.Kind, s workout.Set) float64 {
	if d := s.Duration(); d > 0 {
		return d
	}
	if kind == workout.KindCardio {
		return cardioFallbackSec
	}
	return strengthFallbackSec
}

// IntensityToMET maps a cardio intensity to a MET value. Labels use fixed
// bands, a 1–20 numeric scale interpolates linearly between the low and high
// bands, and unknown intensity is 7.5.
func IntensityToMET(in workout.Intensity) float64 {
	switch in.Kind {
	case workout.IntensityLabel:
		switch in.Level {
		case workout.LevelLow:
			return lowCardioMET
		case workout.LevelModerate:
			return moderateCardioMET
		case workout.LevelHigh:
			return highCardioMET
		}
	case workout.IntensityNumeric:
		v := workout.Clamp(in.Value, 1, 20)
		return lowCardioMET + (v-1)/19*(highCardioMET-lowCardioMET)
	}
	return unknownCardioMET
}

// intensityMultiplier scales the strength base MET: 0.8 low, 1.0 moderate,
// 1.25 high, or a 1–10 numeric scale interpolated across the same range.
func intensityMultiplier(in workout.Intensity) float64 {
	switch in.Kind {
	case workout.IntensityLabel:
		switch in.Level {
		case workout.LevelLow:
			return 0.8
		case workout.LevelHigh:
			return 1.25
		}
		return 1.0
	case workout.IntensityNumeric:
		v := workout.Clamp(in.Value, 1, 10)
		return 0.8 + (v-1)/9*0.45
	}
	return 1.0
}

// volumeAdjustment is added to the strength MET according to how heavy the
// set was relative to body mass.
func volumeAdjustment(volumePerSet, bodyMassKg float64) float64 {
	if bodyMassKg <= 0 {
		return 0.2
	}
	ratio := volumePerSet / bodyMassKg
	switch {
	case ratio < 5:
		return 0.2
	case ratio < 10:
		return 0.5
	case ratio < 15:
		return 0.8
	case ratio < 20:
		return 1.0
	default:
		return 1.2
	}
}

// StrengthSetMET estimates the MET of one strength or bodyweight set,
// clamped to [3.0, 8.0].
func StrengthSetMET(kind workout.Kind, in workout.Intensity, volumePerSet, bodyMassKg float64) float64 {
	base := strengthBaseMET
	if kind == workout.KindBodyweight {
		base = bodyweightBaseMET
	}
	met := base*intensityMultiplier(in) + volumeAdjustment(volumePerSet, bodyMassKg)
	return workout.Clamp(met, minStrengthMET, maxStrengthMET)
}

// InferSetLoadKg returns the load moved in a set. Explicit weight wins; an
// unweighted bodyweight set moves a share of body mass that shrinks as reps
// grow (at least 12 kg); an unweighted strength set assumes 20% of body mass.
func InferSetLoadKg(kind workout.Kind, s workout.Set, bodyMassKg float64) float64 {
	if w := s.Weight(); w > 0 {
		return w
	}
	if kind != workout.KindBodyweight {
		return 0.20 * bodyMassKg
	}
	var share float64
	switch reps := s.RepCount(); {
	case reps > 20:
		share = 0.30
	case reps > 15:
		share = 0.35
	case reps <= 5:
		share = 0.50
	default:
		share = 0.40
	}
	return math.Max(minBodyweightLoadKg, share*bodyMassKg)
}

// kcalFor applies the MET energy formula for the given minutes.
func kcalFor(met, bodyMassKg, minutes float64) float64 {
	return met * 3.5 * bodyMassKg / 200 * minutes
}

// SetCalories estimates the energy spent on one filled set.
func SetCalories(kind workout.Kind, s workout.Set, bodyMassKg float64) float64 {
	minutes := SetDurationSec(kind, s) / 60
	if kind == workout.KindCardio {
		return kcalFor(IntensityToMET(s.Intensity), bodyMassKg, minutes)
	}
	load := InferSetLoadKg(kind, s, bodyMassKg)
	volumePerSet := load * float64(max(1, s.RepCount()))
	met := StrengthSetMET(kind, s.Intensity, volumePerSet, bodyMassKg)
	return kcalFor(met, bodyMassKg, minutes)
}
