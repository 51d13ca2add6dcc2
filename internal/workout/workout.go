package workout

import (
	"strings"

	"github.com/claude/repsense/internal/ptr"
)

// Kind classifies an exercise entry.
type Kind string

const (
	KindStrength   Kind = "strength"
	KindBodyweight Kind = "bodyweight"
	KindCardio     Kind = "cardio"
)

var kindSynonyms = map[string]Kind{
	"strength":        KindStrength,
	"muscu":           KindStrength,
	"musculation":     KindStrength,
	"force":           KindStrength,
	"weights":         KindStrength,
	"weight_training": KindStrength,
	"bodyweight":      KindBodyweight,
	"body_weight":     KindBodyweight,
	"poids_du_corps":  KindBodyweight,
	"pdc":             KindBodyweight,
	"calisthenics":    KindBodyweight,
	"cardio":          KindCardio,
	"stretch":         KindCardio,
	"stretching":      KindCardio,
	"etirement":       KindCardio,
	"etirements":      KindCardio,
	"mobility":        KindCardio,
	"mobilite":        KindCardio,
	"walk":            KindCardio,
	"marche":          KindCardio,
	"hiit":            KindCardio,
	"run":             KindCardio,
	"course":          KindCardio,
}

// ParseKind maps an explicit kind/type label (English or French) to a Kind.
func ParseKind(s string) (Kind, bool) {
	key := strings.NewReplacer(" ", "_", "-", "_").Replace(Fold(s))
	k, ok := kindSynonyms[key]
	return k, ok
}

// Set is one set, interval or stretch. Nil fields were not recorded.
type Set struct {
	WeightKg    *float64  `json:"weightKg,omitempty"`
	Reps        *int      `json:"reps,omitempty"`
	DurationSec *float64  `json:"durationSec,omitempty"`
	DistanceKm  *float64  `json:"distanceKm,omitempty"`
	Intensity   Intensity `json:"-"`
}

// StrengthSet builds a weight × reps set.
func StrengthSet(weightKg float64, reps int) Set {
	return Set{WeightKg: ptr.Ref(weightKg), Reps: ptr.Ref(reps)}
}

// Weight returns the recorded weight or 0.
func (s Set) Weight() float64 { return ptr.Deref(s.WeightKg) }

// RepCount returns the recorded reps or 0.
func (s Set) RepCount() int { return ptr.Deref(s.Reps) }

// Duration returns the recorded duration in seconds or 0.
func (s Set) Duration() float64 { return ptr.Deref(s.DurationSec) }

// Distance returns the recorded distance in km or 0.
func (s Set) Distance() float64 { return ptr.Deref(s.DistanceKm) }

// Filled reports whether the set counts toward completion and calories:
// at least one of duration, distance, reps or weight is positive.
// An all-empty set is inert.
func (s Set) Filled() bool {
	return s.Duration() > 0 || s.Distance() > 0 || s.RepCount() > 0 || s.Weight() > 0
}

// Entry is one exercise performed during a session.
type Entry struct {
	Name string `json:"name,omitempty"`
	Kind Kind   `json:"kind"`
	Sets []Set  `json:"sets"`
}

// Done reports whether at least one set was filled.
func (e Entry) Done() bool {
	for _, s := range e.Sets {
		if s.Filled() {
			return true
		}
	}
	return false
}

// Shape summarizes how an entry's sets were recorded, for kind inference.
type Shape struct {
	CardioSets    int
	StretchFilled bool
	StrengthSets  int
	AnyWeight     bool
}

// InferKind classifies an entry without an explicit kind from its data shape:
// cardio-style sets or a filled stretch mean cardio; strength-style sets mean
// strength when any set carries weight and bodyweight otherwise. With no
// usable shape the caller's hint applies, then bodyweight.
func InferKind(shape Shape, hint Kind) Kind {
	switch {
	case shape.CardioSets > 0:
		return KindCardio
	case shape.StretchFilled:
		return KindCardio
	case shape.StrengthSets > 0:
		if shape.AnyWeight {
			return KindStrength
		}
		return KindBodyweight
	case hint != "":
		return hint
	default:
		return KindBodyweight
	}
}
