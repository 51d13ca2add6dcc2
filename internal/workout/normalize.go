package workout

import "github.com/claude/repsense/internal/ptr"

// Field aliases, most specific first. This file is the only place that knows
// about them; everything downstream sees Set and Entry.
var (
	weightKeys      = []string{"weightKg", "weight_kg", "weight", "kg", "poids"}
	repsKeys        = []string{"reps", "repetitions", "rep"}
	durationSecKeys = []string{"durationSec", "duration_sec", "seconds", "duration"}
	durationMinKeys = []string{"durationMin", "duration_min", "minutes"}
	distanceKeys    = []string{"distanceKm", "distance_km", "distance", "km"}
	intensityKeys   = []string{"intensity", "level", "effort", "tempo"}

	nameKeys          = []string{"name", "exerciseName", "title", "label"}
	kindKeys          = []string{"kind", "type", "exerciseType", "category"}
	strengthSetKeys   = []string{"sets", "series"}
	cardioSetKeys     = []string{"cardioSets", "intervals", "cardio"}
	stretchKeys       = []string{"stretch", "stretching"}
	stretchSecKeys    = []string{"stretchDurationSec", "stretch_duration_sec"}
	stretchMinKeys    = []string{"stretchDurationMin", "stretch_duration_min"}
	nestedExerciseKey = "exercise"
)

// NormalizeSet resolves a loose set object into a Set. Negative numbers are
// treated as not recorded.
func NormalizeSet(f Fields) Set {
	var s Set
	if w, ok := f.Float(weightKeys...); ok && w >= 0 {
		s.WeightKg = ptr.Ref(w)
	}
	if r, ok := f.Float(repsKeys...); ok && r >= 0 {
		s.Reps = ptr.Ref(RoundCount(r))
	}
	if d, ok := f.Float(durationSecKeys...); ok && d >= 0 {
		s.DurationSec = ptr.Ref(d)
	} else if m, ok := f.Float(durationMinKeys...); ok && m >= 0 {
		s.DurationSec = ptr.Ref(m * 60)
	}
	if d, ok := f.Float(distanceKeys...); ok && d >= 0 {
		s.DistanceKm = ptr.Ref(d)
	}
	for _, k := range intensityKeys {
		if in := ParseIntensity(f[k]); in.Kind != IntensityUnknown {
			s.Intensity = in
			break
		}
	}
	return s
}

// NormalizeEntry resolves a loose entry object, either the session "entries"
// shape or the live tracking "items" shape with a nested exercise object.
// Kind comes from an explicit label when one is recognized, otherwise it is
// inferred from the recorded sets with hint as fallback.
func NormalizeEntry(f Fields, hint Kind) Entry {
	nested, _ := f.Object(nestedExerciseKey)

	e := Entry{Name: f.String(nameKeys...)}
	if e.Name == "" && nested != nil {
		e.Name = nested.String(nameKeys...)
	}

	var shape Shape
	if raw, ok := f.List(strengthSetKeys...); ok {
		for _, rs := range raw {
			s := NormalizeSet(rs)
			shape.StrengthSets++
			if s.Weight() > 0 {
				shape.AnyWeight = true
			}
			e.Sets = append(e.Sets, s)
		}
	}
	if raw, ok := f.List(cardioSetKeys...); ok {
		for _, rs := range raw {
			e.Sets = append(e.Sets, NormalizeSet(rs))
			shape.CardioSets++
		}
	}
	if st, ok := stretchSet(f); ok {
		e.Sets = append(e.Sets, st)
		shape.StretchFilled = st.Filled()
	}

	kind, ok := ParseKind(f.String(kindKeys...))
	if !ok && nested != nil {
		kind, ok = ParseKind(nested.String(kindKeys...))
	}
	if !ok {
		kind = InferKind(shape, hint)
	}
	e.Kind = kind
	return e
}

// stretchSet reads a stretch either as a nested object or as flat duration
// fields on the entry.
func stretchSet(f Fields) (Set, bool) {
	if obj, ok := f.Object(stretchKeys...); ok {
		return NormalizeSet(obj), true
	}
	if sec, ok := f.Float(stretchSecKeys...); ok && sec >= 0 {
		return Set{DurationSec: ptr.Ref(sec)}, true
	}
	if mins, ok := f.Float(stretchMinKeys...); ok && mins >= 0 {
		return Set{DurationSec: ptr.Ref(mins * 60)}, true
	}
	return Set{}, false
}

// NormalizeEntries normalizes every object in raw.
func NormalizeEntries(raw []Fields, hint Kind) []Entry {
	out := make([]Entry, 0, len(raw))
	for _, f := range raw {
		out = append(out, NormalizeEntry(f, hint))
	}
	return out
}
