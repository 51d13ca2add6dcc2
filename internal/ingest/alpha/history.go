package alpha

import (
	"sort"

	"github.com/claude/repsense/internal/progression"
	"github.com/claude/repsense/internal/ptr"
	"github.com/claude/repsense/internal/sessionstats"
	"github.com/claude/repsense/internal/workout"
)

// Entries converts the session to engine entries. Warmups are dropped and an
// exercise logged entirely in +N notation is bodyweight.
func (s Session) Entries() []workout.Entry {
	entries := make([]workout.Entry, 0, len(s.Exercises))
	for _, ex := range s.Exercises {
		e := workout.Entry{Name: ex.Name, Kind: workout.KindStrength}
		if ex.IsBodyweight() {
			e.Kind = workout.KindBodyweight
		}
		for _, set := range ex.WorkingSets() {
			ws := workout.Set{Reps: ptr.Ref(set.Reps)}
			if set.WeightKg > 0 {
				ws.WeightKg = ptr.Ref(set.WeightKg)
			}
			e.Sets = append(e.Sets, ws)
		}
		entries = append(entries, e)
	}
	return entries
}

// StatsInput builds the session-stats input, using the recorded duration
// when the export has one.
func (s Session) StatsInput() sessionstats.Input {
	return sessionstats.Input{
		Entries:     s.Entries(),
		DurationSec: s.Duration.Seconds(),
	}
}

// FindExercise returns the first exercise whose folded name matches.
func (s Session) FindExercise(name string) (Exercise, bool) {
	want := workout.Fold(name)
	for _, ex := range s.Exercises {
		if workout.Fold(ex.Name) == want {
			return ex, true
		}
	}
	return Exercise{}, false
}

// HistoryFor returns the two most recent sessions containing the exercise,
// and whether the latest one was logged as bodyweight.
func HistoryFor(sessions []Session, exercise string) (progression.History, bool) {
	type hit struct {
		session Session
		ex      Exercise
	}
	var hits []hit
	for _, s := range sessions {
		if ex, ok := s.FindExercise(exercise); ok && len(ex.WorkingSets()) > 0 {
			hits = append(hits, hit{s, ex})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].session.Date.After(hits[j].session.Date)
	})

	var h progression.History
	if len(hits) == 0 {
		return h, false
	}
	h.Last = toSession(hits[0].ex)
	if len(hits) > 1 {
		h.Previous = toSession(hits[1].ex)
	}
	return h, hits[0].ex.IsBodyweight()
}

func toSession(ex Exercise) *progression.Session {
	working := ex.WorkingSets()
	s := &progression.Session{Sets: make([]progression.Perf, 0, len(working))}
	for _, set := range working {
		s.Sets = append(s.Sets, progression.Perf{WeightKg: set.WeightKg, Reps: set.Reps})
	}
	return s
}

// Latest returns the most recent session of the export.
func Latest(sessions []Session) (Session, bool) {
	if len(sessions) == 0 {
		return Session{}, false
	}
	latest := sessions[0]
	for _, s := range sessions[1:] {
		if s.Date.After(latest.Date) {
			latest = s
		}
	}
	return latest, true
}
