package alpha

import "time"

// Session is one workout from an Alpha Progression export.
type Session struct {
	Name      string
	Date      time.Time
	Duration  time.Duration
	Exercises []Exercise
}

// Exercise is one exercise block within a session.
type Exercise struct {
	Number     int
	Name       string
	Equipment  string
	TargetReps int
	Sets       []Set
}

// Set is a single working or warmup set. Bodyweight-plus sets ("+35") carry
// the added load in WeightKg.
type Set struct {
	Number           int
	WeightKg         float64
	IsBodyweightPlus bool
	Reps             int
	RIR              float64
	IsWarmup         bool
}

// WorkingSets returns the non-warmup sets in order.
func (e Exercise) WorkingSets() []Set {
	out := make([]Set, 0, len(e.Sets))
	for _, s := range e.Sets {
		if !s.IsWarmup {
			out = append(out, s)
		}
	}
	return out
}

// IsBodyweight reports whether every working set uses +N notation.
func (e Exercise) IsBodyweight() bool {
	working := e.WorkingSets()
	if len(working) == 0 {
		return false
	}
	for _, s := range working {
		if !s.IsBodyweightPlus {
			return false
		}
	}
	return true
}
