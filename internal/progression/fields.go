package progression

import "github.com/claude/repsense/internal/workout"

var (
	lastKeys     = []string{"last", "lastSession", "last_session"}
	previousKeys = []string{"previous", "previousSession", "previous_session"}
	setsKeys     = []string{"allSets", "sets", "all_sets"}
)

// PerfFromFields reads a loose set object with the same aliases as session
// entries. Absent values become zero.
func PerfFromFields(f workout.Fields) Perf {
	s := workout.NormalizeSet(f)
	return Perf{WeightKg: s.Weight(), Reps: s.RepCount()}
}

// SessionFromFields reads a session object holding an allSets (or sets) list.
// It returns nil when there is no such list.
func SessionFromFields(f workout.Fields) *Session {
	raw, ok := f.List(setsKeys...)
	if !ok {
		return nil
	}
	s := &Session{Sets: make([]Perf, 0, len(raw))}
	for _, rs := range raw {
		s.Sets = append(s.Sets, PerfFromFields(rs))
	}
	return s
}

// HistoryFromFields reads {last, previous} from a loose history object.
func HistoryFromFields(f workout.Fields) History {
	var h History
	if o, ok := f.Object(lastKeys...); ok {
		h.Last = SessionFromFields(o)
	}
	if o, ok := f.Object(previousKeys...); ok {
		h.Previous = SessionFromFields(o)
	}
	return h
}
