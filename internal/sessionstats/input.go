package sessionstats

import (
	"time"

	"github.com/claude/repsense/internal/ptr"
	"github.com/claude/repsense/internal/workout"
)

var performedAtKeys = []string{"performedAt", "performed_at", "date", "startedAt", "started_at"}

// PerformedAt reads the session timestamp. A missing or unparseable value
// falls back to now in UTC.
func PerformedAt(session workout.Fields, now time.Time) time.Time {
	if raw := session.String(performedAtKeys...); raw != "" {
		if t, err := workout.ParseTime(raw); err == nil {
			return t
		}
	}
	return now.UTC()
}

// Input is everything Compute needs for one session. Explicit DurationSec and
// Calories above zero are echoed instead of estimated.
type Input struct {
	Entries       []workout.Entry
	Items         []workout.Entry
	DurationSec   float64
	Calories      float64
	Previous      *Previous
	ClientSummary *ClientSummary
	BodyMass      BodyMass
	KindHint      workout.Kind
}

// Previous is the summary of the session before this one.
type Previous struct {
	DurationSec float64 `json:"durationSec"`
	VolumeKg    float64 `json:"volumeKg"`
}

// ClientSummary holds planned/completed counts computed by the tracking UI.
type ClientSummary struct {
	Planned   *int `json:"planned,omitempty"`
	Completed *int `json:"completed,omitempty"`
}

var (
	entriesKeys     = []string{"entries", "exercises"}
	durationKeys    = []string{"durationSec", "duration_sec", "duration"}
	durationMinKeys = []string{"durationMin", "duration_min"}
	caloriesKeys    = []string{"calories", "kcal", "caloriesBurned", "calories_burned"}
	previousKeys    = []string{"previous", "previousSession", "previous_session"}
	summaryKeys     = []string{"clientSummary", "client_summary", "summary"}
	kindHintKeys    = []string{"kindHint", "defaultKind", "defaultType", "type"}
	plannedKeys     = []string{"planned", "plannedCount", "plannedExercises", "totalExercises", "total"}
	completedKeys   = []string{"completed", "completedCount", "completedExercises", "exercisesDone", "doneCount"}
	doneFlagKeys    = []string{"done", "completed", "isDone", "is_done"}
	volumeKeys      = []string{"volumeKg", "volume_kg", "volume"}
)

// FromFields maps the loose session, items and options objects onto Input.
// Options take precedence over session-level fields for previous and
// clientSummary.
func FromFields(session workout.Fields, items []workout.Fields, opts workout.Fields) Input {
	if session == nil {
		session = workout.Fields{}
	}
	if opts == nil {
		opts = workout.Fields{}
	}

	var in Input
	if k, ok := workout.ParseKind(opts.String(kindHintKeys...)); ok {
		in.KindHint = k
	}
	if raw, ok := session.List(entriesKeys...); ok {
		in.Entries = workout.NormalizeEntries(raw, in.KindHint)
	}
	in.Items = workout.NormalizeEntries(items, in.KindHint)

	if d, ok := session.Float(durationKeys...); ok {
		in.DurationSec = d
	} else if m, ok := session.Float(durationMinKeys...); ok {
		in.DurationSec = m * 60
	}
	in.Calories, _ = session.Float(caloriesKeys...)

	if p, ok := opts.Object(previousKeys...); ok {
		in.Previous = previousFromFields(p)
	} else if p, ok := session.Object(previousKeys...); ok {
		in.Previous = previousFromFields(p)
	}
	if cs, ok := opts.Object(summaryKeys...); ok {
		in.ClientSummary = clientSummaryFromFields(cs)
	} else if cs, ok := session.Object(summaryKeys...); ok {
		in.ClientSummary = clientSummaryFromFields(cs)
	}

	in.BodyMass = bodyMassFromFields(session, opts)
	return in
}

func previousFromFields(f workout.Fields) *Previous {
	p := &Previous{}
	if d, ok := f.Float(durationKeys...); ok {
		p.DurationSec = d
	} else if m, ok := f.Float(durationMinKeys...); ok {
		p.DurationSec = m * 60
	}
	p.VolumeKg, _ = f.Float(volumeKeys...)
	return p
}

// clientSummaryFromFields accepts explicit counts or a list of exercises with
// done flags. Explicit counts win when both are present.
func clientSummaryFromFields(f workout.Fields) *ClientSummary {
	cs := &ClientSummary{}
	if n, ok := f.Float(plannedKeys...); ok && n >= 0 {
		cs.Planned = ptr.Ref(workout.RoundCount(n))
	}
	if n, ok := f.Float(completedKeys...); ok && n >= 0 {
		cs.Completed = ptr.Ref(workout.RoundCount(n))
	}
	if list, ok := f.List("exercises", "items"); ok {
		if cs.Planned == nil {
			cs.Planned = ptr.Ref(len(list))
		}
		if cs.Completed == nil {
			done := 0
			for _, ex := range list {
				if flag, ok := ex.Bool(doneFlagKeys...); ok && flag {
					done++
				}
			}
			cs.Completed = ptr.Ref(done)
		}
	}
	if cs.Planned == nil && cs.Completed == nil {
		return nil
	}
	return cs
}
