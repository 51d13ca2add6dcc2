package sessionstats

import (
	"github.com/claude/repsense/internal/ptr"
	"github.com/claude/repsense/internal/workout"
)

const (
	DefaultBodyMassKg = 85.0
	MinBodyMassKg     = 30.0
	MaxBodyMassKg     = 250.0
)

// BodyMass collects every known source of the user's body mass.
type BodyMass struct {
	ServerLatest   *float64
	ServerLast     *float64
	ServerPrevious *float64
	ServerInitial  *float64
	Override       *float64
	Session        *float64
}

// Resolve picks the first positive source in priority order (server
// latest/last/previous/initial, caller override, session-embedded weight),
// defaulting to 85 kg, and clamps the result to [30, 250].
func (b BodyMass) Resolve() float64 {
	for _, c := range []*float64{b.ServerLatest, b.ServerLast, b.ServerPrevious, b.ServerInitial, b.Override, b.Session} {
		if c != nil && *c > 0 {
			return workout.Clamp(*c, MinBodyMassKg, MaxBodyMassKg)
		}
	}
	return DefaultBodyMassKg
}

var (
	serverWeightKeys   = []string{"serverWeights", "server_weights", "weights"}
	overrideWeightKeys = []string{"bodyMassKg", "body_mass_kg", "bodyWeightKg", "userWeightKg", "weightKg"}
	sessionWeightKeys  = []string{"bodyWeightKg", "body_weight_kg", "userWeightKg", "userWeight", "bodyMassKg"}
)

func bodyMassFromFields(session, opts workout.Fields) BodyMass {
	var b BodyMass
	server, ok := opts.Object(serverWeightKeys...)
	if !ok {
		server = opts
	}
	b.ServerLatest = positive(server, "latest", "latestWeight", "latest_weight")
	b.ServerLast = positive(server, "last", "lastWeight", "last_weight")
	b.ServerPrevious = positive(server, "previous", "previousWeight", "previous_weight")
	b.ServerInitial = positive(server, "initial", "initialWeight", "initial_weight")
	b.Override = positive(opts, overrideWeightKeys...)
	b.Session = positive(session, sessionWeightKeys...)
	return b
}

func positive(f workout.Fields, keys ...string) *float64 {
	if v, ok := f.Float(keys...); ok && v > 0 {
		return ptr.Ref(v)
	}
	return nil
}
