package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/claude/repsense/internal/coachtext"
	"github.com/claude/repsense/internal/ingest/alpha"
	"github.com/claude/repsense/internal/localstate"
	"github.com/claude/repsense/internal/ptr"
	"github.com/claude/repsense/internal/sessionstats"
	"github.com/claude/repsense/internal/workout"
)

// StatsOutput is the payload of the stats command.
type StatsOutput struct {
	Stats      sessionstats.Result `json:"stats"`
	Summary    string              `json:"summary"`
	Remembered bool                `json:"remembered,omitempty"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	var remember bool
	var bodyMass float64

	cmd := &cobra.Command{
		Use:   "stats <session.json|export.csv>",
		Short: "Compute duration, calories and volume of a session",
		Long: `Compute the summary of one workout session.

The input is either a JSON session ({"session":..., "items":..., "options":...}
or a bare session object) or an Alpha Progression CSV export, in which case
the most recent session of the export is used.

With --remember the result is compared to the previous remembered session and
recorded in the local history. Re-running on the same file does not record it
twice.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, args[0], remember, bodyMass, cmd)
		},
	}

	cmd.Flags().BoolVar(&remember, "remember", false, "compare with and record into the local history")
	cmd.Flags().Float64Var(&bodyMass, "body-mass", 0, "body mass in kg, overriding the session's own")

	return cmd
}

func runStats(opts *RootOptions, path string, remember bool, bodyMass float64, cmd *cobra.Command) error {
	out := newFormatter(opts, cmd)

	in, performedAt, err := loadSession(path)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeInput, "reading session", err)
	}
	if bodyMass > 0 {
		in.BodyMass.Override = ptr.Ref(bodyMass)
	}

	var state *localstate.State
	var hash string
	if remember {
		state, err = localstate.Open(opts.StateDir)
		if err != nil {
			return out.Fail(ExitCommandError, ErrCodeState, "opening local history", err)
		}
		defer state.Close()

		if hash, err = localstate.HashFile(path); err != nil {
			return out.Fail(ExitCommandError, ErrCodeInput, "hashing session file", err)
		}
		if in.Previous == nil {
			if in.Previous, err = state.Previous(hash); err != nil {
				return out.Fail(ExitCommandError, ErrCodeState, "reading local history", err)
			}
		}
		out.VerboseLog("previous session: %v", in.Previous != nil)
	}

	result := sessionstats.Compute(in)
	res := StatsOutput{
		Stats:   result,
		Summary: coachtext.SessionSummary(opts.Language(), result),
	}

	if state != nil {
		if res.Remembered, err = state.Remember(hash, performedAt, result); err != nil {
			return out.Fail(ExitCommandError, ErrCodeState, "recording session", err)
		}
		if !res.Remembered {
			out.VerboseLog("%s was already in the local history", filepath.Base(path))
		}
	}

	return out.Success(res, strings.TrimRight(res.Summary, "\n"))
}

// loadSession reads a JSON session or an Alpha CSV export.
func loadSession(path string) (sessionstats.Input, time.Time, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sessionstats.Input{}, time.Time{}, err
	}

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		sessions, err := alpha.Parse(bytes.NewReader(data))
		if err != nil {
			return sessionstats.Input{}, time.Time{}, err
		}
		latest, ok := alpha.Latest(sessions)
		if !ok {
			return sessionstats.Input{}, time.Time{}, fmt.Errorf("no session in %s", path)
		}
		return latest.StatsInput(), latest.Date, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return sessionstats.Input{}, time.Time{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	doc, ok := workout.AsFields(raw)
	if !ok {
		return sessionstats.Input{}, time.Time{}, fmt.Errorf("%s: expected a JSON object", path)
	}

	session, ok := doc.Object("session")
	if !ok {
		session = doc
	}
	items, _ := doc.List("items")
	options, _ := doc.Object("options", "opts")

	return sessionstats.FromFields(session, items, options), sessionstats.PerformedAt(session, time.Now()), nil
}
