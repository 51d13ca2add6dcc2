package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claude/repsense/internal/coachtext"
	"github.com/claude/repsense/internal/ingest/alpha"
	"github.com/claude/repsense/internal/progression"
)

// SuggestionOutput is one exercise's next-session advice.
type SuggestionOutput struct {
	Exercise   string                 `json:"exercise"`
	Suggestion progression.Suggestion `json:"suggestion"`
	Message    string                 `json:"message"`
}

// NewSuggestCommand creates the suggest command.
func NewSuggestCommand(rootOpts *RootOptions) *cobra.Command {
	var exercise string
	var bodyweight bool

	cmd := &cobra.Command{
		Use:   "suggest <export.csv>",
		Short: "Suggest the next session's weight and reps",
		Long: `Suggest weight and reps for the next session from an Alpha Progression
CSV export, comparing the two most recent sessions of each exercise.

Without --exercise every exercise of the latest session gets a suggestion.
--bodyweight forces bodyweight handling; by default an exercise logged
entirely in +N notation is treated as bodyweight.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var force *bool
			if cmd.Flags().Changed("bodyweight") {
				force = &bodyweight
			}
			return runSuggest(rootOpts, args[0], exercise, force, cmd)
		},
	}

	cmd.Flags().StringVarP(&exercise, "exercise", "e", "", "exercise name (case and accent insensitive)")
	cmd.Flags().BoolVar(&bodyweight, "bodyweight", false, "treat the exercise as bodyweight")

	return cmd
}

func runSuggest(opts *RootOptions, path, exercise string, bodyweight *bool, cmd *cobra.Command) error {
	out := newFormatter(opts, cmd)

	f, err := os.Open(path)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeInput, "opening export", err)
	}
	defer f.Close()

	sessions, err := alpha.Parse(f)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeInput, "parsing export", err)
	}
	out.VerboseLog("parsed %d sessions from %s", len(sessions), path)

	names := []string{exercise}
	if exercise == "" {
		latest, ok := alpha.Latest(sessions)
		if !ok {
			return out.Fail(ExitFailure, ErrCodeNotFound, "no session in export", nil)
		}
		names = names[:0]
		for _, ex := range latest.Exercises {
			names = append(names, ex.Name)
		}
	}

	lang := opts.Language()
	var results []SuggestionOutput
	for _, name := range names {
		h, isBodyweight := alpha.HistoryFor(sessions, name)
		if bodyweight != nil {
			isBodyweight = *bodyweight
		}
		s, ok := progression.Calculate(h, isBodyweight, name)
		if !ok {
			out.VerboseLog("%s: no usable history", name)
			continue
		}
		results = append(results, SuggestionOutput{
			Exercise:   name,
			Suggestion: s,
			Message:    coachtext.SuggestionMessage(lang, s),
		})
	}

	if len(results) == 0 {
		msg := "no usable history"
		if exercise != "" {
			msg = fmt.Sprintf("no usable history for %q", exercise)
		}
		return out.Fail(ExitFailure, ErrCodeNotFound, msg, nil)
	}

	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", r.Exercise, r.Message)
	}
	return out.Success(results, b.String())
}
