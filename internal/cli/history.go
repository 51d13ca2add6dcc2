package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claude/repsense/internal/coachtext"
	"github.com/claude/repsense/internal/localstate"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:           "history",
		Short:         "List sessions recorded with stats --remember",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, limit, cmd)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of sessions to show")

	return cmd
}

func runHistory(opts *RootOptions, limit int, cmd *cobra.Command) error {
	out := newFormatter(opts, cmd)
	if limit <= 0 {
		return out.Fail(ExitCommandError, ErrCodeInput, fmt.Sprintf("invalid limit %d", limit), nil)
	}

	state, err := localstate.Open(opts.StateDir)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeState, "opening local history", err)
	}
	defer state.Close()

	rows, err := state.Recent(limit)
	if err != nil {
		return out.Fail(ExitCommandError, ErrCodeState, "reading local history", err)
	}

	lang := opts.Language()
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  %-8s %-10s %s",
			r.PerformedAt.Format("2006-01-02"),
			coachtext.FormatDuration(r.DurationSec),
			coachtext.FormatKcal(r.Calories),
			coachtext.FormatKg(lang, r.VolumeKg))
	}
	if len(rows) == 0 {
		b.WriteString("no sessions recorded")
	}
	return out.Success(rows, b.String())
}
