// Package cli implements the repsense-cli commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/claude/repsense/internal/coachtext"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Lang     string
	StateDir string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Language returns the parsed --lang value.
func (o *RootOptions) Language() coachtext.Language {
	return coachtext.ParseLanguage(o.Lang)
}

// NewRootCommand creates the root command for repsense-cli.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "repsense-cli",
		Short: "Session stats and progression suggestions from workout logs",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", string(coachtext.DefaultLanguage), "message language (fr|en)")
	cmd.PersistentFlags().StringVar(&opts.StateDir, "state-dir", defaultStateDir(), "directory holding the local session history")

	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewSuggestCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repsense"
	}
	return filepath.Join(home, ".repsense")
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
