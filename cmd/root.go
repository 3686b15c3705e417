// Package cmd assembles the pagelayout command tree
package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli/board"
	"github.com/thenoetrevino/pagelayout/internal/cli/column"
	"github.com/thenoetrevino/pagelayout/internal/cli/item"
	"github.com/thenoetrevino/pagelayout/internal/cli/layout"
	"github.com/thenoetrevino/pagelayout/internal/cli/people"
	"github.com/thenoetrevino/pagelayout/internal/cli/use"
	"github.com/thenoetrevino/pagelayout/internal/logging"
)

// logCloser is the open log file, closed once the command finishes
var logCloser io.Closer

// NewRootCmd builds the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pagelayout",
		Short: "Pagelayout - design item forms for your boards",
		Long: `Pagelayout arranges a board's columns into the sectioned, two-column form
used when creating items. Layouts are stored as items on a metadata board,
one item per section, and edited locally as drafts until saved.

Start with 'pagelayout edit --board=<id>' for the interactive editor or
'pagelayout layout --help' for scriptable edits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			closer, err := logging.Init()
			if err != nil {
				// Logging is best effort; commands still run without it
				cmd.PrintErrf("warning: logging disabled: %v\n", err)
				return
			}
			logCloser = closer
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeLog()
		},
	}

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(item.ItemCmd())
	rootCmd.AddCommand(people.UserCmd())
	rootCmd.AddCommand(people.TeamCmd())
	rootCmd.AddCommand(layout.LayoutCmd())
	rootCmd.AddCommand(layout.EditCmd())
	rootCmd.AddCommand(use.UseCmd())

	return rootCmd
}

func closeLog() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		slog.Error("failed to close log file", "error", err)
	}
	logCloser = nil
}

// Execute runs the root command. Errors carry the exit code through
// cli.ExitCode.
func Execute() error {
	defer closeLog()
	return NewRootCmd().Execute()
}
