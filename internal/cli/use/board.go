package use

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/codec"
)

// BoardCmd returns the use board subcommand
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board [board-id]",
		Short: "Set board context for current shell session",
		Long: `Set the current board context using environment variables.
This command outputs shell commands that should be evaluated:

  eval $(pagelayout use board 123)        # Use board 123
  eval $(pagelayout use board --clear)    # Clear board context
  pagelayout use board --show             # Show current board

The PAGELAYOUT_BOARD environment variable will be set in your current shell
session only. The --board flag on other commands takes precedence over
this environment variable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseBoard,
	}

	cmd.Flags().Bool("clear", false, "Clear the current board context")
	cmd.Flags().Bool("show", false, "Show the current board context")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if showFlag {
		return showCurrentBoard(ctx, cmd)
	}

	if clearFlag {
		if dryRun {
			fmt.Fprintf(errOut, "Would clear %s\n", cli.BoardEnvVar)
			return nil
		}
		fmt.Fprintf(out, "unset %s\n", cli.BoardEnvVar)
		fmt.Fprintf(errOut, "Cleared board context\n")
		return nil
	}

	if len(args) == 0 {
		fmt.Fprintln(errOut, "Error: board ID required")
		fmt.Fprintln(errOut, "Usage: eval $(pagelayout use board <board-id>)")
		return &cli.ExitCodeError{Code: cli.ExitUsage}
	}
	boardID := codec.NormalizeBoardID(args[0])
	if boardID == "" || strings.ContainsAny(boardID, " \t\"'$;") {
		fmt.Fprintf(errOut, "Error: invalid board ID: %s\n", args[0])
		return &cli.ExitCodeError{Code: cli.ExitUsage}
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	// Validate board exists
	board, err := cliInstance.App.BoardService.Columns(ctx, boardID)
	if err != nil {
		fmt.Fprintf(errOut, "Error: board %s not found\n", boardID)
		fmt.Fprintf(errOut, "Suggestion: Use 'pagelayout board list' to see available boards\n")
		return &cli.ExitCodeError{Code: cli.ExitNotFound, Err: err}
	}

	// Output shell export command (to stdout for eval)
	if dryRun {
		fmt.Fprintf(errOut, "Would set %s=%s (%s)\n", cli.BoardEnvVar, boardID, board.Name)
		return nil
	}

	fmt.Fprintf(out, "export %s=%s\n", cli.BoardEnvVar, boardID)
	fmt.Fprintf(errOut, "Now using board %s: %s\n", boardID, board.Name)

	return nil
}

func showCurrentBoard(ctx context.Context, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	current := strings.TrimSpace(os.Getenv(cli.BoardEnvVar))
	if current == "" {
		fmt.Fprintln(out, "No board context set")
		fmt.Fprintln(out, "Use 'eval $(pagelayout use board <board-id>)' to set one")
		return nil
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	board, err := cliInstance.App.BoardService.Columns(ctx, current)
	if err != nil {
		fmt.Fprintf(out, "Current board: %s (board not found)\n", current)
		return nil
	}

	fmt.Fprintf(out, "Current board: %s (%s)\n", current, board.Name)
	return nil
}
