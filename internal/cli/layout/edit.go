package layout

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/launcher"
)

// EditCmd returns the interactive editor command
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a board's layout interactively",
		Long: `Open the layout editor. Move over the grid with h/j/k/l, press tab for
the column palette, enter to place, m to pick up and drop, x to remove,
r to mark required and ctrl+s to save. Press ? for every key.

Edits are kept as a local draft, so quitting without saving loses nothing.
Key bindings and colors come from the config file.

Examples:
  pagelayout edit --board=123
  PAGELAYOUT_BOARD=123 pagelayout layout edit
`,
		RunE: runEdit,
	}
	boardFlag(cmd)
	return cmd
}

func runEdit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := cli.NewFormatter(cmd)

	c, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.FailWith(err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	boardID, err := cli.GetBoardID(cmd, c.App.Config)
	if err != nil {
		return formatter.FailWith(err)
	}
	if err := launcher.Launch(ctx, c.App, boardID); err != nil {
		return formatter.FailWith(err)
	}
	return nil
}
