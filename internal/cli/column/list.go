package column

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/cli/handler"
	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/services/board"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns of a board",
		Long: `List a board's columns sorted by title.

Examples:
  # Human-readable list
  pagelayout column list --board=123

  # Columns whose title or type contains "date"
  pagelayout column list --board=123 --filter=date

  # Only columns not yet placed in the board's layout
  pagelayout column list --board=123 --available

  # Quiet mode (one ID per line)
  pagelayout column list --board=123 --quiet
`,
		RunE: handler.Command(handler.HandlerFunc(runList)),
	}

	cmd.Flags().String("board", "", "Board ID (uses PAGELAYOUT_BOARD env var if not specified)")
	cmd.Flags().String("filter", "", "Only columns whose title or type contains this text")
	cmd.Flags().Bool("available", false, "Only columns not placed in the layout")
	handler.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

type columnList struct {
	BoardID   string          `json:"board_id"`
	BoardName string          `json:"board_name"`
	Columns   []models.Column `json:"columns"`
}

func (l columnList) QuietLines() []string {
	ids := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		ids[i] = c.ID
	}
	return ids
}

func (l columnList) PrintHuman(w io.Writer) error {
	if len(l.Columns) == 0 {
		_, err := fmt.Fprintf(w, "No columns found on board '%s'\n", l.BoardName)
		return err
	}
	fmt.Fprintf(w, "Columns on board '%s':\n", l.BoardName)
	for _, c := range l.Columns {
		fmt.Fprintf(w, "  %-24s %s (%s)\n", c.ID, c.Title, c.Info().Label)
	}
	return nil
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	boardID, err := args.BoardID(c)
	if err != nil {
		return nil, err
	}

	b, err := c.App.BoardService.Columns(ctx, boardID)
	if err != nil {
		return nil, err
	}
	columns := b.Columns

	if args.GetBool("available") {
		session, err := c.App.Editor.Open(ctx, boardID)
		if err != nil {
			return nil, err
		}
		columns = session.Layout.AvailableColumns(columns)
	}

	columns = board.FilterColumns(columns, args.GetString("filter", ""))
	return columnList{BoardID: b.ID, BoardName: b.Name, Columns: columns}, nil
}
