package board

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/cli/handler"
	"github.com/thenoetrevino/pagelayout/internal/models"
)

// ChildrenCmd returns the board children subcommand
func ChildrenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "children",
		Short: "List boards that link to a board",
		Long: `List boards with a connect-boards column pointing at the target board.

Examples:
  pagelayout board children --board=123
  pagelayout board children --board=123 --filter=contacts --json
`,
		RunE: handler.Command(handler.HandlerFunc(runChildren)),
	}

	cmd.Flags().String("board", "", "Target board ID (uses PAGELAYOUT_BOARD env var if not specified)")
	cmd.Flags().String("filter", "", "Only children whose label contains this text")
	handler.AddOutputFlags(cmd, "Minimal output (child board IDs only)")

	return cmd
}

type childList struct {
	BoardID  string              `json:"board_id"`
	Children []models.ChildBoard `json:"children"`
}

func (l childList) QuietLines() []string {
	ids := make([]string, len(l.Children))
	for i, c := range l.Children {
		ids[i] = c.BoardID
	}
	return ids
}

func (l childList) PrintHuman(w io.Writer) error {
	if len(l.Children) == 0 {
		_, err := fmt.Fprintf(w, "No boards link to board %s\n", l.BoardID)
		return err
	}
	fmt.Fprintf(w, "Boards linking to %s:\n", l.BoardID)
	for _, c := range l.Children {
		fmt.Fprintf(w, "  %s  %s (column %s)\n", c.BoardID, c.Label, c.ColumnID)
	}
	return nil
}

func runChildren(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	boardID, err := args.BoardID(c)
	if err != nil {
		return nil, err
	}

	children, err := c.App.BoardService.ChildBoards(ctx, boardID)
	if err != nil {
		return nil, err
	}

	filter := strings.ToLower(strings.TrimSpace(args.GetString("filter", "")))
	if filter != "" {
		matched := children[:0]
		for _, child := range children {
			if strings.Contains(strings.ToLower(child.Label), filter) {
				matched = append(matched, child)
			}
		}
		children = matched
	}
	return childList{BoardID: boardID, Children: children}, nil
}
