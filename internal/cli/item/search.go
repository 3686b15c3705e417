package item

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

// SearchCmd returns the item search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search items by name on one or more boards",
		Long: `Search items whose name contains the given text.

With --boards the search spans several boards; boards that fail are
reported as a warning while results from the others are still shown.
Without --text every item of the boards is listed.

Examples:
  pagelayout item search --board=123 --text=acme
  pagelayout item search --boards=123,456 --text=acme --json
  pagelayout item search --boards=123,456
`,
		RunE: handler.Command(handler.HandlerFunc(runSearch)),
	}

	cmd.Flags().String("board", "", "Board ID (uses PAGELAYOUT_BOARD env var if not specified)")
	cmd.Flags().StringSlice("boards", nil, "Search across these board IDs")
	cmd.Flags().String("text", "", "Text the item name must contain")
	handler.AddOutputFlags(cmd, "Minimal output (item IDs only)")

	return cmd
}

type itemList struct {
	Items   []models.Item `json:"items"`
	Warning string        `json:"warning,omitempty"`
}

func (l itemList) QuietLines() []string {
	ids := make([]string, len(l.Items))
	for i, it := range l.Items {
		ids[i] = it.ID
	}
	return ids
}

func (l itemList) PrintHuman(w io.Writer) error {
	if len(l.Items) == 0 {
		_, err := fmt.Fprintln(w, "No items found")
		return err
	}
	fmt.Fprintf(w, "Items (%d):\n", len(l.Items))
	for _, it := range l.Items {
		if it.BoardName != "" {
			fmt.Fprintf(w, "  %s  %s  [%s]\n", it.ID, it.Name, it.BoardName)
			continue
		}
		fmt.Fprintf(w, "  %s  %s\n", it.ID, it.Name)
	}
	return nil
}

func runSearch(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	text := strings.TrimSpace(args.GetString("text", ""))

	boards := args.GetStringSlice("boards", nil)
	if len(boards) == 0 {
		boardID, err := args.BoardID(c)
		if err != nil {
			return nil, err
		}
		boards = []string{boardID}
	}

	items, warning, err := c.App.BoardService.ItemsAcrossBoards(ctx, boards, text)
	if err != nil {
		return nil, err
	}
	if warning != "" {
		cli.NewFormatter(args.GetCmd()).Warn("some boards could not be read: %s", warning)
	}
	return itemList{Items: items, Warning: warning}, nil
}
