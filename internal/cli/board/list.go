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

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List boards visible to the API token",
		Long: `List every board the token can read, sorted by name.

Examples:
  # Human-readable list
  pagelayout board list

  # Only boards whose name contains "sales"
  pagelayout board list --filter=sales

  # JSON output for agents
  pagelayout board list --json
`,
		RunE: handler.Command(handler.HandlerFunc(runList)),
	}

	cmd.Flags().String("filter", "", "Only boards whose name contains this text")
	handler.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

type boardList struct {
	Boards []models.Board `json:"boards"`
}

func (l boardList) QuietLines() []string {
	ids := make([]string, len(l.Boards))
	for i, b := range l.Boards {
		ids[i] = b.ID
	}
	return ids
}

func (l boardList) PrintHuman(w io.Writer) error {
	if len(l.Boards) == 0 {
		_, err := fmt.Fprintln(w, "No boards found")
		return err
	}
	fmt.Fprintf(w, "Boards (%d):\n", len(l.Boards))
	for _, b := range l.Boards {
		if ws := b.WorkspaceName(); ws != "" {
			fmt.Fprintf(w, "  %s  %s (%s)\n", b.ID, b.Name, ws)
			continue
		}
		fmt.Fprintf(w, "  %s  %s\n", b.ID, b.Name)
	}
	return nil
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	boards, err := c.App.BoardService.ListBoards(ctx)
	if err != nil {
		return nil, err
	}

	filter := strings.ToLower(strings.TrimSpace(args.GetString("filter", "")))
	if filter == "" {
		return boardList{Boards: boards}, nil
	}
	matched := make([]models.Board, 0, len(boards))
	for _, b := range boards {
		if strings.Contains(strings.ToLower(b.Name), filter) {
			matched = append(matched, b)
		}
	}
	return boardList{Boards: matched}, nil
}
