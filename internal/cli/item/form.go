package item

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/cli/handler"
	itemservice "github.com/thenoetrevino/pagelayout/internal/services/item"
)

// FormCmd returns the item form subcommand
func FormCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Show the fields of a board's item form",
		Long: `Show the fields a viewer fills in when creating an item, following the
board's saved layout. Sections hidden by visibility rules for the configured
viewer are left out.

Examples:
  pagelayout item form --board=123
  pagelayout item form --board=123 --role=manager --json
`,
		RunE: handler.Command(handler.HandlerFunc(runForm)),
	}

	cmd.Flags().String("board", "", "Board ID (uses PAGELAYOUT_BOARD env var if not specified)")
	addViewerFlags(cmd)
	handler.AddOutputFlags(cmd, "Minimal output (column IDs only)")

	return cmd
}

type formFields struct {
	BoardID string                  `json:"board_id"`
	Fields  []itemservice.FormField `json:"fields"`
}

func (f formFields) QuietLines() []string {
	ids := make([]string, len(f.Fields))
	for i, field := range f.Fields {
		ids[i] = field.Column.ID
	}
	return ids
}

func (f formFields) PrintHuman(w io.Writer) error {
	if len(f.Fields) == 0 {
		_, err := fmt.Fprintf(w, "The form of board %s has no visible fields\n", f.BoardID)
		return err
	}
	section := ""
	for _, field := range f.Fields {
		if field.SectionID != section {
			section = field.SectionID
			fmt.Fprintf(w, "%s\n", field.SectionTitle)
		}
		marker := " "
		if field.Required {
			marker = "*"
		}
		fmt.Fprintf(w, "  %s %s (%s)\n", marker, field.Column.Title, field.Column.ID)
	}
	return nil
}

func runForm(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	boardID, err := args.BoardID(c)
	if err != nil {
		return nil, err
	}
	loaded, err := c.App.LayoutService.Load(ctx, boardID)
	if err != nil {
		return nil, err
	}
	viewer := viewerFrom(c, args)
	return formFields{
		BoardID: boardID,
		Fields:  c.App.ItemService.VisibleFields(loaded.Layout, viewer),
	}, nil
}
