package item

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/cli/handler"
	"github.com/thenoetrevino/pagelayout/internal/models"
	itemservice "github.com/thenoetrevino/pagelayout/internal/services/item"
)

// CreateCmd returns the item create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an item through the board's form",
		Long: `Create an item on a board using its saved layout. The name is required,
required fields of visible sections must be filled, and values for columns
outside the form are ignored.

Examples:
  # Human-readable output
  pagelayout item create --board=123 --name="Acme" --value=text0="hello"

  # Quiet mode for bash capture
  ITEM_ID=$(pagelayout item create --board=123 --name="Acme" --quiet)
`,
		RunE: handler.Command(handler.HandlerFunc(runCreate)),
	}

	cmd.Flags().String("board", "", "Board ID (uses PAGELAYOUT_BOARD env var if not specified)")
	cmd.Flags().String("name", "", "Item name (required)")
	cmd.Flags().StringArray("value", nil, "Column value as column=value (repeatable)")
	addViewerFlags(cmd)
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

type createdItem struct {
	Item models.Item `json:"item"`
}

func (c createdItem) QuietLines() []string { return []string{c.Item.ID} }

func (c createdItem) PrintHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ Item '%s' created successfully (ID: %s)\n", c.Item.Name, c.Item.ID)
	return err
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	boardID, err := args.BoardID(c)
	if err != nil {
		return nil, err
	}
	values, err := cli.ParseValues(args.GetStringSlice("value", nil))
	if err != nil {
		return nil, err
	}
	loaded, err := c.App.LayoutService.Load(ctx, boardID)
	if err != nil {
		return nil, err
	}

	item, err := c.App.ItemService.CreateItem(ctx, itemservice.CreateItemRequest{
		BoardID: boardID,
		Layout:  loaded.Layout,
		Name:    args.GetString("name", ""),
		Values:  values,
		Viewer:  viewerFrom(c, args),
	})
	if err != nil {
		return nil, err
	}
	return createdItem{Item: item}, nil
}
