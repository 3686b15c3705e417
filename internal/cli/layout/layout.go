// Package layout holds the `pagelayout layout` commands. Edits apply to the
// board's local draft; `layout save` publishes the draft to the metadata board.
package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/cli/handler"
	layoutservice "github.com/thenoetrevino/pagelayout/internal/services/layout"
)

// LayoutCmd returns the layout parent command
func LayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Edit a board's item form layout",
		Long: `Edit the layout of a board's item-creation form.

Changes are kept in a local draft until 'pagelayout layout save' publishes
them. 'pagelayout layout discard' drops the draft and reloads the saved layout.`,
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(PlaceCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(RequireCmd())
	cmd.AddCommand(SectionCmd())
	cmd.AddCommand(RulesCmd())
	cmd.AddCommand(SaveCmd())
	cmd.AddCommand(DiscardCmd())
	cmd.AddCommand(HistoryCmd())
	cmd.AddCommand(EditCmd())

	return cmd
}

// boardFlag registers the --board flag shared by every layout command
func boardFlag(cmd *cobra.Command) {
	cmd.Flags().String("board", "", "Board ID (uses PAGELAYOUT_BOARD env var if not specified)")
}

// change is the result of an edit applied to the draft
type change struct {
	BoardID string     `json:"board_id"`
	Action  string     `json:"action"`
	Target  string     `json:"target"`
	Message string     `json:"message"`
	Layout  layoutView `json:"layout"`
}

func (c change) QuietLines() []string { return []string{c.Target} }

func (c change) PrintHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ %s\n", c.Message)
	return err
}

// editFunc applies one edit to an open session and describes it
type editFunc func(ctx context.Context, s *layoutservice.Session, args *handler.Arguments) (action, target, message string, err error)

// edit opens the board's draft, applies fn and stashes the result
func edit(fn editFunc) handler.Handler {
	return handler.HandlerFunc(func(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
		boardID, err := args.BoardID(c)
		if err != nil {
			return nil, err
		}
		session, err := c.App.Editor.Open(ctx, boardID)
		if err != nil {
			return nil, err
		}

		action, target, message, err := fn(ctx, session, args)
		if err != nil {
			return nil, err
		}

		if err := c.App.Editor.Stash(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to store draft: %w", err)
		}
		return change{
			BoardID: boardID,
			Action:  action,
			Target:  target,
			Message: message,
			Layout:  newLayoutView(session),
		}, nil
	})
}
