package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/cli/handler"
)

// ShowCmd returns the layout show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a board's layout",
		Long: `Show the layout being edited: the draft if one exists, otherwise the
saved layout.

Examples:
  pagelayout layout show --board=123
  pagelayout layout show --board=123 --markdown
  pagelayout layout show --board=123 --json
`,
		RunE: handler.Command(handler.HandlerFunc(runShow)),
	}

	boardFlag(cmd)
	cmd.Flags().Bool("markdown", false, "Render the layout as markdown")
	cmd.Flags().Int("width", 100, "Wrap width for --markdown")
	handler.AddOutputFlags(cmd, "Minimal output (section IDs only)")

	return cmd
}

// markdownView renders through glamour instead of the plain listing
type markdownView struct {
	layoutView
	width int
}

func (m markdownView) PrintHuman(w io.Writer) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.width),
	)
	if err != nil {
		return err
	}
	out, err := renderer.Render(m.Markdown())
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	boardID, err := args.BoardID(c)
	if err != nil {
		return nil, err
	}
	session, err := c.App.Editor.Open(ctx, boardID)
	if err != nil {
		return nil, err
	}

	view := newLayoutView(session)
	if args.GetBool("markdown") {
		return markdownView{layoutView: view, width: args.GetInt("width", 100)}, nil
	}
	return view, nil
}
