package layout

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/cli/handler"
	"github.com/thenoetrevino/pagelayout/internal/grid"
	"github.com/thenoetrevino/pagelayout/internal/models"
	layoutservice "github.com/thenoetrevino/pagelayout/internal/services/layout"
)

// slotFlags registers --section, --row and --slot addressing a grid slot
func slotFlags(cmd *cobra.Command) {
	cmd.Flags().String("section", "", "Section ID, position (1-based) or title (default: first section)")
	cmd.Flags().Int("row", 0, "Row number, 1-based (default: first free slot)")
	cmd.Flags().Int("slot", 0, "Slot in the row: 1 (left) or 2 (right)")
}

// targetSlot resolves the slot named by the flags; without --row it is the
// section's first free slot
func targetSlot(l *grid.Layout, args *handler.Arguments) (grid.SlotRef, error) {
	section, err := cli.ResolveSection(l, args.GetString("section", ""))
	if err != nil {
		return grid.SlotRef{}, err
	}
	row := args.GetInt("row", 0)
	if row <= 0 {
		return grid.FirstEmptySlot(section), nil
	}
	slot := args.GetInt("slot", 1)
	if slot < 1 || slot > models.SlotsPerRow {
		return grid.SlotRef{}, fmt.Errorf("slot must be 1 or %d, got %d", models.SlotsPerRow, slot)
	}
	if row > len(section.Rows) {
		return grid.SlotRef{}, fmt.Errorf("section %q has %d rows, got row %d", section.Title, len(section.Rows), row)
	}
	return grid.SlotRef{SectionID: section.ID, Row: row - 1, Slot: slot - 1}, nil
}

func describeSlot(l *grid.Layout, ref grid.SlotRef) string {
	title := ref.SectionID
	if s, ok := l.Section(ref.SectionID); ok {
		title = s.Title
	}
	return fmt.Sprintf("'%s' row %d slot %d", title, ref.Row+1, ref.Slot+1)
}

// PlaceCmd returns the layout place subcommand
func PlaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place a column in the layout",
		Long: `Place a board column into an empty slot. Each column can be placed once.

Examples:
  # First free slot of the first section
  pagelayout layout place --board=123 --column=status

  # A specific slot
  pagelayout layout place --board=123 --column="Due date" --section=Billing --row=2 --slot=1
`,
		RunE: handler.Command(edit(runPlace)),
	}

	boardFlag(cmd)
	cmd.Flags().String("column", "", "Column ID or title (required)")
	_ = cmd.MarkFlagRequired("column")
	cmd.Flags().Bool("required", false, "Also mark the column required")
	slotFlags(cmd)
	handler.AddOutputFlags(cmd, "Minimal output (column ID only)")

	return cmd
}

func runPlace(_ context.Context, s *layoutservice.Session, args *handler.Arguments) (string, string, string, error) {
	col, err := cli.ResolveColumn(s.Board, args.GetString("column", ""))
	if err != nil {
		return "", "", "", err
	}
	if ref, ok := s.Layout.Locate(col.ID); ok {
		return "", "", "", fmt.Errorf("column %q is already placed at %s", col.Title, describeSlot(s.Layout, ref))
	}
	ref, err := targetSlot(s.Layout, args)
	if err != nil {
		return "", "", "", err
	}
	if !s.Layout.Place(col, ref) {
		return "", "", "", fmt.Errorf("slot %s is taken", describeSlot(s.Layout, ref))
	}
	if args.GetBool("required") {
		s.Layout.SetRequired(col.ID, true)
	}
	return "place", col.ID, fmt.Sprintf("Placed '%s' at %s", col.Title, describeSlot(s.Layout, ref)), nil
}

// MoveCmd returns the layout move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a placed column to another slot",
		Long: `Move a placed column. Moving onto an occupied slot swaps the two columns.

Examples:
  pagelayout layout move --board=123 --column=status --section=2 --row=1 --slot=2
`,
		RunE: handler.Command(edit(runMove)),
	}

	boardFlag(cmd)
	cmd.Flags().String("column", "", "Column ID or title (required)")
	_ = cmd.MarkFlagRequired("column")
	slotFlags(cmd)
	handler.AddOutputFlags(cmd, "Minimal output (column ID only)")

	return cmd
}

func runMove(_ context.Context, s *layoutservice.Session, args *handler.Arguments) (string, string, string, error) {
	col, err := cli.ResolveColumn(s.Board, args.GetString("column", ""))
	if err != nil {
		return "", "", "", err
	}
	from, ok := s.Layout.Locate(col.ID)
	if !ok {
		return "", "", "", fmt.Errorf("%w: %q is not placed", cli.ErrColumnNotFound, col.Title)
	}
	dest, err := targetSlot(s.Layout, args)
	if err != nil {
		return "", "", "", err
	}
	where := describeSlot(s.Layout, dest)
	if !s.Layout.Move(from, dest) {
		return "", "", "", fmt.Errorf("cannot move %q to %s", col.Title, where)
	}
	return "move", col.ID, fmt.Sprintf("Moved '%s' to %s", col.Title, where), nil
}

// RemoveCmd returns the layout remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a column from the layout",
		RunE:  handler.Command(edit(runRemove)),
	}

	boardFlag(cmd)
	cmd.Flags().String("column", "", "Column ID or title (required)")
	_ = cmd.MarkFlagRequired("column")
	handler.AddOutputFlags(cmd, "Minimal output (column ID only)")

	return cmd
}

func runRemove(_ context.Context, s *layoutservice.Session, args *handler.Arguments) (string, string, string, error) {
	col, err := cli.ResolveColumn(s.Board, args.GetString("column", ""))
	if err != nil {
		return "", "", "", err
	}
	ref, ok := s.Layout.Locate(col.ID)
	if !ok {
		return "", "", "", fmt.Errorf("%w: %q is not placed", cli.ErrColumnNotFound, col.Title)
	}
	s.Layout.Remove(ref)
	return "remove", col.ID, fmt.Sprintf("Removed '%s' from the layout", col.Title), nil
}

// RequireCmd returns the layout require subcommand
func RequireCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "require",
		Short: "Mark a placed column required or optional",
		Long: `Mark a placed column required. Required fields must be filled when
creating an item.

Examples:
  pagelayout layout require --board=123 --column=status
  pagelayout layout require --board=123 --column=status --off
`,
		RunE: handler.Command(edit(runRequire)),
	}

	boardFlag(cmd)
	cmd.Flags().String("column", "", "Column ID or title (required)")
	_ = cmd.MarkFlagRequired("column")
	cmd.Flags().Bool("off", false, "Mark the column optional instead")
	handler.AddOutputFlags(cmd, "Minimal output (column ID only)")

	return cmd
}

func runRequire(_ context.Context, s *layoutservice.Session, args *handler.Arguments) (string, string, string, error) {
	col, err := cli.ResolveColumn(s.Board, args.GetString("column", ""))
	if err != nil {
		return "", "", "", err
	}
	if !s.Layout.IsPlaced(col.ID) {
		return "", "", "", fmt.Errorf("%w: %q is not placed", cli.ErrColumnNotFound, col.Title)
	}
	required := !args.GetBool("off")
	s.Layout.SetRequired(col.ID, required)
	state := "required"
	if !required {
		state = "optional"
	}
	return "require", col.ID, fmt.Sprintf("'%s' is now %s", col.Title, state), nil
}
