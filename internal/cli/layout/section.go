package layout

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/cli/handler"
	layoutservice "github.com/thenoetrevino/pagelayout/internal/services/layout"
)

// SectionCmd returns the layout section parent command
func SectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Add, rename, remove and reorder sections",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Append a new section",
		RunE:  handler.Command(edit(runSectionAdd)),
	}
	add.Flags().String("title", "", "Section title")

	rename := &cobra.Command{
		Use:   "rename",
		Short: "Rename a section",
		RunE:  handler.Command(edit(runSectionRename)),
	}
	rename.Flags().String("section", "", "Section ID, position (1-based) or title (required)")
	rename.Flags().String("title", "", "New title (required)")
	_ = rename.MarkFlagRequired("section")
	_ = rename.MarkFlagRequired("title")

	remove := &cobra.Command{
		Use:   "remove",
		Short: "Remove a section and free its columns",
		Long: `Remove a section. Its columns become available again and, if the section
was saved before, its record is deleted on the next save.`,
		RunE: handler.Command(edit(runSectionRemove)),
	}
	remove.Flags().String("section", "", "Section ID, position (1-based) or title (required)")
	_ = remove.MarkFlagRequired("section")

	move := &cobra.Command{
		Use:   "move",
		Short: "Move a section up or down",
		RunE:  handler.Command(edit(runSectionMove)),
	}
	move.Flags().String("section", "", "Section ID, position (1-based) or title (required)")
	move.Flags().Bool("up", false, "Move one position up")
	move.Flags().Bool("down", false, "Move one position down")
	_ = move.MarkFlagRequired("section")
	move.MarkFlagsMutuallyExclusive("up", "down")
	move.MarkFlagsOneRequired("up", "down")

	for _, sub := range []*cobra.Command{add, rename, remove, move} {
		boardFlag(sub)
		handler.AddOutputFlags(sub, "Minimal output (section ID only)")
		cmd.AddCommand(sub)
	}

	return cmd
}

func runSectionAdd(_ context.Context, s *layoutservice.Session, args *handler.Arguments) (string, string, string, error) {
	sec := s.Layout.AddSection(args.GetString("title", ""))
	return "section_add", sec.ID, fmt.Sprintf("Added section '%s'", sec.Title), nil
}

func runSectionRename(_ context.Context, s *layoutservice.Session, args *handler.Arguments) (string, string, string, error) {
	sec, err := cli.ResolveSection(s.Layout, args.GetString("section", ""))
	if err != nil {
		return "", "", "", err
	}
	old := sec.Title
	if err := s.Layout.RenameSection(sec.ID, args.GetString("title", "")); err != nil {
		return "", "", "", err
	}
	return "section_rename", sec.ID, fmt.Sprintf("Renamed '%s' to '%s'", old, sec.Title), nil
}

func runSectionRemove(_ context.Context, s *layoutservice.Session, args *handler.Arguments) (string, string, string, error) {
	sec, err := cli.ResolveSection(s.Layout, args.GetString("section", ""))
	if err != nil {
		return "", "", "", err
	}
	freed := len(sec.Columns())
	s.Layout.RemoveSection(sec.ID)
	return "section_remove", sec.ID, fmt.Sprintf("Removed section '%s' (%d columns freed)", sec.Title, freed), nil
}

func runSectionMove(_ context.Context, s *layoutservice.Session, args *handler.Arguments) (string, string, string, error) {
	sec, err := cli.ResolveSection(s.Layout, args.GetString("section", ""))
	if err != nil {
		return "", "", "", err
	}
	delta, direction := 1, "down"
	if args.GetBool("up") {
		delta, direction = -1, "up"
	}
	if !s.Layout.MoveSection(sec.ID, delta) {
		return "", "", "", fmt.Errorf("section '%s' cannot move %s", sec.Title, direction)
	}
	return "section_move", sec.ID, fmt.Sprintf("Moved '%s' %s to position %d", sec.Title, direction, sec.Order), nil
}
