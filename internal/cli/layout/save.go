package layout

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/cli/handler"
	"github.com/thenoetrevino/pagelayout/internal/cli/styles"
	layoutservice "github.com/thenoetrevino/pagelayout/internal/services/layout"
)

// ============================================================================
// SAVE
// ============================================================================

// SaveCmd returns the layout save subcommand
func SaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Publish the draft to the metadata board",
		Long: `Publish the board's layout to the metadata board. Every section is
created or updated and removed sections are deleted.

A partial save keeps the draft, including the record ids of sections that
were created, so running save again only retries what failed.

Exit codes:
  0  every section saved
  6  some sections saved, some failed
  1  nothing saved

Examples:
  pagelayout layout save --board=123
  pagelayout layout save --board=123 --json
`,
		RunE: handler.Command(handler.HandlerFunc(runSave)),
	}

	boardFlag(cmd)
	handler.AddOutputFlags(cmd, "Minimal output (outcome only)")

	return cmd
}

// saveResult renders a save report
type saveResult struct {
	layoutservice.SaveReport
	Message string `json:"message"`
}

func (r saveResult) QuietLines() []string { return []string{string(r.Outcome)} }

func (r saveResult) ExitStatus() int {
	switch r.Outcome {
	case layoutservice.OutcomeSuccess:
		return cli.ExitSuccess
	case layoutservice.OutcomePartial:
		return cli.ExitPartial
	default:
		return cli.ExitError
	}
}

func (r saveResult) PrintHuman(w io.Writer) error {
	switch r.Outcome {
	case layoutservice.OutcomeSuccess:
		fmt.Fprintln(w, styles.SuccessStyle.Render("✓ "+r.Message))
	case layoutservice.OutcomePartial:
		fmt.Fprintln(w, styles.WarningStyle.Render("⚠ "+r.Message))
	default:
		fmt.Fprintln(w, styles.ErrorStyle.Render("✗ "+r.Message))
	}
	for _, res := range r.Results {
		if res.Error == "" {
			continue
		}
		fmt.Fprintf(w, "  %s %s: %s\n", styles.LabelStyle.Render(res.Action), res.Title, res.Error)
	}
	return nil
}

func runSave(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	boardID, err := args.BoardID(c)
	if err != nil {
		return nil, err
	}
	session, err := c.App.Editor.Open(ctx, boardID)
	if err != nil {
		return nil, err
	}
	report, err := c.App.Editor.Publish(ctx, session)
	if err != nil {
		return nil, err
	}
	return saveResult{SaveReport: report, Message: report.Summary()}, nil
}

// ============================================================================
// DISCARD
// ============================================================================

// DiscardCmd returns the layout discard subcommand
func DiscardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discard",
		Short: "Drop the draft and reload the saved layout",
		RunE:  handler.Command(handler.HandlerFunc(runDiscard)),
	}

	boardFlag(cmd)
	handler.AddOutputFlags(cmd, "Minimal output (section IDs only)")

	return cmd
}

func runDiscard(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	boardID, err := args.BoardID(c)
	if err != nil {
		return nil, err
	}
	session, err := c.App.Editor.Discard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return newLayoutView(session), nil
}

// ============================================================================
// HISTORY
// ============================================================================

// HistoryCmd returns the layout history subcommand
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent saves of a board's layout",
		RunE:  handler.Command(handler.HandlerFunc(runHistory)),
	}

	boardFlag(cmd)
	cmd.Flags().Int("limit", 10, "Maximum number of saves to list")
	handler.AddOutputFlags(cmd, "Minimal output (save IDs only)")

	return cmd
}

type historyEntry struct {
	ID           int64     `json:"id"`
	Outcome      string    `json:"outcome"`
	Created      int       `json:"created"`
	Updated      int       `json:"updated"`
	Failed       int       `json:"failed"`
	Deleted      int       `json:"deleted"`
	DeleteFailed int       `json:"delete_failed"`
	SavedBy      string    `json:"saved_by,omitempty"`
	SavedAt      time.Time `json:"saved_at"`
}

type historyList struct {
	BoardID string         `json:"board_id"`
	Saves   []historyEntry `json:"saves"`
}

func (h historyList) QuietLines() []string {
	ids := make([]string, len(h.Saves))
	for i, s := range h.Saves {
		ids[i] = strconv.FormatInt(s.ID, 10)
	}
	return ids
}

func (h historyList) PrintHuman(w io.Writer) error {
	if len(h.Saves) == 0 {
		_, err := fmt.Fprintf(w, "No saves recorded for board %s\n", h.BoardID)
		return err
	}
	for _, s := range h.Saves {
		fmt.Fprintf(w, "%s  %-8s created %d, updated %d, failed %d, deleted %d",
			s.SavedAt.Local().Format(time.DateTime), s.Outcome, s.Created, s.Updated, s.Failed, s.Deleted)
		if s.DeleteFailed > 0 {
			fmt.Fprintf(w, ", %d deletions failed", s.DeleteFailed)
		}
		if s.SavedBy != "" {
			fmt.Fprintf(w, " by %s", s.SavedBy)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func runHistory(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	boardID, err := args.BoardID(c)
	if err != nil {
		return nil, err
	}
	records, err := c.App.Editor.History(ctx, boardID, args.GetInt("limit", 10))
	if err != nil {
		return nil, err
	}

	list := historyList{BoardID: boardID, Saves: make([]historyEntry, 0, len(records))}
	for _, r := range records {
		list.Saves = append(list.Saves, historyEntry{
			ID:           r.ID,
			Outcome:      r.Outcome,
			Created:      r.Created,
			Updated:      r.Updated,
			Failed:       r.Failed,
			Deleted:      r.Deleted,
			DeleteFailed: r.DeleteFailed,
			SavedBy:      r.SavedBy,
			SavedAt:      r.CreatedAt,
		})
	}
	return list, nil
}
