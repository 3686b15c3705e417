package layout

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/thenoetrevino/pagelayout/internal/cli/styles"
	"github.com/thenoetrevino/pagelayout/internal/models"
	layoutservice "github.com/thenoetrevino/pagelayout/internal/services/layout"
)

type slotView struct {
	ColumnID string `json:"column_id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type sectionView struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Order    int               `json:"order"`
	RecordID string            `json:"record_id,omitempty"`
	Rules    *models.RuleGroup `json:"rules,omitempty"`
	Rows     [][]*slotView     `json:"rows"`
}

// layoutView is the serializable rendering of a session
type layoutView struct {
	BoardID          string                    `json:"board_id"`
	BoardName        string                    `json:"board_name"`
	FromDraft        bool                      `json:"from_draft"`
	DraftAt          *time.Time                `json:"draft_at,omitempty"`
	Sections         []sectionView             `json:"sections"`
	Available        int                       `json:"available_columns"`
	PendingDeletions []string                  `json:"pending_deletions,omitempty"`
	Report           *layoutservice.LoadReport `json:"report,omitempty"`
}

func newLayoutView(s *layoutservice.Session) layoutView {
	v := layoutView{
		BoardID:          s.BoardID,
		BoardName:        s.Board.Name,
		FromDraft:        s.FromDraft,
		Available:        len(s.Layout.AvailableColumns(s.Board.Columns)),
		PendingDeletions: s.Layout.PendingDeletions(),
	}
	if s.FromDraft && !s.DraftAt.IsZero() {
		at := s.DraftAt
		v.DraftAt = &at
	}
	if !s.FromDraft {
		report := s.Report
		v.Report = &report
	}

	for _, sec := range s.Layout.Sections() {
		sv := sectionView{ID: sec.ID, Title: sec.Title, Order: sec.Order, Rows: make([][]*slotView, 0, len(sec.Rows))}
		if sec.RecordID != nil {
			sv.RecordID = *sec.RecordID
		}
		if g, ok := s.Layout.Rules(sec.ID); ok {
			sv.Rules = &g
		}
		for _, row := range sec.Rows {
			cells := make([]*slotView, len(row))
			for i, c := range row {
				if c == nil {
					continue
				}
				cells[i] = &slotView{
					ColumnID: c.ID,
					Title:    c.Title,
					Type:     c.Type,
					Required: s.Layout.IsRequired(c.ID),
				}
			}
			sv.Rows = append(sv.Rows, cells)
		}
		v.Sections = append(v.Sections, sv)
	}
	return v
}

func (v layoutView) QuietLines() []string {
	ids := make([]string, len(v.Sections))
	for i, s := range v.Sections {
		ids[i] = s.ID
	}
	return ids
}

func describeRules(g *models.RuleGroup) string {
	parts := make([]string, len(g.Rules))
	for i, r := range g.Rules {
		parts[i] = fmt.Sprintf("%s %s %q", r.Field, r.Operator, r.Value)
	}
	joiner := " and "
	if g.Criteria == models.CriteriaAny {
		joiner = " or "
	}
	return strings.Join(parts, joiner)
}

func (v layoutView) PrintHuman(w io.Writer) error {
	header := fmt.Sprintf("Layout of '%s' (board %s)", v.BoardName, v.BoardID)
	fmt.Fprintln(w, styles.TitleStyle.Render(header))
	if v.FromDraft {
		when := ""
		if v.DraftAt != nil {
			when = " from " + v.DraftAt.Local().Format(time.DateTime)
		}
		fmt.Fprintln(w, styles.SubtitleStyle.Render("Unsaved draft"+when))
	}

	for i, s := range v.Sections {
		title := fmt.Sprintf("%d. %s", i+1, s.Title)
		if s.RecordID == "" {
			title += " (new)"
		}
		fmt.Fprintln(w, styles.SectionStyle.Render(title))
		if s.Rules != nil {
			fmt.Fprintf(w, "   %s %s\n", styles.LabelStyle.Render("Visible when:"), describeRules(s.Rules))
		}
		for r, row := range s.Rows {
			cells := make([]string, len(row))
			for j, c := range row {
				if c == nil {
					cells[j] = styles.SubtitleStyle.Render("·")
					continue
				}
				cells[j] = styles.RenderColumnChip(models.Column{ID: c.ColumnID, Title: c.Title, Type: c.Type})
				if c.Required {
					cells[j] += styles.RequiredStyle.Render(" *")
				}
			}
			fmt.Fprintf(w, "   %d: %s\n", r+1, strings.Join(cells, "  |  "))
		}
	}

	fmt.Fprintf(w, "\n%d columns available\n", v.Available)
	if n := len(v.PendingDeletions); n > 0 {
		fmt.Fprintf(w, "%d removed sections will be deleted on save\n", n)
	}
	if v.Report != nil && v.Report.HasWarnings() {
		printReport(w, *v.Report)
	}
	return nil
}

func printReport(w io.Writer, r layoutservice.LoadReport) {
	if len(r.Skipped) > 0 {
		fmt.Fprintln(w, styles.WarningStyle.Render(fmt.Sprintf("Skipped unreadable records: %s", strings.Join(r.Skipped, ", "))))
	}
	if len(r.MissingColumns) > 0 {
		fmt.Fprintln(w, styles.WarningStyle.Render(fmt.Sprintf("Columns no longer on the board: %s", strings.Join(r.MissingColumns, ", "))))
	}
	if len(r.DuplicateColumns) > 0 {
		fmt.Fprintln(w, styles.WarningStyle.Render(fmt.Sprintf("Columns placed more than once: %s", strings.Join(r.DuplicateColumns, ", "))))
	}
}

// Markdown renders the layout as a markdown document
func (v layoutView) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", v.BoardName)
	if v.FromDraft {
		b.WriteString("_Unsaved draft_\n\n")
	}
	for _, s := range v.Sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		if s.Rules != nil {
			fmt.Fprintf(&b, "Visible when %s.\n\n", describeRules(s.Rules))
		}
		b.WriteString("| Left | Right |\n| --- | --- |\n")
		for _, row := range s.Rows {
			cells := make([]string, len(row))
			for i, c := range row {
				if c == nil {
					cells[i] = " "
					continue
				}
				cells[i] = fmt.Sprintf("%s `%s`", c.Title, c.ColumnID)
				if c.Required {
					cells[i] += " **required**"
				}
			}
			fmt.Fprintf(&b, "| %s |\n", strings.Join(cells, " | "))
		}
		b.WriteString("\n")
	}
	return b.String()
}
