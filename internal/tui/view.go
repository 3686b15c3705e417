package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/pagelayout/internal/grid"
	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/tui/layers"
	"github.com/thenoetrevino/pagelayout/internal/tui/notifications"
	"github.com/thenoetrevino/pagelayout/internal/tui/state"
)

const (
	paletteWidth  = 34
	minGridWidth  = 30
	paletteMaxRow = 20
)

// View renders the editor
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	switch {
	case m.loadErr != nil:
		view.Content = fmt.Sprintf("Could not load the layout of board %s:\n\n  %v\n\nPress q to quit.\n", m.boardID, m.loadErr)
		return view
	case m.Session == nil || m.UiState.Width() == 0:
		view.Content = "Loading layout..."
		return view
	}

	width, height := m.UiState.Width(), m.UiState.Height()
	header := m.viewHeader()
	footer := SubtleStyle.Render(m.help.View(m.keys))
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 3)

	gridWidth := max(width-paletteWidth-2, minGridWidth)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewGrid(gridWidth, bodyHeight),
		" ",
		m.viewPalette(bodyHeight),
	)
	base := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	stack := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	if modal := m.viewModal(); modal != "" {
		stack = append(stack, layers.CreateCenteredLayer(modal, width, height))
	}
	var notices []string
	for _, n := range m.Notifications.All() {
		notices = append(notices, notifications.RenderFromState(n))
	}
	stack = append(stack, layers.StackTopRight(notices, width, height)...)

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

func (m Model) viewHeader() string {
	s := m.Session
	parts := []string{TitleStyle.Render(fmt.Sprintf("Layout · %s", s.Board.Name))}
	if s.FromDraft || m.Dirty() {
		parts = append(parts, BadgeStyle.Render("unsaved draft"))
	}
	if m.UiState.Saving() {
		parts = append(parts, BadgeStyle.Render("saving..."))
	}
	if ref, ok := m.Cursor.Held(); ok {
		if c := s.Layout.At(ref); c != nil {
			parts = append(parts, BadgeStyle.Render("moving "+c.Title))
		}
	}
	if n := len(s.Layout.PendingDeletions()); n > 0 {
		parts = append(parts, SubtleStyle.Render(fmt.Sprintf("%d sections to delete on save", n)))
	}
	return strings.Join(parts, "  ") + "\n"
}

// ============================================================================
// GRID
// ============================================================================

// viewGrid renders every section and scrolls so the cursor row stays visible
func (m Model) viewGrid(width, height int) string {
	l := m.Session.Layout
	sections := l.Sections()
	if len(sections) == 0 {
		return SubtleStyle.Render(fmt.Sprintf("No sections. Press %s to add one.", m.keys.AddSection.Help().Key))
	}

	held, holding := m.Cursor.Held()
	cellWidth := max((width-2)/models.SlotsPerRow-2, 8)

	var lines []string
	cursorLine := 0
	for si, sec := range sections {
		lines = append(lines, strings.Split(m.viewSectionHeader(si, sec, width), "\n")...)
		for r, row := range sec.Rows {
			cells := make([]string, len(row))
			for i, c := range row {
				ref := grid.SlotRef{SectionID: sec.ID, Row: r, Slot: i}
				focused := si == m.Cursor.Section() && r == m.Cursor.Row() && i == m.Cursor.Slot()
				cells[i] = m.viewCell(c, cellWidth, focused, holding && held == ref)
			}
			if si == m.Cursor.Section() && r == m.Cursor.Row() {
				cursorLine = len(lines)
			}
			lines = append(lines, strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, cells...), "\n")...)
		}
		lines = append(lines, "")
	}

	// Keep the focused row (three lines tall) inside the window
	start := 0
	if len(lines) > height {
		start = min(max(cursorLine-height/3, 0), len(lines)-height)
	}
	end := min(start+height, len(lines))
	return strings.Join(lines[start:end], "\n")
}

func (m Model) viewSectionHeader(index int, sec *models.Section, width int) string {
	title := fmt.Sprintf("%d. %s", index+1, sec.Title)
	if !sec.IsPersisted() {
		title += SubtleStyle.Render(" (new)")
	}
	out := SectionTitleStyle.Render(title)
	if g, ok := m.Session.Layout.Rules(sec.ID); ok {
		out += "\n" + SubtleStyle.Width(width).Render("visible when "+g.String())
	}
	return out
}

func (m Model) viewCell(c *models.Column, width int, focused, held bool) string {
	style := CellStyle
	switch {
	case held:
		style = HeldCellStyle
	case focused:
		style = SelectedCellStyle
	}
	style = style.Width(width)

	if c == nil {
		return style.Render(SubtleStyle.Render("·"))
	}
	text := c.Title
	if m.Session.Layout.IsRequired(c.ID) {
		text += RequiredStyle.Render(" *")
	}
	info := c.Info()
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color)).Render(info.Label)
	return style.Render(text + "\n" + label)
}

// ============================================================================
// PALETTE
// ============================================================================

func (m Model) viewPalette(height int) string {
	visible := m.paletteColumns()
	active := m.UiState.Mode() == state.PaletteMode || m.UiState.Mode() == state.PaletteFilterMode

	var b strings.Builder
	heading := fmt.Sprintf("Columns (%d)", len(m.available()))
	if active {
		b.WriteString(SectionTitleStyle.Render(heading))
	} else {
		b.WriteString(TitleStyle.Render(heading))
	}
	b.WriteString("\n")
	if m.UiState.Mode() == state.PaletteFilterMode || m.Palette.Filter.Value() != "" {
		b.WriteString(m.Palette.Filter.View())
		b.WriteString("\n")
	}

	rows := min(max(height-6, 1), paletteMaxRow)
	selected := m.Palette.SelectedIndex(len(visible))
	start := 0
	if selected >= rows {
		start = selected - rows + 1
	}
	for i := start; i < min(start+rows, len(visible)); i++ {
		c := visible[i]
		line := fmt.Sprintf("%s %s", c.Title, SubtleStyle.Render(c.Info().Label))
		if active && i == selected {
			b.WriteString(PaletteCurStyle.Render("▸ " + line))
		} else {
			b.WriteString(PaletteItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if len(visible) == 0 {
		b.WriteString(SubtleStyle.Render("  nothing to place"))
	}

	return PaletteStyle.Width(paletteWidth).Render(strings.TrimRight(b.String(), "\n"))
}

// ============================================================================
// MODALS
// ============================================================================

func (m Model) viewModal() string {
	switch m.UiState.Mode() {
	case state.InputMode:
		body := TitleStyle.Render(m.Input.Title()) + "\n\n" + m.Input.Input.View()
		if m.Input.Purpose() == state.PurposeRules {
			body += "\n\n" + SubtleStyle.Render("fields: title, profile, role\noperators: equals, not_equals, contains, not_contains\nseparate rules with ; and prefix any: to match any rule\nleave empty to show the section to everyone")
		}
		return ModalStyle.Width(min(m.UiState.Width()-4, 72)).Render(body)

	case state.ConfirmMode:
		c := m.UiState.Confirmation()
		return DangerModalStyle.Render(c.Message + "\n\n" + SubtleStyle.Render("y confirm · n cancel"))

	case state.HelpMode:
		h := m.help
		h.ShowAll = true
		return ModalStyle.Render(TitleStyle.Render("Keys") + "\n\n" + h.View(m.keys))
	}
	return ""
}
