package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/pagelayout/internal/grid"
	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/tui/state"
)

// ============================================================================
// GRID
// ============================================================================

func (m Model) handleGridKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	l := m.layout()

	switch {
	case key.Matches(msg, m.keys.Left):
		m.Cursor.Left()
	case key.Matches(msg, m.keys.Right):
		m.Cursor.Right()
	case key.Matches(msg, m.keys.Up):
		m.Cursor.Up(l)
	case key.Matches(msg, m.keys.Down):
		m.Cursor.Down(l)
	case key.Matches(msg, m.keys.Cancel):
		m.Cursor.Release()

	case key.Matches(msg, m.keys.Place):
		return m.placeOrPick()
	case key.Matches(msg, m.keys.Grab):
		return m.grabOrDrop()
	case key.Matches(msg, m.keys.Remove):
		return m.removeFocused()
	case key.Matches(msg, m.keys.ToggleRequired):
		return m.toggleRequired()

	case key.Matches(msg, m.keys.AddSection):
		m.UiState.SetMode(state.InputMode)
		return m, m.Input.Start(state.PurposeAddSection, "New section", "Section title", "", "")
	case key.Matches(msg, m.keys.RenameSection):
		sec, ok := m.Cursor.FocusedSection(l)
		if !ok {
			m.Notifications.Warn(errNoSection.Error())
			return m, nil
		}
		m.UiState.SetMode(state.InputMode)
		return m, m.Input.Start(state.PurposeRenameSection, "Rename section", "Section title", sec.Title, sec.ID)
	case key.Matches(msg, m.keys.DeleteSection):
		sec, ok := m.Cursor.FocusedSection(l)
		if !ok {
			m.Notifications.Warn(errNoSection.Error())
			return m, nil
		}
		m.UiState.Ask(state.Confirmation{
			Action:    state.ConfirmDeleteSection,
			SectionID: sec.ID,
			Message:   fmt.Sprintf("Delete section '%s'? Its %d columns return to the palette.", sec.Title, len(sec.Columns())),
		})
	case key.Matches(msg, m.keys.MoveSectionUp):
		return m.moveSection(-1)
	case key.Matches(msg, m.keys.MoveSectionDown):
		return m.moveSection(1)
	case key.Matches(msg, m.keys.EditRules):
		sec, ok := m.Cursor.FocusedSection(l)
		if !ok {
			m.Notifications.Warn(errNoSection.Error())
			return m, nil
		}
		g, _ := l.Rules(sec.ID)
		m.UiState.SetMode(state.InputMode)
		return m, m.Input.Start(state.PurposeRules, "Visibility of '"+sec.Title+"'",
			"any: role equals manager; title contains lead", g.String(), sec.ID)
	}
	return m, nil
}

// placeOrPick drops a held column on the cursor, or opens the palette when
// the focused slot is free
func (m Model) placeOrPick() (tea.Model, tea.Cmd) {
	if _, ok := m.Cursor.Held(); ok {
		return m.grabOrDrop()
	}
	_, col, ok := m.focused()
	switch {
	case !ok:
		m.Notifications.Warn(errNoSection.Error())
	case col != nil:
		m.Notifications.Warn(fmt.Sprintf("'%s' is here; pick it up with %s to move it", col.Title, m.keys.Grab.Help().Key))
	case len(m.available()) == 0:
		m.Notifications.Info("Every column is placed")
	default:
		m.UiState.SetMode(state.PaletteMode)
	}
	return m, nil
}

// grabOrDrop picks up the focused column, or moves the held one onto the
// cursor. Dropping onto an occupied slot swaps the two columns.
func (m Model) grabOrDrop() (tea.Model, tea.Cmd) {
	l := m.layout()
	ref, col, ok := m.focused()
	if !ok {
		m.Notifications.Warn(errNoSection.Error())
		return m, nil
	}

	from, holding := m.Cursor.Held()
	if !holding {
		if col == nil {
			m.Notifications.Warn("Nothing to pick up in this slot")
			return m, nil
		}
		m.Cursor.Hold(ref)
		return m, nil
	}

	m.Cursor.Release()
	if from == ref {
		return m, nil
	}
	moving := l.At(from)
	if !l.Move(from, ref) {
		m.Notifications.Error("That column cannot be moved there")
		return m, nil
	}
	if moving != nil {
		if dest, ok := l.Locate(moving.ID); ok {
			m.Cursor.FocusRef(l, dest)
		}
	}
	return m, m.changed()
}

func (m Model) removeFocused() (tea.Model, tea.Cmd) {
	ref, col, ok := m.focused()
	if !ok || col == nil {
		return m, nil
	}
	if held, holding := m.Cursor.Held(); holding && held.SectionID == ref.SectionID {
		m.Cursor.Release()
	}
	if _, ok := m.layout().Remove(ref); !ok {
		return m, nil
	}
	return m, m.changed()
}

func (m Model) toggleRequired() (tea.Model, tea.Cmd) {
	_, col, ok := m.focused()
	if !ok || col == nil {
		return m, nil
	}
	m.layout().ToggleRequired(col.ID)
	return m, m.changed()
}

func (m Model) moveSection(delta int) (tea.Model, tea.Cmd) {
	l := m.layout()
	sec, ok := m.Cursor.FocusedSection(l)
	if !ok || !l.MoveSection(sec.ID, delta) {
		return m, nil
	}
	m.Cursor.Release()
	m.Cursor.FocusSection(l, sec.ID)
	return m, m.changed()
}

func (m Model) deleteSection(id string) (tea.Model, tea.Cmd) {
	l := m.layout()
	if !l.RemoveSection(id) {
		return m, nil
	}
	m.Cursor.Release()
	if len(l.Sections()) == 0 {
		m.Notifications.Info("The layout is empty; add a section to place columns")
	}
	return m, m.changed()
}

// ============================================================================
// PALETTE
// ============================================================================

func (m Model) handlePaletteKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	visible := m.paletteColumns()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.Palette.Up()
	case key.Matches(msg, m.keys.Down):
		m.Palette.Down(len(visible))
	case key.Matches(msg, m.keys.Cancel):
		m.UiState.SetMode(state.GridMode)
	case key.Matches(msg, m.keys.Place):
		return m.placeSelected(visible)
	}
	return m, nil
}

// placeSelected puts the highlighted palette column on the cursor, or in
// the focused section's first free slot when the cursor slot is taken
func (m Model) placeSelected(visible []models.Column) (tea.Model, tea.Cmd) {
	l := m.layout()
	col, ok := m.Palette.Selected(visible)
	if !ok {
		return m, nil
	}
	ref, occupant, ok := m.focused()
	if !ok {
		m.Notifications.Warn(errNoSection.Error())
		return m, nil
	}
	if occupant != nil {
		sec, _ := l.Section(ref.SectionID)
		ref = grid.FirstEmptySlot(sec)
	}
	if !l.Place(col, ref) {
		m.Notifications.Error(fmt.Sprintf("Could not place '%s'", col.Title))
		return m, nil
	}
	m.Cursor.FocusRef(l, ref)
	if len(m.available()) == 0 {
		m.UiState.SetMode(state.GridMode)
	}
	return m, m.changed()
}

func (m Model) handleFilterKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Reset()
		m.UiState.SetMode(state.PaletteMode)
		return m, nil
	case "enter":
		m.Palette.BlurFilter()
		m.UiState.SetMode(state.PaletteMode)
		return m, nil
	}
	return m, m.Palette.UpdateFilter(msg)
}

// ============================================================================
// PROMPT
// ============================================================================

func (m Model) handleInputKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.Notifications.Clear()
	switch msg.String() {
	case "esc":
		m.Input.Reset()
		m.UiState.SetMode(state.GridMode)
		return m, nil
	case "enter":
		return m.submitInput()
	}
	return m, m.Input.Update(msg)
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	l := m.layout()
	value := strings.TrimSpace(m.Input.Value())
	purpose, sectionID := m.Input.Purpose(), m.Input.SectionID()

	switch purpose {
	case state.PurposeAddSection:
		sec := l.AddSection(value)
		m.Cursor.FocusSection(l, sec.ID)

	case state.PurposeRenameSection:
		if err := l.RenameSection(sectionID, value); err != nil {
			m.Notifications.Warn(err.Error())
			return m, nil
		}

	case state.PurposeRules:
		group, err := models.ParseRuleGroup(value)
		if err != nil {
			// Keep the prompt open so the rule can be fixed
			m.Notifications.Warn(err.Error())
			return m, nil
		}
		if err := l.SetRules(sectionID, group); err != nil {
			m.Notifications.Warn(err.Error())
			return m, nil
		}
	}

	m.Input.Reset()
	m.UiState.SetMode(state.GridMode)
	return m, m.changed()
}
