package tui

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	layoutservice "github.com/thenoetrevino/pagelayout/internal/services/layout"
	"github.com/thenoetrevino/pagelayout/internal/tui/state"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.help.SetWidth(msg.Width)
		return m, nil

	case sessionLoadedMsg:
		return m.handleSessionLoaded(msg)

	case savedMsg:
		return m.handleSaved(msg)

	case stashedMsg:
		return m.handleStashed(msg)

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Anything else (cursor blink) goes to the focused input
	switch m.UiState.Mode() {
	case state.InputMode:
		return m, m.Input.Update(msg)
	case state.PaletteFilterMode:
		return m, m.Palette.UpdateFilter(msg)
	}
	return m, nil
}

// ============================================================================
// ASYNC RESULTS
// ============================================================================

func (m Model) handleSessionLoaded(msg sessionLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.Session == nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.Notifications.Error(fmt.Sprintf("Could not reload layout: %v", msg.err))
		return m, nil
	}

	m.Session = msg.session
	m.loadErr = nil
	m.revision, m.stashed = 0, 0
	m.Cursor.Release()
	m.Cursor.Clamp(m.Session.Layout)

	switch {
	case msg.discarded:
		m.Notifications.Info("Draft discarded, showing the saved layout")
	case m.Session.FromDraft:
		m.Notifications.Info("Resumed unsaved draft from " + m.Session.DraftAt.Local().Format("Jan 2 15:04"))
	}
	if r := m.Session.Report; r.HasWarnings() {
		m.Notifications.Warn(loadWarning(r))
	}
	return m, nil
}

func loadWarning(r layoutservice.LoadReport) string {
	var parts []string
	if n := len(r.MissingColumns); n > 0 {
		parts = append(parts, fmt.Sprintf("%d columns no longer on the board", n))
	}
	if n := len(r.DuplicateColumns); n > 0 {
		parts = append(parts, fmt.Sprintf("%d columns placed twice", n))
	}
	if n := len(r.Skipped); n > 0 {
		parts = append(parts, fmt.Sprintf("%d unreadable records skipped", n))
	}
	return strings.Join(parts, "; ")
}

func (m Model) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	m.UiState.SetSaving(false)
	if msg.session != nil {
		m.Session = msg.session
		m.Cursor.Clamp(m.Session.Layout)
	}
	if msg.err != nil {
		m.Notifications.Error(fmt.Sprintf("Save failed: %v", msg.err))
		return m, nil
	}

	// Publish leaves the draft matching the saved grid either way
	m.stashed = m.revision

	switch msg.report.Outcome {
	case layoutservice.OutcomeSuccess:
		m.Notifications.Info(msg.report.Summary())
	case layoutservice.OutcomePartial:
		m.Notifications.Warn(msg.report.Summary() + firstFailure(msg.report))
	default:
		m.Notifications.Error(msg.report.Summary() + firstFailure(msg.report))
	}
	return m, nil
}

func firstFailure(r layoutservice.SaveReport) string {
	for _, res := range r.Results {
		if res.Error != "" {
			return fmt.Sprintf("\n%s: %s", res.Title, res.Error)
		}
	}
	return ""
}

func (m Model) handleStashed(msg stashedMsg) (tea.Model, tea.Cmd) {
	m.stashing = false
	if msg.err != nil {
		m.Notifications.Error(fmt.Sprintf("Draft not stored: %v", msg.err))
	} else {
		m.stashed = max(m.stashed, msg.revision)
		if m.Session != nil {
			m.Session.FromDraft = true
			m.Session.DraftAt = msg.at
		}
	}

	if m.revision != msg.revision && msg.err == nil {
		m.stashing = true
		return m, m.stash()
	}
	switch {
	case m.quitting:
		return m, tea.Quit
	case m.saveQueued:
		m.saveQueued = false
		return m.startSave()
	}
	return m, nil
}

// ============================================================================
// KEYS
// ============================================================================

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.Session == nil {
		if key.Matches(msg, m.keys.Quit) || key.Matches(msg, m.keys.Cancel) {
			return m, tea.Quit
		}
		return m, nil
	}
	// The grid is being published and must not change underneath it
	if m.UiState.Saving() || m.quitting {
		return m, nil
	}

	switch m.UiState.Mode() {
	case state.InputMode:
		return m.handleInputKey(msg)
	case state.PaletteFilterMode:
		return m.handleFilterKey(msg)
	case state.ConfirmMode:
		return m.handleConfirmKey(msg)
	case state.HelpMode:
		m.UiState.SetMode(state.GridMode)
		return m, nil
	}

	m.Notifications.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m.requestSave()
	case key.Matches(msg, m.keys.Discard):
		m.UiState.Ask(state.Confirmation{
			Action:  state.ConfirmDiscard,
			Message: "Discard all unsaved changes and reload the saved layout?",
		})
		return m, nil
	case key.Matches(msg, m.keys.TogglePalette):
		if m.UiState.Mode() == state.PaletteMode {
			m.UiState.SetMode(state.GridMode)
		} else {
			m.UiState.SetMode(state.PaletteMode)
		}
		return m, nil
	case key.Matches(msg, m.keys.Filter):
		m.UiState.SetMode(state.PaletteFilterMode)
		return m, m.Palette.FocusFilter()
	}

	if m.UiState.Mode() == state.PaletteMode {
		return m.handlePaletteKey(msg)
	}
	return m.handleGridKey(msg)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if !m.Dirty() && !m.stashing {
		return m, tea.Quit
	}
	m.quitting = true
	if m.stashing {
		return m, nil
	}
	m.stashing = true
	return m, m.stash()
}

func (m Model) requestSave() (tea.Model, tea.Cmd) {
	if m.stashing {
		m.saveQueued = true
		m.UiState.SetSaving(true)
		return m, nil
	}
	return m.startSave()
}

func (m Model) startSave() (tea.Model, tea.Cmd) {
	m.UiState.SetSaving(true)
	m.Cursor.Release()
	return m, m.publish()
}

func (m Model) handleConfirmKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	c := m.UiState.Confirmation()
	switch strings.ToLower(msg.String()) {
	case "y":
		m.UiState.ClearConfirmation()
		switch c.Action {
		case state.ConfirmDeleteSection:
			return m.deleteSection(c.SectionID)
		case state.ConfirmDiscard:
			if m.stashing {
				m.Notifications.Warn("The draft is still being written, try again")
				return m, nil
			}
			return m, m.discardSession()
		}
	case "n", "esc":
		m.UiState.ClearConfirmation()
	}
	return m, nil
}

var errNoSection = errors.New("the layout has no sections; add one first")
