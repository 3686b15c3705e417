// Package tui is the interactive layout editor: a keyboard-driven grid of
// sections with a palette of the board's unplaced columns.
package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/pagelayout/internal/config"
	"github.com/thenoetrevino/pagelayout/internal/grid"
	"github.com/thenoetrevino/pagelayout/internal/models"
	layoutservice "github.com/thenoetrevino/pagelayout/internal/services/layout"
	"github.com/thenoetrevino/pagelayout/internal/tui/state"
)

// Editor is the slice of the layout editor the TUI drives
type Editor interface {
	Open(ctx context.Context, boardID string) (*layoutservice.Session, error)
	Stash(ctx context.Context, s *layoutservice.Session) error
	Publish(ctx context.Context, s *layoutservice.Session) (layoutservice.SaveReport, error)
	Discard(ctx context.Context, boardID string) (*layoutservice.Session, error)
}

var _ Editor = (*layoutservice.Editor)(nil)

// Model represents the editor state
type Model struct {
	ctx     context.Context
	editor  Editor
	config  *config.Config
	boardID string

	// Session is nil until the layout has loaded
	Session *layoutservice.Session
	loadErr error

	UiState       *state.UIState
	Cursor        *state.CursorState
	Palette       *state.PaletteState
	Input         *state.InputState
	Notifications *state.NotificationState

	keys keyMap
	help help.Model

	// revision counts edits; stashed is the last revision written as a draft
	revision int
	stashed  int

	// at most one stash is in flight; a save or quit requested meanwhile
	// waits for it so an older draft never lands after a newer state
	stashing   bool
	saveQueued bool
	quitting   bool
}

// InitialModel creates the editor for one board. The layout loads in Init.
func InitialModel(ctx context.Context, editor Editor, cfg *config.Config, boardID string) Model {
	return Model{
		ctx:           ctx,
		editor:        editor,
		config:        cfg,
		boardID:       boardID,
		UiState:       state.NewUIState(),
		Cursor:        state.NewCursorState(),
		Palette:       state.NewPaletteState(),
		Input:         state.NewInputState(),
		Notifications: state.NewNotificationState(),
		keys:          newKeyMap(cfg.KeyMappings),
		help:          help.New(),
	}
}

// Init loads the board's layout
func (m Model) Init() tea.Cmd {
	return m.openSession()
}

// Dirty reports whether the layout has edits that are not stashed or saved
func (m Model) Dirty() bool {
	return m.revision != m.stashed
}

// layout returns the grid being edited, or nil before the session loads
func (m Model) layout() *grid.Layout {
	if m.Session == nil {
		return nil
	}
	return m.Session.Layout
}

// available returns the board columns not yet placed
func (m Model) available() []models.Column {
	if m.Session == nil {
		return nil
	}
	return m.Session.Layout.AvailableColumns(m.Session.Board.Columns)
}

// paletteColumns returns the available columns the palette shows
func (m Model) paletteColumns() []models.Column {
	return m.Palette.Visible(m.available())
}

// focused returns the column under the cursor
func (m Model) focused() (grid.SlotRef, *models.Column, bool) {
	l := m.layout()
	if l == nil {
		return grid.SlotRef{}, nil, false
	}
	ref, ok := m.Cursor.Ref(l)
	if !ok {
		return grid.SlotRef{}, nil, false
	}
	return ref, l.At(ref), true
}

// changed records an edit, keeps the cursor in bounds and stashes the draft
func (m *Model) changed() tea.Cmd {
	m.revision++
	if l := m.layout(); l != nil {
		m.Cursor.Clamp(l)
	}
	if m.stashing {
		return nil
	}
	m.stashing = true
	return m.stash()
}
