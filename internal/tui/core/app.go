// Package core is the entry point of the editor's Bubble Tea program
package core

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/pagelayout/internal/config"
	"github.com/thenoetrevino/pagelayout/internal/tui"
)

// App wraps the TUI Model and implements the tea.Model interface.
// It delegates all operations to the underlying Model.
type App struct {
	model *tui.Model
}

// New creates a new App editing one board's layout
func New(ctx context.Context, editor tui.Editor, cfg *config.Config, boardID string) *App {
	model := tui.InitialModel(ctx, editor, cfg, boardID)
	return &App{model: &model}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update implements tea.Model and stores the updated Model back
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := a.model.Update(msg)
	if m, ok := updated.(tui.Model); ok {
		*a.model = m
	}
	return a, cmd
}

// View implements tea.Model
func (a *App) View() tea.View {
	return a.model.View()
}

// GetModel returns the underlying Model
func (a *App) GetModel() *tui.Model {
	return a.model
}
