// Package launcher runs the interactive layout editor
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/pagelayout/internal/app"
	"github.com/thenoetrevino/pagelayout/internal/tui"
	"github.com/thenoetrevino/pagelayout/internal/tui/core"
	"github.com/thenoetrevino/pagelayout/internal/tui/theme"
)

// stashTimeout bounds the final draft write after the editor exits
const stashTimeout = 5 * time.Second

// Launch runs the editor for one board until the user quits or the process
// is interrupted. Unstashed edits are written as the board's draft on the
// way out.
func Launch(ctx context.Context, a *app.App, boardID string) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	theme.Init(a.Config.ColorScheme)
	tui.InitStyles()

	editor := core.New(ctx, a.Editor, a.Config, boardID)
	p := tea.NewProgram(editor, tea.WithContext(ctx))

	slog.Info("editor started", "board", boardID)
	_, runErr := p.Run()

	model := editor.GetModel()
	if model.Dirty() && model.Session != nil {
		// The program context may already be cancelled
		stashCtx, stashCancel := context.WithTimeout(context.Background(), stashTimeout)
		defer stashCancel()
		if err := a.Editor.Stash(stashCtx, model.Session); err != nil {
			slog.Error("failed to store draft on exit", "board", boardID, "error", err)
			return fmt.Errorf("failed to store draft: %w", err)
		}
		slog.Info("draft stored on exit", "board", boardID)
	}

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) && !errors.Is(runErr, tea.ErrInterrupted) {
		return fmt.Errorf("error running editor: %w", runErr)
	}
	return nil
}
