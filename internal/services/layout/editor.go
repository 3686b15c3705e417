package layout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/pagelayout/internal/database"
	"github.com/thenoetrevino/pagelayout/internal/grid"
	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/user"
)

// Session is one board's layout as being edited, either freshly loaded or
// restored from a local draft
type Session struct {
	BoardID   string
	Board     models.Board
	Layout    *grid.Layout
	Report    LoadReport
	FromDraft bool
	DraftAt   time.Time
}

// Editor keeps in-progress layouts as local drafts between invocations and
// publishes them through the Service
type Editor struct {
	svc   Service
	store database.DataStore
}

// NewEditor creates an editor over a layout service and a local store
func NewEditor(svc Service, store database.DataStore) *Editor {
	return &Editor{svc: svc, store: store}
}

// Open resumes a board's draft if one exists, otherwise loads the saved layout
func (e *Editor) Open(ctx context.Context, boardID string) (*Session, error) {
	if boardID == "" {
		return nil, models.ErrMissingBoard
	}

	draft, err := e.store.GetDraft(ctx, boardID)
	switch {
	case errors.Is(err, database.ErrDraftNotFound):
		return e.load(ctx, boardID)
	case err != nil:
		return nil, err
	}

	l, err := grid.UnmarshalSnapshot(draft.Payload)
	if err != nil {
		// A corrupt draft is dropped rather than blocking the board
		slog.Warn("discarding unreadable draft", "board", boardID, "error", err)
		if err := e.store.DeleteDraft(ctx, boardID); err != nil {
			return nil, err
		}
		return e.load(ctx, boardID)
	}

	board, err := e.svc.Board(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return &Session{
		BoardID:   boardID,
		Board:     board,
		Layout:    l,
		Report:    LoadReport{Sections: len(l.Sections())},
		FromDraft: true,
		DraftAt:   draft.UpdatedAt,
	}, nil
}

func (e *Editor) load(ctx context.Context, boardID string) (*Session, error) {
	loaded, err := e.svc.Load(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return &Session{
		BoardID: boardID,
		Board:   loaded.Board,
		Layout:  loaded.Layout,
		Report:  loaded.Report,
	}, nil
}

// Stash writes the session's layout as the board's draft
func (e *Editor) Stash(ctx context.Context, s *Session) error {
	payload, err := s.Layout.MarshalSnapshot()
	if err != nil {
		return err
	}
	if err := e.store.SaveDraft(ctx, s.BoardID, payload); err != nil {
		return err
	}
	s.FromDraft = true
	s.DraftAt = time.Now()
	return nil
}

// Publish saves the session remotely and records the outcome. A fully
// successful save drops the draft; otherwise the draft keeps what is left,
// including ids of sections created before the failure.
func (e *Editor) Publish(ctx context.Context, s *Session) (SaveReport, error) {
	report, err := e.svc.Save(ctx, s.BoardID, s.Layout)
	if err != nil {
		return report, err
	}

	var payload []byte
	if report.Outcome != OutcomeSuccess {
		if payload, err = s.Layout.MarshalSnapshot(); err != nil {
			return report, err
		}
	}

	rec := database.SaveRecord{
		BoardID:      s.BoardID,
		Outcome:      string(report.Outcome),
		Created:      report.Created,
		Updated:      report.Updated,
		Failed:       report.Failed,
		Deleted:      report.Deleted,
		DeleteFailed: report.DeleteFailed,
		SavedBy:      user.Name(),
	}
	if _, err := e.store.CommitSave(ctx, rec, payload); err != nil {
		return report, fmt.Errorf("layout saved but local state was not updated: %w", err)
	}

	s.FromDraft = payload != nil
	return report, nil
}

// Discard drops the board's draft and reloads the saved layout
func (e *Editor) Discard(ctx context.Context, boardID string) (*Session, error) {
	if boardID == "" {
		return nil, models.ErrMissingBoard
	}
	if err := e.store.DeleteDraft(ctx, boardID); err != nil {
		return nil, err
	}
	return e.load(ctx, boardID)
}

// History returns the board's most recent saves
func (e *Editor) History(ctx context.Context, boardID string, limit int) ([]*database.SaveRecord, error) {
	if boardID == "" {
		return nil, models.ErrMissingBoard
	}
	return e.store.ListSaveHistory(ctx, boardID, limit)
}
