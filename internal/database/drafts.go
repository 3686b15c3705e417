package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrDraftNotFound is returned when a board has no stored draft
var ErrDraftNotFound = errors.New("draft not found")

// Draft is the serialized, unsaved layout of one target board
type Draft struct {
	BoardID   string
	Payload   []byte
	UpdatedAt time.Time
}

// DraftRepo persists layout drafts
type DraftRepo struct {
	db *sql.DB
}

// Save inserts or replaces the draft for a board
func (r *DraftRepo) Save(ctx context.Context, boardID string, payload []byte) error {
	return saveDraft(ctx, r.db, boardID, payload)
}

func saveDraft(ctx context.Context, ex execer, boardID string, payload []byte) error {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return fmt.Errorf("failed to save draft: empty board id")
	}
	_, err := ex.ExecContext(ctx, `
		INSERT INTO drafts (board_id, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(board_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		boardID, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save draft for board %s: %w", boardID, err)
	}
	return nil
}

// Get returns the draft for a board or ErrDraftNotFound
func (r *DraftRepo) Get(ctx context.Context, boardID string) (*Draft, error) {
	d := &Draft{}
	err := r.db.QueryRowContext(ctx,
		"SELECT board_id, payload, updated_at FROM drafts WHERE board_id = ?", boardID,
	).Scan(&d.BoardID, &d.Payload, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft for board %s: %w", boardID, err)
	}
	return d, nil
}

// Delete removes a board's draft. Deleting a missing draft is not an error.
func (r *DraftRepo) Delete(ctx context.Context, boardID string) error {
	return deleteDraft(ctx, r.db, boardID)
}

func deleteDraft(ctx context.Context, ex execer, boardID string) error {
	if _, err := ex.ExecContext(ctx, "DELETE FROM drafts WHERE board_id = ?", boardID); err != nil {
		return fmt.Errorf("failed to delete draft for board %s: %w", boardID, err)
	}
	return nil
}

// List returns every stored draft, most recently updated first
func (r *DraftRepo) List(ctx context.Context) ([]*Draft, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT board_id, payload, updated_at FROM drafts ORDER BY updated_at DESC, board_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	drafts := make([]*Draft, 0)
	for rows.Next() {
		d := &Draft{}
		if err := rows.Scan(&d.BoardID, &d.Payload, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}
