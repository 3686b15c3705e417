package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SaveRecord is one entry of a board's save history
type SaveRecord struct {
	ID           int64
	BoardID      string
	Outcome      string
	Created      int
	Updated      int
	Failed       int
	Deleted      int
	DeleteFailed int
	SavedBy      string
	CreatedAt    time.Time
}

// HistoryRepo persists save outcomes
type HistoryRepo struct {
	db *sql.DB
}

// Record appends a save outcome and returns it with its id set
func (r *HistoryRepo) Record(ctx context.Context, rec SaveRecord) (*SaveRecord, error) {
	return recordSave(ctx, r.db, rec)
}

func recordSave(ctx context.Context, ex execer, rec SaveRecord) (*SaveRecord, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	res, err := ex.ExecContext(ctx, `
		INSERT INTO save_history (board_id, outcome, created, updated, failed, deleted, delete_failed, saved_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.BoardID, rec.Outcome, rec.Created, rec.Updated, rec.Failed, rec.Deleted, rec.DeleteFailed, rec.SavedBy, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record save for board %s: %w", rec.BoardID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get save record id: %w", err)
	}
	rec.ID = id
	return &rec, nil
}

// List returns up to limit saves for a board, newest first
func (r *HistoryRepo) List(ctx context.Context, boardID string, limit int) ([]*SaveRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, board_id, outcome, created, updated, failed, deleted, delete_failed, saved_by, created_at
		FROM save_history WHERE board_id = ? ORDER BY id DESC LIMIT ?`, boardID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list save history: %w", err)
	}
	defer rows.Close()

	records := make([]*SaveRecord, 0)
	for rows.Next() {
		rec := &SaveRecord{}
		if err := rows.Scan(&rec.ID, &rec.BoardID, &rec.Outcome, &rec.Created, &rec.Updated,
			&rec.Failed, &rec.Deleted, &rec.DeleteFailed, &rec.SavedBy, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan save record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
