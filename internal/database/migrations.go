package database

import (
	"context"
	"database/sql"
	"fmt"
)

var migrations = []string{
	// Unsaved layout snapshots, one per target board
	`CREATE TABLE IF NOT EXISTS drafts (
		board_id TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	// Outcome of every save attempt
	`CREATE TABLE IF NOT EXISTS save_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		board_id TEXT NOT NULL,
		outcome TEXT NOT NULL CHECK(outcome IN ('success', 'partial', 'failure')),
		created INTEGER NOT NULL DEFAULT 0,
		updated INTEGER NOT NULL DEFAULT 0,
		failed INTEGER NOT NULL DEFAULT 0,
		deleted INTEGER NOT NULL DEFAULT 0,
		delete_failed INTEGER NOT NULL DEFAULT 0,
		saved_by TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE INDEX IF NOT EXISTS idx_save_history_board
		ON save_history(board_id, created_at)`,
}

// runMigrations creates the database schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		for i, stmt := range migrations {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration %d: %w", i, err)
			}
		}
		return nil
	})
}
