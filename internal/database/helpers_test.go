package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

// ============================================================================
// Local Test Helpers (to avoid import cycle with testutil)
// ============================================================================

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}

// ============================================================================
// withTx Tests
// ============================================================================

func TestWithTx_Success_Commit(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	err := withTx(ctx, db, func(tx *sql.Tx) error {
		return saveDraft(ctx, tx, "100", []byte(`{}`))
	})
	if err != nil {
		t.Fatalf("Expected transaction to succeed, got error: %v", err)
	}

	if count := countRows(t, db, "drafts"); count != 1 {
		t.Errorf("Expected 1 draft, got %d", count)
	}
}

func TestWithTx_Error_Rollback(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	expectedErr := errors.New("intentional error")
	err := withTx(ctx, db, func(tx *sql.Tx) error {
		if err := saveDraft(ctx, tx, "100", []byte(`{}`)); err != nil {
			return err
		}
		return expectedErr
	})

	if !errors.Is(err, expectedErr) {
		t.Fatalf("Expected error %v, got %v", expectedErr, err)
	}
	if count := countRows(t, db, "drafts"); count != 0 {
		t.Errorf("Expected 0 drafts (rollback), got %d", count)
	}
}

func TestWithTx_Error_BeginFails(t *testing.T) {
	db := setupTestDB(t)
	_ = db.Close()

	err := withTx(context.Background(), db, func(tx *sql.Tx) error {
		t.Fatal("fn should not run when begin fails")
		return nil
	})
	if err == nil {
		t.Fatal("Expected error from closed database")
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("second migration run failed: %v", err)
	}
}
