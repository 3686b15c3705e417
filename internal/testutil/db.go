// Package testutil holds helpers shared by package tests: an in-memory
// database, an in-memory platform and a cobra command runner
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/pagelayout/internal/database"
)

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return db
}
