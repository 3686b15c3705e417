package app

import (
	"context"
	"testing"

	"github.com/thenoetrevino/pagelayout/internal/config"
	"github.com/thenoetrevino/pagelayout/internal/database"
)

func setupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return database.NewRepository(db)
}

func TestNew(t *testing.T) {
	cfg := &config.Config{MetadataBoardID: "900"}
	cfg.API.URL = config.DefaultAPIURL

	app := New(cfg, setupTestRepo(t))

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.LayoutService == nil {
		t.Error("Expected LayoutService to be initialized")
	}
	if app.Editor == nil {
		t.Error("Expected Editor to be initialized")
	}
	if app.BoardService == nil {
		t.Error("Expected BoardService to be initialized")
	}
	if app.ItemService == nil {
		t.Error("Expected ItemService to be initialized")
	}
	if app.PeopleService == nil {
		t.Error("Expected PeopleService to be initialized")
	}
	if app.Repo() == nil {
		t.Error("Expected Repo to be set")
	}
}

func TestClose(t *testing.T) {
	app := New(&config.Config{}, setupTestRepo(t))

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
