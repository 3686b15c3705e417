// Package app wires configuration, the remote client, the local store and
// the services into one container
package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/pagelayout/internal/config"
	"github.com/thenoetrevino/pagelayout/internal/database"
	"github.com/thenoetrevino/pagelayout/internal/monday"
	boardservice "github.com/thenoetrevino/pagelayout/internal/services/board"
	itemservice "github.com/thenoetrevino/pagelayout/internal/services/item"
	layoutservice "github.com/thenoetrevino/pagelayout/internal/services/layout"
	peopleservice "github.com/thenoetrevino/pagelayout/internal/services/people"
)

// Remote is everything the services need from the platform
type Remote interface {
	layoutservice.RemoteStore
	boardservice.RemoteStore
	itemservice.RemoteStore
	peopleservice.RemoteStore
}

var _ Remote = (*monday.Client)(nil)

// App holds all application services and provides dependency injection
type App struct {
	// Repository layer (local drafts and save history)
	repo database.DataStore
	db   *sql.DB

	Config *config.Config

	// Service layer
	LayoutService layoutservice.Service
	Editor        *layoutservice.Editor
	BoardService  boardservice.Service
	ItemService   itemservice.Service
	PeopleService peopleservice.Service
}

// New creates a new App with all services initialized
func New(cfg *config.Config, repo database.DataStore, opts ...Option) *App {
	options := &appConfig{}
	for _, opt := range opts {
		opt(options)
	}

	remote := options.remote
	if remote == nil {
		remote = monday.NewClient(monday.Options{
			URL:        cfg.API.URL,
			Token:      cfg.API.Token,
			APIVersion: cfg.API.Version,
			Timeout:    cfg.API.Timeout,
			HTTPClient: options.httpClient,
		})
	}

	layouts := layoutservice.NewService(remote, cfg.MetadataBoardID)
	return &App{
		repo:          repo,
		Config:        cfg,
		LayoutService: layouts,
		Editor:        layoutservice.NewEditor(layouts, repo),
		BoardService:  boardservice.NewService(remote),
		ItemService:   itemservice.NewService(remote),
		PeopleService: peopleservice.NewService(remote),
	}
}

// Open opens the local database and builds the App over it
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	a := New(cfg, database.NewRepository(db), opts...)
	a.db = db
	return a, nil
}

// Repo returns the underlying local store
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database when the App owns it
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
