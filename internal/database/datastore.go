package database

import "context"

// DraftRepository stores unsaved layouts
type DraftRepository interface {
	SaveDraft(ctx context.Context, boardID string, payload []byte) error
	GetDraft(ctx context.Context, boardID string) (*Draft, error)
	DeleteDraft(ctx context.Context, boardID string) error
	ListDrafts(ctx context.Context) ([]*Draft, error)
}

// HistoryRepository stores save outcomes
type HistoryRepository interface {
	RecordSave(ctx context.Context, rec SaveRecord) (*SaveRecord, error)
	ListSaveHistory(ctx context.Context, boardID string, limit int) ([]*SaveRecord, error)
}

// DataStore defines the unified interface for all local data operations.
// Consumers can depend on the smaller interfaces for clearer dependencies.
type DataStore interface {
	DraftRepository
	HistoryRepository
	CommitSave(ctx context.Context, rec SaveRecord, payload []byte) (*SaveRecord, error)
}

var _ DataStore = (*Repository)(nil)
