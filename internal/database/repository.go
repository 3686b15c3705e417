package database

import (
	"context"
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	db *sql.DB
	*DraftRepo
	*HistoryRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:          db,
		DraftRepo:   &DraftRepo{db: db},
		HistoryRepo: &HistoryRepo{db: db},
	}
}

// Wrapper methods for DraftRepo

func (r *Repository) SaveDraft(ctx context.Context, boardID string, payload []byte) error {
	return r.DraftRepo.Save(ctx, boardID, payload)
}

func (r *Repository) GetDraft(ctx context.Context, boardID string) (*Draft, error) {
	return r.DraftRepo.Get(ctx, boardID)
}

func (r *Repository) DeleteDraft(ctx context.Context, boardID string) error {
	return r.DraftRepo.Delete(ctx, boardID)
}

func (r *Repository) ListDrafts(ctx context.Context) ([]*Draft, error) {
	return r.DraftRepo.List(ctx)
}

// Wrapper methods for HistoryRepo

func (r *Repository) RecordSave(ctx context.Context, rec SaveRecord) (*SaveRecord, error) {
	return r.HistoryRepo.Record(ctx, rec)
}

func (r *Repository) ListSaveHistory(ctx context.Context, boardID string, limit int) ([]*SaveRecord, error) {
	return r.HistoryRepo.List(ctx, boardID, limit)
}

// CommitSave records a save outcome and settles the board's draft in one
// transaction: a nil payload drops the draft, otherwise it is replaced.
func (r *Repository) CommitSave(ctx context.Context, rec SaveRecord, payload []byte) (*SaveRecord, error) {
	var saved *SaveRecord
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var err error
		if saved, err = recordSave(ctx, tx, rec); err != nil {
			return err
		}
		if payload == nil {
			return deleteDraft(ctx, tx, rec.BoardID)
		}
		return saveDraft(ctx, tx, rec.BoardID, payload)
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}
