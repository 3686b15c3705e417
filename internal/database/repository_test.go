package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// DRAFTS
// ============================================================================

func TestDrafts_SaveGetReplace(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveDraft(ctx, "100", []byte(`{"v":1}`)))
	require.NoError(t, repo.SaveDraft(ctx, "100", []byte(`{"v":2}`)))

	d, err := repo.GetDraft(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, "100", d.BoardID)
	assert.JSONEq(t, `{"v":2}`, string(d.Payload))
	assert.False(t, d.UpdatedAt.IsZero())

	drafts, err := repo.ListDrafts(ctx)
	require.NoError(t, err)
	assert.Len(t, drafts, 1)
}

func TestDrafts_NotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetDraft(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrDraftNotFound))
}

func TestDrafts_Delete(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveDraft(ctx, "100", []byte(`{}`)))
	require.NoError(t, repo.DeleteDraft(ctx, "100"))
	require.NoError(t, repo.DeleteDraft(ctx, "100"), "deleting twice is fine")

	_, err := repo.GetDraft(ctx, "100")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDrafts_RejectsEmptyBoard(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	assert.Error(t, repo.SaveDraft(context.Background(), "  ", []byte(`{}`)))
}

// ============================================================================
// SAVE HISTORY
// ============================================================================

func TestSaveHistory_NewestFirst(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	first, err := repo.RecordSave(ctx, SaveRecord{BoardID: "100", Outcome: "failure", Failed: 2})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = repo.RecordSave(ctx, SaveRecord{BoardID: "100", Outcome: "partial", Created: 2, DeleteFailed: 1, SavedBy: "ann"})
	require.NoError(t, err)
	_, err = repo.RecordSave(ctx, SaveRecord{BoardID: "200", Outcome: "success", Updated: 1})
	require.NoError(t, err)

	records, err := repo.ListSaveHistory(ctx, "100", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "partial", records[0].Outcome)
	assert.Equal(t, 2, records[0].Created)
	assert.Equal(t, 1, records[0].DeleteFailed)
	assert.Equal(t, "ann", records[0].SavedBy)
	assert.Equal(t, "failure", records[1].Outcome)

	limited, err := repo.ListSaveHistory(ctx, "100", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSaveHistory_RejectsUnknownOutcome(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	_, err := repo.RecordSave(context.Background(), SaveRecord{BoardID: "100", Outcome: "maybe"})
	assert.Error(t, err)
}

// ============================================================================
// COMMIT SAVE
// ============================================================================

func TestCommitSave_DropsDraftOnNilPayload(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SaveDraft(ctx, "100", []byte(`{}`)))
	_, err := repo.CommitSave(ctx, SaveRecord{BoardID: "100", Outcome: "success", Created: 1}, nil)
	require.NoError(t, err)

	_, err = repo.GetDraft(ctx, "100")
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.Equal(t, 1, countRows(t, db, "save_history"))
}

func TestCommitSave_KeepsDraftOnPartial(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.CommitSave(ctx, SaveRecord{BoardID: "100", Outcome: "partial"}, []byte(`{"left":true}`))
	require.NoError(t, err)

	d, err := repo.GetDraft(ctx, "100")
	require.NoError(t, err)
	assert.JSONEq(t, `{"left":true}`, string(d.Payload))
}

func TestCommitSave_RollsBackOnInvalidRecord(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.CommitSave(ctx, SaveRecord{BoardID: "100", Outcome: "bogus"}, []byte(`{}`))
	require.Error(t, err)
	assert.Equal(t, 0, countRows(t, db, "drafts"))
	assert.Equal(t, 0, countRows(t, db, "save_history"))
}
