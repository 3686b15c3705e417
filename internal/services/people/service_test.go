package people

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/monday"
)

type fakeRemote struct {
	users    []models.User
	teams    []models.Team
	searches int
	err      string
}

func (f *fakeRemote) ListUsers(context.Context) monday.Result[[]models.User] {
	if f.err != "" {
		return monday.Result[[]models.User]{Error: f.err}
	}
	return monday.Result[[]models.User]{Success: true, Data: f.users}
}

func (f *fakeRemote) SearchUsers(context.Context, string) monday.Result[[]models.User] {
	f.searches++
	return monday.Result[[]models.User]{Success: true, Data: f.users[:1]}
}

func (f *fakeRemote) ListTeams(context.Context) monday.Result[[]models.Team] {
	return monday.Result[[]models.Team]{Success: true, Data: f.teams}
}

func TestListUsers_Sorted(t *testing.T) {
	remote := &fakeRemote{users: []models.User{
		{ID: "2", Name: "bob"},
		{ID: "3", Name: "Alice"},
		{ID: "1", Name: "alice"},
	}}
	users, err := NewService(remote).ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", users[0].ID)
	assert.Equal(t, "3", users[1].ID)
	assert.Equal(t, "2", users[2].ID)
}

func TestListUsers_PermissionError(t *testing.T) {
	remote := &fakeRemote{err: "permission denied: no access to users"}
	_, err := NewService(remote).ListUsers(context.Background())
	require.Error(t, err)
	assert.True(t, monday.IsPermission(err))
}

func TestSearchUsers(t *testing.T) {
	remote := &fakeRemote{users: []models.User{{ID: "1", Name: "Ann"}, {ID: "2", Name: "Ben"}}}
	svc := NewService(remote)

	_, err := svc.SearchUsers(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptySearch)
	assert.Zero(t, remote.searches)

	users, err := svc.SearchUsers(context.Background(), "ann")
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestListTeams_Sorted(t *testing.T) {
	remote := &fakeRemote{teams: []models.Team{{ID: "1", Name: "Sales"}, {ID: "2", Name: "ops"}}}
	teams, err := NewService(remote).ListTeams(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ops", teams[0].Name)
}
