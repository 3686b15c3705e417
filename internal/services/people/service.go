// Package people lists the account's users and teams, used to pick values for
// people columns
package people

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/monday"
)

// ErrEmptySearch indicates a user search without any text
var ErrEmptySearch = errors.New("search text is required")

// RemoteStore is the slice of the platform client this package needs
type RemoteStore interface {
	ListUsers(ctx context.Context) monday.Result[[]models.User]
	SearchUsers(ctx context.Context, text string) monday.Result[[]models.User]
	ListTeams(ctx context.Context) monday.Result[[]models.Team]
}

// Service defines user and team lookups
type Service interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	SearchUsers(ctx context.Context, text string) ([]models.User, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
}

type service struct {
	remote RemoteStore
}

// NewService creates a new people service
func NewService(remote RemoteStore) Service {
	return &service{remote: remote}
}

func (s *service) ListUsers(ctx context.Context) ([]models.User, error) {
	res := s.remote.ListUsers(ctx)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return sortUsers(res.Data), nil
}

func (s *service) SearchUsers(ctx context.Context, text string) ([]models.User, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptySearch
	}
	res := s.remote.SearchUsers(ctx, text)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return sortUsers(res.Data), nil
}

func (s *service) ListTeams(ctx context.Context) ([]models.Team, error) {
	res := s.remote.ListTeams(ctx)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	teams := res.Data
	slices.SortStableFunc(teams, func(a, b models.Team) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return teams, nil
}

func sortUsers(users []models.User) []models.User {
	slices.SortStableFunc(users, func(a, b models.User) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return users
}
