package monday

import (
	"context"
	"strings"

	"github.com/thenoetrevino/pagelayout/internal/models"
)

const (
	userListLimit   = 500
	userSearchLimit = 100
	userFields      = `id name email is_admin is_guest photo_thumb`
)

type rawUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"is_admin"`
	IsGuest    bool   `json:"is_guest"`
	PhotoThumb string `json:"photo_thumb"`
}

func (u rawUser) model() models.User {
	return models.User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		IsAdmin:    u.IsAdmin,
		IsGuest:    u.IsGuest,
		PhotoThumb: u.PhotoThumb,
	}
}

func (c *Client) users(ctx context.Context, limit int) ([]models.User, error) {
	query := `query ($limit: Int) { users(limit: $limit) { ` + userFields + ` } }`
	var data struct {
		Users []rawUser `json:"users"`
	}
	if err := c.do(ctx, query, map[string]any{"limit": limit}, &data); err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(data.Users))
	for _, u := range data.Users {
		users = append(users, u.model())
	}
	return users, nil
}

// ListUsers returns the account's users
func (c *Client) ListUsers(ctx context.Context) Result[[]models.User] {
	users, err := c.users(ctx, userListLimit)
	if err != nil {
		return failWith[[]models.User]("list users", "users", err)
	}
	return succeed(users)
}

// SearchUsers filters the first page of users by name or email, ignoring case
func (c *Client) SearchUsers(ctx context.Context, text string) Result[[]models.User] {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return fail[[]models.User]("search text is required")
	}
	users, err := c.users(ctx, userSearchLimit)
	if err != nil {
		return failWith[[]models.User]("search users", "users", err)
	}

	matched := []models.User{}
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), text) || strings.Contains(strings.ToLower(u.Email), text) {
			matched = append(matched, u)
		}
	}
	return succeed(matched)
}

// ListTeams returns the account's teams with their members
func (c *Client) ListTeams(ctx context.Context) Result[[]models.Team] {
	const query = `query { teams { id name users { id name email } } }`
	var data struct {
		Teams []struct {
			ID    string    `json:"id"`
			Name  string    `json:"name"`
			Users []rawUser `json:"users"`
		} `json:"teams"`
	}
	if err := c.do(ctx, query, nil, &data); err != nil {
		return failWith[[]models.Team]("list teams", "teams", err)
	}

	teams := make([]models.Team, 0, len(data.Teams))
	for _, t := range data.Teams {
		team := models.Team{ID: t.ID, Name: t.Name}
		for _, u := range t.Users {
			team.Users = append(team.Users, u.model())
		}
		teams = append(teams, team)
	}
	return succeed(teams)
}
