// Package people holds the `pagelayout user` and `pagelayout team` commands
package people

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/cli/handler"
	"github.com/thenoetrevino/pagelayout/internal/models"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Look up account users",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List users, optionally filtered by name or email",
		Long: `List account users sorted by name.

Examples:
  pagelayout user list
  pagelayout user list --search=ann --json
`,
		RunE: handler.Command(handler.HandlerFunc(runUserList)),
	}
	list.Flags().String("search", "", "Only users whose name or email contains this text")
	handler.AddOutputFlags(list, "Minimal output (IDs only)")

	cmd.AddCommand(list)
	return cmd
}

// TeamCmd returns the team parent command
func TeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Look up account teams",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List teams and their members",
		RunE:  handler.Command(handler.HandlerFunc(runTeamList)),
	}
	handler.AddOutputFlags(list, "Minimal output (IDs only)")

	cmd.AddCommand(list)
	return cmd
}

type userList struct {
	Users []models.User `json:"users"`
}

func (l userList) QuietLines() []string {
	ids := make([]string, len(l.Users))
	for i, u := range l.Users {
		ids[i] = u.ID
	}
	return ids
}

func (l userList) PrintHuman(w io.Writer) error {
	if len(l.Users) == 0 {
		_, err := fmt.Fprintln(w, "No users found")
		return err
	}
	for _, u := range l.Users {
		flags := ""
		if u.IsAdmin {
			flags += " [ADMIN]"
		}
		if u.IsGuest {
			flags += " [GUEST]"
		}
		fmt.Fprintf(w, "  %s  %s <%s>%s\n", u.ID, u.Name, u.Email, flags)
	}
	return nil
}

type teamList struct {
	Teams []models.Team `json:"teams"`
}

func (l teamList) QuietLines() []string {
	ids := make([]string, len(l.Teams))
	for i, t := range l.Teams {
		ids[i] = t.ID
	}
	return ids
}

func (l teamList) PrintHuman(w io.Writer) error {
	if len(l.Teams) == 0 {
		_, err := fmt.Fprintln(w, "No teams found")
		return err
	}
	for _, t := range l.Teams {
		names := make([]string, len(t.Users))
		for i, u := range t.Users {
			names[i] = u.Name
		}
		fmt.Fprintf(w, "  %s  %s (%d members)\n", t.ID, t.Name, len(t.Users))
		if len(names) > 0 {
			fmt.Fprintf(w, "      %s\n", strings.Join(names, ", "))
		}
	}
	return nil
}

func runUserList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	var (
		users []models.User
		err   error
	)
	if search := args.GetString("search", ""); strings.TrimSpace(search) != "" {
		users, err = c.App.PeopleService.SearchUsers(ctx, search)
	} else {
		users, err = c.App.PeopleService.ListUsers(ctx)
	}
	if err != nil {
		return nil, err
	}
	return userList{Users: users}, nil
}

func runTeamList(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	teams, err := c.App.PeopleService.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	return teamList{Teams: teams}, nil
}
