package item

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/pagelayout/internal/app"
	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/grid"
	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/testutil"
)

const board = "100"

var (
	statusCol = models.Column{ID: "status", Title: "Status", Type: "status"}
	budgetCol = models.Column{ID: "budget", Title: "Budget", Type: "numbers"}
	notesCol  = models.Column{ID: "notes", Title: "Notes", Type: "long_text"}
)

// setupItemTest saves a two-section layout: status (required) in a public
// section and budget in a section only managers see
func setupItemTest(t *testing.T) (*app.App, *testutil.Remote) {
	t.Helper()
	a, remote := testutil.SetupCLITest(t)
	remote.AddBoard(models.Board{ID: board, Name: "Deals", Columns: []models.Column{statusCol, budgetCol, notesCol}})

	l := grid.NewDefault()
	general := l.Sections()[0]
	require.True(t, l.Place(statusCol, grid.SlotRef{SectionID: general.ID}))
	l.SetRequired(statusCol.ID, true)

	finance := l.AddSection("Finance")
	require.True(t, l.Place(budgetCol, grid.SlotRef{SectionID: finance.ID}))
	require.NoError(t, l.SetRules(finance.ID, models.RuleGroup{
		Criteria: models.CriteriaAll,
		Rules:    []models.Rule{{Field: models.RuleFieldRole, Operator: models.OperatorEquals, Value: "manager"}},
	}))

	report, err := a.LayoutService.Save(context.Background(), board, l)
	require.NoError(t, err)
	require.Equal(t, 2, report.Created)
	return a, remote
}

func TestForm_HidesSectionsByRule(t *testing.T) {
	a, _ := setupItemTest(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"anonymous viewer", nil, []string{"status"}},
		{"manager", []string{"--role", "Manager"}, []string{"status", "budget"}},
		{"other role", []string{"--role", "intern"}, []string{"status"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"form", "--board", board, "--quiet"}, tt.args...)
			out, err := testutil.ExecuteCLICommand(t, a, ItemCmd(), args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.Fields(out))
		})
	}
}

func TestForm_ViewerFromConfig(t *testing.T) {
	a, _ := setupItemTest(t)
	a.Config.Viewer.Role = "manager"

	out, err := testutil.ExecuteCLICommand(t, a, ItemCmd(), []string{"form", "--board", board, "--json"})
	require.NoError(t, err)
	fields := testutil.ParseJSON(t, out)["data"].(map[string]any)["fields"].([]any)
	require.Len(t, fields, 2)
	assert.Equal(t, true, fields[0].(map[string]any)["required"])
	assert.Equal(t, "Finance", fields[1].(map[string]any)["section_title"])
}

func TestCreate(t *testing.T) {
	a, remote := setupItemTest(t)

	t.Run("creates with visible values only", func(t *testing.T) {
		out, err := testutil.ExecuteCLICommand(t, a, ItemCmd(), []string{
			"create", "--board", board, "--name", "Acme",
			"--value", "status=Working on it",
			"--value", "budget=100",
			"--value", "notes=ignored",
			"--quiet",
		})
		require.NoError(t, err)
		id := strings.TrimSpace(out)

		items := remote.Items(board)
		require.Len(t, items, 1)
		assert.Equal(t, id, items[0].ID)
		assert.Equal(t, "Acme", items[0].Name)
		require.Len(t, items[0].ColumnValues, 1)
		assert.Equal(t, "Working on it", items[0].ColumnValues[0].Text)
	})

	t.Run("manager fills hidden section", func(t *testing.T) {
		_, err := testutil.ExecuteCLICommand(t, a, ItemCmd(), []string{
			"create", "--board", board, "--name", "Globex", "--role", "manager",
			"--value", "status=Done", "--value", "budget=250",
		})
		require.NoError(t, err)
		items := remote.Items(board)
		require.Len(t, items, 2)
		assert.Len(t, items[1].ColumnValues, 2)
	})

	t.Run("missing required field", func(t *testing.T) {
		_, err := testutil.ExecuteCLICommand(t, a, ItemCmd(), []string{"create", "--board", board, "--name", "Initech"})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := testutil.ExecuteCLICommand(t, a, ItemCmd(), []string{"create", "--board", board, "--value", "status=Done"})
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})

	t.Run("malformed value", func(t *testing.T) {
		_, err := testutil.ExecuteCLICommand(t, a, ItemCmd(), []string{"create", "--board", board, "--name", "X", "--value", "status"})
		assert.Error(t, err)
	})
}

func TestSearch(t *testing.T) {
	a, remote := testutil.SetupCLITest(t)
	remote.AddBoard(models.Board{ID: "100", Name: "Deals"})
	remote.AddBoard(models.Board{ID: "200", Name: "Leads"})
	remote.AddBoard(models.Board{ID: "300", Name: "Archive"})
	remote.AddItem("100", models.Item{ID: "1", Name: "Acme renewal"})
	remote.AddItem("100", models.Item{ID: "2", Name: "Globex"})
	remote.AddItem("200", models.Item{ID: "3", Name: "ACME expansion"})
	remote.FailBoards["300"] = true

	t.Run("single board", func(t *testing.T) {
		out, err := testutil.ExecuteCLICommand(t, a, ItemCmd(), []string{"search", "--board", "100", "--text", "acme", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, strings.Fields(out))
	})

	t.Run("across boards with a failing board", func(t *testing.T) {
		out, err := testutil.ExecuteCLICommand(t, a, ItemCmd(), []string{"search", "--boards", "100,200,300", "--text", "acme", "--json"})
		require.NoError(t, err)
		data := testutil.ParseJSON(t, out)["data"].(map[string]any)
		assert.Len(t, data["items"], 2)
		assert.Contains(t, data["warning"], "board 300")
	})

	t.Run("every board failing", func(t *testing.T) {
		_, err := testutil.ExecuteCLICommand(t, a, ItemCmd(), []string{"search", "--boards", "300"})
		assert.Error(t, err)
	})

	t.Run("list without text", func(t *testing.T) {
		out, err := testutil.ExecuteCLICommand(t, a, ItemCmd(), []string{"search", "--board", "100", "--quiet"})
		require.NoError(t, err)
		assert.Len(t, strings.Fields(out), 2)
	})
}
