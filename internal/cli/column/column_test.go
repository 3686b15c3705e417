package column

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/pagelayout/internal/grid"
	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/testutil"
)

func TestListColumns(t *testing.T) {
	a, remote := testutil.SetupCLITest(t)
	remote.AddBoard(models.Board{ID: "100", Name: "Deals", Columns: []models.Column{
		{ID: "status", Title: "Status", Type: "status"},
		{ID: "due", Title: "due date", Type: "date"},
		{ID: "owner", Title: "Owner", Type: "people"},
	}})

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"sorted by title", nil, []string{"due", "owner", "status"}},
		{"filter by type", []string{"--filter", "PEOPLE"}, []string{"owner"}},
		{"filter by title", []string{"--filter", "date"}, []string{"due"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"list", "--board", "100", "--quiet"}, tt.args...)
			out, err := testutil.ExecuteCLICommand(t, a, ColumnCmd(), args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.Fields(out))
		})
	}

	t.Run("available skips placed columns", func(t *testing.T) {
		ctx := context.Background()
		s, err := a.Editor.Open(ctx, "100")
		require.NoError(t, err)
		cols := s.Board.Columns
		require.True(t, s.Layout.Place(cols[0], grid.SlotRef{SectionID: s.Layout.Sections()[0].ID}))
		require.NoError(t, a.Editor.Stash(ctx, s))

		out, err := testutil.ExecuteCLICommand(t, a, ColumnCmd(), []string{"list", "--board", "100", "--available", "--quiet"})
		require.NoError(t, err)
		assert.Len(t, strings.Fields(out), 2)
		assert.NotContains(t, strings.Fields(out), cols[0].ID)
	})

	t.Run("unknown board", func(t *testing.T) {
		_, err := testutil.ExecuteCLICommand(t, a, ColumnCmd(), []string{"list", "--board", "404"})
		assert.Error(t, err)
	})
}
