package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/pagelayout/internal/config"
	"github.com/thenoetrevino/pagelayout/internal/grid"
	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/monday"
	"github.com/thenoetrevino/pagelayout/internal/services/layout"
)

// ============================================================================
// Board Selection Tests
// ============================================================================

func boardCmd(t *testing.T, flag string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("board", "", "")
	if flag != "" {
		require.NoError(t, cmd.Flags().Set("board", flag))
	}
	return cmd
}

func TestGetBoardID(t *testing.T) {
	cfg := &config.Config{DefaultBoardID: "300"}

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(BoardEnvVar, "200")
		id, err := GetBoardID(boardCmd(t, " 100 "), cfg)
		require.NoError(t, err)
		assert.Equal(t, "100", id)
	})

	t.Run("environment before config", func(t *testing.T) {
		t.Setenv(BoardEnvVar, "200")
		id, err := GetBoardID(boardCmd(t, ""), cfg)
		require.NoError(t, err)
		assert.Equal(t, "200", id)
	})

	t.Run("config default", func(t *testing.T) {
		t.Setenv(BoardEnvVar, "")
		id, err := GetBoardID(boardCmd(t, ""), cfg)
		require.NoError(t, err)
		assert.Equal(t, "300", id)
	})

	t.Run("nothing set", func(t *testing.T) {
		t.Setenv(BoardEnvVar, "")
		_, err := GetBoardID(boardCmd(t, ""), &config.Config{})
		assert.ErrorIs(t, err, models.ErrMissingBoard)
	})
}

// ============================================================================
// Reference Resolution Tests
// ============================================================================

func TestResolveSection(t *testing.T) {
	l := grid.New()
	first := l.AddSection("General")
	second := l.AddSection("Billing")

	tests := []struct {
		ref  string
		want string
	}{
		{"", first.ID},
		{first.ID, first.ID},
		{"2", second.ID},
		{"billing", second.ID},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			s, err := ResolveSection(l, tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.ID)
		})
	}

	_, err := ResolveSection(l, "3")
	assert.ErrorIs(t, err, models.ErrSectionNotFound)
	_, err = ResolveSection(grid.New(), "")
	assert.ErrorIs(t, err, models.ErrSectionNotFound)
}

func TestResolveColumn(t *testing.T) {
	board := models.Board{ID: "1", Columns: []models.Column{
		{ID: "status", Title: "Stage"},
		{ID: "stage", Title: "Status"},
	}}

	c, err := ResolveColumn(board, "status")
	require.NoError(t, err)
	assert.Equal(t, "status", c.ID, "ids match before titles")

	c, err = ResolveColumn(board, "STAGE ")
	require.NoError(t, err)
	assert.Equal(t, "status", c.ID, "ids are case-sensitive, so this matches the Stage title")

	_, err = ResolveColumn(board, "owner")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

// ============================================================================
// Parsing Tests
// ============================================================================

func TestParseValues(t *testing.T) {
	values, err := ParseValues([]string{"text=hello=world", "date="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"text": "hello=world", "date": ""}, values)

	_, err = ParseValues([]string{"novalue"})
	assert.Error(t, err)
	_, err = ParseValues([]string{"=x"})
	assert.Error(t, err)
}

// ============================================================================
// Error Classification Tests
// ============================================================================

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("wrap: %w", models.ErrMissingBoard), ExitUsage},
		{config.ErrMissingToken, ExitUsage},
		{models.ErrSectionNotFound, ExitNotFound},
		{ErrColumnNotFound, ExitNotFound},
		{models.ErrRequiredFieldsMissing, ExitValidation},
		{layout.ErrMetadataSetup, ExitDataErr},
		{fmt.Errorf("list: %w", &monday.Error{Message: "denied", Permission: true}), ExitPermission},
		{errors.New("boom"), ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			code, _ := Classify(tt.err)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestFailWith(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Out: &out, Err: &errOut}

	err := f.FailWith(models.ErrMissingBoard)
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.ErrorIs(t, err, models.ErrMissingBoard)
	assert.Contains(t, errOut.String(), "board id is required")
	assert.Contains(t, errOut.String(), "pagelayout use board")
	assert.Empty(t, out.String())
}
