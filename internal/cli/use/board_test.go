package use

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/testutil"
)

func TestUseBoard(t *testing.T) {
	a, remote := testutil.SetupCLITest(t)
	remote.AddBoard(models.Board{ID: "123", Name: "Deals"})

	t.Run("exports the board", func(t *testing.T) {
		out, err := testutil.ExecuteCLICommand(t, a, UseCmd(), []string{"board", "123"})
		require.NoError(t, err)
		assert.Equal(t, "export PAGELAYOUT_BOARD=123", strings.TrimSpace(out))
	})

	t.Run("dry run prints nothing to eval", func(t *testing.T) {
		out, err := testutil.ExecuteCLICommand(t, a, UseCmd(), []string{"board", "123", "--dry-run"})
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("clear", func(t *testing.T) {
		out, err := testutil.ExecuteCLICommand(t, a, UseCmd(), []string{"board", "--clear"})
		require.NoError(t, err)
		assert.Equal(t, "unset PAGELAYOUT_BOARD", strings.TrimSpace(out))
	})

	t.Run("unknown board", func(t *testing.T) {
		_, err := testutil.ExecuteCLICommand(t, a, UseCmd(), []string{"board", "999"})
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := testutil.ExecuteCLICommand(t, a, UseCmd(), []string{"board"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("rejects shell metacharacters", func(t *testing.T) {
		_, err := testutil.ExecuteCLICommand(t, a, UseCmd(), []string{"board", "1;rm"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}

func TestUseBoard_Show(t *testing.T) {
	a, remote := testutil.SetupCLITest(t)
	remote.AddBoard(models.Board{ID: "123", Name: "Deals"})

	t.Setenv(cli.BoardEnvVar, "")
	out, err := testutil.ExecuteCLICommand(t, a, UseCmd(), []string{"board", "--show"})
	require.NoError(t, err)
	assert.Contains(t, out, "No board context set")

	t.Setenv(cli.BoardEnvVar, "123")
	out, err = testutil.ExecuteCLICommand(t, a, UseCmd(), []string{"board", "--show"})
	require.NoError(t, err)
	assert.Contains(t, out, "Current board: 123 (Deals)")
}
