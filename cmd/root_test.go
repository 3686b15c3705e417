package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_Tree(t *testing.T) {
	root := NewRootCmd()

	paths := [][]string{
		{"edit"},
		{"board", "list"},
		{"board", "children"},
		{"column", "list"},
		{"item", "search"},
		{"item", "form"},
		{"item", "create"},
		{"user", "list"},
		{"team", "list"},
		{"layout", "show"},
		{"layout", "place"},
		{"layout", "section", "add"},
		{"layout", "rules", "set"},
		{"layout", "save"},
		{"layout", "history"},
		{"use", "board"},
	}
	for _, path := range paths {
		cmd, rest, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Empty(t, rest, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestNewRootCmd_SilencesCobraOutput(t *testing.T) {
	root := NewRootCmd()
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)
}
