package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/app"
	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/config"
	"github.com/thenoetrevino/pagelayout/internal/database"
)

var _ app.Remote = (*Remote)(nil)

// TestConfig returns a configuration pointing at the Remote's metadata board
func TestConfig() *config.Config {
	cfg := config.Default()
	cfg.API.Token = "test-token"
	cfg.MetadataBoardID = MetadataBoardID
	return cfg
}

// SetupCLITest builds an App over an in-memory database and a fresh Remote
func SetupCLITest(t *testing.T) (*app.App, *Remote) {
	t.Helper()
	remote := NewRemote()
	repo := database.NewRepository(SetupTestDB(t))
	return app.New(TestConfig(), repo, app.WithRemote(remote)), remote
}

// ExecuteCLICommand runs cmd with args against testApp and returns what it
// wrote to stdout. Stderr is discarded.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext is ExecuteCLICommand with a caller context
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithApp(ctx, testApp))
	return stdout.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
