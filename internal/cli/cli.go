// Package cli holds the shared plumbing of the command-line interface:
// the CLI context, output formatting, exit codes and flag helpers
package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/pagelayout/internal/app"
	"github.com/thenoetrevino/pagelayout/internal/cli/styles"
	"github.com/thenoetrevino/pagelayout/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the App was injected and is closed by its creator
	owned bool
}

// NewCLI loads configuration and opens the application container
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	styles.Init(cfg.ColorScheme)

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &CLI{App: application, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
