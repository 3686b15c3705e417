package cli

import (
	"context"

	"github.com/thenoetrevino/pagelayout/internal/app"
)

type contextKey string

const appKey contextKey = "app"

// WithApp stores an already built App on the context; commands then use it
// instead of opening their own
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI over the App stored on ctx, or opens a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	} else {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}
