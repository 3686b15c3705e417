package app

import "net/http"

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	remote     Remote
	httpClient *http.Client
}

// WithRemote replaces the platform client, used by tests
func WithRemote(r Remote) Option {
	return func(cfg *appConfig) {
		cfg.remote = r
	}
}

// WithHTTPClient sets the HTTP client the platform client sends requests with
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = c
	}
}
