// Package monday is a small GraphQL-over-HTTP client for the host
// work-management platform. Every exported operation returns a Result
// envelope: transport failures, HTTP errors, GraphQL errors and decoding
// problems all end up in Result.Error and never escape as panics.
package monday

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultURL        = "https://api.monday.com/v2"
	DefaultAPIVersion = "2024-10"
	DefaultTimeout    = 30 * time.Second
)

// Options configures a Client
type Options struct {
	URL        string
	Token      string
	APIVersion string
	Timeout    time.Duration
	// HTTPClient overrides the transport; Timeout is ignored when set
	HTTPClient *http.Client
}

// Client issues queries and mutations against the platform API
type Client struct {
	url     string
	token   string
	version string
	http    *http.Client
}

// NewClient creates a client, filling unset options with defaults
func NewClient(opts Options) *Client {
	if opts.URL == "" {
		opts.URL = DefaultURL
	}
	if opts.APIVersion == "" {
		opts.APIVersion = DefaultAPIVersion
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		url:     opts.URL,
		token:   opts.Token,
		version: opts.APIVersion,
		http:    httpClient,
	}
}

// ============================================================================
// RESULT ENVELOPE
// ============================================================================

// Result is the uniform envelope every operation returns
type Result[T any] struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    T      `json:"data"`
}

// Err converts a failed result into an error, or nil on success
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	return &Error{Message: r.Error, Permission: isPermissionMessage(r.Error)}
}

// Error is a failed remote call surfaced as a Go error
type Error struct {
	Message    string
	Permission bool
}

func (e *Error) Error() string {
	return e.Message
}

// IsPermission reports whether err is a remote access failure
func IsPermission(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Permission
}

func succeed[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](msg string) Result[T] {
	return Result[T]{Error: msg}
}

// failWith logs a failed operation and maps it into the envelope
func failWith[T any](op, subject string, err error) Result[T] {
	slog.Error("remote call failed", "op", op, "subject", subject, "error", err)
	msg := err.Error()
	if isPermissionMessage(msg) {
		if subject != "" {
			msg = fmt.Sprintf("permission denied: no access to %s", subject)
		} else {
			msg = "permission denied: " + msg
		}
	}
	return fail[T](fmt.Sprintf("%s: %s", op, msg))
}

func isPermissionMessage(msg string) bool {
	lower := strings.ToLower(msg)
	for _, marker := range []string{"permission", "unauthorized", "forbidden", "access"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// ============================================================================
// TRANSPORT
// ============================================================================

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
	// Some API versions report failures as a flat error_message
	ErrorMessage string `json:"error_message"`
}

// do posts one GraphQL document and decodes its data into out. Data is
// decoded even when the response also carries errors.
func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("API-Version", c.version)
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("unauthorized: status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var envelope gqlResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if out != nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode data: %w", err)
		}
	}

	if len(envelope.Errors) > 0 {
		msg := envelope.Errors[0].Message
		if msg == "" {
			msg = "GraphQL query failed"
		}
		return errors.New(msg)
	}
	if envelope.ErrorMessage != "" {
		return errors.New(envelope.ErrorMessage)
	}
	return nil
}

// quote renders s as a GraphQL string literal
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	return `"` + r.Replace(s) + `"`
}
