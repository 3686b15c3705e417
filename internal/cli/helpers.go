package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/config"
	"github.com/thenoetrevino/pagelayout/internal/grid"
	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/monday"
	"github.com/thenoetrevino/pagelayout/internal/services/layout"
)

// BoardEnvVar holds the board selected with `pagelayout use board`
const BoardEnvVar = "PAGELAYOUT_BOARD"

// ErrColumnNotFound indicates a column reference that matches no board column
var ErrColumnNotFound = errors.New("column not found")

// GetBoardID returns the target board from the --board flag, then
// PAGELAYOUT_BOARD, then the configured default board
func GetBoardID(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if cmd.Flags().Lookup("board") != nil {
		if id, _ := cmd.Flags().GetString("board"); strings.TrimSpace(id) != "" {
			return strings.TrimSpace(id), nil
		}
	}
	if id := strings.TrimSpace(os.Getenv(BoardEnvVar)); id != "" {
		return id, nil
	}
	if cfg != nil && cfg.DefaultBoardID != "" {
		return cfg.DefaultBoardID, nil
	}
	return "", fmt.Errorf("%w: pass --board or set %s", models.ErrMissingBoard, BoardEnvVar)
}

// ResolveSection finds a section by id, 1-based position, or title
// (case-insensitive). An empty reference selects the first section.
func ResolveSection(l *grid.Layout, ref string) (*models.Section, error) {
	sections := l.Sections()
	ref = strings.TrimSpace(ref)
	if ref == "" {
		if len(sections) == 0 {
			return nil, models.ErrSectionNotFound
		}
		return sections[0], nil
	}
	if s, ok := l.Section(ref); ok {
		return s, nil
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(sections) {
		return sections[n-1], nil
	}
	for _, s := range sections {
		if strings.EqualFold(s.Title, ref) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", models.ErrSectionNotFound, ref)
}

// ResolveColumn finds a board column by id or title (case-insensitive)
func ResolveColumn(board models.Board, ref string) (models.Column, error) {
	ref = strings.TrimSpace(ref)
	for _, c := range board.Columns {
		if c.ID == ref {
			return c, nil
		}
	}
	for _, c := range board.Columns {
		if strings.EqualFold(c.Title, ref) {
			return c, nil
		}
	}
	return models.Column{}, fmt.Errorf("%w: %q on board %s", ErrColumnNotFound, ref, board.ID)
}

// ParseValues parses repeated column=value pairs
func ParseValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid value %q (want column=value)", p)
		}
		values[key] = value
	}
	return values, nil
}

// Classify maps an error to an exit code and a machine-readable error code
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrMissingBoard),
		errors.Is(err, config.ErrMissingToken),
		errors.Is(err, config.ErrMissingMetadataBoard),
		errors.Is(err, layout.ErrNoMetadataBoard):
		return ExitUsage, "USAGE_ERROR"
	case errors.Is(err, models.ErrSectionNotFound):
		return ExitNotFound, "SECTION_NOT_FOUND"
	case errors.Is(err, ErrColumnNotFound):
		return ExitNotFound, "COLUMN_NOT_FOUND"
	case errors.Is(err, models.ErrEmptyItemName),
		errors.Is(err, models.ErrRequiredFieldsMissing),
		errors.Is(err, models.ErrEmptySectionTitle),
		errors.Is(err, models.ErrInvalidRule):
		return ExitValidation, "VALIDATION_ERROR"
	case errors.Is(err, layout.ErrMetadataSetup):
		return ExitDataErr, "METADATA_SETUP_ERROR"
	case monday.IsPermission(err):
		return ExitPermission, "PERMISSION_DENIED"
	default:
		return ExitError, "ERROR"
	}
}

// FailWith reports err through the formatter using its classified exit code
func (f *OutputFormatter) FailWith(err error) error {
	exitCode, code := Classify(err)
	suggestion := ""
	switch exitCode {
	case ExitUsage:
		suggestion = "Set a board with: eval $(pagelayout use board <board-id>)"
	case ExitDataErr:
		suggestion = "Add the missing columns to the metadata board"
	}
	return f.Fail(exitCode, code, err, suggestion)
}
