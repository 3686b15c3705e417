package board

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/thenoetrevino/pagelayout/internal/codec"
	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/monday"
)

// childScanLimit bounds how many boards are scanned for child boards
const childScanLimit = 500

// RemoteStore is the slice of the platform client the catalogue needs
type RemoteStore interface {
	ListBoards(ctx context.Context) monday.Result[[]models.Board]
	ListBoardsWithColumns(ctx context.Context, limit int) monday.Result[[]models.Board]
	GetBoardColumns(ctx context.Context, boardID string) monday.Result[models.Board]
	ListItemsAcrossBoards(ctx context.Context, boardIDs []string) monday.Result[[]models.Item]
	SearchItemsAcrossBoards(ctx context.Context, boardIDs []string, text string) monday.Result[[]models.Item]
}

// Service defines board catalogue operations
type Service interface {
	// Read operations
	ListBoards(ctx context.Context) ([]models.Board, error)
	Columns(ctx context.Context, boardID string) (models.Board, error)
	ChildBoards(ctx context.Context, boardID string) ([]models.ChildBoard, error)

	// Items spanning several boards; warning carries per-board failures
	// when at least one board succeeded
	ItemsAcrossBoards(ctx context.Context, boardIDs []string, search string) (items []models.Item, warning string, err error)
}

// service implements Service against a RemoteStore
type service struct {
	remote RemoteStore
}

// NewService creates a new board service
func NewService(remote RemoteStore) Service {
	return &service{remote: remote}
}

// ListBoards returns every visible board sorted by name
func (s *service) ListBoards(ctx context.Context) ([]models.Board, error) {
	res := s.remote.ListBoards(ctx)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	boards := res.Data
	slices.SortStableFunc(boards, func(a, b models.Board) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return boards, nil
}

// Columns returns a board with its columns sorted by title, then id
func (s *service) Columns(ctx context.Context, boardID string) (models.Board, error) {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return models.Board{}, models.ErrMissingBoard
	}
	res := s.remote.GetBoardColumns(ctx, boardID)
	if err := res.Err(); err != nil {
		return models.Board{}, fmt.Errorf("failed to get columns for board %s: %w", boardID, err)
	}
	board := res.Data
	SortColumns(board.Columns)
	return board, nil
}

// SortColumns orders columns by lower-cased title, then id
func SortColumns(columns []models.Column) {
	slices.SortStableFunc(columns, func(a, b models.Column) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)),
			cmp.Compare(a.ID, b.ID),
		)
	})
}

// FilterColumns keeps columns whose title or type contains query, ignoring case
func FilterColumns(columns []models.Column, query string) []models.Column {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return columns
	}
	out := make([]models.Column, 0, len(columns))
	for _, c := range columns {
		if strings.Contains(strings.ToLower(c.Title), query) || strings.Contains(strings.ToLower(c.Type), query) {
			out = append(out, c)
		}
	}
	return out
}

// ChildBoards finds boards with a connect-boards column pointing at boardID
func (s *service) ChildBoards(ctx context.Context, boardID string) ([]models.ChildBoard, error) {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return nil, models.ErrMissingBoard
	}
	res := s.remote.ListBoardsWithColumns(ctx, childScanLimit)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan boards: %w", err)
	}

	children := make([]models.ChildBoard, 0)
	for _, b := range res.Data {
		if codec.BoardIDMatches(b.ID, boardID) {
			continue
		}
		for _, c := range b.Columns {
			if c.Type != "board_relation" || !linksTo(b.ID, c, boardID) {
				continue
			}
			children = append(children, models.ChildBoard{
				BoardID:     b.ID,
				BoardName:   b.Name,
				ColumnID:    c.ID,
				ColumnTitle: c.Title,
				Label:       b.Name + " - " + c.Title,
			})
		}
	}

	slices.SortStableFunc(children, func(a, b models.ChildBoard) int {
		return strings.Compare(a.Label, b.Label)
	})
	return children, nil
}

// linksTo reports whether a board_relation column's settings list boardID
func linksTo(ownerID string, c models.Column, boardID string) bool {
	settings := strings.TrimSpace(c.SettingsRaw)
	if settings == "" {
		return false
	}
	if !gjson.Valid(settings) {
		slog.Warn("could not parse column settings", "board", ownerID, "column", c.ID)
		return false
	}
	for _, id := range gjson.Get(settings, "boardIds").Array() {
		if codec.BoardIDMatches(id.Raw, boardID) {
			return true
		}
	}
	return false
}

// ItemsAcrossBoards lists, or searches by name when search is set, items
// across several boards
func (s *service) ItemsAcrossBoards(ctx context.Context, boardIDs []string, search string) ([]models.Item, string, error) {
	ids := make([]string, 0, len(boardIDs))
	for _, id := range boardIDs {
		if id = strings.TrimSpace(id); id != "" && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, "", ErrNoBoards
	}

	var res monday.Result[[]models.Item]
	if strings.TrimSpace(search) != "" {
		res = s.remote.SearchItemsAcrossBoards(ctx, ids, search)
	} else {
		res = s.remote.ListItemsAcrossBoards(ctx, ids)
	}
	if err := res.Err(); err != nil {
		return nil, "", fmt.Errorf("failed to fetch items: %w", err)
	}
	if res.Error != "" {
		slog.Warn("some boards could not be read", "error", res.Error)
	}
	return res.Data, res.Error, nil
}
