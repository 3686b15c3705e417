package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/pagelayout/internal/grid"
	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/monday"
)

// nameColumnID is the built-in item name column; it is sent as the item name
// rather than as a column value
const nameColumnID = "name"

// RemoteStore is the slice of the platform client the form needs
type RemoteStore interface {
	CreateItem(ctx context.Context, boardID, name string, values map[string]any) monday.Result[models.Item]
	SearchItemsByName(ctx context.Context, boardID, text string) monday.Result[[]models.Item]
}

// CreateItemRequest is one submission of the item-creation form
type CreateItemRequest struct {
	BoardID string
	Layout  *grid.Layout
	Name    string
	// Values are keyed by column id
	Values map[string]string
	Viewer models.ViewerProfile
}

// Service defines item form operations
type Service interface {
	// Write operations
	CreateItem(ctx context.Context, req CreateItemRequest) (models.Item, error)

	// Read operations
	SearchItems(ctx context.Context, boardID, text string) ([]models.Item, error)
	// VisibleFields lists the placed columns a viewer fills in, in form order
	VisibleFields(layout *grid.Layout, viewer models.ViewerProfile) []FormField
}

// FormField is one input on the rendered form
type FormField struct {
	SectionID    string        `json:"section_id"`
	SectionTitle string        `json:"section_title"`
	Column       models.Column `json:"column"`
	Required     bool          `json:"required"`
}

// service implements Service
type service struct {
	remote RemoteStore
}

// NewService creates a new item form service
func NewService(remote RemoteStore) Service {
	return &service{remote: remote}
}

// VisibleFields walks visible sections row by row
func (s *service) VisibleFields(layout *grid.Layout, viewer models.ViewerProfile) []FormField {
	var fields []FormField
	for _, sec := range layout.Sections() {
		if !layout.SectionVisible(sec.ID, viewer) {
			continue
		}
		for _, col := range sec.Columns() {
			fields = append(fields, FormField{
				SectionID:    sec.ID,
				SectionTitle: sec.Title,
				Column:       col,
				Required:     layout.IsRequired(col.ID),
			})
		}
	}
	return fields
}

// CreateItem validates a submission and creates the item
func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (models.Item, error) {
	boardID := strings.TrimSpace(req.BoardID)
	if boardID == "" {
		return models.Item{}, models.ErrMissingBoard
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSpace(req.Values[nameColumnID])
	}
	if name == "" {
		return models.Item{}, models.ErrEmptyItemName
	}

	values := make(map[string]any)
	var missing []string
	for _, f := range s.VisibleFields(req.Layout, req.Viewer) {
		if f.Column.ID == nameColumnID {
			continue
		}
		v := strings.TrimSpace(req.Values[f.Column.ID])
		if v == "" {
			if f.Required {
				missing = append(missing, f.Column.Title)
			}
			continue
		}
		values[f.Column.ID] = v
	}
	if len(missing) > 0 {
		return models.Item{}, fmt.Errorf("%w: %s", models.ErrRequiredFieldsMissing, strings.Join(missing, ", "))
	}

	res := s.remote.CreateItem(ctx, boardID, name, values)
	if err := res.Err(); err != nil {
		return models.Item{}, fmt.Errorf("failed to create item: %w", err)
	}
	slog.Info("item created", "board", boardID, "item", res.Data.ID, "values", len(values))
	return res.Data, nil
}

// SearchItems finds items on a board whose name contains text
func (s *service) SearchItems(ctx context.Context, boardID, text string) ([]models.Item, error) {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return nil, models.ErrMissingBoard
	}
	res := s.remote.SearchItemsByName(ctx, boardID, text)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return res.Data, nil
}
