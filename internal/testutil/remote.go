package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/monday"
)

// MetadataBoardID is the metadata board every Remote starts with
const MetadataBoardID = "900"

// MetadataColumns are the metadata board columns, addressed by title
var MetadataColumns = []models.Column{
	{ID: "text_board", Title: models.MetadataColumnBoardID, Type: "text"},
	{ID: "num_order", Title: models.MetadataColumnSectionOrder, Type: "numbers"},
	{ID: "long_fields", Title: models.MetadataColumnFields, Type: "long_text"},
	{ID: "long_rules", Title: models.MetadataColumnRules, Type: "long_text"},
}

// Remote is an in-memory platform. Items created on any board can be read
// back, so a layout saved through it loads again.
type Remote struct {
	mu     sync.Mutex
	boards []models.Board
	items  map[string][]models.Item
	users  []models.User
	teams  []models.Team
	nextID int

	// FailCreate fails item creation by item name
	FailCreate map[string]bool
	// FailBoards fails every read of the listed board ids
	FailBoards map[string]bool
}

// NewRemote creates a Remote holding only the metadata board
func NewRemote() *Remote {
	return &Remote{
		boards: []models.Board{
			{ID: MetadataBoardID, Name: "Page Layouts", Columns: slices.Clone(MetadataColumns)},
		},
		items:      map[string][]models.Item{},
		nextID:     1000,
		FailCreate: map[string]bool{},
		FailBoards: map[string]bool{},
	}
}

// AddBoard adds or replaces a board
func (r *Remote) AddBoard(b models.Board) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.boards {
		if r.boards[i].ID == b.ID {
			r.boards[i] = b
			return
		}
	}
	r.boards = append(r.boards, b)
}

// AddItem stores an item on a board as is
func (r *Remote) AddItem(boardID string, item models.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.BoardID = boardID
	r.items[boardID] = append(r.items[boardID], item)
}

// AddUsers registers account members
func (r *Remote) AddUsers(users ...models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, users...)
}

// AddTeams registers teams
func (r *Remote) AddTeams(teams ...models.Team) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams = append(r.teams, teams...)
}

// Items returns a copy of a board's items
func (r *Remote) Items(boardID string) []models.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items[boardID])
}

// ============================================================================
// BOARDS
// ============================================================================

func (r *Remote) ListBoards(_ context.Context) monday.Result[[]models.Board] {
	r.mu.Lock()
	defer r.mu.Unlock()
	boards := make([]models.Board, 0, len(r.boards))
	for _, b := range r.boards {
		b.Columns = nil
		boards = append(boards, b)
	}
	return monday.Result[[]models.Board]{Success: true, Data: boards}
}

func (r *Remote) ListBoardsWithColumns(_ context.Context, limit int) monday.Result[[]models.Board] {
	r.mu.Lock()
	defer r.mu.Unlock()
	boards := slices.Clone(r.boards)
	if limit > 0 && len(boards) > limit {
		boards = boards[:limit]
	}
	return monday.Result[[]models.Board]{Success: true, Data: boards}
}

func (r *Remote) GetBoardColumns(_ context.Context, boardID string) monday.Result[models.Board] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailBoards[boardID] {
		return monday.Result[models.Board]{Error: "board " + boardID + " is unavailable"}
	}
	for _, b := range r.boards {
		if b.ID == boardID {
			b.Columns = slices.Clone(b.Columns)
			return monday.Result[models.Board]{Success: true, Data: b}
		}
	}
	return monday.Result[models.Board]{Error: "board " + boardID + " not found"}
}

// ============================================================================
// ITEMS
// ============================================================================

func (r *Remote) ListItems(_ context.Context, boardID string) monday.Result[[]models.Item] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.searchLocked(boardID, "")
}

func (r *Remote) SearchItemsByName(_ context.Context, boardID, text string) monday.Result[[]models.Item] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.searchLocked(boardID, text)
}

func (r *Remote) searchLocked(boardID, text string) monday.Result[[]models.Item] {
	if r.FailBoards[boardID] {
		return monday.Result[[]models.Item]{Error: "board " + boardID + " is unavailable"}
	}
	text = strings.ToLower(strings.TrimSpace(text))
	matched := []models.Item{}
	for _, item := range r.items[boardID] {
		if strings.Contains(strings.ToLower(item.Name), text) {
			matched = append(matched, item)
		}
	}
	return monday.Result[[]models.Item]{Success: true, Data: matched}
}

func (r *Remote) ListItemsAcrossBoards(ctx context.Context, boardIDs []string) monday.Result[[]models.Item] {
	return r.SearchItemsAcrossBoards(ctx, boardIDs, "")
}

// SearchItemsAcrossBoards settles every board like the real client: failed
// boards are joined into Result.Error unless all of them failed
func (r *Remote) SearchItemsAcrossBoards(_ context.Context, boardIDs []string, text string) monday.Result[[]models.Item] {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := []models.Item{}
	var failures []string
	for _, id := range boardIDs {
		res := r.searchLocked(id, text)
		if !res.Success {
			failures = append(failures, fmt.Sprintf("board %s: %s", id, res.Error))
			continue
		}
		items = append(items, res.Data...)
	}
	joined := strings.Join(failures, "; ")
	if len(failures) == len(boardIDs) {
		return monday.Result[[]models.Item]{Error: joined}
	}
	return monday.Result[[]models.Item]{Success: true, Error: joined, Data: items}
}

func (r *Remote) CreateItem(_ context.Context, boardID, name string, values map[string]any) monday.Result[models.Item] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreate[name] {
		return monday.Result[models.Item]{Error: "create item: rejected"}
	}
	r.nextID++
	item := models.Item{
		ID:           fmt.Sprint(r.nextID),
		Name:         name,
		BoardID:      boardID,
		ColumnValues: columnValues(values),
	}
	r.items[boardID] = append(r.items[boardID], item)
	return monday.Result[models.Item]{Success: true, Data: item}
}

func (r *Remote) UpdateItem(_ context.Context, boardID, itemID string, values map[string]any) monday.Result[string] {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.items[boardID]
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		for _, cv := range columnValues(values) {
			if j := slices.IndexFunc(items[i].ColumnValues, func(c models.ColumnValue) bool { return c.ID == cv.ID }); j >= 0 {
				items[i].ColumnValues[j] = cv
			} else {
				items[i].ColumnValues = append(items[i].ColumnValues, cv)
			}
		}
		return monday.Result[string]{Success: true, Data: itemID}
	}
	return monday.Result[string]{Error: "item " + itemID + " not found"}
}

func (r *Remote) DeleteItems(_ context.Context, itemIDs []string) monday.Result[[]string] {
	r.mu.Lock()
	defer r.mu.Unlock()
	for board, items := range r.items {
		r.items[board] = slices.DeleteFunc(items, func(item models.Item) bool {
			return slices.Contains(itemIDs, item.ID)
		})
	}
	return monday.Result[[]string]{Success: true, Data: itemIDs}
}

// columnValues turns a mutation's values into stored column values the way
// the platform echoes them back
func columnValues(values map[string]any) []models.ColumnValue {
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]models.ColumnValue, 0, len(values))
	for _, id := range ids {
		v := values[id]
		raw, _ := json.Marshal(v)
		out = append(out, models.ColumnValue{ID: id, Text: displayText(v), Value: string(raw)})
	}
	return out
}

func displayText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]string:
		for _, k := range []string{"text", "label", "date"} {
			if s, ok := val[k]; ok {
				return s
			}
		}
	case map[string]any:
		for _, k := range []string{"text", "label", "date"} {
			if s, ok := val[k]; ok {
				return fmt.Sprint(s)
			}
		}
	}
	return fmt.Sprint(v)
}

// ============================================================================
// PEOPLE
// ============================================================================

func (r *Remote) ListUsers(_ context.Context) monday.Result[[]models.User] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return monday.Result[[]models.User]{Success: true, Data: slices.Clone(r.users)}
}

func (r *Remote) SearchUsers(_ context.Context, text string) monday.Result[[]models.User] {
	r.mu.Lock()
	defer r.mu.Unlock()
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return monday.Result[[]models.User]{Error: "search text is required"}
	}
	matched := []models.User{}
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Name), text) || strings.Contains(strings.ToLower(u.Email), text) {
			matched = append(matched, u)
		}
	}
	return monday.Result[[]models.User]{Success: true, Data: matched}
}

func (r *Remote) ListTeams(_ context.Context) monday.Result[[]models.Team] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return monday.Result[[]models.Team]{Success: true, Data: slices.Clone(r.teams)}
}
