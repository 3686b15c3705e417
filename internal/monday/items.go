package monday

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/pagelayout/internal/models"
)

const (
	itemPageLimit   = 500
	itemSearchLimit = 100
	// fanOutLimit bounds concurrent requests in the multi-board calls
	fanOutLimit = 4
)

// ============================================================================
// READ
// ============================================================================

// ListItems returns the first page of a board's items with column values
func (c *Client) ListItems(ctx context.Context, boardID string) Result[[]models.Item] {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return fail[[]models.Item]("board id is required")
	}
	query := fmt.Sprintf(`query ($ids: [ID!]) {
		boards(ids: $ids) {
			id
			name
			items_page(limit: %d) { items { id name %s } }
		}
	}`, itemPageLimit, columnValueFragment)

	var data boardsData
	if err := c.do(ctx, query, map[string]any{"ids": []string{boardID}}, &data); err != nil {
		return failWith[[]models.Item]("list items", "board "+boardID, err)
	}
	if len(data.Boards) == 0 {
		return fail[[]models.Item]("board " + boardID + " not found")
	}
	return succeed(data.Boards[0].items())
}

// SearchItemsByName returns items on a board whose name contains text
func (c *Client) SearchItemsByName(ctx context.Context, boardID, text string) Result[[]models.Item] {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return fail[[]models.Item]("board id is required")
	}
	if strings.TrimSpace(text) == "" {
		return fail[[]models.Item]("search text is required")
	}
	return c.listItemsWhere(ctx, "search items", boardID, models.ItemNameColumnID, "contains_text", text, itemSearchLimit)
}

func (c *Client) listItemsWhere(ctx context.Context, op, boardID, columnID, operator, value string, limit int) Result[[]models.Item] {
	query := fmt.Sprintf(`query ($ids: [ID!]) {
		boards(ids: $ids) {
			id
			name
			items_page(
				limit: %d,
				query_params: { rules: [{ column_id: %s, compare_value: [%s], operator: %s }] }
			) { items { id name board { id name } %s } }
		}
	}`, limit, quote(columnID), quote(value), operator, columnValueFragment)

	var data boardsData
	if err := c.do(ctx, query, map[string]any{"ids": []string{boardID}}, &data); err != nil {
		return failWith[[]models.Item](op, "board "+boardID, err)
	}
	if len(data.Boards) == 0 {
		return fail[[]models.Item]("board " + boardID + " not found")
	}
	return succeed(data.Boards[0].items())
}

// GetItem returns one item with its column values
func (c *Client) GetItem(ctx context.Context, itemID string) Result[models.Item] {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return fail[models.Item]("item id is required")
	}
	query := `query ($ids: [ID!]) { items(ids: $ids) { id name board { id name } ` + columnValueFragment + ` } }`

	var data struct {
		Items []rawItem `json:"items"`
	}
	if err := c.do(ctx, query, map[string]any{"ids": []string{itemID}}, &data); err != nil {
		return failWith[models.Item]("get item", "item "+itemID, err)
	}
	if len(data.Items) == 0 {
		return fail[models.Item]("item " + itemID + " not found")
	}
	return succeed(data.Items[0].model())
}

// ============================================================================
// MULTI-BOARD
// ============================================================================

// ListItemsAcrossBoards fetches items from several boards concurrently. Every
// board is attempted; failures are joined into Result.Error while items from
// the boards that succeeded are still returned. The result only fails when
// no board succeeded.
func (c *Client) ListItemsAcrossBoards(ctx context.Context, boardIDs []string) Result[[]models.Item] {
	return c.acrossBoards(ctx, boardIDs, func(ctx context.Context, id string) Result[[]models.Item] {
		return c.ListItems(ctx, id)
	})
}

// SearchItemsAcrossBoards is ListItemsAcrossBoards filtered by item name
func (c *Client) SearchItemsAcrossBoards(ctx context.Context, boardIDs []string, text string) Result[[]models.Item] {
	if strings.TrimSpace(text) == "" {
		return fail[[]models.Item]("search text is required")
	}
	return c.acrossBoards(ctx, boardIDs, func(ctx context.Context, id string) Result[[]models.Item] {
		return c.SearchItemsByName(ctx, id, text)
	})
}

func (c *Client) acrossBoards(ctx context.Context, boardIDs []string, fetch func(context.Context, string) Result[[]models.Item]) Result[[]models.Item] {
	if len(boardIDs) == 0 {
		return fail[[]models.Item]("at least one board id is required")
	}

	results := make([]Result[[]models.Item], len(boardIDs))
	var eg errgroup.Group
	eg.SetLimit(fanOutLimit)
	for i, id := range boardIDs {
		eg.Go(func() error {
			results[i] = fetch(ctx, id)
			return nil
		})
	}
	_ = eg.Wait()

	items := []models.Item{}
	var failures []string
	for i, r := range results {
		if !r.Success {
			failures = append(failures, fmt.Sprintf("board %s: %s", boardIDs[i], r.Error))
			continue
		}
		items = append(items, r.Data...)
	}

	joined := strings.Join(failures, "; ")
	if len(failures) == len(boardIDs) {
		return fail[[]models.Item](joined)
	}
	return Result[[]models.Item]{Success: true, Error: joined, Data: items}
}

// ============================================================================
// WRITE
// ============================================================================

// CreateItem creates an item on a board with initial column values
func (c *Client) CreateItem(ctx context.Context, boardID, name string, values map[string]any) Result[models.Item] {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return fail[models.Item]("board id is required")
	}
	if strings.TrimSpace(name) == "" {
		return fail[models.Item]("item name is required")
	}
	encoded, err := encodeValues(values)
	if err != nil {
		return failWith[models.Item]("create item", "", err)
	}

	const query = `mutation ($board: ID!, $name: String!, $values: JSON) {
		create_item(board_id: $board, item_name: $name, column_values: $values) { id name }
	}`
	var data struct {
		CreateItem *rawItem `json:"create_item"`
	}
	vars := map[string]any{"board": boardID, "name": name, "values": encoded}
	if err := c.do(ctx, query, vars, &data); err != nil {
		return failWith[models.Item]("create item", "board "+boardID, err)
	}
	if data.CreateItem == nil || data.CreateItem.ID == "" {
		return fail[models.Item]("create item: no item returned")
	}

	item := data.CreateItem.model()
	item.BoardID = boardID
	return succeed(item)
}

// UpdateItem changes an item's column values. A "name" key renames the item.
func (c *Client) UpdateItem(ctx context.Context, boardID, itemID string, values map[string]any) Result[string] {
	boardID, itemID = strings.TrimSpace(boardID), strings.TrimSpace(itemID)
	if boardID == "" || itemID == "" {
		return fail[string]("board id and item id are required")
	}
	if len(values) == 0 {
		return fail[string]("no column values to update")
	}
	if name, ok := values[models.ItemNameColumnID].(string); ok && strings.TrimSpace(name) == "" {
		return fail[string]("item name is required")
	}
	encoded, err := encodeValues(values)
	if err != nil {
		return failWith[string]("update item", "", err)
	}

	const query = `mutation ($board: ID!, $item: ID!, $values: JSON!) {
		change_multiple_column_values(board_id: $board, item_id: $item, column_values: $values) { id }
	}`
	var data struct {
		Change *rawRef `json:"change_multiple_column_values"`
	}
	vars := map[string]any{"board": boardID, "item": itemID, "values": encoded}
	if err := c.do(ctx, query, vars, &data); err != nil {
		return failWith[string]("update item", "item "+itemID, err)
	}
	if data.Change == nil {
		return fail[string]("update item: item " + itemID + " not found")
	}
	return succeed(data.Change.ID)
}

// DeleteItems deletes items in a single aliased mutation. Any failure is
// reported for the batch as a whole.
func (c *Client) DeleteItems(ctx context.Context, itemIDs []string) Result[[]string] {
	if len(itemIDs) == 0 {
		return succeed([]string{})
	}

	var decl, body strings.Builder
	vars := make(map[string]any, len(itemIDs))
	for i, id := range itemIDs {
		if i > 0 {
			decl.WriteString(", ")
		}
		fmt.Fprintf(&decl, "$i%d: ID!", i)
		fmt.Fprintf(&body, "d%d: delete_item(item_id: $i%d) { id }\n", i, i)
		vars[fmt.Sprintf("i%d", i)] = id
	}
	query := "mutation (" + decl.String() + ") {\n" + body.String() + "}"

	var data map[string]*rawRef
	if err := c.do(ctx, query, vars, &data); err != nil {
		return failWith[[]string]("delete items", "", err)
	}

	deleted := make([]string, 0, len(itemIDs))
	for i, id := range itemIDs {
		if ref := data[fmt.Sprintf("d%d", i)]; ref != nil {
			deleted = append(deleted, id)
		}
	}
	if len(deleted) != len(itemIDs) {
		return fail[[]string](fmt.Sprintf("delete items: %d of %d deleted", len(deleted), len(itemIDs)))
	}
	return succeed(deleted)
}

func encodeValues(values map[string]any) (string, error) {
	if values == nil {
		values = map[string]any{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode column values: %w", err)
	}
	return string(data), nil
}
