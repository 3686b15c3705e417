package monday

import (
	"context"
	"strings"

	"github.com/thenoetrevino/pagelayout/internal/models"
)

const (
	boardListLimit      = 1000
	boardScanLimit      = 500
	columnsFragment     = `columns { id title type settings_str }`
	columnValueFragment = `column_values {
		id
		text
		value
		type
		column { id title type }
		... on BoardRelationValue { linked_item_ids display_value }
		... on MirrorValue { display_value }
	}`
)

// ListBoards returns every board visible to the token with its workspace
func (c *Client) ListBoards(ctx context.Context) Result[[]models.Board] {
	const query = `query ($limit: Int) {
		boards(limit: $limit) { id name workspace { id name } }
	}`

	var data boardsData
	if err := c.do(ctx, query, map[string]any{"limit": boardListLimit}, &data); err != nil {
		return failWith[[]models.Board]("list boards", "", err)
	}

	boards := make([]models.Board, 0, len(data.Boards))
	for _, b := range data.Boards {
		boards = append(boards, b.model())
	}
	return succeed(boards)
}

// ListBoardsWithColumns returns up to limit boards including their columns
// and column settings. Used to discover boards that link to a given board.
func (c *Client) ListBoardsWithColumns(ctx context.Context, limit int) Result[[]models.Board] {
	if limit <= 0 {
		limit = boardScanLimit
	}
	query := `query ($limit: Int) { boards(limit: $limit) { id name ` + columnsFragment + ` } }`

	var data boardsData
	if err := c.do(ctx, query, map[string]any{"limit": limit}, &data); err != nil {
		return failWith[[]models.Board]("list boards", "", err)
	}

	boards := make([]models.Board, 0, len(data.Boards))
	for _, b := range data.Boards {
		boards = append(boards, b.model())
	}
	return succeed(boards)
}

// GetBoardColumns returns a board's name and columns
func (c *Client) GetBoardColumns(ctx context.Context, boardID string) Result[models.Board] {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return fail[models.Board]("board id is required")
	}
	query := `query ($ids: [ID!]) { boards(ids: $ids) { id name ` + columnsFragment + ` } }`

	var data boardsData
	if err := c.do(ctx, query, map[string]any{"ids": []string{boardID}}, &data); err != nil {
		return failWith[models.Board]("get board columns", "board "+boardID, err)
	}
	if len(data.Boards) == 0 {
		return fail[models.Board]("board " + boardID + " not found")
	}

	board := data.Boards[0].model()
	if board.Columns == nil {
		board.Columns = []models.Column{}
	}
	return succeed(board)
}
