package monday

import (
	"encoding/json"

	"github.com/thenoetrevino/pagelayout/internal/models"
)

// Wire shapes returned by the API. They are converted to models at the
// package boundary so callers never see nullable API quirks.

type rawRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type rawColumn struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	SettingsStr string `json:"settings_str"`
}

type rawBoard struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Workspace *rawRef     `json:"workspace"`
	Columns   []rawColumn `json:"columns"`
	ItemsPage *struct {
		Items []rawItem `json:"items"`
	} `json:"items_page"`
}

type rawColumnValue struct {
	ID            string          `json:"id"`
	Text          *string         `json:"text"`
	Value         json.RawMessage `json:"value"`
	Type          string          `json:"type"`
	Column        *rawColumn      `json:"column"`
	LinkedItemIDs []string        `json:"linked_item_ids"`
	DisplayValue  *string         `json:"display_value"`
}

type rawItem struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Board        *rawRef          `json:"board"`
	ColumnValues []rawColumnValue `json:"column_values"`
}

type boardsData struct {
	Boards []rawBoard `json:"boards"`
}

func (c rawColumn) model() models.Column {
	return models.Column{ID: c.ID, Title: c.Title, Type: c.Type, SettingsRaw: c.SettingsStr}
}

func (b rawBoard) model() models.Board {
	board := models.Board{ID: b.ID, Name: b.Name}
	if b.Workspace != nil {
		board.Workspace = &models.Workspace{ID: b.Workspace.ID, Name: b.Workspace.Name}
	}
	for _, c := range b.Columns {
		board.Columns = append(board.Columns, c.model())
	}
	return board
}

func (b rawBoard) items() []models.Item {
	if b.ItemsPage == nil {
		return []models.Item{}
	}
	items := make([]models.Item, 0, len(b.ItemsPage.Items))
	for _, it := range b.ItemsPage.Items {
		item := it.model()
		if item.BoardID == "" {
			item.BoardID, item.BoardName = b.ID, b.Name
		}
		items = append(items, item)
	}
	return items
}

func (it rawItem) model() models.Item {
	item := models.Item{ID: it.ID, Name: it.Name, ColumnValues: make([]models.ColumnValue, 0, len(it.ColumnValues))}
	if it.Board != nil {
		item.BoardID, item.BoardName = it.Board.ID, it.Board.Name
	}
	for _, cv := range it.ColumnValues {
		item.ColumnValues = append(item.ColumnValues, cv.model())
	}
	return item
}

func (cv rawColumnValue) model() models.ColumnValue {
	out := models.ColumnValue{
		ID:            cv.ID,
		Type:          cv.Type,
		Value:         rawValue(cv.Value),
		LinkedItemIDs: cv.LinkedItemIDs,
	}
	if cv.Text != nil {
		out.Text = *cv.Text
	}
	if cv.DisplayValue != nil {
		out.DisplayValue = *cv.DisplayValue
	}
	if cv.Column != nil {
		out.ColumnTitle = cv.Column.Title
		if out.Type == "" {
			out.Type = cv.Column.Type
		}
	}
	return out
}

// rawValue flattens the API's value field: a JSON string is unquoted once,
// null becomes empty, and anything else is kept verbatim.
func rawValue(v json.RawMessage) string {
	if len(v) == 0 || string(v) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(v)
}
