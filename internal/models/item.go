package models

// ColumnValue is the value of one column on one item.
// Text and Value are redundant representations: Text is the display string,
// Value is the raw JSON payload as stored by the platform.
type ColumnValue struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Value         string   `json:"value"`
	Type          string   `json:"type,omitempty"`
	ColumnTitle   string   `json:"column_title,omitempty"`
	LinkedItemIDs []string `json:"linked_item_ids,omitempty"`
	DisplayValue  string   `json:"display_value,omitempty"`
}

// Item is a row on a host board
type Item struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	BoardID      string        `json:"board_id,omitempty"`
	BoardName    string        `json:"board_name,omitempty"`
	ColumnValues []ColumnValue `json:"column_values"`
}

// ValueByColumnID returns the column value with the given column id
func (i Item) ValueByColumnID(columnID string) (ColumnValue, bool) {
	for _, cv := range i.ColumnValues {
		if cv.ID == columnID {
			return cv, true
		}
	}
	return ColumnValue{}, false
}
