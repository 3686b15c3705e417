package models

// Column is a snapshot of a column on a host board.
// Columns are fetched per board and never mutated locally.
type Column struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	SettingsRaw string `json:"settings_str,omitempty"`
}

// Info returns the display metadata for the column's type
func (c Column) Info() ColumnTypeInfo {
	return ColumnTypeInfoFor(c.Type)
}
