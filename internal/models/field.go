package models

// DefaultMaxValues is the max-values rule attached to multi-value fields
const DefaultMaxValues = 1000

// FieldRules constrains how many values a multi-value field accepts
type FieldRules struct {
	MaxValues int `json:"maxValues"`
}

// Field is the persisted unit of a layout: one placed column
type Field struct {
	ID         string      `json:"id"`
	ColumnID   string      `json:"columnId"`
	Type       string      `json:"type,omitempty"`
	IsRequired bool        `json:"isRequired"`
	Rules      *FieldRules `json:"rules,omitempty"`
}

// FieldIDFor derives the field id for a column id
func FieldIDFor(columnID string) string {
	return "field_" + columnID
}

// NewField builds the field persisted for a placed column
func NewField(col Column, required bool) Field {
	f := Field{
		ID:         FieldIDFor(col.ID),
		ColumnID:   col.ID,
		Type:       col.Type,
		IsRequired: required,
	}
	if IsMultiValueType(col.Type) {
		f.Rules = &FieldRules{MaxValues: DefaultMaxValues}
	}
	return f
}
