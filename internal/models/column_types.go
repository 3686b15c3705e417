package models

// ColumnTypeInfo is the display metadata attached to a host column type
type ColumnTypeInfo struct {
	Label string
	Color string // Hex color code (e.g., "#00C875")
}

// GenericColumnType is returned for column types missing from the lookup table
var GenericColumnType = ColumnTypeInfo{Label: "Column", Color: "#C4C4C4"}

var columnTypes = map[string]ColumnTypeInfo{
	"name":           {Label: "Item Name", Color: "#323338"},
	"text":           {Label: "Text", Color: "#579BFC"},
	"long_text":      {Label: "Long Text", Color: "#579BFC"},
	"numbers":        {Label: "Numbers", Color: "#FDAB3D"},
	"status":         {Label: "Status", Color: "#00C875"},
	"dropdown":       {Label: "Dropdown", Color: "#00C875"},
	"date":           {Label: "Date", Color: "#A25DDC"},
	"timeline":       {Label: "Timeline", Color: "#A25DDC"},
	"hour":           {Label: "Hour", Color: "#A25DDC"},
	"week":           {Label: "Week", Color: "#A25DDC"},
	"people":         {Label: "People", Color: "#FF642E"},
	"board_relation": {Label: "Connect Boards", Color: "#FF158A"},
	"mirror":         {Label: "Mirror", Color: "#FF158A"},
	"dependency":     {Label: "Dependency", Color: "#FF158A"},
	"email":          {Label: "Email", Color: "#66CCFF"},
	"phone":          {Label: "Phone", Color: "#66CCFF"},
	"link":           {Label: "Link", Color: "#66CCFF"},
	"location":       {Label: "Location", Color: "#66CCFF"},
	"country":        {Label: "Country", Color: "#66CCFF"},
	"checkbox":       {Label: "Checkbox", Color: "#037F4C"},
	"rating":         {Label: "Rating", Color: "#FFCB00"},
	"tags":           {Label: "Tags", Color: "#9CD326"},
	"file":           {Label: "Files", Color: "#7F5347"},
	"formula":        {Label: "Formula", Color: "#784BD1"},
	"auto_number":    {Label: "Auto Number", Color: "#784BD1"},
	"item_id":        {Label: "Item ID", Color: "#784BD1"},
	"creation_log":   {Label: "Creation Log", Color: "#808080"},
	"last_updated":   {Label: "Last Updated", Color: "#808080"},
	"color_picker":   {Label: "Color Picker", Color: "#E2445C"},
	"world_clock":    {Label: "World Clock", Color: "#A25DDC"},
	"time_tracking":  {Label: "Time Tracking", Color: "#FDAB3D"},
	"progress":       {Label: "Progress", Color: "#00C875"},
	"vote":           {Label: "Vote", Color: "#FFCB00"},
	"button":         {Label: "Button", Color: "#0086C0"},
	"doc":            {Label: "Doc", Color: "#0086C0"},
	"subtasks":       {Label: "Subitems", Color: "#0086C0"},
}

// multiValueTypes lists column types whose fields carry a max-values rule
var multiValueTypes = map[string]bool{
	"people":         true,
	"board_relation": true,
}

// ColumnTypeInfoFor returns the display metadata for a column type.
// Unrecognized types fall back to GenericColumnType.
func ColumnTypeInfoFor(columnType string) ColumnTypeInfo {
	if info, ok := columnTypes[columnType]; ok {
		return info
	}
	return GenericColumnType
}

// IsMultiValueType reports whether fields of this column type carry rules
func IsMultiValueType(columnType string) bool {
	return multiValueTypes[columnType]
}
