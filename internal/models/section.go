package models

// SlotsPerRow is the fixed width of the layout grid
const SlotsPerRow = 2

// Row is a fixed-size pair of slots; a nil slot is empty
type Row [SlotsPerRow]*Column

// IsEmpty reports whether no slot in the row is occupied
func (r Row) IsEmpty() bool {
	for _, c := range r {
		if c != nil {
			return false
		}
	}
	return true
}

// IsFull reports whether every slot in the row is occupied
func (r Row) IsFull() bool {
	for _, c := range r {
		if c == nil {
			return false
		}
	}
	return true
}

// Section is a named group of rows on an item-creation form.
// RecordID is nil until the section has been persisted; after the first
// save ID and RecordID converge on the remote item id.
type Section struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Order    int     `json:"order"`
	RecordID *string `json:"record_id,omitempty"`
	Rows     []Row   `json:"rows"`
}

// IsPersisted reports whether the section has a remote record
func (s *Section) IsPersisted() bool {
	return s.RecordID != nil && *s.RecordID != ""
}

// Columns returns the placed columns in row-major order
func (s *Section) Columns() []Column {
	var cols []Column
	for _, row := range s.Rows {
		for _, c := range row {
			if c != nil {
				cols = append(cols, *c)
			}
		}
	}
	return cols
}
