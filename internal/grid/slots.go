package grid

import "github.com/thenoetrevino/pagelayout/internal/models"

// SlotRef addresses one slot in the grid
type SlotRef struct {
	SectionID string `json:"section_id"`
	Row       int    `json:"row"`
	Slot      int    `json:"slot"`
}

// At returns the column in a slot, or nil when the slot is empty or invalid
func (l *Layout) At(ref SlotRef) *models.Column {
	s, ok := l.slotSection(ref)
	if !ok {
		return nil
	}
	return s.Rows[ref.Row][ref.Slot]
}

// Place drops a column into an empty slot. It is a no-op when the column is
// already placed anywhere or the slot is taken.
func (l *Layout) Place(col models.Column, ref SlotRef) bool {
	if l.IsPlaced(col.ID) {
		return false
	}
	s, ok := l.slotSection(ref)
	if !ok || s.Rows[ref.Row][ref.Slot] != nil {
		return false
	}
	c := col
	s.Rows[ref.Row][ref.Slot] = &c
	l.placed[col.ID] = struct{}{}
	expand(s, ref.Row)
	return true
}

// Move carries the column at from to dest. Whatever occupied dest goes back
// to from, so moving onto an occupied slot swaps the two columns.
func (l *Layout) Move(from, dest SlotRef) bool {
	src, ok := l.slotSection(from)
	if !ok || src.Rows[from.Row][from.Slot] == nil {
		return false
	}
	dst, ok := l.slotSection(dest)
	if !ok {
		return false
	}
	if from == dest {
		return true
	}

	moving := src.Rows[from.Row][from.Slot]
	src.Rows[from.Row][from.Slot] = dst.Rows[dest.Row][dest.Slot]
	dst.Rows[dest.Row][dest.Slot] = moving

	expand(dst, dest.Row)
	expand(src, from.Row)
	cleanup(src)
	if dst != src {
		cleanup(dst)
	}
	return true
}

// Remove clears a slot, drops the column from the placed and required sets,
// and prunes trailing empty rows
func (l *Layout) Remove(ref SlotRef) (models.Column, bool) {
	s, ok := l.slotSection(ref)
	if !ok || s.Rows[ref.Row][ref.Slot] == nil {
		return models.Column{}, false
	}
	col := *s.Rows[ref.Row][ref.Slot]
	s.Rows[ref.Row][ref.Slot] = nil
	delete(l.placed, col.ID)
	delete(l.required, col.ID)
	cleanup(s)
	return col, true
}

// FirstEmptySlot returns the first free slot of a section in row-major order.
// The last row of a section is never full, so a free slot always exists.
func FirstEmptySlot(s *models.Section) SlotRef {
	for r, row := range s.Rows {
		for i, c := range row {
			if c == nil {
				return SlotRef{SectionID: s.ID, Row: r, Slot: i}
			}
		}
	}
	return SlotRef{SectionID: s.ID, Row: len(s.Rows), Slot: 0}
}

// Locate finds the slot holding a column
func (l *Layout) Locate(columnID string) (SlotRef, bool) {
	for _, s := range l.sections {
		for r, row := range s.Rows {
			for i, c := range row {
				if c != nil && c.ID == columnID {
					return SlotRef{SectionID: s.ID, Row: r, Slot: i}, true
				}
			}
		}
	}
	return SlotRef{}, false
}

func (l *Layout) slotSection(ref SlotRef) (*models.Section, bool) {
	s, ok := l.Section(ref.SectionID)
	if !ok {
		return nil, false
	}
	if ref.Row < 0 || ref.Row >= len(s.Rows) || ref.Slot < 0 || ref.Slot >= models.SlotsPerRow {
		return nil, false
	}
	return s, true
}

// expand appends an empty row once the last row holds a column, so a
// section always ends with an empty row to drop into
func expand(s *models.Section, row int) {
	if row == len(s.Rows)-1 && !s.Rows[row].IsEmpty() {
		s.Rows = append(s.Rows, models.Row{})
	}
}

// cleanup drops the last row while it and the row before it are both empty.
// At least one row always remains.
func cleanup(s *models.Section) {
	for len(s.Rows) > 1 {
		n := len(s.Rows)
		if !s.Rows[n-1].IsEmpty() || !s.Rows[n-2].IsEmpty() {
			break
		}
		s.Rows = s.Rows[:n-1]
	}
	if len(s.Rows) == 0 {
		s.Rows = []models.Row{{}}
	}
}
