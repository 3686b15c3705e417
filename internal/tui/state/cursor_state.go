package state

import (
	"github.com/thenoetrevino/pagelayout/internal/grid"
	"github.com/thenoetrevino/pagelayout/internal/models"
)

// CursorState tracks the focused slot and the column picked up for a move.
// Positions are indexes into the layout's current sections and rows, so the
// cursor is clamped after every mutation.
type CursorState struct {
	section int
	row     int
	slot    int

	held *grid.SlotRef
}

// NewCursorState creates a cursor on the first slot
func NewCursorState() *CursorState {
	return &CursorState{}
}

// Section returns the focused section index
func (c *CursorState) Section() int { return c.section }

// Row returns the focused row index within the section
func (c *CursorState) Row() int { return c.row }

// Slot returns the focused slot index within the row
func (c *CursorState) Slot() int { return c.slot }

// Ref addresses the focused slot. ok is false when the layout has no sections.
func (c *CursorState) Ref(l *grid.Layout) (grid.SlotRef, bool) {
	sections := l.Sections()
	if len(sections) == 0 {
		return grid.SlotRef{}, false
	}
	c.Clamp(l)
	return grid.SlotRef{SectionID: sections[c.section].ID, Row: c.row, Slot: c.slot}, true
}

// FocusedSection returns the section under the cursor
func (c *CursorState) FocusedSection(l *grid.Layout) (*models.Section, bool) {
	sections := l.Sections()
	if len(sections) == 0 {
		return nil, false
	}
	c.Clamp(l)
	return sections[c.section], true
}

// Clamp pulls the cursor back inside the layout
func (c *CursorState) Clamp(l *grid.Layout) {
	sections := l.Sections()
	if len(sections) == 0 {
		c.section, c.row, c.slot = 0, 0, 0
		return
	}
	c.section = min(max(c.section, 0), len(sections)-1)
	rows := len(sections[c.section].Rows)
	c.row = min(max(c.row, 0), max(rows-1, 0))
	c.slot = min(max(c.slot, 0), models.SlotsPerRow-1)
}

// Left moves to the previous slot in the row
func (c *CursorState) Left() {
	c.slot = max(c.slot-1, 0)
}

// Right moves to the next slot in the row
func (c *CursorState) Right() {
	c.slot = min(c.slot+1, models.SlotsPerRow-1)
}

// Up moves to the previous row, continuing into the last row of the
// previous section
func (c *CursorState) Up(l *grid.Layout) {
	c.Clamp(l)
	if c.row > 0 {
		c.row--
		return
	}
	if c.section > 0 {
		c.section--
		c.row = len(l.Sections()[c.section].Rows) - 1
	}
}

// Down moves to the next row, continuing into the first row of the next
// section
func (c *CursorState) Down(l *grid.Layout) {
	c.Clamp(l)
	sections := l.Sections()
	if len(sections) == 0 {
		return
	}
	if c.row < len(sections[c.section].Rows)-1 {
		c.row++
		return
	}
	if c.section < len(sections)-1 {
		c.section++
		c.row = 0
	}
}

// FocusSection moves the cursor to the first slot of the section with id
func (c *CursorState) FocusSection(l *grid.Layout, id string) {
	for i, s := range l.Sections() {
		if s.ID == id {
			c.section, c.row, c.slot = i, 0, 0
			return
		}
	}
}

// FocusRef moves the cursor onto ref
func (c *CursorState) FocusRef(l *grid.Layout, ref grid.SlotRef) {
	for i, s := range l.Sections() {
		if s.ID == ref.SectionID {
			c.section, c.row, c.slot = i, ref.Row, ref.Slot
			c.Clamp(l)
			return
		}
	}
}

// Hold picks up the column at ref for a move
func (c *CursorState) Hold(ref grid.SlotRef) {
	r := ref
	c.held = &r
}

// Held returns the slot whose column is picked up
func (c *CursorState) Held() (grid.SlotRef, bool) {
	if c.held == nil {
		return grid.SlotRef{}, false
	}
	return *c.held, true
}

// Release drops the picked-up column without moving it
func (c *CursorState) Release() {
	c.held = nil
}
