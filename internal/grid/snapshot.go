package grid

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/thenoetrevino/pagelayout/internal/models"
)

// Snapshot is the serializable form of a layout, used for local drafts
type Snapshot struct {
	Sections  []models.Section            `json:"sections"`
	Required  []string                    `json:"required"`
	Rules     map[string]models.RuleGroup `json:"rules,omitempty"`
	Deletions []string                    `json:"deletions,omitempty"`
}

// Snapshot captures the layout's current state
func (l *Layout) Snapshot() Snapshot {
	snap := Snapshot{
		Sections:  make([]models.Section, 0, len(l.sections)),
		Required:  l.RequiredColumns(),
		Rules:     make(map[string]models.RuleGroup, len(l.rules)),
		Deletions: slices.Clone(l.deletions),
	}
	for _, s := range l.sections {
		snap.Sections = append(snap.Sections, *cloneSection(s))
	}
	for id, g := range l.rules {
		snap.Rules[id] = g
	}
	return snap
}

// Restore rebuilds a layout from a snapshot. A column appearing in more than
// one slot keeps only its first slot.
func Restore(snap Snapshot, opts ...Option) *Layout {
	l := New(opts...)
	for _, s := range snap.Sections {
		sec := cloneSection(&s)
		for r := range sec.Rows {
			for i, c := range sec.Rows[r] {
				if c == nil {
					continue
				}
				if l.IsPlaced(c.ID) {
					sec.Rows[r][i] = nil
					continue
				}
				l.placed[c.ID] = struct{}{}
			}
		}
		if len(sec.Rows) == 0 {
			sec.Rows = []models.Row{{}}
		}
		l.sections = append(l.sections, sec)
	}
	for _, id := range snap.Required {
		l.required[id] = struct{}{}
	}
	for id, g := range snap.Rules {
		if _, ok := l.Section(id); ok {
			l.rules[id] = g.Compact()
		}
	}
	l.deletions = slices.Clone(snap.Deletions)
	return l
}

// Clone returns a deep copy of the layout
func (l *Layout) Clone() *Layout {
	c := Restore(l.Snapshot())
	c.newID = l.newID
	return c
}

// MarshalSnapshot encodes the layout for the draft store
func (l *Layout) MarshalSnapshot() ([]byte, error) {
	data, err := json.Marshal(l.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to encode layout snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot decodes a layout written by MarshalSnapshot
func UnmarshalSnapshot(data []byte, opts ...Option) (*Layout, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode layout snapshot: %w", err)
	}
	return Restore(snap, opts...), nil
}

// LoadSection appends a persisted section, pairing its fields into rows in
// order. Fields whose column is not on the board, or is already placed by an
// earlier section, are dropped and reported back; the rest close ranks.
func (l *Layout) LoadSection(recordID, title string, fields []models.Field, columns map[string]models.Column) (missing, duplicate []string) {
	s := &models.Section{
		ID:    recordID,
		Title: title,
		Order: len(l.sections) + 1,
		Rows:  []models.Row{{}},
	}
	if recordID != "" {
		rid := recordID
		s.RecordID = &rid
	} else {
		s.ID = l.newID()
	}

	n := 0
	for _, f := range fields {
		col, ok := columns[f.ColumnID]
		switch {
		case !ok:
			missing = append(missing, f.ColumnID)
			continue
		case l.IsPlaced(f.ColumnID):
			duplicate = append(duplicate, f.ColumnID)
			continue
		}
		row := n / models.SlotsPerRow
		if row == len(s.Rows) {
			s.Rows = append(s.Rows, models.Row{})
		}
		c := col
		s.Rows[row][n%models.SlotsPerRow] = &c
		l.placed[col.ID] = struct{}{}
		if f.IsRequired {
			l.required[col.ID] = struct{}{}
		}
		n++
	}

	expand(s, len(s.Rows)-1)
	l.sections = append(l.sections, s)
	return missing, duplicate
}

func cloneSection(s *models.Section) *models.Section {
	out := &models.Section{
		ID:    s.ID,
		Title: s.Title,
		Order: s.Order,
		Rows:  make([]models.Row, len(s.Rows)),
	}
	if s.RecordID != nil {
		rid := *s.RecordID
		out.RecordID = &rid
	}
	for r, row := range s.Rows {
		for i, c := range row {
			if c != nil {
				cc := *c
				out.Rows[r][i] = &cc
			}
		}
	}
	return out
}
