// Package grid holds the in-memory layout being edited: sections of two-slot
// rows, the set of placed columns, the required-field set, per-section
// visibility rules and the queue of remote records awaiting deletion.
//
// Mutations never partially apply: an operation that cannot be carried out
// leaves the layout untouched and reports false.
package grid

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/thenoetrevino/pagelayout/internal/models"
)

// Layout is the editable grid for one target board
type Layout struct {
	sections  []*models.Section
	placed    map[string]struct{}
	required  map[string]struct{}
	rules     map[string]models.RuleGroup
	deletions []string
	newID     func() string
}

// Option configures a Layout
type Option func(*Layout)

// WithIDGenerator overrides how new section ids are minted
func WithIDGenerator(fn func() string) Option {
	return func(l *Layout) {
		l.newID = fn
	}
}

// New creates an empty layout with no sections
func New(opts ...Option) *Layout {
	l := &Layout{
		placed:   make(map[string]struct{}),
		required: make(map[string]struct{}),
		rules:    make(map[string]models.RuleGroup),
		newID:    func() string { return "section_" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewDefault creates a layout holding the single default section used for
// boards that have never been saved
func NewDefault(opts ...Option) *Layout {
	l := New(opts...)
	l.AddSection(models.DefaultSectionTitle)
	return l
}

// ============================================================================
// SECTIONS
// ============================================================================

// Sections returns the sections in display order
func (l *Layout) Sections() []*models.Section {
	return slices.Clone(l.sections)
}

// Section looks up a section by id
func (l *Layout) Section(id string) (*models.Section, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return l.sections[i], true
}

// AddSection appends a new section with one empty row and the next order
func (l *Layout) AddSection(title string) *models.Section {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled Section"
	}
	order := 1
	for _, s := range l.sections {
		order = max(order, s.Order+1)
	}
	s := &models.Section{
		ID:    l.newID(),
		Title: title,
		Order: order,
		Rows:  []models.Row{{}},
	}
	l.sections = append(l.sections, s)
	return s
}

// RemoveSection drops a section, frees its columns and required flags, and
// queues its remote record for deletion if it had been saved
func (l *Layout) RemoveSection(id string) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	s := l.sections[i]
	for _, c := range s.Columns() {
		delete(l.placed, c.ID)
		delete(l.required, c.ID)
	}
	delete(l.rules, s.ID)
	if s.IsPersisted() && !slices.Contains(l.deletions, *s.RecordID) {
		l.deletions = append(l.deletions, *s.RecordID)
	}
	l.sections = slices.Delete(l.sections, i, i+1)
	return true
}

// RenameSection sets a section's title
func (l *Layout) RenameSection(id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.ErrEmptySectionTitle
	}
	s, ok := l.Section(id)
	if !ok {
		return models.ErrSectionNotFound
	}
	s.Title = title
	return nil
}

// MoveSection shifts a section by delta positions and renumbers orders 1..n
func (l *Layout) MoveSection(id string, delta int) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	j := i + delta
	if delta == 0 || j < 0 || j >= len(l.sections) {
		return false
	}
	s := l.sections[i]
	l.sections = slices.Delete(l.sections, i, i+1)
	l.sections = slices.Insert(l.sections, j, s)
	for k, sec := range l.sections {
		sec.Order = k + 1
	}
	return true
}

// AssignRecordID records the remote id of a freshly created section. The
// local id converges on the record id so later saves update in place.
func (l *Layout) AssignRecordID(sectionID, recordID string) bool {
	s, ok := l.Section(sectionID)
	if !ok || recordID == "" {
		return false
	}
	rid := recordID
	s.RecordID = &rid
	if s.ID != recordID {
		if g, ok := l.rules[s.ID]; ok {
			delete(l.rules, s.ID)
			l.rules[recordID] = g
		}
		s.ID = recordID
	}
	return true
}

func (l *Layout) indexOf(id string) int {
	return slices.IndexFunc(l.sections, func(s *models.Section) bool { return s.ID == id })
}

// ============================================================================
// DELETION QUEUE
// ============================================================================

// PendingDeletions returns remote record ids queued for deletion
func (l *Layout) PendingDeletions() []string {
	return slices.Clone(l.deletions)
}

// ClearDeletions removes ids from the queue once the remote delete succeeded
func (l *Layout) ClearDeletions(ids []string) {
	l.deletions = slices.DeleteFunc(l.deletions, func(id string) bool {
		return slices.Contains(ids, id)
	})
}

// ============================================================================
// REQUIRED FIELDS
// ============================================================================

// IsRequired reports whether a column is flagged required
func (l *Layout) IsRequired(columnID string) bool {
	_, ok := l.required[columnID]
	return ok
}

// SetRequired flags or unflags a column as required
func (l *Layout) SetRequired(columnID string, required bool) {
	if required {
		l.required[columnID] = struct{}{}
		return
	}
	delete(l.required, columnID)
}

// ToggleRequired flips a column's required flag and returns the new state
func (l *Layout) ToggleRequired(columnID string) bool {
	next := !l.IsRequired(columnID)
	l.SetRequired(columnID, next)
	return next
}

// RequiredColumns returns the sorted ids of required columns
func (l *Layout) RequiredColumns() []string {
	ids := make([]string, 0, len(l.required))
	for id := range l.required {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ============================================================================
// DERIVED VIEWS
// ============================================================================

// IsPlaced reports whether a column occupies any slot in the layout
func (l *Layout) IsPlaced(columnID string) bool {
	_, ok := l.placed[columnID]
	return ok
}

// PlacedCount returns how many columns are placed
func (l *Layout) PlacedCount() int {
	return len(l.placed)
}

// AvailableColumns filters all down to the columns not yet placed
func (l *Layout) AvailableColumns(all []models.Column) []models.Column {
	out := make([]models.Column, 0, len(all))
	for _, c := range all {
		if !l.IsPlaced(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// Fields flattens a section into its persisted field list, row-major
func (l *Layout) Fields(sectionID string) []models.Field {
	s, ok := l.Section(sectionID)
	if !ok {
		return nil
	}
	cols := s.Columns()
	fields := make([]models.Field, 0, len(cols))
	for _, c := range cols {
		fields = append(fields, models.NewField(c, l.IsRequired(c.ID)))
	}
	return fields
}
