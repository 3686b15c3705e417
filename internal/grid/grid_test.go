package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/pagelayout/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func sequentialIDs() Option {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("s%d", n)
	})
}

func col(id string) models.Column {
	return models.Column{ID: id, Title: "Column " + id, Type: "text"}
}

// rowIDs renders rows as column ids with "" for empty slots
func rowIDs(s *models.Section) [][2]string {
	out := make([][2]string, len(s.Rows))
	for r, row := range s.Rows {
		for i, c := range row {
			if c != nil {
				out[r][i] = c.ID
			}
		}
	}
	return out
}

func ref(section string, row, slot int) SlotRef {
	return SlotRef{SectionID: section, Row: row, Slot: slot}
}

// ============================================================================
// PLACE
// ============================================================================

func TestPlace_AutoExpansion(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("Details")

	require.True(t, l.Place(col("A"), ref(s.ID, 0, 0)))
	require.True(t, l.Place(col("B"), ref(s.ID, 0, 1)))
	require.True(t, l.Place(col("C"), ref(s.ID, 1, 0)))

	assert.Equal(t, [][2]string{{"A", "B"}, {"C", ""}, {"", ""}}, rowIDs(s))
	assert.Equal(t, 3, l.PlacedCount())
}

func TestPlace_RejectsDuplicateColumn(t *testing.T) {
	l := New(sequentialIDs())
	s1 := l.AddSection("One")
	s2 := l.AddSection("Two")

	require.True(t, l.Place(col("A"), ref(s1.ID, 0, 0)))
	assert.False(t, l.Place(col("A"), ref(s1.ID, 0, 1)), "same section")
	assert.False(t, l.Place(col("A"), ref(s2.ID, 0, 0)), "other section")
	assert.Equal(t, [][2]string{{"", ""}}, rowIDs(s2))
}

func TestPlace_RejectsOccupiedOrInvalidSlot(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("One")
	require.True(t, l.Place(col("A"), ref(s.ID, 0, 0)))

	assert.False(t, l.Place(col("B"), ref(s.ID, 0, 0)))
	assert.False(t, l.Place(col("B"), ref(s.ID, 5, 0)))
	assert.False(t, l.Place(col("B"), ref(s.ID, 0, 2)))
	assert.False(t, l.Place(col("B"), ref("missing", 0, 0)))
	assert.False(t, l.IsPlaced("B"))
}

// ============================================================================
// REMOVE
// ============================================================================

func TestRemove_PrunesTrailingEmptyRows(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("Details")
	l.Place(col("A"), ref(s.ID, 0, 0))
	l.Place(col("B"), ref(s.ID, 0, 1))
	l.Place(col("C"), ref(s.ID, 1, 0))
	l.SetRequired("C", true)

	removed, ok := l.Remove(ref(s.ID, 1, 0))
	require.True(t, ok)
	assert.Equal(t, "C", removed.ID)

	assert.Equal(t, [][2]string{{"A", "B"}, {"", ""}}, rowIDs(s))
	assert.False(t, l.IsPlaced("C"))
	assert.False(t, l.IsRequired("C"))
}

func TestRemove_KeepsAtLeastOneRow(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("Details")
	l.Place(col("A"), ref(s.ID, 0, 0))

	_, ok := l.Remove(ref(s.ID, 0, 0))
	require.True(t, ok)
	assert.Len(t, s.Rows, 1)

	_, ok = l.Remove(ref(s.ID, 0, 0))
	assert.False(t, ok, "removing an empty slot is a no-op")
}

func TestRemove_NeverLeavesTwoTrailingEmptyRows(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("Details")
	ids := []string{"A", "B", "C", "D", "E", "F"}
	for i, id := range ids {
		require.True(t, l.Place(col(id), ref(s.ID, i/2, i%2)))
	}
	require.Len(t, s.Rows, 4)

	for i := len(ids) - 1; i >= 0; i-- {
		_, ok := l.Remove(ref(s.ID, i/2, i%2))
		require.True(t, ok)

		require.GreaterOrEqual(t, len(s.Rows), 1)
		n := len(s.Rows)
		if n >= 2 {
			assert.False(t, s.Rows[n-1].IsEmpty() && s.Rows[n-2].IsEmpty(),
				"two trailing empty rows after removing %s: %v", ids[i], rowIDs(s))
		}
	}
	assert.Len(t, s.Rows, 1)
}

// ============================================================================
// MOVE
// ============================================================================

func TestMove_SwapsWithOccupant(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("Details")
	l.Place(col("A"), ref(s.ID, 0, 0))
	l.Place(col("B"), ref(s.ID, 0, 1))

	require.True(t, l.Move(ref(s.ID, 0, 0), ref(s.ID, 0, 1)))
	assert.Equal(t, [][2]string{{"B", "A"}, {"", ""}}, rowIDs(s))
	assert.Equal(t, 2, l.PlacedCount())
}

func TestMove_IntoEmptySlotAcrossSections(t *testing.T) {
	l := New(sequentialIDs())
	s1 := l.AddSection("One")
	s2 := l.AddSection("Two")
	l.Place(col("A"), ref(s1.ID, 0, 0))
	l.Place(col("B"), ref(s1.ID, 0, 1))
	l.Place(col("C"), ref(s2.ID, 0, 0))

	require.True(t, l.Move(ref(s1.ID, 0, 1), ref(s2.ID, 0, 1)))

	assert.Equal(t, [][2]string{{"A", ""}, {"", ""}}, rowIDs(s1), "one trailing empty row is kept")
	assert.Equal(t, [][2]string{{"C", "B"}, {"", ""}}, rowIDs(s2), "destination expands")
	assert.True(t, l.IsPlaced("B"))
}

func TestMove_RejectsEmptySource(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("One")
	assert.False(t, l.Move(ref(s.ID, 0, 0), ref(s.ID, 0, 1)))
}

// ============================================================================
// SECTIONS
// ============================================================================

func TestAddSection_SequentialOrder(t *testing.T) {
	l := NewDefault(sequentialIDs())
	s2 := l.AddSection("Second")

	sections := l.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, models.DefaultSectionTitle, sections[0].Title)
	assert.Equal(t, 1, sections[0].Order)
	assert.Equal(t, 2, s2.Order)
	assert.Len(t, s2.Rows, 1)
}

func TestRemoveSection_FreesColumnsAndQueuesDeletion(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("One")
	l.Place(col("A"), ref(s.ID, 0, 0))
	l.SetRequired("A", true)
	require.True(t, l.AssignRecordID(s.ID, "9001"))

	require.True(t, l.RemoveSection("9001"))
	assert.False(t, l.IsPlaced("A"))
	assert.False(t, l.IsRequired("A"))
	assert.Equal(t, []string{"9001"}, l.PendingDeletions())

	l.ClearDeletions([]string{"9001"})
	assert.Empty(t, l.PendingDeletions())
}

func TestRemoveSection_UnsavedIsNotQueued(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("One")
	require.True(t, l.RemoveSection(s.ID))
	assert.Empty(t, l.PendingDeletions())
	assert.False(t, l.RemoveSection(s.ID))
}

func TestRenameSection(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("One")

	assert.ErrorIs(t, l.RenameSection(s.ID, "  "), models.ErrEmptySectionTitle)
	assert.ErrorIs(t, l.RenameSection("nope", "x"), models.ErrSectionNotFound)
	require.NoError(t, l.RenameSection(s.ID, "Contact"))
	assert.Equal(t, "Contact", s.Title)
}

func TestMoveSection_Renumbers(t *testing.T) {
	l := New(sequentialIDs())
	a := l.AddSection("A")
	l.AddSection("B")
	c := l.AddSection("C")

	require.True(t, l.MoveSection(c.ID, -2))
	sections := l.Sections()
	assert.Equal(t, "C", sections[0].Title)
	assert.Equal(t, 1, sections[0].Order)
	assert.Equal(t, 2, a.Order)
	assert.False(t, l.MoveSection(c.ID, -1), "already first")
}

func TestAssignRecordID_RekeysRules(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("One")
	require.NoError(t, l.SetRules(s.ID, models.RuleGroup{
		Rules: []models.Rule{{Field: models.RuleFieldRole, Operator: models.OperatorEquals, Value: "admin"}},
	}))

	require.True(t, l.AssignRecordID("s1", "42"))
	assert.Equal(t, "42", s.ID)
	require.NotNil(t, s.RecordID)
	assert.Equal(t, "42", *s.RecordID)
	_, ok := l.Rules("42")
	assert.True(t, ok)
	_, ok = l.Rules("s1")
	assert.False(t, ok)
}

// ============================================================================
// FIELDS / REQUIRED
// ============================================================================

func TestFields_RowMajorWithRules(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("One")
	l.Place(models.Column{ID: "p", Type: "people"}, ref(s.ID, 0, 1))
	l.Place(col("t"), ref(s.ID, 0, 0))
	l.ToggleRequired("t")

	fields := l.Fields(s.ID)
	require.Len(t, fields, 2)
	assert.Equal(t, "t", fields[0].ColumnID)
	assert.True(t, fields[0].IsRequired)
	assert.Equal(t, "p", fields[1].ColumnID)
	require.NotNil(t, fields[1].Rules)
	assert.Equal(t, models.DefaultMaxValues, fields[1].Rules.MaxValues)
}

func TestToggleRequired(t *testing.T) {
	l := New()
	assert.True(t, l.ToggleRequired("x"))
	assert.True(t, l.IsRequired("x"))
	assert.False(t, l.ToggleRequired("x"))
	assert.Empty(t, l.RequiredColumns())
}

func TestAvailableColumns(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("One")
	l.Place(col("A"), ref(s.ID, 0, 0))

	got := l.AvailableColumns([]models.Column{col("A"), col("B")})
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].ID)
}

// ============================================================================
// SNAPSHOT / LOAD
// ============================================================================

func TestSnapshot_RoundTrip(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("One")
	l.Place(col("A"), ref(s.ID, 0, 0))
	l.Place(col("B"), ref(s.ID, 0, 1))
	l.SetRequired("B", true)
	saved := l.AddSection("Saved")
	l.AssignRecordID(saved.ID, "77")
	l.RemoveSection("77")

	data, err := l.MarshalSnapshot()
	require.NoError(t, err)

	restored, err := UnmarshalSnapshot(data, sequentialIDs())
	require.NoError(t, err)

	rs, ok := restored.Section(s.ID)
	require.True(t, ok)
	assert.Equal(t, rowIDs(s), rowIDs(rs))
	assert.True(t, restored.IsPlaced("A"))
	assert.True(t, restored.IsRequired("B"))
	assert.Equal(t, []string{"77"}, restored.PendingDeletions())
}

func TestRestore_DropsDuplicatePlacements(t *testing.T) {
	a := col("A")
	snap := Snapshot{Sections: []models.Section{
		{ID: "x", Title: "X", Order: 1, Rows: []models.Row{{&a, nil}}},
		{ID: "y", Title: "Y", Order: 2, Rows: []models.Row{{&a, nil}}},
	}}

	l := Restore(snap)
	y, _ := l.Section("y")
	assert.Nil(t, y.Rows[0][0])
	assert.Equal(t, 1, l.PlacedCount())
}

func TestLoadSection_PairsFieldsAndReportsProblems(t *testing.T) {
	l := New(sequentialIDs())
	columns := map[string]models.Column{"a": col("a"), "b": col("b"), "c": col("c")}

	missing, dup := l.LoadSection("100", "First", []models.Field{
		{ColumnID: "a", IsRequired: true}, {ColumnID: "b"}, {ColumnID: "c"},
	}, columns)
	assert.Empty(t, missing)
	assert.Empty(t, dup)

	missing, dup = l.LoadSection("200", "Second", []models.Field{
		{ColumnID: "gone"}, {ColumnID: "a"},
	}, columns)
	assert.Equal(t, []string{"gone"}, missing)
	assert.Equal(t, []string{"a"}, dup)

	first, _ := l.Section("100")
	assert.Equal(t, [][2]string{{"a", "b"}, {"c", ""}, {"", ""}}, rowIDs(first))
	assert.True(t, l.IsRequired("a"))
	assert.True(t, first.IsPersisted())

	second, _ := l.Section("200")
	assert.Equal(t, 2, second.Order)
	assert.Len(t, second.Rows, 1)
}

func TestLoadSection_CompactsAroundDroppedFields(t *testing.T) {
	l := New(sequentialIDs())
	columns := map[string]models.Column{"a": col("a"), "b": col("b")}

	missing, _ := l.LoadSection("100", "First", []models.Field{
		{ColumnID: "gone"}, {ColumnID: "a"}, {ColumnID: "lost"}, {ColumnID: "b"},
	}, columns)
	assert.Equal(t, []string{"gone", "lost"}, missing)

	s, _ := l.Section("100")
	assert.Equal(t, [][2]string{{"a", "b"}, {"", ""}}, rowIDs(s))
}

func TestFirstEmptySlot(t *testing.T) {
	l := New(sequentialIDs())
	s := l.AddSection("General")
	assert.Equal(t, ref("s1", 0, 0), FirstEmptySlot(s))

	require.True(t, l.Place(col("a"), ref("s1", 0, 0)))
	assert.Equal(t, ref("s1", 0, 1), FirstEmptySlot(s))

	require.True(t, l.Place(col("b"), ref("s1", 0, 1)))
	assert.Equal(t, ref("s1", 1, 0), FirstEmptySlot(s))

	_, ok := l.Remove(ref("s1", 0, 0))
	require.True(t, ok)
	assert.Equal(t, ref("s1", 0, 0), FirstEmptySlot(s))
}
