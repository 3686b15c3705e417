package layout

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/thenoetrevino/pagelayout/internal/codec"
	"github.com/thenoetrevino/pagelayout/internal/grid"
	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/monday"
)

// RemoteStore is the slice of the platform client the controller needs
type RemoteStore interface {
	GetBoardColumns(ctx context.Context, boardID string) monday.Result[models.Board]
	ListItems(ctx context.Context, boardID string) monday.Result[[]models.Item]
	CreateItem(ctx context.Context, boardID, name string, values map[string]any) monday.Result[models.Item]
	UpdateItem(ctx context.Context, boardID, itemID string, values map[string]any) monday.Result[string]
	DeleteItems(ctx context.Context, itemIDs []string) monday.Result[[]string]
}

// Service defines layout load and save against the metadata board
type Service interface {
	// Load rebuilds the saved layout of a target board
	Load(ctx context.Context, boardID string) (*Loaded, error)
	// Board returns a target board's current columns
	Board(ctx context.Context, boardID string) (models.Board, error)
	// Save persists every section of l and flushes its deletion queue.
	// Created record ids are patched into l.
	Save(ctx context.Context, boardID string, l *grid.Layout) (SaveReport, error)
}

// metadataColumns holds the metadata board's column ids, resolved by title
type metadataColumns struct {
	BoardID      string
	SectionOrder string
	Fields       string
	Rules        string
	// Sections is the legacy single-blob column
	Sections string
}

// service implements Service against a RemoteStore
type service struct {
	remote          RemoteStore
	metadataBoardID string

	mu      sync.Mutex
	columns *metadataColumns
}

// NewService creates a new layout service
func NewService(remote RemoteStore, metadataBoardID string) Service {
	return &service{
		remote:          remote,
		metadataBoardID: strings.TrimSpace(metadataBoardID),
	}
}

// ============================================================================
// METADATA COLUMNS
// ============================================================================

// resolveColumns maps metadata column titles to ids. A successful result is
// cached for the life of the service.
func (s *service) resolveColumns(ctx context.Context) (*metadataColumns, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.columns != nil {
		return s.columns, nil
	}
	if s.metadataBoardID == "" {
		return nil, ErrNoMetadataBoard
	}

	res := s.remote.GetBoardColumns(ctx, s.metadataBoardID)
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("failed to read metadata board columns: %w", err)
	}

	byTitle := make(map[string]string, len(res.Data.Columns))
	for _, c := range res.Data.Columns {
		if _, seen := byTitle[c.Title]; !seen {
			byTitle[c.Title] = c.ID
		}
	}
	cols := &metadataColumns{
		BoardID:      byTitle[models.MetadataColumnBoardID],
		SectionOrder: byTitle[models.MetadataColumnSectionOrder],
		Fields:       byTitle[models.MetadataColumnFields],
		Rules:        byTitle[models.MetadataColumnRules],
		Sections:     byTitle[models.MetadataColumnSections],
	}

	var missing []string
	if cols.BoardID == "" {
		missing = append(missing, models.MetadataColumnBoardID)
	}
	if cols.SectionOrder == "" {
		missing = append(missing, models.MetadataColumnSectionOrder)
	}
	if cols.Fields == "" && cols.Sections == "" {
		missing = append(missing, models.MetadataColumnFields)
	}
	if len(missing) > 0 {
		slog.Error("metadata board setup incomplete", "board", s.metadataBoardID, "missing", missing)
		return nil, fmt.Errorf("%w: %s", ErrMetadataSetup, strings.Join(missing, ", "))
	}

	slog.Debug("resolved metadata columns",
		"board_id", cols.BoardID, "order", cols.SectionOrder, "fields", cols.Fields,
		"rules", cols.Rules, "sections", cols.Sections)
	s.columns = cols
	return cols, nil
}

// ============================================================================
// LOAD
// ============================================================================

// record is one decoded metadata item
type record struct {
	itemID   string
	title    string
	order    int
	hasOrder bool
	position int
	fields   []models.Field
	rules    models.RuleGroup
}

// Board returns a target board's current columns
func (s *service) Board(ctx context.Context, boardID string) (models.Board, error) {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return models.Board{}, models.ErrMissingBoard
	}
	res := s.remote.GetBoardColumns(ctx, boardID)
	if err := res.Err(); err != nil {
		return models.Board{}, fmt.Errorf("failed to get columns for board %s: %w", boardID, err)
	}
	return res.Data, nil
}

// Load rebuilds the saved layout of a target board
func (s *service) Load(ctx context.Context, boardID string) (*Loaded, error) {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return nil, models.ErrMissingBoard
	}

	cols, err := s.resolveColumns(ctx)
	if err != nil {
		return nil, err
	}

	board, err := s.Board(ctx, boardID)
	if err != nil {
		return nil, err
	}

	// Stored board ids drift ("123.0", "\"123\""), so every record is
	// fetched and matched here rather than filtered by the platform
	items := s.remote.ListItems(ctx, s.metadataBoardID)
	if err := items.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch layout records: %w", err)
	}

	var report LoadReport
	records := make([]record, 0, len(items.Data))
	for i, item := range items.Data {
		stored, _ := item.ValueByColumnID(cols.BoardID)
		if !codec.BoardIDMatches(storedBoardID(stored), boardID) {
			continue
		}
		rec, ok := decodeRecord(item, cols)
		if !ok {
			slog.Warn("skipping unreadable layout record", "record", item.ID, "board", boardID)
			report.Skipped = append(report.Skipped, item.ID)
			continue
		}
		rec.position = i
		records = append(records, rec)
	}

	// Records without a readable order sort after ordered ones, in fetch order
	slices.SortStableFunc(records, func(a, b record) int {
		switch {
		case a.hasOrder && !b.hasOrder:
			return -1
		case !a.hasOrder && b.hasOrder:
			return 1
		case a.order != b.order:
			return a.order - b.order
		default:
			return a.position - b.position
		}
	})

	columnsByID := make(map[string]models.Column, len(board.Columns))
	for _, c := range board.Columns {
		columnsByID[c.ID] = c
	}

	l := grid.New()
	for _, rec := range records {
		missing, dup := l.LoadSection(rec.itemID, rec.title, rec.fields, columnsByID)
		if len(missing) > 0 {
			slog.Warn("layout record references missing columns", "record", rec.itemID, "columns", missing)
		}
		report.MissingColumns = append(report.MissingColumns, missing...)
		report.DuplicateColumns = append(report.DuplicateColumns, dup...)
		if !rec.rules.IsEmpty() {
			if err := l.SetRules(rec.itemID, rec.rules); err != nil {
				slog.Warn("dropping invalid visibility rules", "record", rec.itemID, "error", err)
			}
		}
	}

	if len(l.Sections()) == 0 {
		l = grid.NewDefault()
		report.Synthesized = true
	}
	report.Sections = len(l.Sections())

	slog.Info("layout loaded", "board", boardID, "sections", report.Sections,
		"skipped", len(report.Skipped), "missing", len(report.MissingColumns))
	return &Loaded{Board: board, Layout: l, Report: report}, nil
}

// storedBoardID prefers the display text and falls back to the raw value
func storedBoardID(cv models.ColumnValue) string {
	if strings.TrimSpace(cv.Text) != "" {
		return cv.Text
	}
	return cv.Value
}

// decodeRecord reads the current fields/rules format first and falls back to
// the legacy single-blob section
func decodeRecord(item models.Item, cols *metadataColumns) (record, bool) {
	rec := record{itemID: item.ID, title: strings.TrimSpace(item.Name)}

	if cv, ok := item.ValueByColumnID(cols.SectionOrder); ok {
		rec.order, rec.hasOrder = codec.ParseOrder(cv.Text)
		if !rec.hasOrder {
			rec.order, rec.hasOrder = codec.ParseOrder(cv.Value)
		}
	}

	decoded := false
	if cols.Fields != "" {
		if cv, ok := item.ValueByColumnID(cols.Fields); ok {
			if fields, strategy, ok := codec.DecodeFields(cv); ok {
				slog.Debug("decoded layout fields", "record", item.ID, "strategy", strategy)
				rec.fields = fields
				decoded = true
			}
		}
	}

	if !decoded && cols.Sections != "" {
		if cv, ok := item.ValueByColumnID(cols.Sections); ok {
			if legacy, strategy, ok := codec.DecodeLegacySection(cv); ok {
				slog.Debug("decoded legacy section", "record", item.ID, "strategy", strategy)
				rec.fields = legacy.Fields
				if strings.TrimSpace(legacy.Title) != "" {
					rec.title = strings.TrimSpace(legacy.Title)
				}
				if !rec.hasOrder && legacy.Order > 0 {
					rec.order, rec.hasOrder = legacy.Order, true
				}
				decoded = true
			}
		}
	}
	if !decoded {
		return record{}, false
	}

	if cols.Rules != "" {
		if cv, ok := item.ValueByColumnID(cols.Rules); ok {
			if group, _, ok := codec.DecodeRules(cv); ok {
				rec.rules = group
			}
		}
	}

	if rec.title == "" {
		rec.title = models.DefaultSectionTitle
	}
	return rec, true
}

// ============================================================================
// SAVE
// ============================================================================

// Save persists every section of l. Deletions go first as one call, then
// each section is created or updated in order. A failing section is counted
// and the rest still run.
func (s *service) Save(ctx context.Context, boardID string, l *grid.Layout) (SaveReport, error) {
	boardID = strings.TrimSpace(boardID)
	report := SaveReport{BoardID: boardID, Results: []SectionResult{}}
	if boardID == "" {
		return report, models.ErrMissingBoard
	}
	if l == nil {
		return report, fmt.Errorf("nothing to save for board %s", boardID)
	}

	cols, err := s.resolveColumns(ctx)
	if err != nil {
		return report, err
	}
	if cols.Fields == "" {
		return report, fmt.Errorf("%w: %s", ErrMetadataSetup, models.MetadataColumnFields)
	}

	if pending := l.PendingDeletions(); len(pending) > 0 {
		res := s.remote.DeleteItems(ctx, pending)
		if res.Success {
			l.ClearDeletions(pending)
			report.Deleted = len(pending)
		} else {
			slog.Error("failed to delete removed sections", "board", boardID, "records", pending, "error", res.Error)
			report.DeleteFailed = len(pending)
		}
	}

	for i, section := range l.Sections() {
		result := s.saveSection(ctx, boardID, l, section, i+1, cols)
		switch {
		case result.Error != "":
			report.Failed++
		case result.Action == "create":
			report.Created++
		default:
			report.Updated++
		}
		report.Results = append(report.Results, result)
	}

	report.settle()
	slog.Info("layout saved", "board", boardID, "outcome", report.Outcome,
		"created", report.Created, "updated", report.Updated, "failed", report.Failed,
		"deleted", report.Deleted, "delete_failed", report.DeleteFailed)
	return report, nil
}

func (s *service) saveSection(ctx context.Context, boardID string, l *grid.Layout, section *models.Section, order int, cols *metadataColumns) SectionResult {
	result := SectionResult{SectionID: section.ID, Title: section.Title, Action: "update"}
	if !section.IsPersisted() {
		result.Action = "create"
	}

	values, err := sectionValues(boardID, l, section, order, cols)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	if section.IsPersisted() {
		result.RecordID = *section.RecordID
		values[models.ItemNameColumnID] = section.Title
		res := s.remote.UpdateItem(ctx, s.metadataBoardID, *section.RecordID, values)
		if !res.Success {
			slog.Error("failed to update section", "section", section.ID, "title", section.Title, "error", res.Error)
			result.Error = res.Error
		}
		return result
	}

	res := s.remote.CreateItem(ctx, s.metadataBoardID, section.Title, values)
	if !res.Success {
		slog.Error("failed to create section", "section", section.ID, "title", section.Title, "error", res.Error)
		result.Error = res.Error
		return result
	}
	l.AssignRecordID(section.ID, res.Data.ID)
	result.SectionID = res.Data.ID
	result.RecordID = res.Data.ID
	return result
}

// sectionValues builds the column values of a section's metadata record
func sectionValues(boardID string, l *grid.Layout, section *models.Section, order int, cols *metadataColumns) (map[string]any, error) {
	fields, err := codec.EncodeFields(l.Fields(section.ID))
	if err != nil {
		return nil, err
	}
	values := map[string]any{
		cols.BoardID:      boardID,
		cols.SectionOrder: strconv.Itoa(order),
		cols.Fields:       codec.LongText(fields),
	}
	if cols.Rules != "" {
		group, _ := l.Rules(section.ID)
		rules, err := codec.EncodeRules(group)
		if err != nil {
			return nil, err
		}
		values[cols.Rules] = codec.LongText(rules)
	}
	return values, nil
}
