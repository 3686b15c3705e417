package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/pagelayout/internal/config"
	"github.com/thenoetrevino/pagelayout/internal/grid"
	"github.com/thenoetrevino/pagelayout/internal/models"
	layoutservice "github.com/thenoetrevino/pagelayout/internal/services/layout"
	"github.com/thenoetrevino/pagelayout/internal/tui/state"
)

// ============================================================================
// FAKE EDITOR
// ============================================================================

type fakeEditor struct {
	session    *layoutservice.Session
	openErr    error
	publishErr error
	outcome    layoutservice.Outcome

	stashes   int
	published int
	discarded int
}

func (f *fakeEditor) Open(_ context.Context, _ string) (*layoutservice.Session, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return f.session, nil
}

func (f *fakeEditor) Stash(_ context.Context, s *layoutservice.Session) error {
	f.stashes++
	s.FromDraft = true
	s.DraftAt = time.Now()
	return nil
}

func (f *fakeEditor) Publish(_ context.Context, s *layoutservice.Session) (layoutservice.SaveReport, error) {
	f.published++
	if f.publishErr != nil {
		return layoutservice.SaveReport{}, f.publishErr
	}
	report := layoutservice.SaveReport{BoardID: s.BoardID, Outcome: layoutservice.OutcomeSuccess}
	for _, sec := range s.Layout.Sections() {
		if !sec.IsPersisted() {
			s.Layout.AssignRecordID(sec.ID, "rec-"+sec.ID)
			report.Created++
		}
	}
	if f.outcome != "" {
		report.Outcome = f.outcome
	}
	s.FromDraft = report.Outcome != layoutservice.OutcomeSuccess
	return report, nil
}

func (f *fakeEditor) Discard(_ context.Context, _ string) (*layoutservice.Session, error) {
	f.discarded++
	return f.session, nil
}

var errBoom = errors.New("boom")

// ============================================================================
// SETUP
// ============================================================================

func boardColumns() []models.Column {
	return []models.Column{
		{ID: "name", Title: "Name", Type: "name"},
		{ID: "status", Title: "Status", Type: "status"},
		{ID: "owner", Title: "Owner", Type: "people"},
		{ID: "due", Title: "Due", Type: "date"},
	}
}

func newSession() *layoutservice.Session {
	n := 0
	l := grid.New(grid.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("s%d", n)
	}))
	l.AddSection("General")
	return &layoutservice.Session{
		BoardID: "100",
		Board:   models.Board{ID: "100", Name: "Deals", Columns: boardColumns()},
		Layout:  l,
	}
}

func testConfig() *config.Config {
	return &config.Config{KeyMappings: config.DefaultKeyMappings()}
}

// setupModel returns a loaded model sized to a normal terminal
func setupModel(t *testing.T, fe *fakeEditor) Model {
	t.Helper()
	if fe.session == nil && fe.openErr == nil {
		fe.session = newSession()
	}
	m := InitialModel(context.Background(), fe, testConfig(), "100")
	m = update(t, m, m.Init()())
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

// ============================================================================
// DRIVERS
// ============================================================================

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

// keyMsg builds a key press from its string form
func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	case "ctrl+s":
		return tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	case "ctrl+r":
		return tea.KeyPressMsg(tea.Key{Code: 'r', Mod: tea.ModCtrl})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Code: r, Text: k})
}

// press sends one key and returns the command it produced
func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(k))
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

// pressAll sends keys and settles every stash they start. Commands of an
// open prompt only blink its cursor and are dropped.
func pressAll(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = press(t, m, k)
		switch m.UiState.Mode() {
		case state.InputMode, state.PaletteFilterMode:
			continue
		}
		m = settle(t, m, cmd)
	}
	return m
}

// settle runs cmd and feeds stash results back until none are pending
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		switch msg.(type) {
		case stashedMsg, savedMsg, sessionLoadedMsg:
		default:
			return m
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m
}
