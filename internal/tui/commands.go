package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	layoutservice "github.com/thenoetrevino/pagelayout/internal/services/layout"
)

// sessionLoadedMsg carries the result of opening or discarding a layout
type sessionLoadedMsg struct {
	session   *layoutservice.Session
	err       error
	discarded bool
}

// savedMsg carries the result of a publish. session holds the published
// copy with the record ids of created sections.
type savedMsg struct {
	session *layoutservice.Session
	report  layoutservice.SaveReport
	err     error
}

// stashedMsg reports that the draft of a given revision was written
type stashedMsg struct {
	revision int
	at       time.Time
	err      error
}

func (m Model) openSession() tea.Cmd {
	ctx, editor, boardID := m.ctx, m.editor, m.boardID
	return func() tea.Msg {
		s, err := editor.Open(ctx, boardID)
		return sessionLoadedMsg{session: s, err: err}
	}
}

func (m Model) discardSession() tea.Cmd {
	ctx, editor, boardID := m.ctx, m.editor, m.boardID
	return func() tea.Msg {
		s, err := editor.Discard(ctx, boardID)
		return sessionLoadedMsg{session: s, err: err, discarded: true}
	}
}

// detach copies the session so a command can work on it while the view
// keeps reading the live one
func (m Model) detach() *layoutservice.Session {
	s := *m.Session
	s.Layout = m.Session.Layout.Clone()
	return &s
}

// publish saves a copy of the session. Key handling is suspended until
// savedMsg arrives, so the copy replaces the edited layout afterwards.
func (m Model) publish() tea.Cmd {
	ctx, editor, session := m.ctx, m.editor, m.detach()
	return func() tea.Msg {
		report, err := editor.Publish(ctx, session)
		return savedMsg{session: session, report: report, err: err}
	}
}

// stash writes the current revision as the board's draft
func (m Model) stash() tea.Cmd {
	ctx, editor, session, rev := m.ctx, m.editor, m.detach(), m.revision
	return func() tea.Msg {
		err := editor.Stash(ctx, session)
		return stashedMsg{revision: rev, at: session.DraftAt, err: err}
	}
}
