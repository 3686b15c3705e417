package state

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// InputPurpose names what a submitted prompt does
type InputPurpose int

const (
	PurposeNone InputPurpose = iota
	PurposeAddSection
	PurposeRenameSection
	PurposeRules
)

// InputState manages the single-line prompt used for section titles and
// visibility rules
type InputState struct {
	Input     textinput.Model
	purpose   InputPurpose
	sectionID string
	title     string
}

// NewInputState creates an idle prompt
func NewInputState() *InputState {
	in := textinput.New()
	in.CharLimit = 256
	return &InputState{Input: in}
}

// Start opens the prompt for purpose, prefilled with value
func (s *InputState) Start(purpose InputPurpose, title, placeholder, value, sectionID string) tea.Cmd {
	s.purpose = purpose
	s.title = title
	s.sectionID = sectionID
	s.Input.Placeholder = placeholder
	s.Input.Prompt = "> "
	s.Input.SetValue(value)
	s.Input.CursorEnd()
	return s.Input.Focus()
}

// Purpose returns what the open prompt is for
func (s *InputState) Purpose() InputPurpose { return s.purpose }

// SectionID returns the section the prompt edits
func (s *InputState) SectionID() string { return s.sectionID }

// Title returns the prompt heading
func (s *InputState) Title() string { return s.title }

// Value returns the typed text
func (s *InputState) Value() string { return s.Input.Value() }

// Update forwards a message to the text input
func (s *InputState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return cmd
}

// Reset closes the prompt
func (s *InputState) Reset() {
	s.purpose = PurposeNone
	s.sectionID = ""
	s.title = ""
	s.Input.SetValue("")
	s.Input.Blur()
}
