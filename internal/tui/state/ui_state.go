// Package state holds the editor's UI state, kept apart from the layout
// being edited
package state

// Mode represents the current interaction mode of the editor.
// Each mode determines which keys are active and what is drawn over the grid.
type Mode int

const (
	GridMode          Mode = iota // Moving the cursor over the grid
	PaletteMode                   // Picking a column from the palette
	PaletteFilterMode             // Typing into the palette filter
	InputMode                     // Section title or rules prompt
	ConfirmMode                   // Yes/no question
	HelpMode                      // Key binding overlay
)

// ConfirmAction names what a yes answer in ConfirmMode does
type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmDeleteSection
	ConfirmDiscard
)

// Confirmation is a pending yes/no question
type Confirmation struct {
	Action    ConfirmAction
	SectionID string
	Message   string
}

// UIState manages terminal dimensions, the interaction mode and transient
// flags of the editor
type UIState struct {
	width  int
	height int
	mode   Mode

	confirm Confirmation

	// saving is set while a publish is in flight
	saving bool
}

// NewUIState creates a new UIState in grid mode
func NewUIState() *UIState {
	return &UIState{mode: GridMode}
}

// Width returns the terminal width
func (s *UIState) Width() int { return s.width }

// Height returns the terminal height
func (s *UIState) Height() int { return s.height }

// SetSize records the terminal dimensions
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode { return s.mode }

// SetMode switches the interaction mode
func (s *UIState) SetMode(m Mode) { s.mode = m }

// Ask enters ConfirmMode with the given question
func (s *UIState) Ask(c Confirmation) {
	s.confirm = c
	s.mode = ConfirmMode
}

// Confirmation returns the pending question
func (s *UIState) Confirmation() Confirmation { return s.confirm }

// ClearConfirmation drops the pending question and returns to the grid
func (s *UIState) ClearConfirmation() {
	s.confirm = Confirmation{}
	s.mode = GridMode
}

// Saving reports whether a publish is in flight
func (s *UIState) Saving() bool { return s.saving }

// SetSaving marks a publish as started or finished
func (s *UIState) SetSaving(v bool) { s.saving = v }
