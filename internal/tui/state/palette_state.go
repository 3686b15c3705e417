package state

import (
	"slices"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/pagelayout/internal/models"
	"github.com/thenoetrevino/pagelayout/internal/services/board"
)

// PaletteState manages the list of columns that can still be placed
type PaletteState struct {
	Filter   textinput.Model
	selected int
}

// NewPaletteState creates a palette with an empty filter
func NewPaletteState() *PaletteState {
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "filter by title or type"
	in.CharLimit = 64
	return &PaletteState{Filter: in}
}

// Visible returns the available columns matching the filter, sorted by title
func (p *PaletteState) Visible(available []models.Column) []models.Column {
	cols := slices.Clone(available)
	board.SortColumns(cols)
	return board.FilterColumns(cols, p.Filter.Value())
}

// Selected returns the highlighted column among visible
func (p *PaletteState) Selected(visible []models.Column) (models.Column, bool) {
	if len(visible) == 0 {
		return models.Column{}, false
	}
	return visible[min(p.selected, len(visible)-1)], true
}

// SelectedIndex returns the highlighted position, clamped to n entries
func (p *PaletteState) SelectedIndex(n int) int {
	return min(p.selected, max(n-1, 0))
}

// Up moves the highlight up
func (p *PaletteState) Up() {
	p.selected = max(p.selected-1, 0)
}

// Down moves the highlight down, stopping at the last of n entries
func (p *PaletteState) Down(n int) {
	p.selected = min(p.selected+1, max(n-1, 0))
}

// FocusFilter starts typing into the filter
func (p *PaletteState) FocusFilter() tea.Cmd {
	p.Filter.CursorEnd()
	return p.Filter.Focus()
}

// BlurFilter stops typing into the filter and keeps its value
func (p *PaletteState) BlurFilter() {
	p.Filter.Blur()
}

// UpdateFilter forwards a message to the filter input. The highlight
// returns to the top whenever the filter text changes.
func (p *PaletteState) UpdateFilter(msg tea.Msg) tea.Cmd {
	before := p.Filter.Value()
	var cmd tea.Cmd
	p.Filter, cmd = p.Filter.Update(msg)
	if p.Filter.Value() != before {
		p.selected = 0
	}
	return cmd
}

// Reset clears the filter and the highlight
func (p *PaletteState) Reset() {
	p.Filter.SetValue("")
	p.Filter.Blur()
	p.selected = 0
}
