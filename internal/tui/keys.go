package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/pagelayout/internal/config"
)

// keyMap holds the editor bindings built from the configured key mappings
type keyMap struct {
	Place          key.Binding
	Grab           key.Binding
	Remove         key.Binding
	ToggleRequired key.Binding

	AddSection      key.Binding
	RenameSection   key.Binding
	DeleteSection   key.Binding
	MoveSectionUp   key.Binding
	MoveSectionDown key.Binding
	EditRules       key.Binding

	Save    key.Binding
	Discard key.Binding

	Left          key.Binding
	Right         key.Binding
	Up            key.Binding
	Down          key.Binding
	TogglePalette key.Binding
	Filter        key.Binding

	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func binding(k, help string, alt ...string) key.Binding {
	return key.NewBinding(key.WithKeys(append([]string{k}, alt...)...), key.WithHelp(k, help))
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Place:          binding(km.PlaceColumn, "place column"),
		Grab:           binding(km.GrabColumn, "pick up / drop"),
		Remove:         binding(km.RemoveColumn, "remove column"),
		ToggleRequired: binding(km.ToggleRequired, "toggle required"),

		AddSection:      binding(km.AddSection, "add section"),
		RenameSection:   binding(km.RenameSection, "rename section"),
		DeleteSection:   binding(km.DeleteSection, "delete section"),
		MoveSectionUp:   binding(km.MoveSectionUp, "section up"),
		MoveSectionDown: binding(km.MoveSectionDown, "section down"),
		EditRules:       binding(km.EditRules, "visibility rules"),

		Save:    binding(km.SaveLayout, "save"),
		Discard: binding(km.DiscardLayout, "discard draft"),

		Left:          binding(km.SlotLeft, "left", "left"),
		Right:         binding(km.SlotRight, "right", "right"),
		Up:            binding(km.SlotUp, "up", "up"),
		Down:          binding(km.SlotDown, "down", "down"),
		TogglePalette: binding(km.TogglePalette, "grid / palette"),
		Filter:        binding(km.FilterPalette, "filter palette"),

		Cancel: binding("esc", "cancel"),
		Help:   binding(km.ShowHelp, "help"),
		Quit:   binding(km.Quit, "quit", "ctrl+c"),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TogglePalette, k.Place, k.Grab, k.Remove, k.ToggleRequired, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.TogglePalette, k.Filter},
		{k.Place, k.Grab, k.Remove, k.ToggleRequired, k.Cancel},
		{k.AddSection, k.RenameSection, k.DeleteSection, k.MoveSectionUp, k.MoveSectionDown, k.EditRules},
		{k.Save, k.Discard, k.Help, k.Quit},
	}
}
