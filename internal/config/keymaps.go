package config

// KeyMappings defines all configurable key bindings of the layout editor
type KeyMappings struct {
	// Grid
	PlaceColumn    string `yaml:"place_column"`
	GrabColumn     string `yaml:"grab_column"`
	RemoveColumn   string `yaml:"remove_column"`
	ToggleRequired string `yaml:"toggle_required"`

	// Sections
	AddSection      string `yaml:"add_section"`
	RenameSection   string `yaml:"rename_section"`
	DeleteSection   string `yaml:"delete_section"`
	MoveSectionUp   string `yaml:"move_section_up"`
	MoveSectionDown string `yaml:"move_section_down"`
	EditRules       string `yaml:"edit_rules"`

	// Layout
	SaveLayout    string `yaml:"save_layout"`
	DiscardLayout string `yaml:"discard_layout"`

	// Navigation
	SlotLeft      string `yaml:"slot_left"`
	SlotRight     string `yaml:"slot_right"`
	SlotUp        string `yaml:"slot_up"`
	SlotDown      string `yaml:"slot_down"`
	TogglePalette string `yaml:"toggle_palette"`
	FilterPalette string `yaml:"filter_palette"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PlaceColumn:    "enter",
		GrabColumn:     "m",
		RemoveColumn:   "x",
		ToggleRequired: "r",

		AddSection:      "a",
		RenameSection:   "e",
		DeleteSection:   "D",
		MoveSectionUp:   "K",
		MoveSectionDown: "J",
		EditRules:       "v",

		SaveLayout:    "ctrl+s",
		DiscardLayout: "ctrl+r",

		SlotLeft:      "h",
		SlotRight:     "l",
		SlotUp:        "k",
		SlotDown:      "j",
		TogglePalette: "tab",
		FilterPalette: "/",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.PlaceColumn == "" {
		k.PlaceColumn = defaults.PlaceColumn
	}
	if k.GrabColumn == "" {
		k.GrabColumn = defaults.GrabColumn
	}
	if k.RemoveColumn == "" {
		k.RemoveColumn = defaults.RemoveColumn
	}
	if k.ToggleRequired == "" {
		k.ToggleRequired = defaults.ToggleRequired
	}
	if k.AddSection == "" {
		k.AddSection = defaults.AddSection
	}
	if k.RenameSection == "" {
		k.RenameSection = defaults.RenameSection
	}
	if k.DeleteSection == "" {
		k.DeleteSection = defaults.DeleteSection
	}
	if k.MoveSectionUp == "" {
		k.MoveSectionUp = defaults.MoveSectionUp
	}
	if k.MoveSectionDown == "" {
		k.MoveSectionDown = defaults.MoveSectionDown
	}
	if k.EditRules == "" {
		k.EditRules = defaults.EditRules
	}
	if k.SaveLayout == "" {
		k.SaveLayout = defaults.SaveLayout
	}
	if k.DiscardLayout == "" {
		k.DiscardLayout = defaults.DiscardLayout
	}
	if k.SlotLeft == "" {
		k.SlotLeft = defaults.SlotLeft
	}
	if k.SlotRight == "" {
		k.SlotRight = defaults.SlotRight
	}
	if k.SlotUp == "" {
		k.SlotUp = defaults.SlotUp
	}
	if k.SlotDown == "" {
		k.SlotDown = defaults.SlotDown
	}
	if k.TogglePalette == "" {
		k.TogglePalette = defaults.TogglePalette
	}
	if k.FilterPalette == "" {
		k.FilterPalette = defaults.FilterPalette
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
