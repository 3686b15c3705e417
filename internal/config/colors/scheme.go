// Package colors holds the editor's color presets
package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (cursor, titles, palette highlight)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // section add prompt
	Edit   string `yaml:"edit"`   // rename prompt
	Delete string `yaml:"delete"` // remove confirmations

	// Grid colors
	SectionBorder  string `yaml:"section_border"`
	SlotBorder     string `yaml:"slot_border"`
	SelectedBorder string `yaml:"selected_border"`
	HeldBorder     string `yaml:"held_border"`
	Required       string `yaml:"required"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Notice colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields lists every color slot paired by position, preset name excluded
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Create, &c.Edit, &c.Delete,
		&c.SectionBorder, &c.SlotBorder, &c.SelectedBorder, &c.HeldBorder, &c.Required,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills in missing color values from the named preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset).fields()
	for i, f := range c.fields() {
		if *f == "" {
			*f = *preset[i]
		}
	}
}

// MergeFrom overrides colors with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	theirs := other.fields()
	for i, f := range c.fields() {
		if *theirs[i] != "" {
			*f = *theirs[i]
		}
	}
}
