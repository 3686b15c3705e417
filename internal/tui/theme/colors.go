// Package theme holds the editor's active colors
package theme

import "github.com/thenoetrevino/pagelayout/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Create         string
	Edit           string
	Delete         string
	SectionBorder  string
	SlotBorder     string
	SelectedBorder string
	HeldBorder     string
	Required       string
	Title          string
	Subtle         string
	Normal         string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(c colors.ColorScheme) {
	Accent = c.Accent
	Create = c.Create
	Edit = c.Edit
	Delete = c.Delete
	SectionBorder = c.SectionBorder
	SlotBorder = c.SlotBorder
	SelectedBorder = c.SelectedBorder
	HeldBorder = c.HeldBorder
	Required = c.Required
	Title = c.Title
	Subtle = c.Subtle
	Normal = c.Normal
	InfoFg = c.InfoFg
	InfoBg = c.InfoBg
	WarningFg = c.WarningFg
	WarningBg = c.WarningBg
	ErrorFg = c.ErrorFg
	ErrorBg = c.ErrorBg
}
