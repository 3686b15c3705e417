package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/pagelayout/internal/tui/theme"
)

// Styles are rebuilt from the theme by InitStyles
var (
	TitleStyle        lipgloss.Style
	SubtleStyle       lipgloss.Style
	SectionTitleStyle lipgloss.Style
	CellStyle         lipgloss.Style
	SelectedCellStyle lipgloss.Style
	HeldCellStyle     lipgloss.Style
	RequiredStyle     lipgloss.Style
	PaletteStyle      lipgloss.Style
	PaletteItemStyle  lipgloss.Style
	PaletteCurStyle   lipgloss.Style
	BadgeStyle        lipgloss.Style
	ModalStyle        lipgloss.Style
	DangerModalStyle  lipgloss.Style
)

func init() {
	InitStyles()
}

// InitStyles builds the styles from the current theme colors
func InitStyles() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	SectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent))

	CellStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.SlotBorder)).
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(0, 1)
	SelectedCellStyle = CellStyle.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	HeldCellStyle = CellStyle.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(theme.HeldBorder))
	RequiredStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Required))

	PaletteStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.SectionBorder)).
		Padding(0, 1)
	PaletteItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	PaletteCurStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent))

	BadgeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.InfoFg)).
		Background(lipgloss.Color(theme.InfoBg)).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1, 2)
	DangerModalStyle = ModalStyle.BorderForeground(lipgloss.Color(theme.Delete))
}
