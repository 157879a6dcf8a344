package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// Base colors per mode. The primary color comes from the settings.
type modeColors struct {
	text    string
	subtle  string
	surface string
	border  string
	danger  string
	success string
}

var (
	lightColors = modeColors{
		text:    "#1F2937",
		subtle:  "#6B7280",
		surface: "#F3F4F6",
		border:  "#D1D5DB",
		danger:  "#DC2626",
		success: "#16A34A",
	}
	darkColors = modeColors{
		text:    "#F9FAFB",
		subtle:  "#9CA3AF",
		surface: "#1F2937",
		border:  "#374151",
		danger:  "#F87171",
		success: "#4ADE80",
	}
)

// Styles groups every style the board and the CLI render with
type Styles struct {
	Primary color.Color

	Title        lipgloss.Style
	Column       lipgloss.Style
	ActiveColumn lipgloss.Style
	ColumnHeader lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	HeldCard     lipgloss.Style
	Company      lipgloss.Style
	Muted        lipgloss.Style
	Pin          lipgloss.Style
	Tag          lipgloss.Style
	ActiveTag    lipgloss.Style
	Status       lipgloss.Style
	Success      lipgloss.Style
	Error        lipgloss.Style
}

// NewStyles builds the styles for the given settings. Invalid settings fall
// back to the defaults.
func NewStyles(settings models.Settings) Styles {
	if models.ValidateSettings(settings) != nil {
		settings = models.DefaultSettings()
	}

	c := lightColors
	if settings.Theme.Mode == models.ThemeDark {
		c = darkColors
	}

	primary := lipgloss.Color(settings.Theme.PrimaryColor)
	text := lipgloss.Color(c.text)
	subtle := lipgloss.Color(c.subtle)
	border := lipgloss.Color(c.border)

	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(text).
		Padding(0, 1)

	tag := lipgloss.NewStyle().
		Foreground(subtle).
		Background(lipgloss.Color(c.surface)).
		Padding(0, 1)

	return Styles{
		Primary: primary,

		Title:        lipgloss.NewStyle().Bold(true).Foreground(primary),
		Column:       column,
		ActiveColumn: column.BorderForeground(primary),
		ColumnHeader: lipgloss.NewStyle().Bold(true).Foreground(text),
		Card:         card,
		SelectedCard: card.BorderForeground(primary),
		HeldCard:     card.BorderForeground(primary).BorderStyle(lipgloss.DoubleBorder()),
		Company:      lipgloss.NewStyle().Foreground(subtle),
		Muted:        lipgloss.NewStyle().Foreground(subtle).Italic(true),
		Pin:          lipgloss.NewStyle().Foreground(primary),
		Tag:          tag,
		ActiveTag:    tag.Foreground(lipgloss.Color("#FFFFFF")).Background(primary),
		Status:       lipgloss.NewStyle().Foreground(primary).Bold(true),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.success)),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color(c.danger)).Bold(true),
	}
}
