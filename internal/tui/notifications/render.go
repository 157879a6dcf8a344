// Package notifications renders status line messages
package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/jobzy/internal/theme"
	"github.com/thenoetrevino/jobzy/internal/tui/state"
)

// RenderInline renders n as a single status line: bold title, then message
func RenderInline(styles theme.Styles, n state.Notification) string {
	title := styles.Status
	if n.Level == state.LevelError {
		title = styles.Error
	}

	text := title.Render(n.Title)
	if n.Message != "" {
		text += "  " + lipgloss.NewStyle().Render(n.Message)
	}
	return text
}

// RenderBanner renders n in a bordered box, used over full screen panels
func RenderBanner(styles theme.Styles, n state.Notification) string {
	border := styles.Primary
	if n.Level == state.LevelError {
		border = styles.Error.GetForeground()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(RenderInline(styles, n))
}
