package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/thenoetrevino/jobzy/internal/markdown"
	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/stats"
	"github.com/thenoetrevino/jobzy/internal/tui/layers"
	"github.com/thenoetrevino/jobzy/internal/tui/state"
)

// modalLayer returns the panel of the current mode, or nil on the plain board
func (m *Model) modalLayer() *lipgloss.Layer {
	var content string
	switch m.UIState.Mode() {
	case state.FormMode:
		content = m.viewForm()
	case state.DeleteConfirmMode:
		content = m.viewDeleteConfirm()
	case state.HelpMode:
		content = m.viewHelp()
	case state.StatsMode:
		content = m.viewStats()
	case state.DetailMode:
		content = m.viewDetail()
	default:
		return nil
	}
	return layers.CreateCenteredLayer(content, m.UIState.Width(), m.UIState.Height())
}

// modalBox frames modal content with the primary border
func (m *Model) modalBox(width int, title string, body ...string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{m.Styles.Title.Render(title), ""}, body...)...)
	return m.Styles.ActiveColumn.
		Padding(1, 2).
		Render(lipgloss.NewStyle().Width(width).Render(content))
}

func (m *Model) viewForm() string {
	if m.Form == nil {
		return ""
	}
	title := "➕ Add job"
	if m.EditingID != "" {
		title = "✏️ Edit job"
	}
	hint := m.Styles.Muted.Render("tab next field · ctrl+s save · esc cancel")
	return m.modalBox(formWidth(m.UIState.Width()), title, m.Form.View(), "", hint)
}

func (m *Model) viewDeleteConfirm() string {
	if m.PendingDelete == nil {
		return ""
	}
	question := wordwrap.String(
		fmt.Sprintf("Delete %q at %s?", m.PendingDelete.Title, m.PendingDelete.Company), layers.ConfirmWidth)
	hint := m.Styles.Muted.Render("y delete · n keep")
	return m.modalBox(layers.ConfirmWidth, "🗑️ Delete job", question, "", m.Styles.Error.Render("This cannot be undone."), "", hint)
}

func (m *Model) viewHelp() string {
	width := layers.ModalWidth(m.UIState.Width(), layers.HelpMinWidth, layers.HelpMaxWidth)

	var sections []string
	for _, group := range m.Keys.HelpGroups() {
		lines := []string{m.Styles.ColumnHeader.Render(group.Title)}
		for _, b := range group.Bindings {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %s  %s",
				m.Styles.Status.Width(8).Render(h.Key), h.Desc))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return m.modalBox(width, "⌨️ Keyboard shortcuts", strings.Join(sections, "\n\n"))
}

func (m *Model) viewStats() string {
	width := layers.ModalWidth(m.UIState.Width(), layers.StatsMinWidth, layers.StatsMaxWidth)
	summary := stats.Compute(m.App.Store.Columns())

	tiles := summary.Tiles()
	tileWidth := max((width-4)/3, 12)
	var rows []string
	for i := 0; i < len(tiles); i += 3 {
		var row []string
		for _, tile := range tiles[i:min(i+3, len(tiles))] {
			row = append(row, m.Styles.Card.Width(tileWidth).Render(
				fmt.Sprintf("%s %s\n%s", tile.Icon, tile.Label, m.Styles.Title.Render(fmt.Sprint(tile.Value)))))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	peak := 0
	for _, c := range summary.PerColumn {
		peak = max(peak, c.Count)
	}
	barWidth := max(width-24, 5)
	var bars []string
	for _, c := range summary.PerColumn {
		n := 0
		if peak > 0 {
			n = c.Count * barWidth / peak
		}
		bars = append(bars, fmt.Sprintf("%-18s %s %d",
			truncate(c.Title, 18), m.Styles.Status.Render(strings.Repeat("█", n)), c.Count))
	}

	return m.modalBox(width, "📊 Dashboard", strings.Join(rows, "\n"), "", strings.Join(bars, "\n"))
}

func (m *Model) viewDetail() string {
	card, ok := m.currentCard()
	if !ok {
		return ""
	}
	width := layers.ModalWidth(m.UIState.Width(), layers.DetailMinWidth, layers.DetailMaxWidth)

	field := func(label, value string) string {
		if value == "" {
			value = m.Styles.Muted.Render("none")
		}
		return m.Styles.Company.Width(16).Render(label) + value
	}

	tags := make([]string, len(card.Tags))
	for i, tag := range card.Tags {
		tags[i] = m.Styles.Tag.Render(string(tag))
	}

	pinned := "no"
	if card.IsPinned {
		pinned = "📌 yes"
	}

	body := []string{
		field("Company", card.Company),
		field("Column", card.ColumnID.Title()),
		field("Added", card.DateCreated.Local().Format("Jan 2, 2006")),
		field("Pinned", pinned),
		field("Tags", strings.Join(tags, " ")),
		field("Link", card.JobLink),
		field("Experience", card.MinExperience),
		field("Next action", strings.TrimSpace(card.ActionTask+" "+card.ActionDate)),
	}
	if card.Description != "" {
		style := markdown.Style(m.App.Store.Settings().Theme.Mode, true)
		body = append(body, "", markdown.Render(card.Description, style, width))
	}
	body = append(body, "", m.Styles.Muted.Render(fmt.Sprintf("%s edit · esc close",
		displayKey(m.Keys.EditCard.Keys()[0]))))

	title := card.Title
	if card.ColumnID.IsValid() {
		title = titleWithIcon(card.ColumnID, card.Title)
	}
	return m.modalBox(width, title, body...)
}

// titleWithIcon prefixes title with the icon of the card's column
func titleWithIcon(id models.ColumnID, title string) string {
	for _, col := range models.DefaultColumns() {
		if col.ID == id {
			return col.Icon + " " + title
		}
	}
	return title
}
