package tui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/thenoetrevino/jobzy/internal/filter"
	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/tui/state"
)

// Card layout inside a column
const (
	cardChrome       = 4 // border + padding
	cardInnerWidth   = state.ColumnContentWidth - cardChrome
	fullCardLines    = 4 // title, company, tags, next action
	compactCardLines = 1
	columnChrome     = 4 // column border + header + gap line
	scrollHintLines  = 2
)

// viewColumns renders the columns inside the horizontal viewport
func (m *Model) viewColumns() string {
	start := m.UIState.ViewportOffset()
	end := min(start+m.UIState.ViewportSize(), len(m.views))

	rendered := make([]string, 0, end-start+2)
	if start > 0 {
		rendered = append(rendered, m.Styles.Muted.Render("◀"))
	}
	for i := start; i < end; i++ {
		rendered = append(rendered, m.viewColumn(i))
	}
	if end < len(m.views) {
		rendered = append(rendered, m.Styles.Muted.Render("▶"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// cardsPerColumn is how many cards fit in a column at the current height
func (m *Model) cardsPerColumn() int {
	lines := compactCardLines
	if m.App.Store.Criteria().ViewMode == models.ViewFull {
		lines = fullCardLines
	}
	available := m.UIState.ContentHeight() - columnChrome - scrollHintLines
	return max(available/(lines+2), 1)
}

func (m *Model) viewColumn(index int) string {
	view := m.views[index]
	selectedColumn := index == m.UIState.SelectedColumn()
	held := m.heldCard()

	rows := m.cardsPerColumn()
	if selectedColumn {
		m.UIState.EnsureCardVisible(view.ID, m.UIState.SelectedCard(), rows)
	}
	offset := min(m.UIState.CardScrollOffset(view.ID), max(len(view.Cards)-rows, 0))

	parts := []string{m.viewColumnHeader(view, selectedColumn && held != "")}

	if len(view.Cards) == 0 {
		parts = append(parts, "", m.Styles.Muted.Width(state.ColumnContentWidth).Render(view.Message))
	} else {
		if offset > 0 {
			parts = append(parts, m.Styles.Muted.Render(fmt.Sprintf("▲ %d more", offset)))
		} else {
			parts = append(parts, "")
		}

		end := min(offset+rows, len(view.Cards))
		for i := offset; i < end; i++ {
			card := view.Cards[i]
			selected := selectedColumn && i == m.UIState.SelectedCard()
			parts = append(parts, m.viewCard(card, selected, card.ID == held))
		}

		if rest := len(view.Cards) - end; rest > 0 {
			parts = append(parts, m.Styles.Muted.Render(fmt.Sprintf("▼ %d more", rest)))
		}
	}

	body := lipgloss.NewStyle().
		Width(state.ColumnContentWidth).
		Height(m.UIState.ContentHeight() - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	style := m.Styles.Column
	if selectedColumn {
		style = m.Styles.ActiveColumn
	}
	return style.Render(body)
}

// viewColumnHeader renders "icon Title (n)", or visible/total while
// filtering. A held card marks the column it would drop into.
func (m *Model) viewColumnHeader(view filter.ColumnView, dropTarget bool) string {
	count := fmt.Sprintf("(%d)", view.Total)
	if m.App.Store.Criteria().IsFiltering() {
		count = fmt.Sprintf("(%d/%d)", len(view.Cards), view.Total)
	}

	header := m.Styles.ColumnHeader.Render(fmt.Sprintf("%s %s", view.Icon, view.Title)) +
		" " + m.Styles.Company.Render(count)
	if dropTarget {
		if g, ok := m.App.Drag.Active(); ok && g.Source != view.ID {
			header += " " + m.Styles.Status.Render("⬇")
		}
	}
	return header
}

// viewCard renders one card. Compact cards show the title and company on
// one line.
func (m *Model) viewCard(card models.Card, selected, held bool) string {
	style := m.Styles.Card
	switch {
	case held:
		style = m.Styles.HeldCard
	case selected:
		style = m.Styles.SelectedCard
	}

	title := card.Title
	if card.IsPinned {
		title = "📌 " + title
	}

	var lines []string
	if m.App.Store.Criteria().ViewMode == models.ViewCompact {
		lines = []string{
			truncate(title, cardInnerWidth/2+4) + " " + m.Styles.Company.Render(truncate(card.Company, cardInnerWidth/2-4)),
		}
	} else {
		tags := make([]string, len(card.Tags))
		for i, tag := range card.Tags {
			tags[i] = string(tag)
		}
		lines = []string{
			lipgloss.NewStyle().Bold(true).Render(truncate(title, cardInnerWidth)),
			m.Styles.Company.Render(truncate(card.Company, cardInnerWidth)),
			m.Styles.Company.Render(truncate(strings.Join(tags, " "), cardInnerWidth)),
			m.Styles.Muted.Render(truncate(cardDetails(card), cardInnerWidth)),
		}
	}

	content := lipgloss.NewStyle().Width(cardInnerWidth).Render(strings.Join(lines, "\n"))
	return style.Render(content)
}

// cardDetails is the creation date and the next action, when there is one
func cardDetails(card models.Card) string {
	parts := []string{card.DateCreated.Local().Format("Jan 2")}
	if card.ActionTask != "" {
		parts = append(parts, card.ActionTask)
	}
	if card.ActionDate != "" {
		if d, err := time.Parse(models.ActionDateLayout, card.ActionDate); err == nil {
			parts = append(parts, "due "+d.Format("Jan 2"))
		}
	}
	return strings.Join(parts, " · ")
}

func truncate(s string, width int) string {
	return ansi.Truncate(s, max(width, 1), "…")
}
