// Package filter derives the visible, ordered cards of a column from the
// current search, tag and sort criteria. Everything here is pure: inputs are
// never modified.
package filter

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// ColumnView is a column as the board shows it: the cards that survive the
// criteria, plus the unfiltered total for the header.
type ColumnView struct {
	ID      models.ColumnID
	Title   string
	Icon    string
	Cards   []models.Card
	Total   int
	Pinned  int
	Message string // empty-state text, set when Cards is empty
}

// Matches reports whether a card passes the tag and search filters
func Matches(card models.Card, c models.Criteria) bool {
	if !card.HasTags(c.SelectedTags) {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(c.SearchTerm))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(card.Title), term) ||
		strings.Contains(strings.ToLower(card.Company), term)
}

// VisibleCards filters and orders cards according to c.
// The returned slice is freshly allocated.
func VisibleCards(cards []models.Card, c models.Criteria) []models.Card {
	out := make([]models.Card, 0, len(cards))
	for _, card := range cards {
		if Matches(card, c) {
			out = append(out, card.Clone())
		}
	}

	switch c.Sort {
	case models.SortCompany:
		col := collate.New(language.English, collate.Loose)
		slices.SortStableFunc(out, func(a, b models.Card) int {
			return col.CompareString(a.Company, b.Company)
		})
	default:
		slices.SortStableFunc(out, func(a, b models.Card) int {
			return b.DateCreated.Compare(a.DateCreated)
		})
	}

	if c.PinnedFirst {
		slices.SortStableFunc(out, func(a, b models.Card) int {
			return pinRank(a) - pinRank(b)
		})
	}

	return out
}

// Columns applies VisibleCards to every column
func Columns(columns []models.Column, c models.Criteria) []ColumnView {
	views := make([]ColumnView, len(columns))
	for i, col := range columns {
		v := ColumnView{
			ID:     col.ID,
			Title:  col.Title,
			Icon:   col.Icon,
			Cards:  VisibleCards(col.Cards, c),
			Total:  len(col.Cards),
			Pinned: col.PinnedCount(),
		}
		if len(v.Cards) == 0 {
			v.Message = col.ID.EmptyStateMessage()
			if c.IsFiltering() && v.Total > 0 {
				v.Message = "No matching jobs"
			}
		}
		views[i] = v
	}
	return views
}

func pinRank(c models.Card) int {
	if c.IsPinned {
		return 0
	}
	return 1
}
