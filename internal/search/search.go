// Package search finds cards by fuzzy matching their title, company and tags.
// Unlike the board filter, which is a plain substring match, results are
// ranked by match quality.
package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// Result is one matching card
type Result struct {
	Card   models.Card
	Column models.Column
	Score  int
}

type entry struct {
	card   models.Card
	column int
	text   string
}

// cardSource adapts the board to fuzzy.Source
type cardSource []entry

func (s cardSource) String(i int) string { return s[i].text }
func (s cardSource) Len() int            { return len(s) }

// Text returns the string a card is matched against
func Text(card models.Card) string {
	parts := []string{card.Title, card.Company}
	for _, tag := range card.Tags {
		parts = append(parts, tag.Key())
	}
	return strings.Join(parts, " ")
}

// Find returns the cards matching pattern, best match first. Cards with the
// same score keep board order. A blank pattern matches nothing.
func Find(pattern string, columns []models.Column) []Result {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}

	var src cardSource
	for ci, col := range columns {
		for _, card := range col.Cards {
			src = append(src, entry{card: card, column: ci, text: Text(card)})
		}
	}

	matches := fuzzy.FindFrom(pattern, src)
	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		e := src[m.Index]
		col := columns[e.column]
		col.Cards = nil
		results = append(results, Result{
			Card:   e.card.Clone(),
			Column: col,
			Score:  m.Score,
		})
	}
	return results
}
