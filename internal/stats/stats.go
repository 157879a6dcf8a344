// Package stats computes the dashboard counters of a board.
package stats

import "github.com/thenoetrevino/jobzy/internal/models"

// Summary holds the dashboard counters
type Summary struct {
	Total        int `json:"total" yaml:"total"`
	Applications int `json:"applications" yaml:"applications"`
	Interviews   int `json:"interviews" yaml:"interviews"`
	Offers       int `json:"offers" yaml:"offers"`
	Rejections   int `json:"rejections" yaml:"rejections"`
	Pinned       int `json:"pinned" yaml:"pinned"`

	// PerColumn counts cards per column in board order
	PerColumn []ColumnCount `json:"per_column" yaml:"per_column"`
}

// ColumnCount is the number of cards in one column
type ColumnCount struct {
	ID    models.ColumnID `json:"id" yaml:"id"`
	Title string          `json:"title" yaml:"title"`
	Count int             `json:"count" yaml:"count"`
}

// Compute counts cards over the columns. Applications, interviews, offers and
// rejections are the sizes of those columns, not a history of moves.
func Compute(columns []models.Column) Summary {
	var s Summary
	for _, col := range columns {
		n := len(col.Cards)
		s.Total += n
		s.Pinned += col.PinnedCount()
		s.PerColumn = append(s.PerColumn, ColumnCount{ID: col.ID, Title: col.Title, Count: n})

		switch col.ID {
		case models.ColumnApplied:
			s.Applications += n
		case models.ColumnInterview:
			s.Interviews += n
		case models.ColumnOffer:
			s.Offers += n
		case models.ColumnRejected:
			s.Rejections += n
		}
	}
	return s
}

// Tiles returns the headline counters with their dashboard labels
func (s Summary) Tiles() []Tile {
	return []Tile{
		{"💼", "Total Jobs", s.Total},
		{"📤", "Applications", s.Applications},
		{"💬", "Interviews", s.Interviews},
		{"🏆", "Offers", s.Offers},
		{"❌", "Rejections", s.Rejections},
		{"📌", "Pinned Jobs", s.Pinned},
	}
}

// Tile is one labeled dashboard counter
type Tile struct {
	Icon  string
	Label string
	Value int
}
