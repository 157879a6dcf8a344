package drag

import "github.com/thenoetrevino/jobzy/internal/models"

// Transition computes the board after dropping cardID from src onto dst
// without touching any store. It reports false, and returns the input
// unchanged, when src equals dst, dst is unknown, or the card is not in src.
func Transition(snap models.Snapshot, cardID string, src, dst models.ColumnID) (models.Snapshot, bool) {
	if src == dst || !dst.IsValid() {
		return snap, false
	}
	columns, ok := Relocate(snap.Columns, cardID, src, dst)
	if !ok {
		return snap, false
	}
	next := snap
	next.Columns = columns
	return next, true
}

// Relocate removes cardID from src and appends it to the end of dst with its
// ColumnID rewritten. The input is never modified. src may equal dst, which
// sends the card to the end of its own column. Reports false, returning the
// input, when either column is missing or the card is not in src.
func Relocate(columns []models.Column, cardID string, src, dst models.ColumnID) ([]models.Column, bool) {
	si, di := -1, -1
	for i, col := range columns {
		if col.ID == src {
			si = i
		}
		if col.ID == dst {
			di = i
		}
	}
	if si < 0 || di < 0 {
		return columns, false
	}
	ci := columns[si].IndexOf(cardID)
	if ci < 0 {
		return columns, false
	}

	next := models.CloneColumns(columns)
	card := next[si].Cards[ci]
	next[si].Cards = append(next[si].Cards[:ci:ci], next[si].Cards[ci+1:]...)
	card.ColumnID = dst
	next[di].Cards = append(next[di].Cards, card)
	return next, true
}
