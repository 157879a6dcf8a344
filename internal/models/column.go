package models

// Column is one fixed pipeline stage holding its cards in insertion order
type Column struct {
	ID    ColumnID `json:"id" yaml:"id"`
	Title string   `json:"title" yaml:"title"`
	Icon  string   `json:"icon" yaml:"icon"`
	Cards []Card   `json:"cards" yaml:"cards"`
}

// DefaultColumns returns the seven stages with no cards
func DefaultColumns() []Column {
	columns := make([]Column, len(columnDefs))
	for i, def := range columnDefs {
		columns[i] = Column{
			ID:    def.id,
			Title: def.title,
			Icon:  def.icon,
			Cards: []Card{},
		}
	}
	return columns
}

// Clone returns a deep copy of the column
func (c Column) Clone() Column {
	out := c
	out.Cards = make([]Card, len(c.Cards))
	for i, card := range c.Cards {
		out.Cards[i] = card.Clone()
	}
	return out
}

// IndexOf returns the position of the card with the given id, or -1
func (c Column) IndexOf(cardID string) int {
	for i := range c.Cards {
		if c.Cards[i].ID == cardID {
			return i
		}
	}
	return -1
}

// PinnedCount returns how many cards in the column are pinned
func (c Column) PinnedCount() int {
	n := 0
	for _, card := range c.Cards {
		if card.IsPinned {
			n++
		}
	}
	return n
}

// CloneColumns deep copies a column slice
func CloneColumns(columns []Column) []Column {
	out := make([]Column, len(columns))
	for i, col := range columns {
		out[i] = col.Clone()
	}
	return out
}
