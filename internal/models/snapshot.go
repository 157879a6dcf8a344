package models

import "github.com/google/uuid"

// Snapshot is the complete persisted state of the board
type Snapshot struct {
	Columns  []Column `json:"columns" yaml:"columns"`
	Settings Settings `json:"settings" yaml:"settings"`
}

// DefaultSnapshot is the board a first run starts with
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Columns:  DefaultColumns(),
		Settings: DefaultSettings(),
	}
}

// Clone returns a deep copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Columns:  CloneColumns(s.Columns),
		Settings: s.Settings,
	}
}

// CardCount returns the number of cards across all columns
func (s Snapshot) CardCount() int {
	n := 0
	for _, col := range s.Columns {
		n += len(col.Cards)
	}
	return n
}

// Repairs counts the fixes NormalizeSnapshot applied to a loaded snapshot
type Repairs struct {
	ColumnsAdded      int
	CardsRehomed      int
	ColumnIDsFixed    int
	DuplicatesDropped int
	IDsAssigned       int
	TagsDropped       int
	SettingsReset     bool
}

// Any reports whether anything was repaired
func (r Repairs) Any() bool {
	return r.ColumnsAdded > 0 || r.CardsRehomed > 0 || r.ColumnIDsFixed > 0 ||
		r.DuplicatesDropped > 0 || r.IDsAssigned > 0 || r.TagsDropped > 0 || r.SettingsReset
}

// NormalizeSnapshot restores the board invariants on a snapshot read from
// storage: exactly the fixed columns in fixed order, every card owned by one
// known column with a matching ColumnID, unique non-empty ids and valid
// settings. The input is not modified.
func NormalizeSnapshot(s Snapshot) (Snapshot, Repairs) {
	var repairs Repairs

	byID := make(map[ColumnID][]Card, len(s.Columns))
	var orphans []Card
	for _, col := range s.Columns {
		if !col.ID.IsValid() {
			orphans = append(orphans, col.Cards...)
			repairs.CardsRehomed += len(col.Cards)
			continue
		}
		byID[col.ID] = append(byID[col.ID], col.Cards...)
	}

	present := make(map[ColumnID]bool, len(s.Columns))
	for _, col := range s.Columns {
		present[col.ID] = true
	}

	out := Snapshot{Columns: DefaultColumns(), Settings: s.Settings}
	seen := make(map[string]struct{})
	for i := range out.Columns {
		col := &out.Columns[i]
		if !present[col.ID] {
			repairs.ColumnsAdded++
		}
		cards := byID[col.ID]
		if col.ID == DefaultColumnID {
			cards = append(cards, orphans...)
		}
		for _, card := range cards {
			card = card.Clone()
			if card.ID == "" {
				card.ID = uuid.NewString()
				repairs.IDsAssigned++
			}
			if _, dup := seen[card.ID]; dup {
				repairs.DuplicatesDropped++
				continue
			}
			seen[card.ID] = struct{}{}
			if card.ColumnID != col.ID {
				card.ColumnID = col.ID
				repairs.ColumnIDsFixed++
			}
			card.Tags, repairs.TagsDropped = cleanTags(card.Tags, repairs.TagsDropped)
			col.Cards = append(col.Cards, card)
		}
	}

	if ValidateSettings(out.Settings) != nil {
		out.Settings = DefaultSettings()
		repairs.SettingsReset = true
	}

	return out, repairs
}

func cleanTags(tags []Tag, dropped int) ([]Tag, int) {
	kept := make([]Tag, 0, len(tags))
	for _, tag := range NormalizeTags(tags) {
		if !tag.IsValid() {
			dropped++
			continue
		}
		kept = append(kept, tag)
	}
	return kept, dropped
}
