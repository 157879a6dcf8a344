package config

// KeyMappings defines all configurable key bindings of the board
type KeyMappings struct {
	// Cards
	AddCard       string `yaml:"add_card"`
	EditCard      string `yaml:"edit_card"`
	DeleteCard    string `yaml:"delete_card"`
	DuplicateCard string `yaml:"duplicate_card"`
	PinCard       string `yaml:"pin_card"`
	ViewCard      string `yaml:"view_card"`

	// Dragging
	PickUp string `yaml:"pick_up"`
	Drop   string `yaml:"drop"`
	Cancel string `yaml:"cancel"`

	// Criteria
	Search     string `yaml:"search"`
	ToggleSort string `yaml:"toggle_sort"`
	ToggleView string `yaml:"toggle_view"`
	ClearTags  string `yaml:"clear_tags"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	ShowStats string `yaml:"show_stats"`
	ShowHelp  string `yaml:"show_help"`
	Quit      string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		AddCard:       "a",
		EditCard:      "e",
		DeleteCard:    "x",
		DuplicateCard: "y",
		PinCard:       "p",
		ViewCard:      "o",

		// Dragging
		PickUp: " ",
		Drop:   "enter",
		Cancel: "esc",

		// Criteria
		Search:     "/",
		ToggleSort: "s",
		ToggleView: "v",
		ClearTags:  "0",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		// Other
		ShowStats: "S",
		ShowHelp:  "?",
		Quit:      "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(field *string, def string) {
		if *field == "" {
			*field = def
		}
	}

	fill(&k.AddCard, defaults.AddCard)
	fill(&k.EditCard, defaults.EditCard)
	fill(&k.DeleteCard, defaults.DeleteCard)
	fill(&k.DuplicateCard, defaults.DuplicateCard)
	fill(&k.PinCard, defaults.PinCard)
	fill(&k.ViewCard, defaults.ViewCard)
	fill(&k.PickUp, defaults.PickUp)
	fill(&k.Drop, defaults.Drop)
	fill(&k.Cancel, defaults.Cancel)
	fill(&k.Search, defaults.Search)
	fill(&k.ToggleSort, defaults.ToggleSort)
	fill(&k.ToggleView, defaults.ToggleView)
	fill(&k.ClearTags, defaults.ClearTags)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevCard, defaults.PrevCard)
	fill(&k.NextCard, defaults.NextCard)
	fill(&k.ShowStats, defaults.ShowStats)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
