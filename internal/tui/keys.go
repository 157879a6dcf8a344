package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/jobzy/internal/config"
)

// KeyMap holds the board bindings built from the configured key mappings
type KeyMap struct {
	AddCard       key.Binding
	EditCard      key.Binding
	DeleteCard    key.Binding
	DuplicateCard key.Binding
	PinCard       key.Binding
	ViewCard      key.Binding

	PickUp key.Binding
	Drop   key.Binding
	Cancel key.Binding

	Search     key.Binding
	ToggleSort key.Binding
	ToggleView key.Binding
	ClearTags  key.Binding
	ToggleTag  key.Binding

	PrevColumn key.Binding
	NextColumn key.Binding
	PrevCard   key.Binding
	NextCard   key.Binding

	ShowStats key.Binding
	ShowHelp  key.Binding
	Quit      key.Binding
}

// NewKeyMap builds the bindings for km. Arrow keys always navigate.
func NewKeyMap(km config.KeyMappings) KeyMap {
	bind := func(help string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(displayKey(keys[0]), help))
	}

	return KeyMap{
		AddCard:       bind("add job", km.AddCard),
		EditCard:      bind("edit job", km.EditCard),
		DeleteCard:    bind("delete job", km.DeleteCard),
		DuplicateCard: bind("duplicate job", km.DuplicateCard),
		PinCard:       bind("pin / unpin", km.PinCard),
		ViewCard:      bind("job details", km.ViewCard),

		PickUp: bind("pick up / drop", km.PickUp),
		Drop:   bind("drop", km.Drop),
		Cancel: bind("cancel drag / clear search", km.Cancel),

		Search:     bind("search", km.Search),
		ToggleSort: bind("sort recent / company", km.ToggleSort),
		ToggleView: bind("full / compact", km.ToggleView),
		ClearTags:  bind("clear tag filters", km.ClearTags),
		ToggleTag:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "toggle tag filter")),

		PrevColumn: bind("previous column", km.PrevColumn, "left"),
		NextColumn: bind("next column", km.NextColumn, "right"),
		PrevCard:   bind("previous job", km.PrevCard, "up"),
		NextCard:   bind("next job", km.NextCard, "down"),

		ShowStats: bind("stats", km.ShowStats),
		ShowHelp:  bind("help", km.ShowHelp),
		Quit:      bind("quit", km.Quit, "ctrl+c"),
	}
}

// HelpGroups returns the bindings shown on the help screen, by section
func (k KeyMap) HelpGroups() []HelpGroup {
	return []HelpGroup{
		{"Navigate", []key.Binding{k.PrevColumn, k.NextColumn, k.PrevCard, k.NextCard}},
		{"Drag", []key.Binding{k.PickUp, k.Drop, k.Cancel}},
		{"Jobs", []key.Binding{k.AddCard, k.EditCard, k.ViewCard, k.PinCard, k.DuplicateCard, k.DeleteCard}},
		{"Filter", []key.Binding{k.Search, k.ToggleTag, k.ClearTags, k.ToggleSort, k.ToggleView}},
		{"Other", []key.Binding{k.ShowStats, k.ShowHelp, k.Quit}},
	}
}

// HelpGroup is one titled section of the help screen
type HelpGroup struct {
	Title    string
	Bindings []key.Binding
}

// keyString names msg the way key mappings are written. Space is " ".
func keyString(msg tea.KeyPressMsg) string {
	s := msg.String()
	if s == "space" {
		return " "
	}
	return s
}

// matches reports whether msg triggers b
func matches(msg tea.KeyPressMsg, b key.Binding) bool {
	k := keyString(msg)
	for _, bk := range b.Keys() {
		if bk == k {
			return b.Enabled()
		}
	}
	return false
}

func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "":
		return "-"
	}
	return k
}
