package models

// ThemeMode selects the light or dark palette
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// IsValid reports whether m is light or dark
func (m ThemeMode) IsValid() bool {
	return m == ThemeLight || m == ThemeDark
}

// Theme holds the user's appearance preferences
type Theme struct {
	Mode         ThemeMode `json:"mode" yaml:"mode"`
	PrimaryColor string    `json:"primaryColor" yaml:"primary_color"`
}

// Settings holds user preferences that are persisted with the board
type Settings struct {
	Theme Theme `json:"theme" yaml:"theme"`
}

// DefaultSettings returns light mode with the blue primary color
func DefaultSettings() Settings {
	return Settings{
		Theme: Theme{
			Mode:         ThemeLight,
			PrimaryColor: DefaultPrimaryColor,
		},
	}
}
