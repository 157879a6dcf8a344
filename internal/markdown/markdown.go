// Package markdown renders card descriptions and the guide for the terminal.
package markdown

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// Cache renderers by style and wrap width. WithAutoStyle queries the terminal,
// so the style is always chosen explicitly.
var (
	mu        sync.Mutex
	renderers = map[string]*glamour.TermRenderer{}
)

// Style returns the glamour style for the theme mode. Plain output gets the
// notty style so no escape sequences are written.
func Style(mode models.ThemeMode, tty bool) string {
	switch {
	case !tty:
		return styles.NoTTYStyle
	case mode == models.ThemeDark:
		return styles.DarkStyle
	default:
		return styles.LightStyle
	}
}

func renderer(style string, width int) (*glamour.TermRenderer, error) {
	key := style + ":" + strconv.Itoa(width)

	mu.Lock()
	defer mu.Unlock()
	if r, ok := renderers[key]; ok {
		return r, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[key] = r
	return r, nil
}

// Render renders md, returning md unchanged when rendering fails
func Render(md string, style string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	r, err := renderer(style, width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
