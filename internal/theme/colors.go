// Package theme turns the persisted appearance settings into terminal styles.
package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// Swatch is one named entry of the primary color palette
type Swatch struct {
	Name string
	Hex  string
}

var palette = []Swatch{
	{"Blue", "#3B82F6"},
	{"Purple", "#8B5CF6"},
	{"Green", "#22C55E"},
	{"Red", "#EF4444"},
	{"Orange", "#F97316"},
	{"Pink", "#EC4899"},
}

// Palette returns the selectable primary colors in display order
func Palette() []Swatch {
	return append([]Swatch(nil), palette...)
}

// SwatchName returns the palette name of hex, or "" for a custom color
func SwatchName(hex string) string {
	for _, s := range palette {
		if strings.EqualFold(s.Hex, hex) {
			return s.Name
		}
	}
	return ""
}

// ResolveColor accepts a palette name ("purple") or a #RRGGBB value and
// returns the hex color.
func ResolveColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, sw := range palette {
		if strings.EqualFold(sw.Name, s) {
			return sw.Hex, nil
		}
	}
	if models.IsHexColor(s) {
		return strings.ToUpper(s), nil
	}
	return "", fmt.Errorf("%w: %q", models.ErrInvalidColor, s)
}

// HexToHSL converts #RRGGBB to the "H S% L%" triple used for the primary
// color. Components are rounded half up.
func HexToHSL(hex string) (string, error) {
	h, s, l, err := hsl(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d%% %d%%", h, s, l), nil
}

func hsl(hex string) (int, int, int, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if !models.IsHexColor(hex) {
		return 0, 0, 0, fmt.Errorf("%w: %q", models.ErrInvalidColor, hex)
	}

	channel := func(i int) float64 {
		v, _ := strconv.ParseUint(hex[i:i+2], 16, 8)
		return float64(v) / 255
	}
	r, g, b := channel(1), channel(3), channel(5)

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	var h, s float64
	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}
		switch hi {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return roundHalfUp(h * 360), roundHalfUp(s * 100), roundHalfUp(l * 100), nil
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
