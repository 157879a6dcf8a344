// Package layers positions modal panels over the board
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil when content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := (screenWidth - lipgloss.Width(content)) / 2
	y := (screenHeight - lipgloss.Height(content)) / 2

	return lipgloss.NewLayer(content).X(max(x, 0)).Y(max(y, 0))
}

// ModalWidth returns the width of a modal panel: the screen fraction given
// by ModalWidthNumerator/ModalWidthDivisor, kept between minWidth and maxWidth
// and never wider than the screen.
func ModalWidth(screenWidth, minWidth, maxWidth int) int {
	width := min(max(screenWidth*ModalWidthNumerator/ModalWidthDivisor, minWidth), maxWidth)
	return max(min(width, screenWidth-ModalScreenMargin), 1)
}

// Compose stacks the modal on top of the base view. A nil modal returns base.
func Compose(base string, modal *lipgloss.Layer) string {
	if modal == nil {
		return base
	}
	return lipgloss.NewCanvas(lipgloss.NewLayer(base), modal).Render()
}
