package state

import "github.com/thenoetrevino/jobzy/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode, also used while a card is held
	SearchMode                    // Typing into the search box (/)
	FormMode                      // Add or edit card form with huh
	DeleteConfirmMode             // Confirming card deletion
	HelpMode                      // Displaying help screen
	StatsMode                     // Displaying the dashboard counters
	DetailMode                    // Displaying every field of the selected card
)

// Layout of one board column
const (
	ColumnContentWidth = 30
	columnWidth        = ColumnContentWidth + 2 + 2 + 2 // padding, border, spacing
	reservedWidth      = 4                              // margins and scroll indicators
)

// UIState manages the user interface state.
// This includes navigation (column/card selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the board index of the currently selected column
	selectedColumn int

	// selectedCard is the index of the selected card among the visible cards
	// of the selected column
	selectedCard int

	width  int
	height int
	mode   Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// cardScrollOffsets holds the index of the first visible card per column
	cardScrollOffsets map[models.ColumnID]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1, // recalculated when width is set
		cardScrollOffsets: make(map[models.ColumnID]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index and keeps it on screen.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
	s.EnsureSelectionVisible(index)
}

// SelectedCard returns the index of the currently selected card.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// ClampSelectedCard keeps the card selection inside a column of n visible cards.
func (s *UIState) ClampSelectedCard(n int) {
	switch {
	case n == 0:
		s.selectedCard = 0
	case s.selectedCard >= n:
		s.selectedCard = n - 1
	case s.selectedCard < 0:
		s.selectedCard = 0
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
	s.EnsureSelectionVisible(s.selectedColumn)
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the columns.
// This is terminal height minus header and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 3    // title + criteria line + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = offset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many columns fit in the terminal width,
// never fewer than one.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}
	s.viewportSize = max(1, (s.width-reservedWidth)/columnWidth)
}

// ScrollViewportLeft scrolls the viewport one column to the left.
// Returns true if scrolling occurred, false if already at leftmost position.
func (s *UIState) ScrollViewportLeft() bool {
	if s.viewportOffset > 0 {
		s.viewportOffset--
		return true
	}
	return false
}

// ScrollViewportRight scrolls the viewport one column to the right.
// Returns true if scrolling occurred, false if already at rightmost position.
func (s *UIState) ScrollViewportRight(columnsLen int) bool {
	if s.viewportOffset+s.viewportSize < columnsLen {
		s.viewportOffset++
		return true
	}
	return false
}

// EnsureSelectionVisible adjusts the viewport so the selected column is on screen.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// CardScrollOffset returns the index of the first visible card in a column.
func (s *UIState) CardScrollOffset(id models.ColumnID) int {
	return s.cardScrollOffsets[id]
}

// EnsureCardVisible scrolls a column that shows rows cards at a time so the
// card at index is visible.
func (s *UIState) EnsureCardVisible(id models.ColumnID, index, rows int) {
	rows = max(rows, 1)
	offset := s.cardScrollOffsets[id]
	if index < offset {
		offset = index
	}
	if index >= offset+rows {
		offset = index - rows + 1
	}
	s.cardScrollOffsets[id] = max(offset, 0)
}

// ResetSelection resets column and card selection to the first card of the board.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedCard = 0
	s.viewportOffset = 0
	clear(s.cardScrollOffsets)
}
