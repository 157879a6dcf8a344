package models

import "fmt"

// SortKey selects the ordering of visible cards
type SortKey string

const (
	SortRecent  SortKey = "recent"
	SortCompany SortKey = "company"
)

// ParseSortKey validates a sort key string
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortRecent, SortCompany:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

// ViewMode selects how much of each card the board renders
type ViewMode string

const (
	ViewFull    ViewMode = "full"
	ViewCompact ViewMode = "compact"
)

// ParseViewMode validates a view mode string
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewFull, ViewCompact:
		return ViewMode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidViewMode, s)
}

// Criteria are the ephemeral display choices applied to the board.
// They are never persisted.
type Criteria struct {
	SearchTerm   string
	SelectedTags []Tag
	Sort         SortKey
	PinnedFirst  bool
	ViewMode     ViewMode
}

// DefaultCriteria returns no filters, newest first, pinned cards on top
func DefaultCriteria() Criteria {
	return Criteria{
		Sort:        SortRecent,
		PinnedFirst: true,
		ViewMode:    ViewFull,
	}
}

// Clone returns a copy that shares no slices with c
func (c Criteria) Clone() Criteria {
	out := c
	if c.SelectedTags != nil {
		out.SelectedTags = append([]Tag(nil), c.SelectedTags...)
	}
	return out
}

// IsFiltering reports whether any filter narrows the visible cards
func (c Criteria) IsFiltering() bool {
	return c.SearchTerm != "" || len(c.SelectedTags) > 0
}
