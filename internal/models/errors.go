package models

import "errors"

// Validation errors for cards and settings
var (
	// ErrEmptyTitle indicates a card title that is empty after trimming
	ErrEmptyTitle = errors.New("title is required")

	// ErrEmptyCompany indicates a company name that is empty after trimming
	ErrEmptyCompany = errors.New("company is required")

	// ErrUnknownTag indicates a tag outside the fixed set
	ErrUnknownTag = errors.New("unknown tag")

	// ErrUnknownColumn indicates a column id outside the fixed set
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidActionDate indicates an action date not in YYYY-MM-DD form
	ErrInvalidActionDate = errors.New("action date must be YYYY-MM-DD")

	// ErrInvalidThemeMode indicates a theme mode other than light or dark
	ErrInvalidThemeMode = errors.New("theme mode must be light or dark")

	// ErrInvalidColor indicates a primary color that is not a #RRGGBB hex value
	ErrInvalidColor = errors.New("color must be a #RRGGBB hex value")

	// ErrInvalidSortKey indicates a sort key other than recent or company
	ErrInvalidSortKey = errors.New("sort must be recent or company")

	// ErrInvalidViewMode indicates a view mode other than full or compact
	ErrInvalidViewMode = errors.New("view mode must be full or compact")
)
