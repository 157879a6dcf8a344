package store

import (
	"errors"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// Validation errors surfaced by store mutations
var (
	ErrEmptyTitle        = models.ErrEmptyTitle
	ErrEmptyCompany      = models.ErrEmptyCompany
	ErrUnknownTag        = models.ErrUnknownTag
	ErrUnknownColumn     = models.ErrUnknownColumn
	ErrInvalidActionDate = models.ErrInvalidActionDate
	ErrInvalidThemeMode  = models.ErrInvalidThemeMode
	ErrInvalidColor      = models.ErrInvalidColor
	ErrInvalidSortKey    = models.ErrInvalidSortKey
	ErrInvalidViewMode   = models.ErrInvalidViewMode
)

// Business logic errors
var (
	// ErrPinLimitReached indicates the column already holds the maximum number of pinned cards
	ErrPinLimitReached = errors.New("pin limit reached for this column")
)
