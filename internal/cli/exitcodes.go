package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/jobzy/internal/export"
	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/store"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, I/O errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments, ambiguous card id prefixes, unknown formats.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Card not found, column not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable input on stdin.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty title or company, unknown tags, bad dates or colors,
	// pin limit reached.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code of a failed command.
// The message has already been shown to the user when it is returned.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for err. Errors without a code exit with ExitError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// Reported reports whether err was already printed by a formatter
func Reported(err error) bool {
	var exitErr *ExitCodeError
	return errors.As(err, &exitErr)
}

// Classify maps a domain error to an exit code and an error code for JSON output
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrCardNotFound):
		return ExitNotFound, "CARD_NOT_FOUND"
	case errors.Is(err, ErrAmbiguousID):
		return ExitUsage, "AMBIGUOUS_ID"
	case errors.Is(err, models.ErrUnknownColumn):
		return ExitNotFound, "COLUMN_NOT_FOUND"
	case errors.Is(err, store.ErrPinLimitReached):
		return ExitValidation, "PIN_LIMIT_REACHED"
	case errors.Is(err, ErrReadInput):
		return ExitDataErr, "STDIN_READ_ERROR"
	case errors.Is(err, export.ErrUnknownFormat):
		return ExitUsage, "INVALID_FORMAT"
	case errors.Is(err, models.ErrEmptyTitle),
		errors.Is(err, models.ErrEmptyCompany),
		errors.Is(err, models.ErrUnknownTag),
		errors.Is(err, models.ErrInvalidActionDate),
		errors.Is(err, models.ErrInvalidThemeMode),
		errors.Is(err, models.ErrInvalidColor),
		errors.Is(err, models.ErrInvalidSortKey),
		errors.Is(err, models.ErrInvalidViewMode):
		return ExitValidation, "VALIDATION_ERROR"
	}
	return ExitError, "ERROR"
}
