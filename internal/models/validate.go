package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateCardInput checks the user supplied fields of a card.
// The first problem found is returned.
func ValidateCardInput(in CardInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(in.Company) == "" {
		return ErrEmptyCompany
	}
	for _, tag := range in.Tags {
		if !tag.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownTag, string(tag))
		}
	}
	if in.ActionDate != "" {
		if _, err := time.Parse(ActionDateLayout, in.ActionDate); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidActionDate, in.ActionDate)
		}
	}
	if in.ColumnID != "" && !in.ColumnID.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, string(in.ColumnID))
	}
	return nil
}

// NormalizeTags drops duplicate tags, keeping the first occurrence
func NormalizeTags(tags []Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	seen := make(map[Tag]struct{}, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// IsHexColor reports whether s is a #RRGGBB color
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// ValidateSettings checks theme mode and primary color
func ValidateSettings(s Settings) error {
	if !s.Theme.Mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidThemeMode, string(s.Theme.Mode))
	}
	if !IsHexColor(s.Theme.PrimaryColor) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, s.Theme.PrimaryColor)
	}
	return nil
}
