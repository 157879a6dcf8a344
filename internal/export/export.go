// Package export writes the board out as CSV, JSON or YAML.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/jobzy/internal/models"
)

// Format selects the export encoding
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than csv, json and yaml
var ErrUnknownFormat = errors.New("format must be csv, json or yaml")

// Header is the first CSV row
var Header = []string{
	"Job Title",
	"Company",
	"Status",
	"Description",
	"Job Link",
	"Min Experience",
	"Tags",
	"Action Task",
	"Action Date",
	"Date Created",
}

// ParseFormat validates a format name. "yml" is accepted for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Filename returns the default export file name for the given day,
// e.g. jobzy-export-2024-03-01.csv
func Filename(f Format, day time.Time) string {
	return fmt.Sprintf("jobzy-export-%s.%s", day.Format(models.ActionDateLayout), f)
}

// Write encodes snap to w in format f
func Write(w io.Writer, f Format, snap models.Snapshot) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, snap.Columns)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// WriteCSV writes one row per card, column by column in board order.
// Status is the column title and tags are joined with ", ".
func WriteCSV(w io.Writer, columns []models.Column) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, col := range columns {
		for _, card := range col.Cards {
			if err := cw.Write(Row(col, card)); err != nil {
				return fmt.Errorf("failed to write csv row for card %s: %w", card.ID, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// Row returns the CSV fields of one card
func Row(col models.Column, card models.Card) []string {
	tags := make([]string, len(card.Tags))
	for i, tag := range card.Tags {
		tags[i] = string(tag)
	}

	created := ""
	if !card.DateCreated.IsZero() {
		created = card.DateCreated.Local().Format(models.ActionDateLayout)
	}

	return []string{
		card.Title,
		card.Company,
		col.Title,
		card.Description,
		card.JobLink,
		card.MinExperience,
		strings.Join(tags, ", "),
		card.ActionTask,
		card.ActionDate,
		created,
	}
}
