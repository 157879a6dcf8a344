package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thenoetrevino/jobzy/internal/models"
	"github.com/thenoetrevino/jobzy/internal/store"
)

var (
	// ErrCardNotFound indicates no card matches the given id or prefix
	ErrCardNotFound = errors.New("card not found")

	// ErrAmbiguousID indicates a prefix that matches more than one card
	ErrAmbiguousID = errors.New("card id prefix is ambiguous")

	// ErrReadInput indicates input piped on stdin could not be read
	ErrReadInput = errors.New("failed to read stdin")
)

// ResolveCard finds a card by full id or by a unique id prefix
func ResolveCard(s *store.Store, idOrPrefix string) (models.Card, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return models.Card{}, fmt.Errorf("%w: empty id", ErrCardNotFound)
	}
	if card, ok := s.Card(idOrPrefix); ok {
		return card, nil
	}

	var matches []models.Card
	for _, col := range s.Columns() {
		for _, card := range col.Cards {
			if strings.HasPrefix(card.ID, idOrPrefix) {
				matches = append(matches, card)
			}
		}
	}
	switch len(matches) {
	case 0:
		return models.Card{}, fmt.Errorf("%w: %s", ErrCardNotFound, idOrPrefix)
	case 1:
		return matches[0], nil
	}
	return models.Card{}, fmt.Errorf("%w: %s matches %d cards", ErrAmbiguousID, idOrPrefix, len(matches))
}

// FindColumn resolves a column by id ("applied") or title ("Online Assessment"),
// case-insensitively.
func FindColumn(name string) (models.ColumnID, error) {
	id, ok := models.ParseColumnID(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", models.ErrUnknownColumn, name)
	}
	return id, nil
}

// FormatAvailableColumns lists column ids for error suggestions
func FormatAvailableColumns() string {
	ids := models.ColumnIDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}

// FormatAvailableTags lists tag keys for error suggestions
func FormatAvailableTags() string {
	tags := models.AllTags()
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Key()
	}
	return strings.Join(names, ", ")
}

// ParseTags resolves tag keys, labels or display values. Each value may hold
// several tags separated by commas.
func ParseTags(values []string) ([]models.Tag, error) {
	var tags []models.Tag
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			tag, ok := models.ParseTag(part)
			if !ok {
				return nil, fmt.Errorf("%w: %q", models.ErrUnknownTag, strings.TrimSpace(part))
			}
			tags = append(tags, tag)
		}
	}
	return models.NormalizeTags(tags), nil
}

// ReadText returns value, or all of r when value is "-"
func ReadText(value string, r io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	if r == nil {
		r = os.Stdin
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// ShortID returns the first 8 characters of a card id for display
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// Confirm asks a yes/no question on out and reads the answer from in.
// Anything but "y" or "yes" declines.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	if _, err := fmt.Fprintf(out, "%s (y/N): ", prompt); err != nil {
		return false
	}
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
