package store

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/jobzy/internal/events"
	"github.com/thenoetrevino/jobzy/internal/models"
)

// Criteria returns a copy of the current display criteria
func (s *Store) Criteria() models.Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria.Clone()
}

// SetSearchTerm replaces the free-text search
func (s *Store) SetSearchTerm(term string) {
	_ = s.updateCriteria(func(c *models.Criteria) error {
		c.SearchTerm = term
		return nil
	})
}

// SetSelectedTags replaces the tag filter. Duplicates are collapsed.
func (s *Store) SetSelectedTags(tags []models.Tag) error {
	for _, tag := range tags {
		if !tag.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownTag, string(tag))
		}
	}
	return s.updateCriteria(func(c *models.Criteria) error {
		c.SelectedTags = models.NormalizeTags(tags)
		return nil
	})
}

// ToggleTag adds tag to the filter, or removes it when already selected
func (s *Store) ToggleTag(tag models.Tag) error {
	if !tag.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownTag, string(tag))
	}
	return s.updateCriteria(func(c *models.Criteria) error {
		if i := slices.Index(c.SelectedTags, tag); i >= 0 {
			c.SelectedTags = slices.Delete(c.SelectedTags, i, i+1)
		} else {
			c.SelectedTags = append(c.SelectedTags, tag)
		}
		return nil
	})
}

// SetSort selects the ordering of visible cards
func (s *Store) SetSort(key models.SortKey) error {
	if _, err := models.ParseSortKey(string(key)); err != nil {
		return err
	}
	return s.updateCriteria(func(c *models.Criteria) error {
		c.Sort = key
		return nil
	})
}

// SetViewMode selects full or compact card rendering
func (s *Store) SetViewMode(mode models.ViewMode) error {
	if _, err := models.ParseViewMode(string(mode)); err != nil {
		return err
	}
	return s.updateCriteria(func(c *models.Criteria) error {
		c.ViewMode = mode
		return nil
	})
}

// SetPinnedFirst toggles whether pinned cards lead each column
func (s *Store) SetPinnedFirst(enabled bool) {
	_ = s.updateCriteria(func(c *models.Criteria) error {
		c.PinnedFirst = enabled
		return nil
	})
}

// updateCriteria applies fn and publishes a criteria event when anything changed
func (s *Store) updateCriteria(fn func(c *models.Criteria) error) error {
	s.mu.Lock()
	next := s.criteria.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	if criteriaEqual(s.criteria, next) {
		s.mu.Unlock()
		return nil
	}
	s.criteria = next
	event := events.Event{Type: events.EventCriteriaChanged, Timestamp: s.now()}
	s.mu.Unlock()

	s.publisher.Publish(event)
	return nil
}

func criteriaEqual(a, b models.Criteria) bool {
	return a.SearchTerm == b.SearchTerm &&
		a.Sort == b.Sort &&
		a.PinnedFirst == b.PinnedFirst &&
		a.ViewMode == b.ViewMode &&
		slices.Equal(a.SelectedTags, b.SelectedTags)
}
