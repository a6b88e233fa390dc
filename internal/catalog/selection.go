package catalog

import (
	"fmt"

	"github.com/mmcdole/reel/internal/domain"
)

// noSelection marks the absence of a selected row
const noSelection = -1

// Selection wraps a Catalog and tracks a single selected position.
// The position is a view-layer index: it is revalidated against the
// catalog's current length on every access and never compared across
// mutations.
type Selection struct {
	catalog  *Catalog
	selected int
}

// NewSelection creates a selection model over c with nothing selected
func NewSelection(c *Catalog) *Selection {
	return &Selection{catalog: c, selected: noSelection}
}

// List returns the catalog entries in display order
func (s *Selection) List() []domain.Movie {
	return s.catalog.List()
}

// Len returns the number of catalog entries
func (s *Selection) Len() int {
	return s.catalog.Len()
}

// Selected returns the selected index, or false when nothing is selected
func (s *Selection) Selected() (int, bool) {
	s.revalidate()
	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}

// SelectedMovie returns the movie at the selected index
func (s *Selection) SelectedMovie() (domain.Movie, bool) {
	idx, ok := s.Selected()
	if !ok {
		return domain.Movie{}, false
	}
	return s.catalog.At(idx)
}

// Next moves the selection down one row, clamped to the last row.
// With nothing selected it selects the first row.
func (s *Selection) Next() {
	s.revalidate()
	n := s.catalog.Len()
	switch {
	case n == 0:
		return
	case s.selected == noSelection:
		s.selected = 0
	case s.selected < n-1:
		s.selected++
	}
}

// Prev moves the selection up one row, clamped to the first row.
// With nothing selected it selects the first row.
func (s *Selection) Prev() {
	s.revalidate()
	n := s.catalog.Len()
	switch {
	case n == 0:
		return
	case s.selected == noSelection:
		s.selected = 0
	case s.selected > 0:
		s.selected--
	}
}

// DeleteSelected removes the selected movie from the catalog and clears the
// selection. Neighbouring rows are not re-selected. It is a no-op when
// nothing is selected.
func (s *Selection) DeleteSelected() (domain.Movie, error) {
	movie, ok := s.SelectedMovie()
	if !ok {
		return domain.Movie{}, nil
	}
	s.selected = noSelection

	if err := s.catalog.Delete(movie.ID); err != nil {
		return domain.Movie{}, fmt.Errorf("delete selected movie: %w", err)
	}
	return movie, nil
}

// revalidate drops an index the catalog no longer covers
func (s *Selection) revalidate() {
	if s.selected >= s.catalog.Len() {
		s.selected = noSelection
	}
}
