// Package catalog holds the in-memory movie collection and the selection
// model the TUI renders from.
package catalog

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/reel/internal/domain"
)

// Catalog is an insertion-ordered collection of movies. Insertion order is
// display order. No two entries share both title and release date.
type Catalog struct {
	movies []domain.Movie
	newID  func() uuid.UUID
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{newID: uuid.New}
}

// Create appends a new movie and returns its id. It fails with
// domain.ErrDuplicateEntry if a movie with the same title and release date
// is already present.
func (c *Catalog) Create(title, description, genre string, rating domain.AgeRating, release time.Time) (uuid.UUID, error) {
	for _, m := range c.movies {
		if m.Title == title && domain.SameDate(m.ReleaseDate, release) {
			return uuid.Nil, fmt.Errorf("%q (%s): %w", title, release.Format(domain.DateFormat), domain.ErrDuplicateEntry)
		}
	}

	movie := domain.Movie{
		ID:          c.uniqueID(),
		Title:       title,
		Description: description,
		Genre:       genre,
		AgeRating:   rating,
		ReleaseDate: domain.NormalizeDate(release),
	}
	c.movies = append(c.movies, movie)

	return movie.ID, nil
}

// uniqueID draws ids until one is not held by a current entry
func (c *Catalog) uniqueID() uuid.UUID {
	for {
		id := c.newID()
		if c.indexOf(id) == -1 {
			return id
		}
	}
}

// Delete removes the movie with the given id. It fails with
// domain.ErrNotFound if no entry has that id. Positions after the removed
// entry shift down by one.
func (c *Catalog) Delete(id uuid.UUID) error {
	idx := c.indexOf(id)
	if idx == -1 {
		return fmt.Errorf("%s: %w", id, domain.ErrNotFound)
	}
	c.movies = slices.Delete(c.movies, idx, idx+1)
	return nil
}

// List returns the movies in insertion order. The returned slice is a copy.
func (c *Catalog) List() []domain.Movie {
	return slices.Clone(c.movies)
}

// Len returns the number of movies
func (c *Catalog) Len() int {
	return len(c.movies)
}

// At returns the movie at position i
func (c *Catalog) At(i int) (domain.Movie, bool) {
	if i < 0 || i >= len(c.movies) {
		return domain.Movie{}, false
	}
	return c.movies[i], true
}

func (c *Catalog) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(c.movies, func(m domain.Movie) bool {
		return m.ID == id
	})
}
