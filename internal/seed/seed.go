// Package seed provides the sample movies the catalog starts with.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"time"

	"github.com/mmcdole/reel/internal/catalog"
	"github.com/mmcdole/reel/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed movies.yaml
var defaultMovies []byte

// Record is one movie as it appears in a seed document
type Record struct {
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	Genre       string           `yaml:"genre"`
	AgeRating   domain.AgeRating `yaml:"age_rating"`
	ReleaseDate string           `yaml:"release_date"`
}

type document struct {
	Movies []Record `yaml:"movies"`
}

// Default returns the embedded sample records
func Default() ([]Record, error) {
	return Load(bytes.NewReader(defaultMovies))
}

// Load parses and validates a seed document
func Load(r io.Reader) ([]Record, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	for i, rec := range doc.Movies {
		if rec.Title == "" {
			return nil, fmt.Errorf("seed movie %d: missing title", i)
		}
		if !rec.AgeRating.Valid() {
			return nil, fmt.Errorf("seed movie %q: unknown age rating %q", rec.Title, rec.AgeRating)
		}
		if _, err := rec.Release(); err != nil {
			return nil, fmt.Errorf("seed movie %q: %w", rec.Title, err)
		}
	}

	return doc.Movies, nil
}

// Release parses the record's release date
func (r Record) Release() (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, r.ReleaseDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid release date %q: %w", r.ReleaseDate, err)
	}
	return t, nil
}

// Populate adds records to c in order through the catalog's create path,
// so the duplicate guard applies to seed data too.
func Populate(c *catalog.Catalog, records []Record) error {
	for _, rec := range records {
		release, err := rec.Release()
		if err != nil {
			return fmt.Errorf("seed movie %q: %w", rec.Title, err)
		}
		if _, err := c.Create(rec.Title, rec.Description, rec.Genre, rec.AgeRating, release); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}
	return nil
}
