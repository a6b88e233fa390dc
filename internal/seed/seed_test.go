package seed

import (
	"errors"
	"strings"
	"testing"

	"github.com/mmcdole/reel/internal/catalog"
	"github.com/mmcdole/reel/internal/domain"
)

func TestDefault(t *testing.T) {
	records, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}

	c := catalog.New()
	if err := Populate(c, records); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if c.Len() != 5 {
		t.Fatalf("expected 5 movies, got %d", c.Len())
	}

	first := c.List()[0]
	if first.Title != "The Lost Treasure Expedition" {
		t.Errorf("unexpected first title %q", first.Title)
	}
	if first.FormattedReleaseDate() != "2022-07-15" {
		t.Errorf("unexpected release date %s", first.FormattedReleaseDate())
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "bad rating",
			doc:  "movies:\n  - title: A\n    age_rating: NC-17\n    release_date: \"2020-01-01\"\n",
			want: "unknown age rating",
		},
		{
			name: "bad date",
			doc:  "movies:\n  - title: A\n    age_rating: G\n    release_date: \"01/02/2020\"\n",
			want: "invalid release date",
		},
		{
			name: "missing title",
			doc:  "movies:\n  - age_rating: G\n    release_date: \"2020-01-01\"\n",
			want: "missing title",
		},
		{
			name: "unknown field",
			doc:  "movies:\n  - title: A\n    rating: G\n",
			want: "failed to parse seed data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestPopulate_Duplicate(t *testing.T) {
	records := []Record{
		{Title: "X", Description: "d", Genre: "g", AgeRating: "PG", ReleaseDate: "2020-01-01"},
		{Title: "X", Description: "d2", Genre: "g2", AgeRating: "R", ReleaseDate: "2020-01-01"},
	}

	c := catalog.New()
	err := Populate(c, records)
	if !errors.Is(err, domain.ErrDuplicateEntry) {
		t.Fatalf("expected ErrDuplicateEntry, got %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 movie, got %d", c.Len())
	}
}
