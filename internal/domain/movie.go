package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the layout used to display and parse release dates
const DateFormat = "2006-01-02"

// AgeRating is a content rating. It is stored as a free string; the
// constants below are the conventional values.
type AgeRating string

const (
	AgeRatingG    AgeRating = "G"
	AgeRatingPG   AgeRating = "PG"
	AgeRatingPG13 AgeRating = "PG-13"
	AgeRatingR    AgeRating = "R"
	AgeRatingR17  AgeRating = "R-17"
)

// AgeRatings lists the known ratings in ascending order
var AgeRatings = []AgeRating{AgeRatingG, AgeRatingPG, AgeRatingPG13, AgeRatingR, AgeRatingR17}

// Valid reports whether r is one of the known ratings
func (r AgeRating) Valid() bool {
	for _, known := range AgeRatings {
		if r == known {
			return true
		}
	}
	return false
}

// Movie is an immutable catalog record
type Movie struct {
	ID          uuid.UUID // Generated at creation, never reused
	Title       string
	Description string
	Genre       string
	AgeRating   AgeRating
	ReleaseDate time.Time // Midnight UTC
}

// FormattedReleaseDate returns the release date as YYYY-MM-DD
func (m Movie) FormattedReleaseDate() string {
	return m.ReleaseDate.Format(DateFormat)
}

// NormalizeDate truncates t to its calendar date at midnight UTC
func NormalizeDate(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
