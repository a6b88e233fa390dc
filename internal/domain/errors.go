package domain

import "errors"

// Sentinel errors for catalog operations
var (
	// ErrDuplicateEntry indicates a movie with the same title and release date already exists
	ErrDuplicateEntry = errors.New("movie already exists")

	// ErrNotFound indicates no movie has the requested id
	ErrNotFound = errors.New("movie not found")
)
