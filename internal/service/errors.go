package service

import (
	"errors"
	"strings"
)

var (
	ErrMovieNotFound          = errors.New("movie not found.")
	ErrCuratedListNotFound    = errors.New("curated list not found.")
	ErrNoMoviesFound          = errors.New("No movies found.")
	ErrUnparseableReleaseDate = errors.New("unparseable release date")
	ErrMovieNotResolved       = errors.New("movie not found after resolution")
	ErrCatalogUnavailable     = errors.New("catalog unavailable")
)

// ValidationError reports malformed or missing input. It is returned before
// any side effect happens.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}

func newValidationError(messages ...string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
