package pokeapi

import (
	"errors"
	"fmt"
)

var (
	// ErrSpeciesNotFound is returned when PokeAPI answers 404.
	ErrSpeciesNotFound = errors.New("pokeapi: species not found")

	// ErrEmptyBody is returned when PokeAPI answers 200 with no usable payload.
	ErrEmptyBody = errors.New("pokeapi: empty response body")

	// ErrBlankName is returned before any request is made.
	ErrBlankName = errors.New("pokeapi: name is required")
)

// StatusError is a non-200, non-404 answer from PokeAPI.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pokeapi: status %d: %s", e.StatusCode, e.Body)
}
