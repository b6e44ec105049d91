package pokemon

import (
	"errors"
	"fmt"
)

// ErrBlankName is returned for an empty or whitespace-only name.
var ErrBlankName = errors.New("name is required")

// ErrNoValidFlavorText means the species exists but has no English entry.
var ErrNoValidFlavorText = errors.New("no valid flavor text found")

// NotFoundError means the species provider does not know the name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Pokemon '%s' not found", e.Name)
}

// UpstreamError means a provider answered with something we cannot use.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("unexpected response body from service %s", e.Service)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
