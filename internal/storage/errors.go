package storage

import (
	"errors"
	"fmt"
)

// ErrLoadFailure matches every error returned by a Source when the product
// collection could not be loaded.
var ErrLoadFailure = errors.New("load failure")

// LoadError describes a failed load. Status is the HTTP status code for
// non-2xx responses and 0 otherwise.
type LoadError struct {
	Source string
	Status int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("load %s: HTTP error! status: %d", e.Source, e.Status)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

// Unwrap exposes both ErrLoadFailure and the underlying cause.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrLoadFailure}
	}
	return []error{ErrLoadFailure, e.Err}
}

func loadError(source string, err error) *LoadError {
	return &LoadError{Source: source, Err: err}
}
