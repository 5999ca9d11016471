package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNoteNotFound           = errors.New("note not found")
	ErrNotAuthenticated       = errors.New("not authenticated")
	ErrValidation             = errors.New("validation error")
	ErrFeatureUnavailable     = errors.New("feature unavailable")
	ErrNotSupportedInDemoMode = errors.New("not supported in demo mode")

	ErrEmptyContent = fmt.Errorf("%w: content is required", ErrValidation)
)

// StoreError wraps a persistence failure that has no more specific class.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
