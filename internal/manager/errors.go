package manager

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTitle          = errors.New("title is required")
	ErrInvalidStatusFilter = errors.New("status filter must be all, pending or completed")
)

// ValidationError reports input rejected before it reaches the store.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
