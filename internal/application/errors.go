package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidSubject = errors.New("invalid subject")
	ErrNoRecord       = errors.New("no metadata record")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SubjectError reports a path that cannot serve as a record subject,
// wrapping the sentinel that classifies why.
type SubjectError struct {
	Path   string
	Reason error
}

func (e *SubjectError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Reason)
}

func (e *SubjectError) Unwrap() error {
	return e.Reason
}
