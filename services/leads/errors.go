package leads

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete is returned when a submit is attempted with a blank field
	ErrIncomplete = errors.New("all fields are required")

	// ErrNotOpen is returned when the form is not the active view
	ErrNotOpen = errors.New("demo form is not open")

	// ErrSubmitInFlight is returned when a submit is attempted while one is pending
	ErrSubmitInFlight = errors.New("a submission is already in progress")
)

// FieldError reports a field whose value is present but not acceptable
type FieldError struct {
	Field Field
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid value for %s", e.Field)
}
