package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("case not found")
	// ErrInvalidField matches every *InvalidFieldError.
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidTransition matches every *InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")
)

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("case %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type InvalidFieldError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidFieldError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("invalid %s %q: must be one of %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// InvalidTransitionError reports a status outside the schema lifecycle.
// Any lifecycle status may follow any other.
type InvalidTransitionError struct {
	ID      string
	From    string
	To      string
	Allowed []string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("case %s: cannot move from %q to %q: must be one of %s", e.ID, e.From, e.To, strings.Join(e.Allowed, ", "))
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
