package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStateTransition is returned when a transition is attempted
	// on a booking that is no longer pending.
	ErrInvalidStateTransition = errors.New("booking is not pending")

	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
)

// ValidationError reports a bad input field. Nothing is persisted when one
// is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError wraps a failed gateway write. Local state is unchanged.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NotificationError wraps a failed email send. The persisted state change it
// follows has already committed, so callers treat it as a warning.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification send failed: %v", e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
