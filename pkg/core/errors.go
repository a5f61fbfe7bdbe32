package core

import (
	"errors"
	"fmt"
)

// Domain errors. The command layer matches these with errors.Is to decide
// between a user-facing message and a fatal failure.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicate      = errors.New("contact already exists")
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidPhone   = errors.New("invalid phone")
	ErrInvalidEmail   = errors.New("invalid email")
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidText    = errors.New("invalid note text")
	ErrInvalidHorizon = errors.New("invalid horizon")

	// ErrMalformedSnapshot marks records that fail validation at the
	// deserialization boundary.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)

// FieldError attaches the offending field and value to a domain error.
type FieldError struct {
	Base   error
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Base)
}

// Unwrap returns the base error for errors.Is support.
func (e *FieldError) Unwrap() error {
	return e.Base
}

// IsUserError reports whether err is a domain error that should be shown
// to the user rather than terminate the session.
func IsUserError(err error) bool {
	for _, kind := range []error{
		ErrNotFound,
		ErrDuplicate,
		ErrInvalidName,
		ErrInvalidPhone,
		ErrInvalidEmail,
		ErrInvalidDate,
		ErrInvalidText,
		ErrInvalidHorizon,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
