package utils

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrStopNotFound       = errors.New("stop not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("user already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")

	// ErrPartialCascade marks a cascading delete that removed the parent row
	// but failed part-way through deleting descendants. The wrapped error is
	// whatever the failing sub-step returned.
	ErrPartialCascade = errors.New("cascade delete incomplete")
)

// ValidationError collects every violated field in a single write attempt,
// not just the first one.
type ValidationError struct {
	Fields []string
}

func (v *ValidationError) Error() string {
	return strings.Join(v.Fields, ". ")
}

func (v *ValidationError) Add(msg string) {
	v.Fields = append(v.Fields, msg)
}

// Err returns nil when no field was violated, so callers can write
// `return v.Err()` at the end of a validation pass.
func (v *ValidationError) Err() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return v
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
