package repository

import (
	"database/sql"
	"errors"
)

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("conflict")
)

// UnexpectedError wraps any storage failure that is neither ErrNotFound nor ErrConflict.
// Detail keeps the native message for operators; callers should not parse it.
type UnexpectedError struct {
	Detail string
	err    error
}

// Unexpected builds an UnexpectedError from a native storage error.
func Unexpected(err error) *UnexpectedError {
	return &UnexpectedError{Detail: err.Error(), err: err}
}

func (e *UnexpectedError) Error() string {
	return "unexpected repository error: " + e.Detail
}

func (e *UnexpectedError) Unwrap() error {
	return e.err
}

// MapError translates a native storage error into the repository taxonomy.
// isUniqueViolation reports whether err is the store's unique-constraint failure.
// Errors that are already part of the taxonomy pass through untouched.
func MapError(err error, isUniqueViolation func(error) bool) error {
	if err == nil {
		return nil
	}

	var unexpected *UnexpectedError
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict), errors.As(err, &unexpected):
		return err
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case isUniqueViolation != nil && isUniqueViolation(err):
		return ErrConflict
	default:
		return Unexpected(err)
	}
}
