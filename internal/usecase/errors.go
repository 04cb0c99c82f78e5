package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// invalid tags a domain validation error so callers can match ErrInvalidInput
// while keeping the original message.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(err, ErrInvalidInput)
}

// conflict tags a uniqueness or referential integrity error.
func conflict(err error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(err, ErrConflict)
}
