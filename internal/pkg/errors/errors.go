package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing rows.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for rejected input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict is a generic sentinel for uniqueness violations.
	ErrConflict = errors.New("conflict")
)
