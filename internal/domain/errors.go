package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when a queried entity (or entity set) does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a request is structurally valid but semantically wrong.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateEmail is returned when signing up with an email that is already registered.
	ErrDuplicateEmail = errors.New("email already in use")
)
