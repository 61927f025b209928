package service

import "errors"

// Error taxonomy surfaced to controllers. Anything else coming out of a
// service is treated as an internal error and never echoed to the caller.
var (
	ErrUsernameTaken   = errors.New("username already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("incorrect password")

	// ErrEntryNotFound covers both nonexistent entries and entries owned by
	// another user, so non-owners cannot probe for existence.
	ErrEntryNotFound = errors.New("diary entry not found")
)
