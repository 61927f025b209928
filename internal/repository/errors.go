package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the query. For diary
	// entries this covers both nonexistent ids and ids owned by another
	// user; callers cannot tell the two apart.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername is returned when an insert violates the unique
	// constraint on users.username.
	ErrDuplicateUsername = errors.New("username already exists")
)
