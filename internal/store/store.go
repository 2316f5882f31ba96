// Package store holds the persistence backends for users and exercises.
package store

import "errors"

var (
	// ErrNotFound is returned when a user id does not resolve to a record,
	// including ids that are not valid for the backend.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername is returned when the unique username rule is hit.
	ErrDuplicateUsername = errors.New("username already taken")
)
