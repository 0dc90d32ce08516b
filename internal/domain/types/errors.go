package types

import "errors"

var (
	// ErrUserNotFound is returned when no record exists for a user ID.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when creating a user whose ID is already taken.
	ErrUserExists = errors.New("user already exists")
)
