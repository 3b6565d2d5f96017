package user

import "errors"

var (
	// ErrUserExists indicates a user with that name already has a timeline.
	ErrUserExists = errors.New("user already has a timeline")
	// ErrUserNotFound indicates the user doesn't exist.
	ErrUserNotFound = errors.New("user does not exist")
	// ErrNoDefaultUser indicates no default user has been chosen.
	ErrNoDefaultUser = errors.New("no default user set")
	// ErrInvalidInput indicates invalid user input.
	ErrInvalidInput = errors.New("invalid user input")
)
