// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUserNotFound is returned when no user exists for a username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken signals a signup conflict.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthorized signals a missing or rejected bearer token.
	ErrUnauthorized = errors.New("not authorized")
)
