package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidRole indicates that the provided role is not a known role.
	ErrInvalidRole = errors.New("invalid role")
)
