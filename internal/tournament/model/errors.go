package model

import "errors"

var (
	// ErrTournamentNotFound indicates that the requested tournament does not exist.
	ErrTournamentNotFound = errors.New("tournament not found")
)

// ValidationError indicates an invalid field in an admin create/update
// request. The message is safe to surface to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
