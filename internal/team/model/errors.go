package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated indicates that no authenticated identity was supplied.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrMissingFields indicates that tournamentId, teamName or players is absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrTournamentNotFound indicates that the referenced tournament does not exist.
	ErrTournamentNotFound = errors.New("tournament not found")
	// ErrNotOpenForRegistration indicates that the tournament status is not open.
	ErrNotOpenForRegistration = errors.New("tournament is not open for registration")
	// ErrTournamentFull indicates that the tournament has reached max_teams.
	ErrTournamentFull = errors.New("tournament is full")
	// ErrDeadlinePassed indicates that the registration deadline is in the past.
	ErrDeadlinePassed = errors.New("registration deadline has passed")
	// ErrIncompletePlayerData indicates that a player record has an empty field.
	ErrIncompletePlayerData = errors.New("all player fields are required")
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidStatus indicates an unknown target status.
	ErrInvalidStatus = errors.New("invalid team status")
	// ErrInvalidTransition indicates a disallowed status transition.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// WrongTeamSizeError indicates a roster whose length does not match the
// tournament's players_per_team. Carries the expected count so handlers can
// surface it in the message.
type WrongTeamSizeError struct {
	Expected int
}

func (e *WrongTeamSizeError) Error() string {
	return fmt.Sprintf("team must have exactly %d players", e.Expected)
}
