package model

import (
	"time"

	teamModel "github.com/lanpartylabs/tournament_api/internal/team/model"
	userModel "github.com/lanpartylabs/tournament_api/internal/user/model"
)

// TournamentSummary is a tournament list entry: the tournament itself, its
// raw team count over all statuses, and the creator identity.
type TournamentSummary struct {
	Tournament
	TeamCount int64         `json:"teamCount"`
	CreatedBy userModel.Ref `json:"createdBy"`
}

// TeamEntry is a registered team as shown on a tournament detail page:
// captain exposure is limited to identifier and email.
type TeamEntry struct {
	ID           string               `json:"id"`
	TeamName     string               `json:"teamName"`
	Captain      userModel.Ref        `json:"captain"`
	Players      teamModel.PlayerList `json:"players"`
	Status       string               `json:"status"`
	RegisteredAt time.Time            `json:"registeredAt"`
}

// TournamentDetail is the single-tournament view with the nested team list
// ordered by registration time ascending.
type TournamentDetail struct {
	Tournament
	CreatedBy userModel.Ref `json:"createdBy"`
	Teams     []TeamEntry   `json:"teams"`
}

// CreateTournamentRequest represents the admin request to create a tournament.
type CreateTournamentRequest struct {
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Game                 string    `json:"game"`
	PlayersPerTeam       int       `json:"playersPerTeam"`
	MaxTeams             int       `json:"maxTeams"`
	StartDate            time.Time `json:"startDate"`
	EndDate              time.Time `json:"endDate"`
	RegistrationDeadline time.Time `json:"registrationDeadline"`
	Status               string    `json:"status"`
}

// Validate checks the create request against the schema constraints.
func (r *CreateTournamentRequest) Validate() error {
	if r.Title == "" {
		return NewValidationError("Title is required")
	}
	if r.Game == "" {
		return NewValidationError("Game is required")
	}
	if r.PlayersPerTeam < MinPlayersPerTeam || r.PlayersPerTeam > MaxPlayersPerTeam {
		return NewValidationError("Players per team must be between 1 and 10")
	}
	if r.MaxTeams < 1 {
		return NewValidationError("Max teams must be at least 1")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() || r.RegistrationDeadline.IsZero() {
		return NewValidationError("Start date, end date and registration deadline are required")
	}
	if r.EndDate.Before(r.StartDate) {
		return NewValidationError("End date must not be before start date")
	}
	if r.Status != "" && !ValidStatus(r.Status) {
		return NewValidationError("Invalid tournament status")
	}
	return nil
}

// UpdateTournamentRequest represents the admin request to partially update a
// tournament. Nil fields are left unchanged.
type UpdateTournamentRequest struct {
	Title                *string    `json:"title"`
	Description          *string    `json:"description"`
	Game                 *string    `json:"game"`
	PlayersPerTeam       *int       `json:"playersPerTeam"`
	MaxTeams             *int       `json:"maxTeams"`
	StartDate            *time.Time `json:"startDate"`
	EndDate              *time.Time `json:"endDate"`
	RegistrationDeadline *time.Time `json:"registrationDeadline"`
	Status               *string    `json:"status"`
}

// Apply validates the update against the current tournament and applies the
// changed fields.
func (r *UpdateTournamentRequest) Apply(t *Tournament) error {
	if r.Title != nil {
		if *r.Title == "" {
			return NewValidationError("Title is required")
		}
		t.Title = *r.Title
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Game != nil {
		if *r.Game == "" {
			return NewValidationError("Game is required")
		}
		t.Game = *r.Game
	}
	if r.PlayersPerTeam != nil {
		if *r.PlayersPerTeam < MinPlayersPerTeam || *r.PlayersPerTeam > MaxPlayersPerTeam {
			return NewValidationError("Players per team must be between 1 and 10")
		}
		t.PlayersPerTeam = *r.PlayersPerTeam
	}
	if r.MaxTeams != nil {
		if *r.MaxTeams < 1 {
			return NewValidationError("Max teams must be at least 1")
		}
		t.MaxTeams = *r.MaxTeams
	}
	if r.StartDate != nil {
		t.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		t.EndDate = *r.EndDate
	}
	if t.EndDate.Before(t.StartDate) {
		return NewValidationError("End date must not be before start date")
	}
	if r.RegistrationDeadline != nil {
		t.RegistrationDeadline = *r.RegistrationDeadline
	}
	if r.Status != nil {
		if !ValidStatus(*r.Status) {
			return NewValidationError("Invalid tournament status")
		}
		t.Status = *r.Status
	}
	return nil
}
