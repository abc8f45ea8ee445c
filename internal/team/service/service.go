// Package service provides business logic layer for the team module,
// including the registration validation ladder.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lanpartylabs/tournament_api/internal/config"
	teamModel "github.com/lanpartylabs/tournament_api/internal/team/model"
	"github.com/lanpartylabs/tournament_api/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// Register validates a registration request against the current
	// tournament state and creates the team on success.
	Register(ctx context.Context, captainID string, req *teamModel.RegisterTeamRequest) (*teamModel.Team, error)

	// UpdateStatus applies an administrative status transition to a team.
	UpdateStatus(ctx context.Context, teamID, status string) (*teamModel.Team, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	cfg    config.RegistrationConfig
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, db *gorm.DB, cfg config.RegistrationConfig, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

// Register validates a registration request and creates the team.
//
// Checks run in a fixed order and short-circuit on the first failure:
// identity, field presence, tournament existence, open status, capacity,
// deadline, roster size, player completeness. Everything that reads
// tournament state runs inside one transaction holding the tournament row,
// so two concurrent registrations cannot both pass the capacity check.
// Exactly one insert happens on success and none on any rejection.
func (s *service) Register(
	ctx context.Context,
	captainID string,
	req *teamModel.RegisterTeamRequest,
) (*teamModel.Team, error) {
	if captainID == "" {
		return nil, teamModel.ErrUnauthenticated
	}

	if !req.HasRequiredFields() {
		return nil, teamModel.ErrMissingFields
	}

	var team *teamModel.Team
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		tournament, err := txRepo.GetTournamentForUpdate(ctx, req.TournamentID)
		if err != nil {
			return err
		}

		if !tournament.IsOpen() {
			return teamModel.ErrNotOpenForRegistration
		}

		count, err := txRepo.CountByTournament(ctx, tournament.ID, s.cfg.CountedStatuses)
		if err != nil {
			return err
		}
		if count >= int64(tournament.MaxTeams) {
			return teamModel.ErrTournamentFull
		}

		if time.Now().After(tournament.RegistrationDeadline) {
			return teamModel.ErrDeadlinePassed
		}

		if len(req.Players) != tournament.PlayersPerTeam {
			return &teamModel.WrongTeamSizeError{Expected: tournament.PlayersPerTeam}
		}

		for _, player := range req.Players {
			if !player.IsComplete() {
				return teamModel.ErrIncompletePlayerData
			}
		}

		// Name and players are stored verbatim, no trimming or normalization.
		team = &teamModel.Team{
			TournamentID: tournament.ID,
			TeamName:     req.TeamName,
			CaptainID:    captainID,
			Players:      req.Players,
			Status:       teamModel.StatusPending,
			RegisteredAt: time.Now(),
		}
		return txRepo.Create(ctx, team)
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("team registered",
		"team_id", team.ID,
		"tournament_id", team.TournamentID,
		"captain_id", captainID,
	)
	return team, nil
}

// UpdateStatus applies an administrative status transition to a team.
func (s *service) UpdateStatus(ctx context.Context, teamID, status string) (*teamModel.Team, error) {
	if !teamModel.ValidStatus(status) {
		return nil, teamModel.ErrInvalidStatus
	}

	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if !teamModel.CanTransition(team.Status, status) {
		return nil, teamModel.ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, team, status); err != nil {
		return nil, err
	}

	return team, nil
}
