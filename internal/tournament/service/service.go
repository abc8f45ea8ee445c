// Package service provides business logic layer for the tournament module.
package service

import (
	"context"

	"go.uber.org/zap"

	tournamentModel "github.com/lanpartylabs/tournament_api/internal/tournament/model"
	"github.com/lanpartylabs/tournament_api/internal/tournament/repository"
)

// Service defines the interface for tournament business logic operations.
type Service interface {
	// List returns all tournaments, newest first.
	List(ctx context.Context) ([]tournamentModel.TournamentSummary, error)

	// Get returns a tournament with its registered teams.
	Get(ctx context.Context, id string) (*tournamentModel.TournamentDetail, error)

	// Create creates a tournament owned by the given creator (admin only,
	// enforced at the route level).
	Create(ctx context.Context, creatorID string, req *tournamentModel.CreateTournamentRequest) (*tournamentModel.Tournament, error)

	// Update applies a partial update to a tournament.
	Update(ctx context.Context, id string, req *tournamentModel.UpdateTournamentRequest) (*tournamentModel.Tournament, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new tournament service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// List returns all tournaments, newest first.
func (s *service) List(ctx context.Context) ([]tournamentModel.TournamentSummary, error) {
	return s.repo.List(ctx)
}

// Get returns a tournament with its registered teams.
func (s *service) Get(ctx context.Context, id string) (*tournamentModel.TournamentDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

// Create creates a tournament owned by the given creator.
func (s *service) Create(
	ctx context.Context,
	creatorID string,
	req *tournamentModel.CreateTournamentRequest,
) (*tournamentModel.Tournament, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tournament := &tournamentModel.Tournament{
		Title:                req.Title,
		Description:          req.Description,
		Game:                 req.Game,
		PlayersPerTeam:       req.PlayersPerTeam,
		MaxTeams:             req.MaxTeams,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		RegistrationDeadline: req.RegistrationDeadline,
		Status:               req.Status,
		CreatedByID:          creatorID,
	}

	if err := s.repo.Create(ctx, tournament); err != nil {
		return nil, err
	}

	s.logger.Infow("tournament created",
		"tournament_id", tournament.ID,
		"title", tournament.Title,
		"created_by", creatorID,
	)
	return tournament, nil
}

// Update applies a partial update to a tournament.
func (s *service) Update(
	ctx context.Context,
	id string,
	req *tournamentModel.UpdateTournamentRequest,
) (*tournamentModel.Tournament, error) {
	tournament, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.Apply(tournament); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, tournament); err != nil {
		return nil, err
	}

	return tournament, nil
}
