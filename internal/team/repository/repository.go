// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	teamModel "github.com/lanpartylabs/tournament_api/internal/team/model"
	tournamentModel "github.com/lanpartylabs/tournament_api/internal/tournament/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a new team with a generated identifier.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByID finds a team by identifier.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// GetTournamentForUpdate fetches the tournament row, locked for the
	// duration of the surrounding transaction on dialects that support it.
	GetTournamentForUpdate(ctx context.Context, id string) (*tournamentModel.Tournament, error)

	// CountByTournament counts a tournament's teams. An empty status set
	// counts every team.
	CountByTournament(ctx context.Context, tournamentID string, statuses []string) (int64, error)

	// UpdateStatus persists a team status change.
	UpdateStatus(ctx context.Context, team *teamModel.Team, status string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new team with a generated identifier.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	if team.RegisteredAt.IsZero() {
		team.RegisteredAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID finds a team by identifier.
func (r *repository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// GetTournamentForUpdate fetches the tournament row for a registration.
// On PostgreSQL the row is locked (SELECT ... FOR UPDATE) so that two
// concurrent registrations serialize on the capacity check. SQLite has no
// row locks; its single-writer model covers the tests.
func (r *repository) GetTournamentForUpdate(ctx context.Context, id string) (*tournamentModel.Tournament, error) {
	query := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var tournament tournamentModel.Tournament
	err := query.
		Where("id = ?", id).
		First(&tournament).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTournamentNotFound
		}
		return nil, err
	}

	return &tournament, nil
}

// CountByTournament counts a tournament's teams, optionally filtered to the
// given statuses.
func (r *repository) CountByTournament(ctx context.Context, tournamentID string, statuses []string) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("tournament_id = ?", tournamentID)

	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateStatus persists a team status change.
func (r *repository) UpdateStatus(ctx context.Context, team *teamModel.Team, status string) error {
	err := r.db.WithContext(ctx).
		Model(team).
		Update("status", status).Error
	if err != nil {
		return err
	}

	team.Status = status
	return nil
}
