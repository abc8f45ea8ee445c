// Package repository provides data access layer for the tournament module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	teamModel "github.com/lanpartylabs/tournament_api/internal/team/model"
	tournamentModel "github.com/lanpartylabs/tournament_api/internal/tournament/model"
	userModel "github.com/lanpartylabs/tournament_api/internal/user/model"
)

// Repository defines the interface for tournament data access operations.
type Repository interface {
	// List returns all tournaments ordered by creation time descending, each
	// with its raw team count and creator identity.
	List(ctx context.Context) ([]tournamentModel.TournamentSummary, error)

	// GetByID finds a tournament by identifier.
	GetByID(ctx context.Context, id string) (*tournamentModel.Tournament, error)

	// GetDetail returns a tournament with its teams ordered by registration
	// time ascending, including captain identity and players.
	GetDetail(ctx context.Context, id string) (*tournamentModel.TournamentDetail, error)

	// Create creates a new tournament with a generated identifier.
	Create(ctx context.Context, tournament *tournamentModel.Tournament) error

	// Update persists changes to an existing tournament.
	Update(ctx context.Context, tournament *tournamentModel.Tournament) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new tournament repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List returns all tournaments ordered by creation time descending.
func (r *repository) List(ctx context.Context) ([]tournamentModel.TournamentSummary, error) {
	var tournaments []tournamentModel.Tournament
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&tournaments).Error
	if err != nil {
		return nil, err
	}

	counts, err := r.teamCounts(ctx)
	if err != nil {
		return nil, err
	}

	creatorIDs := make([]string, 0, len(tournaments))
	for _, t := range tournaments {
		creatorIDs = append(creatorIDs, t.CreatedByID)
	}
	creators, err := r.userRefs(ctx, creatorIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]tournamentModel.TournamentSummary, 0, len(tournaments))
	for _, t := range tournaments {
		summaries = append(summaries, tournamentModel.TournamentSummary{
			Tournament: t,
			TeamCount:  counts[t.ID],
			CreatedBy:  creators[t.CreatedByID],
		})
	}
	return summaries, nil
}

// GetByID finds a tournament by identifier.
func (r *repository) GetByID(ctx context.Context, id string) (*tournamentModel.Tournament, error) {
	var tournament tournamentModel.Tournament
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tournament).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tournamentModel.ErrTournamentNotFound
		}
		return nil, err
	}

	return &tournament, nil
}

// GetDetail returns a tournament with its nested team list.
func (r *repository) GetDetail(ctx context.Context, id string) (*tournamentModel.TournamentDetail, error) {
	tournament, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var teams []teamModel.Team
	err = r.db.WithContext(ctx).
		Where("tournament_id = ?", id).
		Order("registered_at ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}

	refIDs := make([]string, 0, len(teams)+1)
	refIDs = append(refIDs, tournament.CreatedByID)
	for _, team := range teams {
		refIDs = append(refIDs, team.CaptainID)
	}
	refs, err := r.userRefs(ctx, refIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]tournamentModel.TeamEntry, 0, len(teams))
	for _, team := range teams {
		entries = append(entries, tournamentModel.TeamEntry{
			ID:           team.ID,
			TeamName:     team.TeamName,
			Captain:      refs[team.CaptainID],
			Players:      team.Players,
			Status:       team.Status,
			RegisteredAt: team.RegisteredAt,
		})
	}

	return &tournamentModel.TournamentDetail{
		Tournament: *tournament,
		CreatedBy:  refs[tournament.CreatedByID],
		Teams:      entries,
	}, nil
}

// Create creates a new tournament with a generated identifier.
func (r *repository) Create(ctx context.Context, tournament *tournamentModel.Tournament) error {
	now := time.Now()
	if tournament.ID == "" {
		tournament.ID = uuid.NewString()
	}
	if tournament.Status == "" {
		tournament.Status = tournamentModel.StatusDraft
	}
	tournament.CreatedAt = now
	tournament.UpdatedAt = now

	return r.db.WithContext(ctx).Create(tournament).Error
}

// Update persists changes to an existing tournament.
func (r *repository) Update(ctx context.Context, tournament *tournamentModel.Tournament) error {
	return r.db.WithContext(ctx).Save(tournament).Error
}

// teamCounts returns the number of teams per tournament, all statuses counted.
func (r *repository) teamCounts(ctx context.Context) (map[string]int64, error) {
	type row struct {
		TournamentID string
		Count        int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Table("teams").
		Select("tournament_id, count(*) as count").
		Group("tournament_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.TournamentID] = r.Count
	}
	return counts, nil
}

// userRefs loads the reduced identity shape for a set of user IDs.
func (r *repository) userRefs(ctx context.Context, ids []string) (map[string]userModel.Ref, error) {
	refs := make(map[string]userModel.Ref, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	var users []userModel.User
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		refs[u.ID] = u.ToRef()
	}
	return refs, nil
}
