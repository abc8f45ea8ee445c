// Package model provides domain models and DTOs for the tournament module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Tournament statuses.
const (
	StatusDraft    = "draft"
	StatusOpen     = "open"
	StatusClosed   = "closed"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Roster size bounds for players_per_team.
const (
	MinPlayersPerTeam = 1
	MaxPlayersPerTeam = 10
)

// Tournament represents a tournament entity.
// Matches the tournaments table schema.
type Tournament struct {
	ID                   string    `gorm:"primaryKey;column:id;type:uuid"                  json:"id"`
	Title                string    `gorm:"column:title;type:varchar(255);not null"         json:"title"`
	Description          string    `gorm:"column:description;type:text"                    json:"description"`
	Game                 string    `gorm:"column:game;type:varchar(255);not null"          json:"game"`
	PlayersPerTeam       int       `gorm:"column:players_per_team;not null"                json:"playersPerTeam"`
	MaxTeams             int       `gorm:"column:max_teams;not null"                       json:"maxTeams"`
	StartDate            time.Time `gorm:"column:start_date;type:timestamptz;not null"     json:"startDate"`
	EndDate              time.Time `gorm:"column:end_date;type:timestamptz;not null"       json:"endDate"`
	RegistrationDeadline time.Time `gorm:"column:registration_deadline;type:timestamptz;not null" json:"registrationDeadline"`
	Status               string    `gorm:"column:status;type:varchar(16);not null"         json:"status"`
	CreatedByID          string    `gorm:"column:created_by;type:uuid;not null"            json:"createdById"`
	CreatedAt            time.Time `gorm:"column:created_at;type:timestamptz;not null"     json:"createdAt"`
	UpdatedAt            time.Time `gorm:"column:updated_at;type:timestamptz;not null"     json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (Tournament) TableName() string {
	return "tournaments"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Tournament) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// IsOpen returns true if the tournament accepts registrations by status.
func (t *Tournament) IsOpen() bool {
	return t.Status == StatusOpen
}

// ValidStatus returns true for a known tournament status.
func ValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusOpen, StatusClosed, StatusOngoing, StatusFinished:
		return true
	}
	return false
}
