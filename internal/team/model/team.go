// Package model provides domain models and DTOs for the team module.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Team statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Player is a roster entry embedded in a team. Not a standalone entity:
// the list is stored as a JSON document on the teams row.
type Player struct {
	PlayerName      string `json:"playerName"`
	GameUsername    string `json:"gameUsername"`
	DiscordUsername string `json:"discordUsername"`
}

// IsComplete returns true if all player fields are non-empty.
// Values are kept verbatim, so whitespace-only fields still count as filled.
func (p Player) IsComplete() bool {
	return p.PlayerName != "" && p.GameUsername != "" && p.DiscordUsername != ""
}

// PlayerList is an ordered player roster stored as a JSON column.
type PlayerList []Player

// Value implements driver.Valuer for database writes.
func (l PlayerList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner for database reads.
func (l *PlayerList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into PlayerList", value)
	}
}

// Team represents a registered team entity.
// Matches the teams table schema. The roster length is fixed at creation and
// never revisited; registered_at is set once and immutable.
type Team struct {
	ID           string     `gorm:"primaryKey;column:id;type:uuid"                                      json:"id"`
	TournamentID string     `gorm:"column:tournament_id;type:uuid;not null;index:idx_teams_tournament" json:"tournamentId"`
	TeamName     string     `gorm:"column:team_name;type:varchar(255);not null"                        json:"teamName"`
	CaptainID    string     `gorm:"column:captain_id;type:uuid;not null"                               json:"captainId"`
	Players      PlayerList `gorm:"column:players;type:jsonb;not null"                                 json:"players"`
	Status       string     `gorm:"column:status;type:varchar(16);not null"                            json:"status"`
	RegisteredAt time.Time  `gorm:"column:registered_at;type:timestamptz;not null"                     json:"registeredAt"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// ValidStatus returns true for a known team status.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an administrative status change is allowed.
// Teams move forward only: pending -> confirmed -> cancelled, with direct
// cancellation from pending also allowed.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled
	}
	return false
}
