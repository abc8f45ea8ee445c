// Package model provides domain models for the user module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// User roles.
const (
	RoleAdmin    = "admin"
	RoleStandard = "standard"
)

// User represents a user entity in the system.
// Matches the users table schema. Authentication mechanics live outside this
// service; users arrive already resolved to an identifier.
type User struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid"                             json:"id"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	Role      string    `gorm:"column:role;type:varchar(16);not null;default:standard"    json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null"                json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null"                json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Ref is the reduced user shape exposed in API responses.
// Captain and creator exposure is limited to identifier and email.
type Ref struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ToRef converts a user to its API reference shape.
func (u *User) ToRef() Ref {
	return Ref{ID: u.ID, Email: u.Email}
}
