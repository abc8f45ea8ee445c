// Package repository provides data access layer for the user module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "github.com/lanpartylabs/tournament_api/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create creates a new user with a generated identifier.
	Create(ctx context.Context, email, role string) (*userModel.User, error)

	// GetByID finds a user by identifier.
	GetByID(ctx context.Context, id string) (*userModel.User, error)

	// GetByEmail finds a user by email.
	GetByEmail(ctx context.Context, email string) (*userModel.User, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new user repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new user with a generated identifier.
func (r *repository) Create(ctx context.Context, email, role string) (*userModel.User, error) {
	if role != userModel.RoleAdmin && role != userModel.RoleStandard {
		return nil, userModel.ErrInvalidRole
	}

	now := time.Now()
	user := &userModel.User{
		ID:        uuid.NewString(),
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateError(err) {
			return nil, userModel.ErrEmailExists
		}
		return nil, err
	}

	return user, nil
}

// GetByID finds a user by identifier.
func (r *repository) GetByID(ctx context.Context, id string) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetByEmail finds a user by email.
func (r *repository) GetByEmail(ctx context.Context, email string) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// isDuplicateError checks if an error is a unique constraint violation.
// Covers both the PostgreSQL and SQLite message shapes.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}
