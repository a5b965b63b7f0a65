// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"contactbook/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user lookup matches no row.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the email is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the operations on user records.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailForUpdate is FindByEmail with a row lock held until the surrounding transaction ends.
	FindByEmailForUpdate(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. ID and timestamps are filled in on success.
	Create(ctx context.Context, user *entity.User) error

	// UpdateRefreshToken stores the refresh token digest; nil revokes it.
	UpdateRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash *string) error

	// MarkConfirmed sets confirmed and bumps the email token version.
	MarkConfirmed(ctx context.Context, userID uuid.UUID) error

	// UpdatePassword replaces the password hash, bumps the email token version and revokes the refresh token.
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// UpdateAvatar stores the avatar URL.
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) error
}
