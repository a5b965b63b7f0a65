package usecase

import (
	"context"
	"io"

	"contactbook/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateAvatar stores the image and returns the user with the new avatar URL.
	UpdateAvatar(ctx context.Context, userID uuid.UUID, contentType string, image io.Reader) (*entity.User, error)
}
