package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/domain/entity"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/repository"
	"contactbook/internal/domain/service"
	"contactbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	storage  service.AvatarStorage
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Storage  service.AvatarStorage
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		storage:  params.Storage,
		logger:   params.Logger,
	}
}

// GetProfile retrieves the user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get profile")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateAvatar uploads the image and records its URL.
func (srv *profileService) UpdateAvatar(ctx context.Context, userID uuid.UUID, contentType string, image io.Reader) (*entity.User, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Updating avatar", slog.Any("userID", userID))

	avatarURL, err := srv.storage.Upload(ctx, userID, contentType, image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload avatar")
	}

	if err := srv.userRepo.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "update avatar")
		}

		return nil, errors.Wrap(err, "failed to store avatar url")
	}

	return srv.GetProfile(ctx, userID)
}
