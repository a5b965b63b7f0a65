package postgres

import (
	"context"

	"contactbook/internal/domain/entity"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/repository"
	"contactbook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id), "find user by id")
}

// FindByEmail retrieves a single user by exact email match.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx).Where("email = ?", email), "find user by email")
}

// FindByEmailForUpdate locks the row until the surrounding transaction ends.
func (repo *userRepository) FindByEmailForUpdate(ctx context.Context, email string) (*entity.User, error) {
	query := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("email = ?", email)

	return repo.first(query, "find user by email for update")
}

func (repo *userRepository) first(query *gorm.DB, op string) (*entity.User, error) {
	var userM model.UserModel
	if err := query.First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user and copies the generated ID and timestamps back.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserAlreadyExists, user.Email)
		}

		return translateWriteError(err, "create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateRefreshToken stores the refresh token digest; nil revokes it.
func (repo *userRepository) UpdateRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash *string) error {
	return repo.updateColumns(ctx, userID, map[string]any{"refresh_token": tokenHash}, "update refresh token")
}

// MarkConfirmed sets confirmed and invalidates outstanding email tokens.
func (repo *userRepository) MarkConfirmed(ctx context.Context, userID uuid.UUID) error {
	return repo.updateColumns(ctx, userID, map[string]any{
		"confirmed":           true,
		"email_token_version": gorm.Expr("email_token_version + 1"),
	}, "mark user confirmed")
}

// UpdatePassword replaces the hash, invalidates outstanding email tokens and revokes the refresh token.
func (repo *userRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	return repo.updateColumns(ctx, userID, map[string]any{
		"password":            passwordHash,
		"refresh_token":       nil,
		"email_token_version": gorm.Expr("email_token_version + 1"),
	}, "update password")
}

// UpdateAvatar stores the avatar URL.
func (repo *userRepository) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) error {
	return repo.updateColumns(ctx, userID, map[string]any{"avatar": avatarURL}, "update avatar")
}

func (repo *userRepository) updateColumns(ctx context.Context, userID uuid.UUID, columns map[string]any, op string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(columns)
	if result.Error != nil {
		return translateWriteError(result.Error, op)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// translateWriteError maps constraint failures to domain errors and everything else to DatabaseExecuteError.
func translateWriteError(err error, op string) error {
	switch {
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrInvalidInput.WithDetails(op)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrUserNotFound.WithDetails(op)
	default:
		return domainerrors.NewDatabaseExecuteError(err, op)
	}
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                data.ID,
		Username:          data.Username,
		Email:             data.Email,
		PasswordHash:      data.Password,
		Confirmed:         data.Confirmed,
		RefreshTokenHash:  data.RefreshToken,
		EmailTokenVersion: data.EmailTokenVersion,
		Avatar:            data.Avatar,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                data.ID,
		Username:          data.Username,
		Email:             data.Email,
		Password:          data.PasswordHash,
		Confirmed:         data.Confirmed,
		RefreshToken:      data.RefreshTokenHash,
		EmailTokenVersion: data.EmailTokenVersion,
		Avatar:            data.Avatar,
	}
}
