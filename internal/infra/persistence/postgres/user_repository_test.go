package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/internal/domain/entity"
	"contactbook/internal/domain/repository"
	"contactbook/internal/errors"
)

func createTestUser(t *testing.T, repo repository.UserRepository, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     "tester",
		Email:        email,
		PasswordHash: "$2a$04$hash",
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := createTestUser(t, repo, "a@b.com")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "tester", byEmail.Username)
	assert.False(t, byEmail.Confirmed)
	assert.Nil(t, byEmail.RefreshTokenHash)
	assert.Equal(t, 0, byEmail.EmailTokenVersion)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", byID.Email)
}

func TestUserRepository_EmailIsExactMatch(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createTestUser(t, repo, "a@b.com")

	_, err := repo.FindByEmail(context.Background(), "A@B.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByEmail(ctx, "missing@b.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.UpdateRefreshToken(ctx, uuid.New(), nil)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createTestUser(t, repo, "a@b.com")

	err := repo.Create(context.Background(), &entity.User{Username: "other", Email: "a@b.com", PasswordHash: "x"})
	assert.True(t, errors.Is(err, repository.ErrUserAlreadyExists))
}

func TestUserRepository_RefreshToken(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	user := createTestUser(t, repo, "a@b.com")

	digest := "digest-1"
	require.NoError(t, repo.UpdateRefreshToken(ctx, user.ID, &digest))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, stored.HasRefreshToken("digest-1"))

	require.NoError(t, repo.UpdateRefreshToken(ctx, user.ID, nil))

	stored, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.RefreshTokenHash)
}

func TestUserRepository_MarkConfirmedBumpsVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	user := createTestUser(t, repo, "a@b.com")

	require.NoError(t, repo.MarkConfirmed(ctx, user.ID))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, stored.Confirmed)
	assert.Equal(t, 1, stored.EmailTokenVersion)
}

func TestUserRepository_UpdatePasswordRevokesTokens(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	user := createTestUser(t, repo, "a@b.com")

	digest := "digest-1"
	require.NoError(t, repo.UpdateRefreshToken(ctx, user.ID, &digest))
	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new-hash"))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", stored.PasswordHash)
	assert.Nil(t, stored.RefreshTokenHash)
	assert.Equal(t, 1, stored.EmailTokenVersion)
}

func TestUserRepository_UpdateAvatar(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	user := createTestUser(t, repo, "a@b.com")

	require.NoError(t, repo.UpdateAvatar(ctx, user.ID, "https://cdn.example.com/a.png"))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Avatar)
	assert.Equal(t, "https://cdn.example.com/a.png", *stored.Avatar)
}
