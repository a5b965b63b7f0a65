package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/internal/domain/entity"
	"contactbook/internal/domain/repository"
	"contactbook/internal/errors"
)

func TestTransactionManager_Commit(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		user := &entity.User{Username: "tester", Email: "a@b.com", PasswordHash: "x"}
		if err := factory.NewUserRepository().Create(ctx, user); err != nil {
			return err
		}

		locked, err := factory.NewUserRepository().FindByEmailForUpdate(ctx, "a@b.com")
		if err != nil {
			return err
		}
		digest := "digest"

		return factory.NewUserRepository().UpdateRefreshToken(ctx, locked.ID, &digest)
	})
	require.NoError(t, err)

	stored, err := NewUserRepository(db).FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.True(t, stored.HasRefreshToken("digest"))
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	boom := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		user := &entity.User{Username: "tester", Email: "a@b.com", PasswordHash: "x"}
		if err := factory.NewUserRepository().Create(ctx, user); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewUserRepository(db).FindByEmail(ctx, "a@b.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)

	assert.Panics(t, func() {
		_ = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			user := &entity.User{Username: "tester", Email: "a@b.com", PasswordHash: "x"}
			_ = factory.NewUserRepository().Create(ctx, user)
			panic("boom")
		})
	})

	_, err := NewUserRepository(db).FindByEmail(ctx, "a@b.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
