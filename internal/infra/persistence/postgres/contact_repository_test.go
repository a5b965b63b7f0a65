package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/internal/domain/entity"
	"contactbook/internal/domain/repository"
	"contactbook/internal/errors"
)

type contactFixture struct {
	users    repository.UserRepository
	contacts repository.ContactRepository
	owner    *entity.User
}

func newContactFixture(t *testing.T) *contactFixture {
	t.Helper()

	db := newTestDB(t)
	users := NewUserRepository(db)

	return &contactFixture{
		users:    users,
		contacts: NewContactRepository(db),
		owner:    createTestUser(t, users, "owner@b.com"),
	}
}

func (f *contactFixture) add(t *testing.T, ownerID uuid.UUID, first, last, email string) *entity.Contact {
	t.Helper()

	contact := &entity.Contact{
		UserID:      ownerID,
		FirstName:   first,
		LastName:    last,
		Email:       email,
		PhoneNumber: "0501234567",
		BirthDate:   time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC),
		Description: "friend",
	}
	require.NoError(t, f.contacts.Create(context.Background(), contact))

	return contact
}

func TestContactRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	f := newContactFixture(t)
	created := f.add(t, f.owner.ID, "Alice", "Smith", "alice@example.com")

	assert.NotEqual(t, uuid.Nil, created.ID)

	byID, err := f.contacts.FindByID(ctx, f.owner.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.FirstName)
	assert.Equal(t, time.March, byID.BirthDate.Month())
	assert.Equal(t, 14, byID.BirthDate.Day())

	byFirst, err := f.contacts.FindByFirstName(ctx, f.owner.ID, "Alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byFirst.ID)

	byLast, err := f.contacts.FindByLastName(ctx, f.owner.ID, "Smith")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byLast.ID)

	byEmail, err := f.contacts.FindByEmail(ctx, f.owner.ID, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestContactRepository_ScopedByOwner(t *testing.T) {
	ctx := context.Background()
	f := newContactFixture(t)
	other := createTestUser(t, f.users, "other@b.com")
	created := f.add(t, f.owner.ID, "Alice", "Smith", "alice@example.com")

	_, err := f.contacts.FindByID(ctx, other.ID, created.ID)
	assert.ErrorIs(t, err, repository.ErrContactNotFound)

	list, err := f.contacts.List(ctx, other.ID, entity.ContactPage{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = f.contacts.Delete(ctx, other.ID, created.ID)
	assert.ErrorIs(t, err, repository.ErrContactNotFound)
}

func TestContactRepository_DuplicateFirstNamePerOwner(t *testing.T) {
	ctx := context.Background()
	f := newContactFixture(t)
	other := createTestUser(t, f.users, "other@b.com")
	f.add(t, f.owner.ID, "Alice", "Smith", "alice@example.com")

	err := f.contacts.Create(ctx, &entity.Contact{
		UserID: f.owner.ID, FirstName: "Alice", LastName: "Jones", Email: "aj@example.com",
		PhoneNumber: "0501234567", BirthDate: time.Now(),
	})
	assert.True(t, errors.Is(err, repository.ErrContactAlreadyExists))

	f.add(t, other.ID, "Alice", "Jones", "aj@example.com")
}

func TestContactRepository_ListPagination(t *testing.T) {
	ctx := context.Background()
	f := newContactFixture(t)
	for _, name := range []string{"Carol", "Alice", "Bob", "Dave"} {
		f.add(t, f.owner.ID, name, "Last", name+"@example.com")
	}

	first, err := f.contacts.List(ctx, f.owner.ID, entity.ContactPage{Skip: 0, Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "Alice", first[0].FirstName)
	assert.Equal(t, "Bob", first[1].FirstName)

	second, err := f.contacts.List(ctx, f.owner.ID, entity.ContactPage{Skip: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "Carol", second[0].FirstName)

	all, err := f.contacts.ListAll(ctx, f.owner.ID)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestContactRepository_Search(t *testing.T) {
	ctx := context.Background()
	f := newContactFixture(t)
	f.add(t, f.owner.ID, "Alice", "Smith", "alice@example.com")
	f.add(t, f.owner.ID, "Bob", "Smithers", "bob@work.org")
	f.add(t, f.owner.ID, "Carol", "Jones", "carol@example.com")

	bySurname, err := f.contacts.Search(ctx, f.owner.ID, "SMITH", entity.ContactPage{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, bySurname, 2)

	byDomain, err := f.contacts.Search(ctx, f.owner.ID, "work.org", entity.ContactPage{Limit: 10})
	require.NoError(t, err)
	require.Len(t, byDomain, 1)
	assert.Equal(t, "Bob", byDomain[0].FirstName)

	wildcard, err := f.contacts.Search(ctx, f.owner.ID, "%", entity.ContactPage{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, wildcard)
}

func TestContactRepository_UpdateField(t *testing.T) {
	ctx := context.Background()
	f := newContactFixture(t)
	created := f.add(t, f.owner.ID, "Alice", "Smith", "alice@example.com")

	updated, err := f.contacts.UpdateField(ctx, f.owner.ID, created.ID, entity.ContactFieldPhone, "0509999999")
	require.NoError(t, err)
	assert.Equal(t, "0509999999", updated.PhoneNumber)
	assert.Equal(t, "Smith", updated.LastName)

	_, err = f.contacts.UpdateField(ctx, f.owner.ID, uuid.New(), entity.ContactFieldPhone, "0509999999")
	assert.ErrorIs(t, err, repository.ErrContactNotFound)

	_, err = f.contacts.UpdateField(ctx, f.owner.ID, created.ID, entity.ContactField("user_id"), uuid.New())
	assert.Error(t, err)
}

func TestContactRepository_Delete(t *testing.T) {
	ctx := context.Background()
	f := newContactFixture(t)
	created := f.add(t, f.owner.ID, "Alice", "Smith", "alice@example.com")

	deleted, err := f.contacts.Delete(ctx, f.owner.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = f.contacts.FindByID(ctx, f.owner.ID, created.ID)
	assert.ErrorIs(t, err, repository.ErrContactNotFound)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
}
