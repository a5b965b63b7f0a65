package repository

import (
	"context"
	"errors"

	"contactbook/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrContactNotFound is returned when no contact of the user matches.
	ErrContactNotFound = errors.New("contact not found")
	// ErrContactAlreadyExists is returned when the user already has a contact with that first name.
	ErrContactAlreadyExists = errors.New("contact already exists")
)

// ContactRepository defines the operations on contacts. Every method is scoped by owner.
type ContactRepository interface {
	List(ctx context.Context, userID uuid.UUID, page entity.ContactPage) ([]*entity.Contact, error)

	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Contact, error)

	// FindByFirstName, FindByLastName and FindByEmail return the first exact match.
	FindByFirstName(ctx context.Context, userID uuid.UUID, firstName string) (*entity.Contact, error)
	FindByLastName(ctx context.Context, userID uuid.UUID, lastName string) (*entity.Contact, error)
	FindByEmail(ctx context.Context, userID uuid.UUID, email string) (*entity.Contact, error)

	// Search matches query case-insensitively against first name, last name and email.
	Search(ctx context.Context, userID uuid.UUID, query string, page entity.ContactPage) ([]*entity.Contact, error)

	// ListAll returns every contact of the user ordered by first name.
	ListAll(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error)

	Create(ctx context.Context, contact *entity.Contact) error

	// UpdateField sets one column and returns the updated contact.
	UpdateField(ctx context.Context, userID, id uuid.UUID, field entity.ContactField, value any) (*entity.Contact, error)

	// Delete removes the contact and returns it as it was.
	Delete(ctx context.Context, userID, id uuid.UUID) (*entity.Contact, error)
}
