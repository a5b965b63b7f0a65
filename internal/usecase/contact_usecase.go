package usecase

import (
	"context"
	"time"

	"contactbook/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateContactInput defines the data required to add a contact.
type CreateContactInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	BirthDate   time.Time
	Description string
}

// ContactUsecase defines contact management for the current user. Every call is scoped by userID.
type ContactUsecase interface {
	List(ctx context.Context, userID uuid.UUID, page entity.ContactPage) ([]*entity.Contact, error)
	Search(ctx context.Context, userID uuid.UUID, query string, page entity.ContactPage) ([]*entity.Contact, error)

	// UpcomingBirthdays returns contacts whose next birthday falls 1..days days from today.
	UpcomingBirthdays(ctx context.Context, userID uuid.UUID, days int) ([]*entity.Contact, error)

	Get(ctx context.Context, userID, id uuid.UUID) (*entity.Contact, error)
	GetByFirstName(ctx context.Context, userID uuid.UUID, firstName string) (*entity.Contact, error)
	GetByLastName(ctx context.Context, userID uuid.UUID, lastName string) (*entity.Contact, error)
	GetByEmail(ctx context.Context, userID uuid.UUID, email string) (*entity.Contact, error)

	Create(ctx context.Context, userID uuid.UUID, input CreateContactInput) (*entity.Contact, error)

	// UpdateField sets one attribute. value must be a string, or a time.Time for the birth date.
	UpdateField(ctx context.Context, userID, id uuid.UUID, field entity.ContactField, value any) (*entity.Contact, error)

	Delete(ctx context.Context, userID, id uuid.UUID) (*entity.Contact, error)

	// QRCode renders the contact as a vCard QR code PNG.
	QRCode(ctx context.Context, userID, id uuid.UUID) ([]byte, error)
}
