package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/domain/entity"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/repository"
	"contactbook/internal/domain/service"
	"contactbook/internal/usecase"
	"contactbook/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MaxBirthdayWindow bounds the days parameter of UpcomingBirthdays.
const MaxBirthdayWindow = 366

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	qrService   service.QRCodeService
	now         func() time.Time
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		qrService:   params.QRService,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns a page of the user's contacts.
func (srv *contactService) List(ctx context.Context, userID uuid.UUID, page entity.ContactPage) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.List(ctx, userID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return contacts, nil
}

// Search matches the query against names and email.
func (srv *contactService) Search(ctx context.Context, userID uuid.UUID, query string, page entity.ContactPage) ([]*entity.Contact, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("search query must not be empty")
	}

	contacts, err := srv.contactRepo.Search(ctx, userID, query, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search contacts")
	}

	return contacts, nil
}

// UpcomingBirthdays filters the user's contacts by their next birthday.
func (srv *contactService) UpcomingBirthdays(ctx context.Context, userID uuid.UUID, days int) ([]*entity.Contact, error) {
	if days < 1 || days > MaxBirthdayWindow {
		return nil, domainerrors.ErrInvalidInput.WithDetails("days must be between 1 and 366")
	}

	contacts, err := srv.contactRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts for birthdays")
	}

	today := srv.now()
	upcoming := make([]*entity.Contact, 0)
	for _, contact := range contacts {
		if contact.BirthDate.IsZero() {
			continue
		}

		until := util.DaysUntilBirthday(today, contact.BirthDate)
		if until >= 1 && until <= days {
			upcoming = append(upcoming, contact)
		}
	}

	srv.log(ctx).Debug("Upcoming birthdays computed",
		slog.Any("userID", userID),
		slog.Int("days", days),
		slog.Int("matched", len(upcoming)),
	)

	return upcoming, nil
}

// Get returns one contact by id.
func (srv *contactService) Get(ctx context.Context, userID, id uuid.UUID) (*entity.Contact, error) {
	return srv.found(srv.contactRepo.FindByID(ctx, userID, id))
}

// GetByFirstName returns the contact with the exact first name.
func (srv *contactService) GetByFirstName(ctx context.Context, userID uuid.UUID, firstName string) (*entity.Contact, error) {
	return srv.found(srv.contactRepo.FindByFirstName(ctx, userID, firstName))
}

// GetByLastName returns the first contact with the exact last name.
func (srv *contactService) GetByLastName(ctx context.Context, userID uuid.UUID, lastName string) (*entity.Contact, error) {
	return srv.found(srv.contactRepo.FindByLastName(ctx, userID, lastName))
}

// GetByEmail returns the first contact with the exact email.
func (srv *contactService) GetByEmail(ctx context.Context, userID uuid.UUID, email string) (*entity.Contact, error) {
	return srv.found(srv.contactRepo.FindByEmail(ctx, userID, email))
}

// Create adds a contact for the user.
func (srv *contactService) Create(ctx context.Context, userID uuid.UUID, input usecase.CreateContactInput) (*entity.Contact, error) {
	contact := &entity.Contact{
		UserID:      userID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		BirthDate:   util.DateOnly(input.BirthDate),
		Description: input.Description,
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrContactAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrContactAlreadyExists, "create contact")
		}

		return nil, errors.Wrap(err, "failed to create contact")
	}

	srv.log(ctx).Info("Contact created", slog.Any("contactID", contact.ID), slog.Any("userID", userID))

	return contact, nil
}

// UpdateField sets a single attribute of the contact.
func (srv *contactService) UpdateField(ctx context.Context, userID, id uuid.UUID, field entity.ContactField, value any) (*entity.Contact, error) {
	if !field.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown contact field " + string(field))
	}

	switch v := value.(type) {
	case time.Time:
		if field != entity.ContactFieldBirthDate {
			return nil, domainerrors.ErrInvalidInput.WithDetails(string(field) + " must be a string")
		}
		value = util.DateOnly(v)
	case string:
		if field == entity.ContactFieldBirthDate {
			return nil, domainerrors.ErrInvalidInput.WithDetails("birth_date must be a date")
		}
	default:
		return nil, domainerrors.ErrInvalidInput.WithDetails("unsupported value for " + string(field))
	}

	contact, err := srv.contactRepo.UpdateField(ctx, userID, id, field, value)
	if err != nil {
		if errors.Is(err, repository.ErrContactAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrContactAlreadyExists, "update contact")
		}

		return srv.found(nil, err)
	}

	srv.log(ctx).Info("Contact updated", slog.Any("contactID", id), slog.String("field", string(field)))

	return contact, nil
}

// Delete removes the contact and returns it.
func (srv *contactService) Delete(ctx context.Context, userID, id uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.found(srv.contactRepo.Delete(ctx, userID, id))
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Contact deleted", slog.Any("contactID", id), slog.Any("userID", userID))

	return contact, nil
}

// QRCode renders the contact's vCard as a PNG QR code.
func (srv *contactService) QRCode(ctx context.Context, userID, id uuid.UUID) ([]byte, error) {
	contact, err := srv.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateContactQR(contact)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate contact QR code")
	}

	return png, nil
}

// found maps the repository's not-found sentinel to the domain error.
func (srv *contactService) found(contact *entity.Contact, err error) (*entity.Contact, error) {
	if err == nil {
		return contact, nil
	}
	if errors.Is(err, repository.ErrContactNotFound) {
		return nil, errors.Wrap(domainerrors.ErrContactNotFound, "find contact")
	}

	return nil, errors.Wrap(err, "failed to find contact")
}
