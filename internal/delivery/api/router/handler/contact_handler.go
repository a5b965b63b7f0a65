package handler

import (
	"log/slog"
	"net/http"
	"time"

	"contactbook/internal/delivery/api/middleware"
	"contactbook/internal/delivery/api/response"
	domainerrors "contactbook/internal/domain/errors"
	"contactbook/internal/domain/entity"
	"contactbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultPageLimit    = 10
	defaultBirthdayDays = 7
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler serves the current user's address book.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler.
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// ListContactsRequest holds the paging query.
type ListContactsRequest struct {
	Skip  int `query:"skip" validate:"gte=0"`
	Limit int `query:"limit" validate:"gte=1,lte=100"`
}

// SearchContactsRequest holds the search query.
type SearchContactsRequest struct {
	Query string `query:"q" validate:"required,max=100"`
	Skip  int    `query:"skip" validate:"gte=0"`
	Limit int    `query:"limit" validate:"gte=1,lte=100"`
}

// BirthdaysRequest holds the look-ahead window in days.
type BirthdaysRequest struct {
	Days int `query:"days" validate:"gte=1,lte=366"`
}

// CreateContactRequest represents the request body for adding a contact.
type CreateContactRequest struct {
	FirstName   string `json:"first_name" validate:"required,min=3,max=50"`
	LastName    string `json:"last_name" validate:"required,min=3,max=60"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=20"`
	BirthDate   string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"max=300"`
}

// UpdateFirstNameRequest represents the body of the first name patch.
type UpdateFirstNameRequest struct {
	FirstName string `json:"first_name" validate:"required,min=3,max=50"`
}

// UpdateLastNameRequest represents the body of the last name patch.
type UpdateLastNameRequest struct {
	LastName string `json:"last_name" validate:"required,min=3,max=60"`
}

// UpdateEmailRequest represents the body of the email patch.
type UpdateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdatePhoneRequest represents the body of the phone patch.
type UpdatePhoneRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=20"`
}

// UpdateBirthDateRequest represents the body of the birth date patch.
type UpdateBirthDateRequest struct {
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

// UpdateDescriptionRequest represents the body of the description patch.
type UpdateDescriptionRequest struct {
	Description string `json:"description" validate:"max=300"`
}

// ListContacts returns a page of contacts.
func (h *ContactHandler) ListContacts(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	req := ListContactsRequest{Limit: defaultPageLimit}
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	contacts, err := h.contactUC.List(c.Request().Context(), user.ID, entity.ContactPage{Skip: req.Skip, Limit: req.Limit})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactListResponse(contacts))
}

// SearchContacts matches contacts by name or email.
func (h *ContactHandler) SearchContacts(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	req := SearchContactsRequest{Limit: defaultPageLimit}
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	contacts, err := h.contactUC.Search(c.Request().Context(), user.ID, req.Query, entity.ContactPage{Skip: req.Skip, Limit: req.Limit})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactListResponse(contacts))
}

// UpcomingBirthdays lists contacts with a birthday in the coming days.
func (h *ContactHandler) UpcomingBirthdays(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	req := BirthdaysRequest{Days: defaultBirthdayDays}
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	contacts, err := h.contactUC.UpcomingBirthdays(c.Request().Context(), user.ID, req.Days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactListResponse(contacts))
}

// GetContact returns one contact by id.
func (h *ContactHandler) GetContact(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid contact ID")
	}

	return h.respondContact(c, http.StatusOK)(h.contactUC.Get(c.Request().Context(), user.ID, contactID))
}

// GetContactByFirstName returns the contact with the exact first name.
func (h *ContactHandler) GetContactByFirstName(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	return h.respondContact(c, http.StatusOK)(h.contactUC.GetByFirstName(c.Request().Context(), user.ID, c.Param("first_name")))
}

// GetContactByLastName returns a contact with the exact last name.
func (h *ContactHandler) GetContactByLastName(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	return h.respondContact(c, http.StatusOK)(h.contactUC.GetByLastName(c.Request().Context(), user.ID, c.Param("last_name")))
}

// GetContactByEmail returns a contact with the exact email.
func (h *ContactHandler) GetContactByEmail(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	return h.respondContact(c, http.StatusOK)(h.contactUC.GetByEmail(c.Request().Context(), user.ID, c.Param("email")))
}

// CreateContact adds a contact.
func (h *ContactHandler) CreateContact(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req CreateContactRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	// The datetime rule has already accepted the layout.
	birthDate, _ := time.Parse(DateLayout, req.BirthDate)

	return h.respondContact(c, http.StatusCreated)(h.contactUC.Create(c.Request().Context(), user.ID, usecase.CreateContactInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		BirthDate:   birthDate,
		Description: req.Description,
	}))
}

// UpdateFirstName patches the first name.
func (h *ContactHandler) UpdateFirstName(c echo.Context) error {
	var req UpdateFirstNameRequest

	return h.updateField(c, &req, entity.ContactFieldFirstName, func() any { return req.FirstName })
}

// UpdateLastName patches the last name.
func (h *ContactHandler) UpdateLastName(c echo.Context) error {
	var req UpdateLastNameRequest

	return h.updateField(c, &req, entity.ContactFieldLastName, func() any { return req.LastName })
}

// UpdateEmail patches the email.
func (h *ContactHandler) UpdateEmail(c echo.Context) error {
	var req UpdateEmailRequest

	return h.updateField(c, &req, entity.ContactFieldEmail, func() any { return req.Email })
}

// UpdatePhone patches the phone number.
func (h *ContactHandler) UpdatePhone(c echo.Context) error {
	var req UpdatePhoneRequest

	return h.updateField(c, &req, entity.ContactFieldPhone, func() any { return req.PhoneNumber })
}

// UpdateBirthDate patches the birth date.
func (h *ContactHandler) UpdateBirthDate(c echo.Context) error {
	var req UpdateBirthDateRequest

	return h.updateField(c, &req, entity.ContactFieldBirthDate, func() any {
		birthDate, _ := time.Parse(DateLayout, req.BirthDate)

		return birthDate
	})
}

// UpdateDescription patches the description.
func (h *ContactHandler) UpdateDescription(c echo.Context) error {
	var req UpdateDescriptionRequest

	return h.updateField(c, &req, entity.ContactFieldDescription, func() any { return req.Description })
}

// DeleteContact removes a contact and returns it.
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid contact ID")
	}

	return h.respondContact(c, http.StatusOK)(h.contactUC.Delete(c.Request().Context(), user.ID, contactID))
}

// ContactQRCode renders the contact as a vCard QR code.
func (h *ContactHandler) ContactQRCode(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid contact ID")
	}

	png, err := h.contactUC.QRCode(c.Request().Context(), user.ID, contactID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *ContactHandler) updateField(c echo.Context, req any, field entity.ContactField, value func() any) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid contact ID")
	}

	if ok, err := bindRequest(c, req); !ok {
		return err
	}

	return h.respondContact(c, http.StatusOK)(h.contactUC.UpdateField(c.Request().Context(), user.ID, contactID, field, value()))
}

func (h *ContactHandler) respondContact(c echo.Context, status int) func(*entity.Contact, error) error {
	return func(contact *entity.Contact, err error) error {
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, status, newContactResponse(contact))
	}
}
