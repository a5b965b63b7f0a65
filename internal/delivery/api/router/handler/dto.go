package handler

import (
	"time"

	"contactbook/internal/domain/entity"

	"github.com/google/uuid"
)

// DateLayout is the wire format of contact birth dates.
const DateLayout = "2006-01-02"

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    *string   `json:"avatar"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Confirmed: user.Confirmed,
		CreatedAt: user.CreatedAt,
	}
}

// TokenResponse carries a bearer token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func newTokenResponse(pair *entity.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
	}
}

// SignupResponse is returned for a created account.
type SignupResponse struct {
	User   *UserResponse `json:"user"`
	Detail string        `json:"detail"`
}

// ContactResponse is the public view of a contact.
type ContactResponse struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	BirthDate   string    `json:"birth_date,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newContactResponse(contact *entity.Contact) *ContactResponse {
	resp := &ContactResponse{
		ID:          contact.ID,
		FirstName:   contact.FirstName,
		LastName:    contact.LastName,
		Email:       contact.Email,
		PhoneNumber: contact.PhoneNumber,
		Description: contact.Description,
		CreatedAt:   contact.CreatedAt,
		UpdatedAt:   contact.UpdatedAt,
	}
	if !contact.BirthDate.IsZero() {
		resp.BirthDate = contact.BirthDate.Format(DateLayout)
	}

	return resp
}

func newContactListResponse(contacts []*entity.Contact) []*ContactResponse {
	resp := make([]*ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		resp = append(resp, newContactResponse(contact))
	}

	return resp
}
