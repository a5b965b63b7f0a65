package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is an address-book entry owned by a single user.
type Contact struct {
	ID          uuid.UUID
	UserID      uuid.UUID // Owner; every query is scoped by it.
	FirstName   string    // Unique per owner.
	LastName    string
	Email       string
	PhoneNumber string
	BirthDate   time.Time // Date only; the time part is ignored.
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName joins first and last name.
func (c *Contact) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}

	return c.FirstName + " " + c.LastName
}

// ContactField names a single contact attribute that can be patched on its own.
type ContactField string

const (
	ContactFieldFirstName   ContactField = "first_name"
	ContactFieldLastName    ContactField = "last_name"
	ContactFieldEmail       ContactField = "email"
	ContactFieldPhone       ContactField = "phone_number"
	ContactFieldBirthDate   ContactField = "birth_date"
	ContactFieldDescription ContactField = "description"
)

// IsValid checks if the ContactField is a patchable attribute.
func (f ContactField) IsValid() bool {
	switch f {
	case ContactFieldFirstName, ContactFieldLastName, ContactFieldEmail,
		ContactFieldPhone, ContactFieldBirthDate, ContactFieldDescription:
		return true
	default:
		return false
	}
}

// ContactPage selects a window of a user's contacts.
type ContactPage struct {
	Skip  int
	Limit int
}
