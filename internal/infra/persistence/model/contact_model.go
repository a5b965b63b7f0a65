package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactModel mirrors the 'contacts' table. First names are unique per owner.
type ContactModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_contacts_user_first_name,priority:1"`
	FirstName   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_contacts_user_first_name,priority:2"`
	LastName    string    `gorm:"type:varchar(60);not null"`
	Email       string    `gorm:"type:varchar(255);not null;index"`
	PhoneNumber string    `gorm:"type:varchar(20);not null"`
	BirthDate   time.Time `gorm:"type:date;not null"`
	Description string    `gorm:"type:varchar(300)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *ContactModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	m.ID = id

	return nil
}

// AllModels lists every table for migrations.
func AllModels() []any {
	return []any{&UserModel{}, &ContactModel{}}
}
