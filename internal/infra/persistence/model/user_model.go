package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username          string    `gorm:"type:varchar(50);not null"`
	Email             string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password          string    `gorm:"type:varchar(255);not null"`
	Confirmed         bool      `gorm:"not null;default:false"`
	RefreshToken      *string   `gorm:"type:varchar(255)"`
	EmailTokenVersion int       `gorm:"not null;default:0"`
	Avatar            *string   `gorm:"type:varchar(512)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Contacts []ContactModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
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
