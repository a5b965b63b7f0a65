package service

import "contactbook/internal/domain/entity"

// QRCodeService renders QR codes for contacts.
type QRCodeService interface {
	// GenerateContactQR encodes the contact as a vCard and returns a PNG image.
	GenerateContactQR(contact *entity.Contact) ([]byte, error)
}
