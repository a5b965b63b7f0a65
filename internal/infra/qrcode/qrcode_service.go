package qrcode

import (
	"strings"

	"github.com/skip2/go-qrcode"

	"contactbook/config"
	"contactbook/internal/domain/entity"
	"contactbook/internal/domain/service"
	"contactbook/internal/errors"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewFromConfig builds the service from the qrcode section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateContactQR encodes the contact as a vCard 3.0 and renders it as PNG.
func (s *qrcodeService) GenerateContactQR(contact *entity.Contact) ([]byte, error) {
	if contact == nil {
		return nil, errors.New("contact is nil")
	}

	qrCode, err := qrcode.New(BuildVCard(contact), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// BuildVCard renders the contact in vCard 3.0 form. Empty fields are omitted.
func BuildVCard(contact *entity.Contact) string {
	var b strings.Builder

	writeLine := func(name, value string) {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(value)
		b.WriteString("\r\n")
	}

	writeLine("BEGIN", "VCARD")
	writeLine("VERSION", "3.0")
	writeLine("N", escapeVCard(contact.LastName)+";"+escapeVCard(contact.FirstName)+";;;")
	writeLine("FN", escapeVCard(contact.FullName()))
	if contact.PhoneNumber != "" {
		writeLine("TEL;TYPE=CELL", escapeVCard(contact.PhoneNumber))
	}
	if contact.Email != "" {
		writeLine("EMAIL", escapeVCard(contact.Email))
	}
	if !contact.BirthDate.IsZero() {
		writeLine("BDAY", contact.BirthDate.Format("2006-01-02"))
	}
	if contact.Description != "" {
		writeLine("NOTE", escapeVCard(contact.Description))
	}
	writeLine("END", "VCARD")

	return b.String()
}

var vcardEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\r\n", `\n`,
	"\n", `\n`,
	",", `\,`,
	";", `\;`,
)

func escapeVCard(s string) string {
	return vcardEscaper.Replace(s)
}
