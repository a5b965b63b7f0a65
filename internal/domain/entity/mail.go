package entity

// MailKind selects the template of an outgoing message.
type MailKind string

const (
	MailKindConfirmation  MailKind = "confirmation"
	MailKindPasswordReset MailKind = "password_reset"
)

// IsValid checks if the MailKind has a template.
func (k MailKind) IsValid() bool {
	return k == MailKindConfirmation || k == MailKindPasswordReset
}

// MailMessage is the transport-neutral form of a mail, also the Pub/Sub payload.
type MailMessage struct {
	Kind     MailKind `json:"kind"`
	To       string   `json:"to"`
	Username string   `json:"username"`
	// BaseURL is the public origin links are built from, e.g. https://api.example.com/
	BaseURL string `json:"base_url"`
	Token   string `json:"token"`
}
