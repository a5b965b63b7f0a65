// Package mail renders and delivers account mail over SMTP.
package mail

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"
	"strings"

	"contactbook/internal/domain/entity"
	"contactbook/internal/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

type mailTemplate struct {
	subject string
	file    string
	// path is appended to the base URL, followed by the token.
	path string
}

var mailTemplates = map[entity.MailKind]mailTemplate{
	entity.MailKindConfirmation: {
		subject: "Confirm your email",
		file:    "confirmation.html",
		path:    "api/auth/confirmed_email/",
	},
	entity.MailKindPasswordReset: {
		subject: "Reset your password",
		file:    "password_reset.html",
		path:    "api/auth/change_password/",
	},
}

// Rendered is a mail ready to hand to a transport.
type Rendered struct {
	To      string
	Subject string
	HTML    string
}

// Renderer turns MailMessages into HTML bodies.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse mail templates")
	}

	return &Renderer{templates: tmpl}, nil
}

// Render builds the subject and body for msg.
func (r *Renderer) Render(msg *entity.MailMessage) (*Rendered, error) {
	tmpl, ok := mailTemplates[msg.Kind]
	if !ok {
		return nil, errors.Errorf("unknown mail kind %q", msg.Kind)
	}
	if msg.To == "" {
		return nil, errors.New("mail recipient is empty")
	}

	link, err := buildLink(msg.BaseURL, tmpl.path, msg.Token)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := r.templates.ExecuteTemplate(&body, tmpl.file, map[string]string{
		"Username": msg.Username,
		"Link":     link,
	}); err != nil {
		return nil, errors.Wrapf(err, "execute template %s", tmpl.file)
	}

	return &Rendered{To: msg.To, Subject: tmpl.subject, HTML: body.String()}, nil
}

func buildLink(baseURL, path, token string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return "", errors.Errorf("invalid mail base url %q", baseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	return base.JoinPath(path, url.PathEscape(token)).String(), nil
}
