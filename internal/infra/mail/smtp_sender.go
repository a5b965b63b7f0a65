package mail

import (
	"context"
	"log/slog"
	"net/mail"
	"time"

	"github.com/sethvargo/go-retry"
	"gopkg.in/gomail.v2"

	"contactbook/config"
	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/domain/entity"
	"contactbook/internal/domain/service"
	"contactbook/internal/errors"
)

const defaultRetryBase = 500 * time.Millisecond

// dialer is the part of *gomail.Dialer the sender uses.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender delivers mail through an SMTP relay, retrying transient failures with exponential backoff.
type SMTPSender struct {
	dialer     dialer
	renderer   *Renderer
	from       string
	maxRetries uint64
	retryBase  time.Duration
	timeout    time.Duration
	logger     *slog.Logger
}

// NewSMTPSender builds a sender from the mail section of cfg.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) (*SMTPSender, error) {
	mailCfg := cfg.Mail
	if mailCfg == nil || mailCfg.Host == "" {
		return nil, errors.New("mail.host must be set for SMTP delivery")
	}

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	from := (&mail.Address{Name: mailCfg.FromName, Address: mailCfg.From}).String()

	return newSMTPSender(
		gomail.NewDialer(mailCfg.Host, mailCfg.Port, mailCfg.UserName, mailCfg.Password),
		renderer, from, mailCfg.MaxRetries, mailCfg.SendTimeout, logger,
	), nil
}

func newSMTPSender(d dialer, renderer *Renderer, from string, maxRetries uint64, timeout time.Duration, logger *slog.Logger) *SMTPSender {
	return &SMTPSender{
		dialer:     d,
		renderer:   renderer,
		from:       from,
		maxRetries: maxRetries,
		retryBase:  defaultRetryBase,
		timeout:    timeout,
		logger:     logger,
	}
}

var _ service.MailSender = (*SMTPSender)(nil)

// Send renders msg and delivers it. Rendering errors are not retried.
func (s *SMTPSender) Send(ctx context.Context, msg *entity.MailMessage) error {
	rendered, err := s.renderer.Render(msg)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", rendered.To)
	m.SetHeader("Subject", rendered.Subject)
	m.SetBody("text/html", rendered.HTML)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	log := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	attempt := 0
	backoff := retry.WithMaxRetries(s.maxRetries, retry.NewExponential(s.retryBase))

	err = retry.Do(ctx, backoff, func(_ context.Context) error {
		attempt++
		if err := s.dialer.DialAndSend(m); err != nil {
			log.Warn("SMTP send failed",
				slog.String("kind", string(msg.Kind)),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)

			return retry.RetryableError(err)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "send %s mail", msg.Kind)
	}

	log.Info("Mail sent", slog.String("kind", string(msg.Kind)), slog.Int("attempts", attempt))

	return nil
}

// Close is a no-op; gomail opens a connection per send.
func (s *SMTPSender) Close() error {
	return nil
}
