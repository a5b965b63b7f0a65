package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/domain/entity"
	"contactbook/internal/domain/lifecycle"
	"contactbook/internal/domain/service"
	"contactbook/internal/infra/metrics"
	"contactbook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// emailDispatcher sends account mail on detached goroutines so the request never waits on SMTP.
type emailDispatcher struct {
	auth     usecase.AuthUsecase
	sender   service.MailSender
	logger   *slog.Logger
	inFlight sync.WaitGroup
}

// EmailDispatcherParams holds dependencies for the dispatcher, injected by Fx.
type EmailDispatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Auth   usecase.AuthUsecase
	Sender service.MailSender
	Logger *slog.Logger
}

// NewEmailDispatcher drains in-flight sends on shutdown.
func NewEmailDispatcher(params EmailDispatcherParams) usecase.EmailDispatcher {
	d := newEmailDispatcher(params.Auth, params.Sender, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: d.wait,
	})

	return d
}

func newEmailDispatcher(auth usecase.AuthUsecase, sender service.MailSender, logger *slog.Logger) *emailDispatcher {
	return &emailDispatcher{
		auth:   auth,
		sender: sender,
		logger: logger,
	}
}

// SendConfirmation mails a confirmation link.
func (d *emailDispatcher) SendConfirmation(ctx context.Context, email, username, baseURL string) {
	d.dispatch(ctx, entity.MailKindConfirmation, email, username, baseURL)
}

// SendPasswordReset mails a password reset link.
func (d *emailDispatcher) SendPasswordReset(ctx context.Context, email, username, baseURL string) {
	d.dispatch(ctx, entity.MailKindPasswordReset, email, username, baseURL)
}

func (d *emailDispatcher) dispatch(ctx context.Context, kind entity.MailKind, email, username, baseURL string) {
	// Keep request values (request id, logger) but not the request's cancellation.
	detached := context.WithoutCancel(ctx)

	d.inFlight.Add(1)
	go func() {
		defer d.inFlight.Done()

		sendCtx, cancel := context.WithTimeout(detached, lifecycle.DetachedTimeout)
		defer cancel()

		log := deliverycontext.GetLoggerOrDefault(sendCtx, d.logger)
		if err := d.send(sendCtx, kind, email, username, baseURL); err != nil {
			metrics.RecordMailDispatch(string(kind), metrics.MailStatusFailed)
			log.Error("Failed to send mail",
				slog.String("kind", string(kind)),
				slog.String("email", email),
				slog.Any("error", err),
			)

			return
		}

		metrics.RecordMailDispatch(string(kind), metrics.MailStatusSent)
	}()
}

func (d *emailDispatcher) send(ctx context.Context, kind entity.MailKind, email, username, baseURL string) error {
	token, err := d.auth.IssueEmailToken(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to issue email token")
	}

	return errors.WithStack(d.sender.Send(ctx, &entity.MailMessage{
		Kind:     kind,
		To:       email,
		Username: username,
		BaseURL:  baseURL,
		Token:    token,
	}))
}

// wait blocks until in-flight sends finish or ctx ends.
func (d *emailDispatcher) wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.inFlight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for mail dispatch")
	}
}
