package pubsub

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"contactbook/config"
	"contactbook/internal/domain/service"
	"contactbook/internal/errors"
	"contactbook/internal/infra/mail"
)

// SenderParams holds dependencies for MailSender, injected by Fx
type SenderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMailSender picks the delivery path for outgoing mail from pubsub.provider.
func NewMailSender(params SenderParams) (service.MailSender, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	var (
		sender service.MailSender
		err    error
	)

	switch cfg.Provider {
	case config.PubSubProviderSMTP, "":
		logger.Info("Sending mail directly over SMTP")

		sender, err = mail.NewSMTPSender(params.Config, logger)
		if err != nil {
			return nil, err
		}

	case config.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Queueing mail through local HTTP worker",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		sender = NewLocalHTTPSender(cfg.LocalEndpoint, logger)

	case config.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		sender, err = NewGooglePubSubSender(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MailSender")

			return sender.Close()
		},
	})

	return sender, nil
}

// Module provides the mail sender FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailSender),
)
