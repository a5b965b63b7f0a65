package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"contactbook/config"
	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/domain/service"
	"contactbook/internal/infra/metrics"
	"contactbook/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks an OIDC token for the given audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler delivers mail queued through Pub/Sub push subscriptions.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validate       tokenValidator
	sender         service.MailSender
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Sender service.MailSender
	Logger *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validate: idtoken.Validate,
		sender:   params.Sender,
		logger:   params.Logger,
	}

	if worker := params.Config.Worker; worker != nil {
		h.verifyPushAuth = worker.VerifyToken
		h.audience = worker.Audience
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// Any 2xx acks the message; 503 makes Pub/Sub redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message, dropping", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	msg, err := pushMsg.DecodeMail()
	if err != nil {
		// Redelivery cannot fix a malformed payload.
		reqLogger.Error("[Worker] Failed to decode mail message, dropping",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Sending mail",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("kind", string(msg.Kind)),
		slog.String("to", msg.To),
	)

	if err := h.sender.Send(ctx, msg); err != nil {
		metrics.RecordMailDispatch(string(msg.Kind), metrics.MailStatusFailed)
		reqLogger.Error("[Worker] Failed to send mail",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	metrics.RecordMailDispatch(string(msg.Kind), metrics.MailStatusSent)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the X-Request-Id of the push, else a new one.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage) string {
	if requestID := pushMsg.RequestID(); requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http" // For local development
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
