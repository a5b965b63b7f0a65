package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/domain/entity"
	"contactbook/internal/domain/service"
	"contactbook/internal/errors"
)

const localSubscription = "projects/local/subscriptions/mail-outbox"

// localHTTPSender posts mail to a locally running worker in the Pub/Sub push format.
type localHTTPSender struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPSender creates a sender for development setups without Pub/Sub.
func NewLocalHTTPSender(endpoint string, logger *slog.Logger) service.MailSender {
	return &localHTTPSender{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Send wraps msg in a push envelope and posts it to the worker.
func (p *localHTTPSender) Send(ctx context.Context, msg *entity.MailMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	pushMsg := PushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = mailAttributes(requestID, msg)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Info("[LocalPubSub] Mail queued",
		slog.String("endpoint", p.endpoint),
		slog.String("kind", string(msg.Kind)),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	return nil
}

// Close is a no-op for the HTTP client.
func (p *localHTTPSender) Close() error {
	return nil
}
