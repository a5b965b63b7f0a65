package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"

	deliverycontext "contactbook/internal/delivery/context"
	"contactbook/internal/domain/entity"
	"contactbook/internal/domain/service"
	"contactbook/internal/errors"
)

// googlePubSubSender queues mail on a Google Cloud Pub/Sub topic for the mail worker.
type googlePubSubSender struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubSender connects to projectID and checks that topicID exists.
func NewGooglePubSubSender(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.MailSender, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub mail sender initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubSender{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// Send publishes msg and waits for the server ack.
func (p *googlePubSubSender) Send(ctx context.Context, msg *entity.MailMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	log := deliverycontext.GetLoggerOrDefault(ctx, p.logger)
	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: mailAttributes(deliverycontext.GetRequestIDFromContext(ctx), msg),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrap(err, "publish mail message")
	}

	log.Info("[GooglePubSub] Mail queued",
		slog.String("kind", string(msg.Kind)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubSender) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
