package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenextech/shoploc-back-end/config"
	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// publishDelay bounds how long a message waits for a batch; events are rare and latency matters more.
const publishDelay = 10 * time.Millisecond

// googlePubSubPublisher publishes order line events to a Pub/Sub topic with
// per-merchant ordering keys.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to the topic and fails fast if it does not exist.
func NewGooglePubSubPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Pub/Sub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", cfg.ProjectID, cfg.TopicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topic)
	}

	publisher := client.Publisher(cfg.TopicID)
	publisher.EnableMessageOrdering = true
	publisher.PublishSettings.DelayThreshold = publishDelay

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishOrderLineCreated blocks until the server acknowledged the message.
func (p *googlePubSubPublisher) PublishOrderLineCreated(ctx context.Context, event *service.OrderLineEvent) error {
	msg, err := newEventMessage(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	}).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		p.publisher.ResumePublish(msg.orderingKey)

		return errors.Wrapf(err, "failed to publish event %s", event.EventID)
	}

	deliverycontext.LoggerFrom(ctx, p.logger).Debug("[GooglePubSub] Event published",
		slog.String("event_id", event.EventID),
		slog.String("server_id", serverID),
		slog.String("ordering_key", msg.orderingKey),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
