package pubsub

import (
	"context"
	"log/slog"

	"github.com/thenextech/shoploc-back-end/internal/domain/service"
)

type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher drops every event. It backs deployments without a notifier.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return noopPublisher{logger: logger}
}

func (p noopPublisher) PublishOrderLineCreated(_ context.Context, event *service.OrderLineEvent) error {
	p.logger.Debug("Order line event dropped, publishing disabled", slog.Int64("order_line_id", event.OrderLineID))

	return nil
}

func (noopPublisher) Close() error { return nil }
