package pubsub

import (
	"context"

	"github.com/thenextech/shoploc-back-end/internal/domain/service"
)

const eventTypeOrderLineCreated = "order_line_created"

// EventRecorder counts publish outcomes per event type.
type EventRecorder interface {
	EventPublished(eventType string, success bool)
}

// instrumentedPublisher records every publish outcome before returning it.
type instrumentedPublisher struct {
	next     service.EventPublisher
	recorder EventRecorder
}

// NewInstrumentedPublisher wraps next so each publish is reported to recorder.
func NewInstrumentedPublisher(next service.EventPublisher, recorder EventRecorder) service.EventPublisher {
	return &instrumentedPublisher{next: next, recorder: recorder}
}

func (p *instrumentedPublisher) PublishOrderLineCreated(ctx context.Context, event *service.OrderLineEvent) error {
	err := p.next.PublishOrderLineCreated(ctx, event)
	p.recorder.EventPublished(eventTypeOrderLineCreated, err == nil)

	return err
}

func (p *instrumentedPublisher) Close() error {
	return p.next.Close()
}
