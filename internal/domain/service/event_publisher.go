package service

import (
	"context"
	"time"
)

// OrderLineEvent announces a new order line to the merchant notifier.
type OrderLineEvent struct {
	EventID     string    `json:"event_id"`
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	OrderLineID int64     `json:"order_line_id"`
	OrderID     *int64    `json:"order_id,omitempty"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	MerchantID  int64     `json:"merchant_id"`
	Quantity    int       `json:"quantity"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderLineCreated publishes the event for async processing
	PublishOrderLineCreated(ctx context.Context, event *OrderLineEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
