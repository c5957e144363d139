package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"

	"github.com/pkg/errors"
)

// LocalSubscription names the subscription on locally pushed messages.
const LocalSubscription = "projects/local/subscriptions/order-line-sub"

const (
	localPushTimeout = 10 * time.Second
	maxErrorBody     = 512
)

// localHTTPPublisher delivers events straight to the notifier's push endpoint,
// standing in for a Pub/Sub push subscription during development.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	now        func() time.Time
	logger     *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher that POSTs push envelopes to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		now:        time.Now,
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishOrderLineCreated(ctx context.Context, event *service.OrderLineEvent) error {
	msg, err := newEventMessage(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(newPushMessage(msg, event.EventID, LocalSubscription, p.now()))
	if err != nil {
		return errors.Wrap(err, "failed to encode push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push to %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return errors.Errorf("notifier answered %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	deliverycontext.LoggerFrom(ctx, p.logger).Debug("[LocalPubSub] Event pushed",
		slog.String("event_id", event.EventID),
		slog.String("endpoint", p.endpoint),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
