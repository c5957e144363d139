package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/thenextech/shoploc-back-end/config"
	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"
	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"
	"github.com/thenextech/shoploc-back-end/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// outcome decides how Pub/Sub treats a delivery. Only a 503 triggers redelivery.
type outcome int

const (
	delivered outcome = iota
	// dropped events can never succeed, so they are acknowledged.
	dropped
	retry
)

var outcomeStatus = map[outcome]int{
	delivered: http.StatusOK,
	dropped:   http.StatusOK,
	retry:     http.StatusServiceUnavailable,
}

// PushHandler emails the merchant behind each order line event.
type PushHandler struct {
	auth     *pushAuthenticator
	logger   *slog.Logger
	userRepo repository.UserRepository
	mailer   service.EmailSender
	composer service.MailComposer
}

type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	UserRepo repository.UserRepository
	Mailer   service.EmailSender
	Composer service.MailComposer
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		auth:     newPushAuthenticator(params.Config),
		logger:   params.Logger,
		userRepo: params.UserRepo,
		mailer:   params.Mailer,
		composer: params.Composer,
	}
}

// HandlePush answers 401 on a bad token and 400 on an undecodable envelope.
// Otherwise the status follows the outcome of notifyMerchant.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.auth != nil {
		if err := h.auth.authenticate(c.Request()); err != nil {
			h.logger.Warn("Push rejected", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushMessage
	if err := c.Bind(&envelope); err != nil {
		h.logger.Warn("Push envelope unreadable", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	event, err := envelope.Event()
	if err != nil {
		h.logger.Warn("Push payload is not an order line event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	ctx = deliverycontext.WithRequest(ctx, h.extractRequestID(ctx, &envelope, event), h.logger)
	log := deliverycontext.LoggerFrom(ctx, h.logger).With(
		slog.String("event_id", event.EventID),
		slog.Int64("order_line_id", event.OrderLineID),
		slog.Int64("merchant_id", event.MerchantID),
	)

	result, err := h.notifyMerchant(ctx, event)
	switch {
	case err == nil:
		log.Info("Merchant notified of order line")
	case result == retry:
		log.Error("Merchant notification failed, asking for redelivery", slog.Any("error", err))
	default:
		log.Warn("Order line event dropped", slog.Any("error", err))
	}

	return c.NoContent(outcomeStatus[result])
}

// extractRequestID prefers the message attribute, then the event body, then
// the X-Request-Id of the push request, and generates one as a last resort.
func (h *PushHandler) extractRequestID(ctx context.Context, envelope *pubsub.PushMessage, event *service.OrderLineEvent) string {
	for _, id := range []string{
		envelope.Message.Attributes[pubsub.AttrRequestID],
		event.RequestID,
		deliverycontext.RequestIDFrom(ctx),
	} {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}

func (h *PushHandler) notifyMerchant(ctx context.Context, event *service.OrderLineEvent) (outcome, error) {
	if event.MerchantID <= 0 || event.Quantity <= 0 {
		return dropped, errors.Errorf("malformed event: merchant %d, quantity %d", event.MerchantID, event.Quantity)
	}

	merchant, err := h.userRepo.FindByID(ctx, event.MerchantID)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return dropped, errors.Wrapf(err, "merchant %d", event.MerchantID)
	case err != nil:
		return retry, errors.Wrap(err, "failed to load merchant")
	case !merchant.IsMerchant():
		return dropped, errors.Errorf("user %d is not a merchant", event.MerchantID)
	}

	storeName := merchant.FullName()
	if merchant.Merchant != nil && merchant.Merchant.StoreName != "" {
		storeName = merchant.Merchant.StoreName
	}

	email, err := h.composer.NewOrderLine(storeName, event.ProductName, event.Quantity)
	if err != nil {
		return dropped, errors.Wrap(err, "failed to render order line email")
	}
	email.To = merchant.Email

	if err := h.mailer.Send(ctx, email); err != nil {
		return retry, errors.Wrap(err, "failed to send order line email")
	}

	return delivered, nil
}
