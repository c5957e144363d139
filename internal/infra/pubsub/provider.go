package pubsub

import (
	"context"
	"log/slog"

	"github.com/thenextech/shoploc-back-end/config"
	"github.com/thenextech/shoploc-back-end/internal/domain/constants"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"
	"github.com/thenextech/shoploc-back-end/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// NewEventPublisher picks the transport named by pubsub.provider, closes it on
// shutdown, and counts outcomes when metrics are available.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := openPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.Wrap(publisher.Close(), "close event publisher")
		},
	})

	if params.Metrics != nil {
		return NewInstrumentedPublisher(publisher, params.Metrics), nil
	}

	return publisher, nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}

	switch cfg.Provider {
	case constants.PubSubProviderNone:
		logger.Info("Order line events disabled")

		return NewNoopPublisher(logger), nil

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Pushing order line events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Publishing order line events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %q", cfg.Provider)
	}
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
