package bootstrap

import (
	"context"
	"log/slog"

	"car-rental/internal/infra/queue"
	"car-rental/internal/pkg/config"
	"car-rental/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher publishes rental events to RabbitMQ when RABBITMQ_URL is
// set. The connection is opened on first publish.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.EventPublisher {
	if !cfg.Broker.Enabled() {
		logger.Warn("RABBITMQ_URL not set, rental events are dropped")
		return queue.NoopPublisher{}
	}

	publisher := queue.NewRabbitPublisher(cfg.Broker, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
