package components

import (
	"car-rental/internal/handler"
	"car-rental/internal/handler/api"
	"car-rental/internal/infra/client"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	upstreamModule,
	fx.Provide(
		clock.NewRealClock,
		commands.NewBookingCommands,
		queries.NewRentalDetailsQueries,
		queries.NewCarCatalogQueries,
		api.NewGatewayHandler,
	),
	fx.Invoke(handler.NewGatewayRouter),
)

var upstreamModule = fx.Module("gateway/upstream",
	fx.Provide(
		client.NewHTTPClient,
		fx.Annotate(
			client.NewCarsClient,
			fx.As(new(shared.CarRegistry)),
		),
		fx.Annotate(
			client.NewPaymentsClient,
			fx.As(new(shared.PaymentLedger)),
		),
		fx.Annotate(
			client.NewRentalsClient,
			fx.As(new(shared.RentalLedger)),
		),
	),
)
