package components

import (
	"car-rental/internal/handler"
	"car-rental/internal/handler/api"
	"car-rental/internal/infra/readstore"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var PaymentsModule = fx.Module("payments",
	PersistenceModule,
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentReadQueries)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		commands.NewPaymentCommands,
		queries.NewPaymentQueries,
		api.NewPaymentHandler,
	),
	fx.Invoke(handler.NewPaymentsRouter),
)
