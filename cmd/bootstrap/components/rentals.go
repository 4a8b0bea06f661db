package components

import (
	"car-rental/internal/handler"
	"car-rental/internal/handler/api"
	"car-rental/internal/infra/readstore"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var RentalsModule = fx.Module("rentals",
	PersistenceModule,
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RentalReadQueries)),
		),
		fx.Annotate(
			readstore.NewRentalReadStore,
			fx.As(new(queries.RentalReadStore)),
		),
		commands.NewRentalCommands,
		queries.NewRentalQueries,
		api.NewRentalHandler,
	),
	fx.Invoke(handler.NewRentalsRouter),
)
