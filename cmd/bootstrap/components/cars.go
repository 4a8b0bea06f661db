package components

import (
	"car-rental/internal/handler"
	"car-rental/internal/handler/api"
	"car-rental/internal/infra/readstore"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var CarsModule = fx.Module("cars",
	PersistenceModule,
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CarReadQueries)),
		),
		fx.Annotate(
			readstore.NewCarReadStore,
			fx.As(new(queries.CarReadStore)),
		),
		commands.NewCarCommands,
		queries.NewCarQueries,
		api.NewCarHandler,
	),
	fx.Invoke(handler.NewCarsRouter),
)
