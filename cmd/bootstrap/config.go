package bootstrap

import (
	"car-rental/internal/pkg/config"

	"go.uber.org/fx"
)

func ConfigModule(service string) fx.Option {
	return fx.Module("config",
		fx.Provide(
			config.Loader(service),
		),
	)
}
