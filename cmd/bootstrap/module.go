package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"car-rental/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// LeafModule wires a service that owns a Postgres database.
func LeafModule(service string, components fx.Option) fx.Option {
	return fx.Options(
		ConfigModule(service),
		LoggerModule,
		DBModule,
		ServerModule,
		components,
	)
}

// GatewayModule wires the booking gateway. It keeps no database of its own.
func GatewayModule(components fx.Option) fx.Option {
	return fx.Options(
		ConfigModule(config.ServiceGateway),
		LoggerModule,
		CacheModule,
		BrokerModule,
		ServerModule,
		components,
	)
}

// SetGinMode defaults to release so a misconfigured deployment never serves debug output.
func SetGinMode() {
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// Run starts app and blocks until it receives a stop signal.
func Run(app *fx.App) {
	if err := app.Start(context.Background()); err != nil {
		slog.Error("application failed to start", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	err := app.Stop(stopCtx)
	cancel()
	if err != nil {
		slog.Error("application failed to stop cleanly", "error", err)
	}

	slog.Info("application stopped")
	os.Exit(sig.ExitCode)
}
