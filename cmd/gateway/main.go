package main

import (
	"car-rental/cmd/bootstrap"
	"car-rental/cmd/bootstrap/components"

	"go.uber.org/fx"
)

func init() {
	bootstrap.SetGinMode()
}

// @title           Car Rental Gateway
// @version         1.0
// @description     Public API. Books, finishes and cancels rentals across the car, payment and rental services.

// @BasePath  /
// @schemes http
func main() {
	bootstrap.Run(fx.New(
		bootstrap.GatewayModule(components.GatewayModule),
	))
}
