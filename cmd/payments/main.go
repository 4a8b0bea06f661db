package main

import (
	"car-rental/cmd/bootstrap"
	"car-rental/cmd/bootstrap/components"
	"car-rental/internal/pkg/config"

	"go.uber.org/fx"
)

func init() {
	bootstrap.SetGinMode()
}

// @title           Payment Ledger
// @version         1.0
// @description     Payments taken for rentals. A payment is PAID until canceled.

// @BasePath  /
// @schemes http
func main() {
	bootstrap.Run(fx.New(
		bootstrap.LeafModule(config.ServicePayments, components.PaymentsModule),
	))
}
