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

// @title           Rental Ledger
// @version         1.0
// @description     Per-user rentals and their IN_PROGRESS, FINISHED and CANCELED transitions.

// @BasePath  /
// @schemes http
func main() {
	bootstrap.Run(fx.New(
		bootstrap.LeafModule(config.ServiceRentals, components.RentalsModule),
	))
}
