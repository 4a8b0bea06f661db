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

// @title           Car Registry
// @version         1.0
// @description     Car catalog with a reserve/release availability flag.

// @BasePath  /
// @schemes http
func main() {
	bootstrap.Run(fx.New(
		bootstrap.LeafModule(config.ServiceCars, components.CarsModule),
	))
}
