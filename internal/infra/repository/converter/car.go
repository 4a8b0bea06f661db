package converter

import (
	"car-rental/internal/domain/car"
	"car-rental/internal/infra/sqlc"
	"car-rental/internal/pkg/pgconv"
)

func CarToCreateParams(c *car.Car) sqlc.CreateCarParams {
	carType := string(c.Type())
	return sqlc.CreateCarParams{
		CarUid:             c.UID(),
		Brand:              c.Brand(),
		Model:              c.Model(),
		RegistrationNumber: c.RegistrationNumber(),
		Power:              pgconv.Int4PtrToPgtype(c.Power()),
		Price:              int32(c.Price()),
		Type:               pgconv.StringPtrToPgtype(&carType),
		Availability:       c.Available(),
	}
}

func CarFromRow(row sqlc.Car) *car.Car {
	return car.ReconstructCar(
		row.CarUid,
		row.Brand,
		row.Model,
		row.RegistrationNumber,
		pgconv.IntPtrFromPgtype(row.Power),
		int(row.Price),
		car.Type(pgconv.StringFromPgtype(row.Type)),
		row.Availability,
	)
}
