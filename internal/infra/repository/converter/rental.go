package converter

import (
	"car-rental/internal/domain/rental"
	"car-rental/internal/infra/sqlc"
	"car-rental/internal/pkg/pgconv"
)

func RentalToCreateParams(r *rental.Rental) sqlc.CreateRentalParams {
	return sqlc.CreateRentalParams{
		RentalUid:  r.UID(),
		Username:   r.Username(),
		PaymentUid: r.PaymentUID(),
		CarUid:     r.CarUID(),
		DateFrom:   pgconv.DateToPgtype(r.Period().From()),
		DateTo:     pgconv.DateToPgtype(r.Period().To()),
		Status:     string(r.Status()),
	}
}

func RentalFromRow(row sqlc.Rental) *rental.Rental {
	period := rental.ReconstructPeriod(
		pgconv.DateFromPgtype(row.DateFrom),
		pgconv.DateFromPgtype(row.DateTo),
	)
	return rental.ReconstructRental(
		row.RentalUid,
		row.Username,
		row.PaymentUid,
		row.CarUid,
		period,
		rental.Status(row.Status),
	)
}
