package repository

import (
	"context"

	"car-rental/internal/domain/car"
	"car-rental/internal/infra"
	"car-rental/internal/infra/repository/converter"
	"car-rental/internal/infra/sqlc"
	"car-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CarWriteQueries interface {
	CreateCar(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCarParams) (sqlc.Car, error)
	SetCarAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.SetCarAvailabilityParams) (sqlc.Car, error)
	CarExists(ctx context.Context, db sqlc.DBTX, carUid uuid.UUID) (bool, error)
}

type CarRepository struct {
	queries CarWriteQueries
}

func NewCarRepository(queries CarWriteQueries) *CarRepository {
	return &CarRepository{queries: queries}
}

func (r *CarRepository) Create(ctx context.Context, tx sqlc.DBTX, c *car.Car) (*car.Car, error) {
	row, err := r.queries.CreateCar(ctx, tx, converter.CarToCreateParams(c))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create car", err)
	}
	return converter.CarFromRow(row), nil
}

func (r *CarRepository) SetAvailability(ctx context.Context, tx sqlc.DBTX, carUID uuid.UUID, change car.AvailabilityChange) (*car.Car, error) {
	row, err := r.queries.SetCarAvailability(ctx, tx, sqlc.SetCarAvailabilityParams{
		CarUid:       carUID,
		Availability: change.To,
		Expected:     pgconv.BoolPtrToPgtype(change.Expect),
		Holder:       pgconv.UUIDToPgtype(change.Holder),
	})
	if err == nil {
		return converter.CarFromRow(row), nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to update car availability", err)
	}

	// no row matched: either the car does not exist or the guard failed
	exists, existsErr := r.queries.CarExists(ctx, tx, carUID)
	if existsErr != nil {
		return nil, infra.WrapRepoErr("failed to check car existence", existsErr)
	}
	if !exists {
		return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
	}
	return nil, infra.WrapRepoErr("car availability changed concurrently", err, infra.KindConflict)
}
