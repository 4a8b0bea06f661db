package repository

import (
	"context"

	"car-rental/internal/domain/rental"
	"car-rental/internal/infra"
	"car-rental/internal/infra/repository/converter"
	"car-rental/internal/infra/sqlc"

	"github.com/google/uuid"
)

type RentalWriteQueries interface {
	CreateRental(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRentalParams) (sqlc.Rental, error)
	GetRentalForUpdate(ctx context.Context, db sqlc.DBTX, rentalUid uuid.UUID) (sqlc.Rental, error)
	UpdateRentalStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRentalStatusParams) (int64, error)
}

type RentalRepository struct {
	queries RentalWriteQueries
}

func NewRentalRepository(queries RentalWriteQueries) *RentalRepository {
	return &RentalRepository{queries: queries}
}

func (r *RentalRepository) Create(ctx context.Context, tx sqlc.DBTX, rent *rental.Rental) (*rental.Rental, error) {
	row, err := r.queries.CreateRental(ctx, tx, converter.RentalToCreateParams(rent))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create rental", err)
	}
	return converter.RentalFromRow(row), nil
}

func (r *RentalRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, rentalUID uuid.UUID) (*rental.Rental, error) {
	row, err := r.queries.GetRentalForUpdate(ctx, tx, rentalUID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock rental", err)
	}
	return converter.RentalFromRow(row), nil
}

func (r *RentalRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, rent *rental.Rental) error {
	affected, err := r.queries.UpdateRentalStatus(ctx, tx, sqlc.UpdateRentalStatusParams{
		RentalUid: rent.UID(),
		Status:    string(rent.Status()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update rental status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return nil
}
