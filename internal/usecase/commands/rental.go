package commands

import (
	"context"

	"car-rental/internal/domain/rental"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRentalInput struct {
	// RentalUID is optional. When set, creation is idempotent.
	RentalUID  uuid.UUID
	Username   string
	PaymentUID uuid.UUID
	CarUID     uuid.UUID
	DateFrom   string
	DateTo     string
}

//go:generate mockgen -destination=../../../tests/mock/commands/rental.go -package=commandsmock . RentalCommands

type RentalCommands interface {
	Create(ctx context.Context, in CreateRentalInput) (*queries.RentalView, error)
	// Finish checks ownership only when username is not empty.
	Finish(ctx context.Context, rentalUID uuid.UUID, username string) (*queries.RentalView, error)
	Cancel(ctx context.Context, rentalUID uuid.UUID, username string) (*queries.RentalView, error)
}

type rentalCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRentalCommands(uow shared.UnitOfWork) RentalCommands {
	return &rentalCommandsImpl{uow: uow}
}

func (c *rentalCommandsImpl) Create(ctx context.Context, in CreateRentalInput) (*queries.RentalView, error) {
	period, err := rental.ParsePeriod(in.DateFrom, in.DateTo)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPeriod)
	}
	entity, err := rental.NewRental(in.RentalUID, in.Username, in.PaymentUID, in.CarUID, period)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var created *rental.Rental
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		created, err = tx.Rentals().Create(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return toRentalView(created), nil
}

func (c *rentalCommandsImpl) Finish(ctx context.Context, rentalUID uuid.UUID, username string) (*queries.RentalView, error) {
	return c.transition(ctx, rentalUID, username, (*rental.Rental).Finish)
}

func (c *rentalCommandsImpl) Cancel(ctx context.Context, rentalUID uuid.UUID, username string) (*queries.RentalView, error) {
	return c.transition(ctx, rentalUID, username, (*rental.Rental).Cancel)
}

func (c *rentalCommandsImpl) transition(ctx context.Context, rentalUID uuid.UUID, username string, apply func(*rental.Rental) error) (*queries.RentalView, error) {
	var updated *rental.Rental
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rentals().FindForUpdate(ctx, tx.DB(), rentalUID)
		if err != nil {
			return err
		}
		if username != "" {
			if err := r.CheckOwner(username); err != nil {
				return errs.Mark(err, errs.ErrForbidden)
			}
		}
		if err := apply(r); err != nil {
			return errs.Mark(err, errs.ErrConflict)
		}
		if err := tx.Rentals().UpdateStatus(ctx, tx.DB(), r); err != nil {
			return err
		}
		updated = r
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrRentalNotFound
		case errs.Is(err, errs.ErrForbidden), errs.Is(err, errs.ErrConflict):
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return toRentalView(updated), nil
}
