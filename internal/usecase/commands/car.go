package commands

import (
	"context"

	"car-rental/internal/domain/car"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateCarInput struct {
	CarUID             uuid.UUID
	Brand              string
	Model              string
	RegistrationNumber string
	Power              *int
	Price              int
	Type               string
}

//go:generate mockgen -destination=../../../tests/mock/commands/car.go -package=commandsmock . CarCommands

type CarCommands interface {
	Create(ctx context.Context, in CreateCarInput) (*queries.CarView, error)
	// SetAvailability reserves (available=false) or releases (available=true)
	// a car. A nil expect applies the change unconditionally; otherwise the
	// car must currently be in state *expect. A non-nil holder scopes the
	// change to that holder's reservation and overrides expect.
	SetAvailability(ctx context.Context, carUID uuid.UUID, available bool, expect *bool, holder uuid.UUID) (*queries.CarView, error)
}

type carCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCarCommands(uow shared.UnitOfWork) CarCommands {
	return &carCommandsImpl{uow: uow}
}

func (c *carCommandsImpl) Create(ctx context.Context, in CreateCarInput) (*queries.CarView, error) {
	carType, err := car.ParseType(in.Type)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	entity, err := car.NewCar(in.CarUID, in.Brand, in.Model, in.RegistrationNumber, in.Power, in.Price, carType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var created *car.Car
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		created, err = tx.Cars().Create(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return toCarView(created), nil
}

func (c *carCommandsImpl) SetAvailability(ctx context.Context, carUID uuid.UUID, available bool, expect *bool, holder uuid.UUID) (*queries.CarView, error) {
	change := car.AvailabilityChange{To: available, Expect: expect, Holder: holder}

	var updated *car.Car
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		updated, err = tx.Cars().SetAvailability(ctx, tx.DB(), carUID, change)
		return err
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrCarNotFound
		case infra.IsKind(err, infra.KindConflict) && !available:
			return nil, errs.CarUnavailable(err)
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.Mark(err, errs.ErrConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return toCarView(updated), nil
}
