package commands

import (
	"context"

	"car-rental/internal/domain/payment"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreatePaymentInput struct {
	// PaymentUID is optional. When set, creation is idempotent.
	PaymentUID uuid.UUID
	Status     string
	Price      int
}

//go:generate mockgen -destination=../../../tests/mock/commands/payment.go -package=commandsmock . PaymentCommands

type PaymentCommands interface {
	Create(ctx context.Context, in CreatePaymentInput) (*queries.PaymentView, error)
	Cancel(ctx context.Context, paymentUID uuid.UUID) (*queries.PaymentView, error)
}

type paymentCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPaymentCommands(uow shared.UnitOfWork) PaymentCommands {
	return &paymentCommandsImpl{uow: uow}
}

func (c *paymentCommandsImpl) Create(ctx context.Context, in CreatePaymentInput) (*queries.PaymentView, error) {
	entity, err := payment.NewPayment(in.PaymentUID, payment.Status(in.Status), in.Price)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var created *payment.Payment
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		created, err = tx.Payments().Create(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return toPaymentView(created), nil
}

func (c *paymentCommandsImpl) Cancel(ctx context.Context, paymentUID uuid.UUID) (*queries.PaymentView, error) {
	var canceled *payment.Payment
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Payments().FindForUpdate(ctx, tx.DB(), paymentUID)
		if err != nil {
			return err
		}
		if !p.IsPaid() {
			canceled = p
			return nil
		}
		if err := p.Cancel(); err != nil {
			return errs.Mark(err, errs.ErrConflict)
		}
		if err := tx.Payments().UpdateStatus(ctx, tx.DB(), p); err != nil {
			return err
		}
		canceled = p
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrPaymentNotFound
		case errs.Is(err, errs.ErrConflict):
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return toPaymentView(canceled), nil
}
