package repository

import (
	"context"

	"car-rental/internal/domain/payment"
	"car-rental/internal/infra"
	"car-rental/internal/infra/repository/converter"
	"car-rental/internal/infra/sqlc"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (sqlc.Payment, error)
	GetPaymentForUpdate(ctx context.Context, db sqlc.DBTX, paymentUid uuid.UUID) (sqlc.Payment, error)
	UpdatePaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentStatusParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
}

func NewPaymentRepository(queries PaymentWriteQueries) *PaymentRepository {
	return &PaymentRepository{queries: queries}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (*payment.Payment, error) {
	row, err := r.queries.CreatePayment(ctx, tx, converter.PaymentToCreateParams(p))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return converter.PaymentFromRow(row), nil
}

func (r *PaymentRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, paymentUID uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentForUpdate(ctx, tx, paymentUID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}
	return converter.PaymentFromRow(row), nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	affected, err := r.queries.UpdatePaymentStatus(ctx, tx, sqlc.UpdatePaymentStatusParams{
		PaymentUid: p.UID(),
		Status:     string(p.Status()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
