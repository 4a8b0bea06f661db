package queries

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

type PaymentReadStore interface {
	FindByUID(ctx context.Context, paymentUID uuid.UUID) (*PaymentView, error)
}

//go:generate mockgen -destination=../../../tests/mock/queries/payment.go -package=queriesmock . PaymentQueries

type PaymentQueries interface {
	GetByUID(ctx context.Context, paymentUID uuid.UUID) (*PaymentView, error)
}

type paymentQueriesImpl struct {
	readStore PaymentReadStore
}

func NewPaymentQueries(readStore PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{readStore: readStore}
}

func (q *paymentQueriesImpl) GetByUID(ctx context.Context, paymentUID uuid.UUID) (*PaymentView, error) {
	view, err := q.readStore.FindByUID(ctx, paymentUID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPaymentNotFound
		}
		return nil, err
	}
	return view, nil
}
