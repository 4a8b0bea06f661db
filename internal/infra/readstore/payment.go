package readstore

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/infra/sqlc"
	"car-rental/internal/pkg/pgconv"
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadQueries interface {
	GetPaymentByUID(ctx context.Context, db sqlc.DBTX, paymentUid uuid.UUID) (sqlc.Payment, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindByUID(ctx context.Context, paymentUID uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentByUID(ctx, r.db, paymentUID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by UID", err)
	}

	return &queries.PaymentView{
		PaymentUID: row.PaymentUid,
		Status:     row.Status,
		Price:      int(row.Price),
	}, nil
}
