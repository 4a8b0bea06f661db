package readstore

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/infra/sqlc"
	"car-rental/internal/pkg/pgconv"
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalReadQueries interface {
	ListRentalsByUsername(ctx context.Context, db sqlc.DBTX, username string) ([]sqlc.Rental, error)
	GetRentalByUID(ctx context.Context, db sqlc.DBTX, rentalUid uuid.UUID) (sqlc.Rental, error)
}

type RentalReadStore struct {
	queries RentalReadQueries
	db      sqlc.DBTX
}

func NewRentalReadStore(queries RentalReadQueries, db sqlc.DBTX) *RentalReadStore {
	return &RentalReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RentalReadStore) ListByUsername(ctx context.Context, username string) ([]*queries.RentalView, error) {
	rows, err := r.queries.ListRentalsByUsername(ctx, r.db, username)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals by username", err)
	}

	result := make([]*queries.RentalView, len(rows))
	for i, row := range rows {
		result[i] = toRentalViewFromRow(row)
	}
	return result, nil
}

func (r *RentalReadStore) FindByUID(ctx context.Context, rentalUID uuid.UUID) (*queries.RentalView, error) {
	row, err := r.queries.GetRentalByUID(ctx, r.db, rentalUID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental by UID", err)
	}
	return toRentalViewFromRow(row), nil
}

func toRentalViewFromRow(row sqlc.Rental) *queries.RentalView {
	return &queries.RentalView{
		RentalUID:  row.RentalUid,
		Username:   row.Username,
		PaymentUID: row.PaymentUid,
		CarUID:     row.CarUid,
		DateFrom:   pgconv.DateFromPgtype(row.DateFrom),
		DateTo:     pgconv.DateFromPgtype(row.DateTo),
		Status:     row.Status,
	}
}
