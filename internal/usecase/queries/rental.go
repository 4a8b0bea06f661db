package queries

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

type RentalReadStore interface {
	ListByUsername(ctx context.Context, username string) ([]*RentalView, error)
	FindByUID(ctx context.Context, rentalUID uuid.UUID) (*RentalView, error)
}

//go:generate mockgen -destination=../../../tests/mock/queries/rental.go -package=queriesmock . RentalQueries

type RentalQueries interface {
	// ListByUsername reports ErrRentalNotFound rather than an empty list.
	ListByUsername(ctx context.Context, username string) ([]*RentalView, error)
	GetByUID(ctx context.Context, rentalUID uuid.UUID, username string) (*RentalView, error)
}

type rentalQueriesImpl struct {
	readStore RentalReadStore
}

func NewRentalQueries(readStore RentalReadStore) RentalQueries {
	return &rentalQueriesImpl{readStore: readStore}
}

func (q *rentalQueriesImpl) ListByUsername(ctx context.Context, username string) ([]*RentalView, error) {
	views, err := q.readStore.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, errs.ErrRentalNotFound
	}
	return views, nil
}

func (q *rentalQueriesImpl) GetByUID(ctx context.Context, rentalUID uuid.UUID, username string) (*RentalView, error) {
	view, err := q.readStore.FindByUID(ctx, rentalUID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRentalNotFound
		}
		return nil, err
	}
	if view.Username != username {
		return nil, errs.ErrForbidden
	}
	return view, nil
}
