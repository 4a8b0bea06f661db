package queries

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type CarReadStore interface {
	List(ctx context.Context, showAll bool, limit, offset int32) ([]*CarView, error)
	Count(ctx context.Context, showAll bool) (int64, error)
	FindByUID(ctx context.Context, carUID uuid.UUID) (*CarView, error)
}

//go:generate mockgen -destination=../../../tests/mock/queries/car.go -package=queriesmock . CarQueries

type CarQueries interface {
	List(ctx context.Context, page, size int, showAll bool) (*CarPage, error)
	GetByUID(ctx context.Context, carUID uuid.UUID) (*CarView, error)
}

type carQueriesImpl struct {
	readStore CarReadStore
}

func NewCarQueries(readStore CarReadStore) CarQueries {
	return &carQueriesImpl{readStore: readStore}
}

// List returns one 1-indexed page. A page past the end is reported as
// ErrCarNotFound.
func (q *carQueriesImpl) List(ctx context.Context, page, size int, showAll bool) (*CarPage, error) {
	if page < 1 || size < 1 || size > MaxPageSize {
		return nil, errs.Wrapf(errs.ErrDomainValidation, "page=%d size=%d", page, size)
	}

	offset := (page - 1) * size
	items, err := q.readStore.List(ctx, showAll, int32(size), int32(offset))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.ErrCarNotFound
	}

	total, err := q.readStore.Count(ctx, showAll)
	if err != nil {
		return nil, err
	}

	return &CarPage{
		Page:          page,
		PageSize:      size,
		TotalElements: total,
		Items:         items,
	}, nil
}

func (q *carQueriesImpl) GetByUID(ctx context.Context, carUID uuid.UUID) (*CarView, error) {
	view, err := q.readStore.FindByUID(ctx, carUID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCarNotFound
		}
		return nil, err
	}
	return view, nil
}
