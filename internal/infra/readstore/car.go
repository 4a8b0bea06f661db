package readstore

import (
	"context"

	"car-rental/internal/infra"
	"car-rental/internal/infra/sqlc"
	"car-rental/internal/pkg/pgconv"
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarReadQueries interface {
	ListCars(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCarsParams) ([]sqlc.Car, error)
	CountCars(ctx context.Context, db sqlc.DBTX, showAll bool) (int64, error)
	GetCarByUID(ctx context.Context, db sqlc.DBTX, carUid uuid.UUID) (sqlc.Car, error)
}

type CarReadStore struct {
	queries CarReadQueries
	db      sqlc.DBTX
}

func NewCarReadStore(queries CarReadQueries, db sqlc.DBTX) *CarReadStore {
	return &CarReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CarReadStore) List(ctx context.Context, showAll bool, limit, offset int32) ([]*queries.CarView, error) {
	rows, err := r.queries.ListCars(ctx, r.db, sqlc.ListCarsParams{
		ShowAll: showAll,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}

	result := make([]*queries.CarView, len(rows))
	for i, row := range rows {
		result[i] = toCarViewFromRow(row)
	}
	return result, nil
}

func (r *CarReadStore) Count(ctx context.Context, showAll bool) (int64, error) {
	total, err := r.queries.CountCars(ctx, r.db, showAll)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count cars", err)
	}
	return total, nil
}

func (r *CarReadStore) FindByUID(ctx context.Context, carUID uuid.UUID) (*queries.CarView, error) {
	row, err := r.queries.GetCarByUID(ctx, r.db, carUID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by UID", err)
	}
	return toCarViewFromRow(row), nil
}

func toCarViewFromRow(row sqlc.Car) *queries.CarView {
	return &queries.CarView{
		CarUID:             row.CarUid,
		Brand:              row.Brand,
		Model:              row.Model,
		RegistrationNumber: row.RegistrationNumber,
		Power:              pgconv.IntPtrFromPgtype(row.Power),
		Price:              int(row.Price),
		Type:               pgconv.StringFromPgtype(row.Type),
		Available:          row.Availability,
	}
}
