//go:build unit

package readstore

import (
	"context"
	"testing"

	"car-rental/internal/infra"
	"car-rental/internal/infra/sqlc"
	"car-rental/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCarReadQueries struct {
	mock.Mock
}

func (m *MockCarReadQueries) ListCars(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCarsParams) ([]sqlc.Car, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Car), args.Error(1)
}

func (m *MockCarReadQueries) CountCars(ctx context.Context, db sqlc.DBTX, showAll bool) (int64, error) {
	args := m.Called(ctx, db, showAll)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarReadQueries) GetCarByUID(ctx context.Context, db sqlc.DBTX, carUid uuid.UUID) (sqlc.Car, error) {
	args := m.Called(ctx, db, carUid)
	return args.Get(0).(sqlc.Car), args.Error(1)
}

func TestCarReadStore_List(t *testing.T) {
	carUID := uuid.New()
	row := sqlc.Car{
		ID:                 1,
		CarUid:             carUID,
		Brand:              "Mercedes Benz",
		Model:              "GLA 250",
		RegistrationNumber: "ЛО777Х799",
		Power:              pgtype.Int4{Int32: 249, Valid: true},
		Price:              3500,
		Type:               pgtype.Text{String: "SEDAN", Valid: true},
		Availability:       true,
	}

	m := new(MockCarReadQueries)
	m.On("ListCars", mock.Anything, mock.Anything, sqlc.ListCarsParams{ShowAll: false, Limit: 10, Offset: 20}).
		Return([]sqlc.Car{row}, nil)

	store := NewCarReadStore(m, nil)
	got, err := store.List(context.Background(), false, 10, 20)
	require.NoError(t, err)

	power := 249
	want := []*queries.CarView{{
		CarUID:             carUID,
		Brand:              "Mercedes Benz",
		Model:              "GLA 250",
		RegistrationNumber: "ЛО777Х799",
		Power:              &power,
		Price:              3500,
		Type:               "SEDAN",
		Available:          true,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
	m.AssertExpectations(t)
}

func TestCarReadStore_FindByUID(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "car not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carUID := uuid.New()
			m := new(MockCarReadQueries)
			m.On("GetCarByUID", mock.Anything, mock.Anything, carUID).Return(sqlc.Car{}, tt.mockError)

			got, err := NewCarReadStore(m, nil).FindByUID(context.Background(), carUID)

			assert.Nil(t, got)
			assert.True(t, infra.IsKind(err, tt.wantKind))
			m.AssertExpectations(t)
		})
	}
}

func TestCarReadStore_Count(t *testing.T) {
	m := new(MockCarReadQueries)
	m.On("CountCars", mock.Anything, mock.Anything, true).Return(int64(3), nil)

	total, err := NewCarReadStore(m, nil).Count(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
