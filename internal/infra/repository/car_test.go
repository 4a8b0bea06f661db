//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"

	"car-rental/internal/domain/car"
	"car-rental/internal/infra"
	"car-rental/internal/infra/sqlc"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func carRow(uid uuid.UUID, available bool) sqlc.Car {
	return sqlc.Car{
		ID:                 1,
		CarUid:             uid,
		Brand:              "Mercedes Benz",
		Model:              "GLA 250",
		RegistrationNumber: "ЛО777Х799",
		Power:              pgtype.Int4{Int32: 249, Valid: true},
		Price:              3500,
		Type:               pgtype.Text{String: "SEDAN", Valid: true},
		Availability:       available,
	}
}

func TestCarRepository_SetAvailability(t *testing.T) {
	ctx := context.Background()
	carUID := uuid.New()
	holder := uuid.New()

	tests := []struct {
		name       string
		change     car.AvailabilityChange
		setup      func(m *MockWriteQueries, db sqlc.DBTX)
		wantAvail  bool
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:   "success: unguarded reserve",
			change: car.Reserve(false),
			setup: func(m *MockWriteQueries, db sqlc.DBTX) {
				m.On("SetCarAvailability", ctx, db, sqlc.SetCarAvailabilityParams{CarUid: carUID, Availability: false}).
					Return(carRow(carUID, false), nil)
			},
			wantAvail: false,
		},
		{
			name:   "success: guarded release",
			change: car.Release(true),
			setup: func(m *MockWriteQueries, db sqlc.DBTX) {
				m.On("SetCarAvailability", ctx, db, sqlc.SetCarAvailabilityParams{
					CarUid: carUID, Availability: true, Expected: pgtype.Bool{Bool: false, Valid: true},
				}).Return(carRow(carUID, true), nil)
			},
			wantAvail: true,
		},
		{
			name:   "success: reserve on behalf of a holder",
			change: car.ReserveFor(holder),
			setup: func(m *MockWriteQueries, db sqlc.DBTX) {
				m.On("SetCarAvailability", ctx, db, sqlc.SetCarAvailabilityParams{
					CarUid: carUID, Availability: false, Holder: pgtype.UUID{Bytes: holder, Valid: true},
				}).Return(carRow(carUID, false), nil)
			},
			wantAvail: false,
		},
		{
			name:   "error: unknown car",
			change: car.Reserve(true),
			setup: func(m *MockWriteQueries, db sqlc.DBTX) {
				m.On("SetCarAvailability", ctx, db, mock.Anything).Return(sqlc.Car{}, pgx.ErrNoRows)
				m.On("CarExists", ctx, db, carUID).Return(false, nil)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name:   "error: guard failed on reserved car",
			change: car.Reserve(true),
			setup: func(m *MockWriteQueries, db sqlc.DBTX) {
				m.On("SetCarAvailability", ctx, db, mock.Anything).Return(sqlc.Car{}, pgx.ErrNoRows)
				m.On("CarExists", ctx, db, carUID).Return(true, nil)
			},
			expectKind: infra.KindConflict,
		},
		{
			name:   "error: database failure",
			change: car.Release(false),
			setup: func(m *MockWriteQueries, db sqlc.DBTX) {
				m.On("SetCarAvailability", ctx, db, mock.Anything).Return(sqlc.Car{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockWriteQueries)
			db := &mockDBTX{}
			tt.setup(m, db)

			repo := NewCarRepository(m)
			got, err := repo.SetAvailability(ctx, db, carUID, tt.change)

			if tt.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind), "expected kind [%v] but got (%v)", tt.expectKind, err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, carUID, got.UID())
				assert.Equal(t, tt.wantAvail, got.Available())
			}
			m.AssertExpectations(t)
		})
	}
}

func TestCarRepository_Create(t *testing.T) {
	ctx := context.Background()
	power := 249
	c, err := car.NewCar(uuid.New(), "Mercedes Benz", "GLA 250", "ЛО777Х799", &power, 3500, car.TypeSedan)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		m := new(MockWriteQueries)
		db := &mockDBTX{}
		m.On("CreateCar", ctx, db, mock.MatchedBy(func(p sqlc.CreateCarParams) bool {
			return p.CarUid == c.UID() && p.Power.Int32 == 249 && p.Type.String == "SEDAN" && p.Availability
		})).Return(carRow(c.UID(), true), nil)

		got, err := NewCarRepository(m).Create(ctx, db, c)
		require.NoError(t, err)
		assert.Equal(t, car.TypeSedan, got.Type())
		m.AssertExpectations(t)
	})

	t.Run("error: duplicate car uid", func(t *testing.T) {
		m := new(MockWriteQueries)
		db := &mockDBTX{}
		m.On("CreateCar", ctx, db, mock.Anything).Return(sqlc.Car{}, &pgconn.PgError{Code: "23505"})

		_, err := NewCarRepository(m).Create(ctx, db, c)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}
