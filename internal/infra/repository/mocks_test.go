//go:build unit

package repository

import (
	"context"

	"car-rental/internal/infra/sqlc"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

type MockWriteQueries struct {
	mock.Mock
}

func (m *MockWriteQueries) CreateCar(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCarParams) (sqlc.Car, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Car), args.Error(1)
}

func (m *MockWriteQueries) SetCarAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.SetCarAvailabilityParams) (sqlc.Car, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Car), args.Error(1)
}

func (m *MockWriteQueries) CarExists(ctx context.Context, db sqlc.DBTX, carUid uuid.UUID) (bool, error) {
	args := m.Called(ctx, db, carUid)
	return args.Bool(0), args.Error(1)
}

func (m *MockWriteQueries) CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (sqlc.Payment, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Payment), args.Error(1)
}

func (m *MockWriteQueries) GetPaymentForUpdate(ctx context.Context, db sqlc.DBTX, paymentUid uuid.UUID) (sqlc.Payment, error) {
	args := m.Called(ctx, db, paymentUid)
	return args.Get(0).(sqlc.Payment), args.Error(1)
}

func (m *MockWriteQueries) UpdatePaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) CreateRental(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRentalParams) (sqlc.Rental, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Rental), args.Error(1)
}

func (m *MockWriteQueries) GetRentalForUpdate(ctx context.Context, db sqlc.DBTX, rentalUid uuid.UUID) (sqlc.Rental, error) {
	args := m.Called(ctx, db, rentalUid)
	return args.Get(0).(sqlc.Rental), args.Error(1)
}

func (m *MockWriteQueries) UpdateRentalStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRentalStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the queries mock instead.")
}
