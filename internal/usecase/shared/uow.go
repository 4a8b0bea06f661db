package shared

import (
	"context"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/payment"
	"car-rental/internal/domain/rental"
	"car-rental/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Cars() CarRepository
	Payments() PaymentRepository
	Rentals() RentalRepository
	DB() sqlc.DBTX
}

type CarRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *car.Car) (*car.Car, error)
	// SetAvailability reports KindNotFound for an unknown car and KindConflict
	// when a guarded change finds the car in the other state.
	SetAvailability(ctx context.Context, tx sqlc.DBTX, carUID uuid.UUID, change car.AvailabilityChange) (*car.Car, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (*payment.Payment, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, paymentUID uuid.UUID) (*payment.Payment, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
}

type RentalRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *rental.Rental) (*rental.Rental, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, rentalUID uuid.UUID) (*rental.Rental, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, r *rental.Rental) error
}
