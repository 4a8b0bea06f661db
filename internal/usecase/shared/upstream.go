package shared

import (
	"context"

	"github.com/google/uuid"
)

// Ports the gateway uses to reach the leaf services. Implementations mark
// failures with the errs sentinels (not found, forbidden, conflict, upstream failure).

type CarRegistry interface {
	ListCars(ctx context.Context, page, size int, showAll bool) (*CarPageSnapshot, error)
	GetCar(ctx context.Context, carUID uuid.UUID) (*CarSnapshot, error)
	// ReserveCar succeeds if the car was available or is already reserved by
	// holder, so a retried reserve cannot lock out its own booking.
	ReserveCar(ctx context.Context, carUID, holder uuid.UUID) (*CarSnapshot, error)
	// ReleaseCar frees the car. With a non-nil holder it only frees a car that
	// holder reserved; an already free car is left as is.
	ReleaseCar(ctx context.Context, carUID, holder uuid.UUID) error
}

type PaymentLedger interface {
	CreatePayment(ctx context.Context, draft PaymentDraft) (*PaymentSnapshot, error)
	GetPayment(ctx context.Context, paymentUID uuid.UUID) (*PaymentSnapshot, error)
	CancelPayment(ctx context.Context, paymentUID uuid.UUID) (*PaymentSnapshot, error)
}

type RentalLedger interface {
	CreateRental(ctx context.Context, draft RentalDraft) (*RentalSnapshot, error)
	ListRentals(ctx context.Context, username string) ([]*RentalSnapshot, error)
	GetRental(ctx context.Context, rentalUID uuid.UUID, username string) (*RentalSnapshot, error)
	FinishRental(ctx context.Context, rentalUID uuid.UUID, username string) (*RentalSnapshot, error)
	CancelRental(ctx context.Context, rentalUID uuid.UUID, username string) (*RentalSnapshot, error)
}

// IdempotencyStore deduplicates retried booking requests.
type IdempotencyStore interface {
	// Claim returns claimed=true when the caller now owns key. Otherwise it
	// returns the record left by the earlier request.
	Claim(ctx context.Context, key, username, requestHash string) (rec *IdempotencyRecord, claimed bool, err error)
	Complete(ctx context.Context, key, username, requestHash string, result []byte) error
	Release(ctx context.Context, key, username string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event RentalEvent) error
}
