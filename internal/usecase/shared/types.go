package shared

import (
	"time"

	"github.com/google/uuid"
)

// Snapshots of records owned by the leaf services, as seen by the gateway.

type CarSnapshot struct {
	CarUID             uuid.UUID
	Brand              string
	Model              string
	RegistrationNumber string
	Power              *int
	Price              int
	Type               string
	Available          bool
}

type CarPageSnapshot struct {
	Page          int
	PageSize      int
	TotalElements int64
	Items         []*CarSnapshot
}

type PaymentSnapshot struct {
	PaymentUID uuid.UUID
	Status     string
	Price      int
}

type RentalSnapshot struct {
	RentalUID  uuid.UUID
	Username   string
	PaymentUID uuid.UUID
	CarUID     uuid.UUID
	DateFrom   time.Time
	DateTo     time.Time
	Status     string
}

type PaymentDraft struct {
	PaymentUID uuid.UUID
	Status     string
	Price      int
}

type RentalDraft struct {
	RentalUID  uuid.UUID
	Username   string
	PaymentUID uuid.UUID
	CarUID     uuid.UUID
	DateFrom   time.Time
	DateTo     time.Time
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Status      string `json:"status"`
	RequestHash string `json:"request_hash"`
	Result      []byte `json:"result,omitempty"`
}

const (
	EventRentalBooked           = "rental.booked"
	EventRentalFinished         = "rental.finished"
	EventRentalCanceled         = "rental.canceled"
	EventSagaCompensated        = "saga.compensated"
	EventSagaCompensationFailed = "saga.compensation_failed"
)

type RentalEvent struct {
	Type       string    `json:"type"`
	Saga       string    `json:"saga,omitempty"`
	RentalUID  uuid.UUID `json:"rentalUid"`
	Username   string    `json:"username"`
	CarUID     uuid.UUID `json:"carUid"`
	PaymentUID uuid.UUID `json:"paymentUid"`
	Price      int       `json:"price,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
