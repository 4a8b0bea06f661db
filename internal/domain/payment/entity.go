package payment

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid payment status")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrPriceTooLarge     = errors.New("price exceeds the maximum")
	ErrInvalidTransition = errors.New("invalid payment status transition")
)

// MaxPrice is the largest amount the ledger stores.
const MaxPrice = math.MaxInt32

type Status string

const (
	StatusPaid     Status = "PAID"
	StatusCanceled Status = "CANCELED"
)

func (s Status) IsValid() bool {
	return s == StatusPaid || s == StatusCanceled
}

type Payment struct {
	uid    uuid.UUID
	status Status
	price  int
}

// NewPayment records a payment with the status chosen by the caller.
func NewPayment(uid uuid.UUID, status Status, price int) (*Payment, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if price > MaxPrice {
		return nil, ErrPriceTooLarge
	}
	if uid == uuid.Nil {
		uid = uuid.New()
	}
	return &Payment{uid: uid, status: status, price: price}, nil
}

func ReconstructPayment(uid uuid.UUID, status Status, price int) *Payment {
	return &Payment{uid: uid, status: status, price: price}
}

// Cancel moves PAID to CANCELED. Canceling a canceled payment is a no-op.
func (p *Payment) Cancel() error {
	switch p.status {
	case StatusPaid, StatusCanceled:
		p.status = StatusCanceled
		return nil
	default:
		return ErrInvalidTransition
	}
}

func (p *Payment) UID() uuid.UUID { return p.uid }
func (p *Payment) Status() Status { return p.status }
func (p *Payment) Price() int     { return p.price }
func (p *Payment) IsPaid() bool   { return p.status == StatusPaid }
