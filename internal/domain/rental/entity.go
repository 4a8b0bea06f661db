package rental

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyUsername    = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username exceeds 80 characters")
	ErrMissingReference = errors.New("car and payment references are required")
	ErrNotOwner         = errors.New("rental belongs to another user")
	ErrNotInProgress    = errors.New("rental is not in progress")
	ErrInvalidStatus    = errors.New("invalid rental status")
)

const maxUsernameLen = 80

type Rental struct {
	uid        uuid.UUID
	username   string
	paymentUID uuid.UUID
	carUID     uuid.UUID
	period     Period
	status     Status
}

func NewRental(uid uuid.UUID, username string, paymentUID, carUID uuid.UUID, period Period) (*Rental, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if len([]rune(username)) > maxUsernameLen {
		return nil, ErrUsernameTooLong
	}
	if paymentUID == uuid.Nil || carUID == uuid.Nil {
		return nil, ErrMissingReference
	}
	if period.Days() <= 0 {
		return nil, ErrInvalidPeriod
	}
	if uid == uuid.Nil {
		uid = uuid.New()
	}
	return &Rental{
		uid:        uid,
		username:   username,
		paymentUID: paymentUID,
		carUID:     carUID,
		period:     period,
		status:     StatusInProgress,
	}, nil
}

func ReconstructRental(uid uuid.UUID, username string, paymentUID, carUID uuid.UUID, period Period, status Status) *Rental {
	return &Rental{
		uid:        uid,
		username:   username,
		paymentUID: paymentUID,
		carUID:     carUID,
		period:     period,
		status:     status,
	}
}

// CheckOwner reports ErrNotOwner when username is not the renter.
func (r *Rental) CheckOwner(username string) error {
	if r.username != username {
		return ErrNotOwner
	}
	return nil
}

func (r *Rental) Finish() error {
	return r.transition(StatusFinished)
}

func (r *Rental) Cancel() error {
	return r.transition(StatusCanceled)
}

// only IN_PROGRESS may move, and only to a terminal state
func (r *Rental) transition(to Status) error {
	if !to.IsTerminal() {
		return ErrInvalidStatus
	}
	if r.status != StatusInProgress {
		return ErrNotInProgress
	}
	r.status = to
	return nil
}

func (r *Rental) UID() uuid.UUID        { return r.uid }
func (r *Rental) Username() string      { return r.username }
func (r *Rental) PaymentUID() uuid.UUID { return r.paymentUID }
func (r *Rental) CarUID() uuid.UUID     { return r.carUID }
func (r *Rental) Period() Period        { return r.period }
func (r *Rental) Status() Status        { return r.status }
