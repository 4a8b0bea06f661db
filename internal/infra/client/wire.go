package client

import (
	"time"

	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// Leaf services speak snake_case JSON.

const dateLayout = "2006-01-02"

type carBody struct {
	CarUID             uuid.UUID `json:"car_uid"`
	Brand              string    `json:"brand"`
	Model              string    `json:"model"`
	RegistrationNumber string    `json:"registration_number"`
	Power              *int      `json:"power"`
	Price              int       `json:"price"`
	Type               string    `json:"type"`
	Availability       bool      `json:"availability"`
}

func (b carBody) snapshot() *shared.CarSnapshot {
	return &shared.CarSnapshot{
		CarUID:             b.CarUID,
		Brand:              b.Brand,
		Model:              b.Model,
		RegistrationNumber: b.RegistrationNumber,
		Power:              b.Power,
		Price:              b.Price,
		Type:               b.Type,
		Available:          b.Availability,
	}
}

type carPageBody struct {
	Page          int       `json:"page"`
	PageSize      int       `json:"page_size"`
	TotalElements int64     `json:"total_elements"`
	Items         []carBody `json:"items"`
}

type availabilityBody struct {
	Message      string    `json:"message"`
	CarUID       uuid.UUID `json:"car_uid"`
	Availability bool      `json:"availability"`
}

type paymentBody struct {
	PaymentUID uuid.UUID `json:"payment_uid"`
	Status     string    `json:"status"`
	Price      int       `json:"price"`
}

func (b paymentBody) snapshot() *shared.PaymentSnapshot {
	return &shared.PaymentSnapshot{
		PaymentUID: b.PaymentUID,
		Status:     b.Status,
		Price:      b.Price,
	}
}

type createRentalBody struct {
	RentalUID  uuid.UUID `json:"rental_uid"`
	Username   string    `json:"username"`
	PaymentUID uuid.UUID `json:"payment_uid"`
	CarUID     uuid.UUID `json:"car_uid"`
	DateFrom   string    `json:"date_from"`
	DateTo     string    `json:"date_to"`
}

type rentalBody struct {
	RentalUID  uuid.UUID `json:"rental_uid"`
	Username   string    `json:"username"`
	PaymentUID uuid.UUID `json:"payment_uid"`
	CarUID     uuid.UUID `json:"car_uid"`
	DateFrom   string    `json:"date_from"`
	DateTo     string    `json:"date_to"`
	Status     string    `json:"status"`
}

func (b rentalBody) snapshot() (*shared.RentalSnapshot, error) {
	from, err := time.Parse(dateLayout, b.DateFrom)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "rental date_from"), errs.ErrUpstreamFailure)
	}
	to, err := time.Parse(dateLayout, b.DateTo)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "rental date_to"), errs.ErrUpstreamFailure)
	}
	return &shared.RentalSnapshot{
		RentalUID:  b.RentalUID,
		Username:   b.Username,
		PaymentUID: b.PaymentUID,
		CarUID:     b.CarUID,
		DateFrom:   from,
		DateTo:     to,
		Status:     b.Status,
	}, nil
}
