package queries

import (
	"time"

	"github.com/google/uuid"
)

// CarView is the registry's read model of a car.
type CarView struct {
	CarUID             uuid.UUID `json:"car_uid"`
	Brand              string    `json:"brand"`
	Model              string    `json:"model"`
	RegistrationNumber string    `json:"registration_number"`
	Power              *int      `json:"power,omitempty"`
	Price              int       `json:"price"`
	Type               string    `json:"type"`
	Available          bool      `json:"availability"`
}

type CarPage struct {
	Page          int        `json:"page"`
	PageSize      int        `json:"page_size"`
	TotalElements int64      `json:"total_elements"`
	Items         []*CarView `json:"items"`
}

type PaymentView struct {
	PaymentUID uuid.UUID `json:"payment_uid"`
	Status     string    `json:"status"`
	Price      int       `json:"price"`
}

type RentalView struct {
	RentalUID  uuid.UUID `json:"rental_uid"`
	Username   string    `json:"username"`
	PaymentUID uuid.UUID `json:"payment_uid"`
	CarUID     uuid.UUID `json:"car_uid"`
	DateFrom   time.Time `json:"date_from"`
	DateTo     time.Time `json:"date_to"`
	Status     string    `json:"status"`
}

// RentalDetails is the gateway's denormalized view of one rental.
type RentalDetails struct {
	RentalUID uuid.UUID
	Status    string
	DateFrom  time.Time
	DateTo    time.Time
	Car       RentalCar
	Payment   RentalPayment
}

type RentalCar struct {
	CarUID             uuid.UUID
	Brand              string
	Model              string
	RegistrationNumber string
}

type RentalPayment struct {
	PaymentUID uuid.UUID
	Status     string
	Price      int
}
