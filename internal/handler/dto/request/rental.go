package request

import (
	"car-rental/internal/pkg/patch"
	"car-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	RentalUID  *uuid.UUID `json:"rental_uid"`
	Username   string     `json:"username" binding:"required,max=80"`
	PaymentUID uuid.UUID  `json:"payment_uid" binding:"required"`
	CarUID     uuid.UUID  `json:"car_uid" binding:"required"`
	DateFrom   string     `json:"date_from" binding:"required,datetime=2006-01-02"`
	DateTo     string     `json:"date_to" binding:"required,datetime=2006-01-02"`
}

func (r CreateRentalRequest) ToInput() commands.CreateRentalInput {
	return commands.CreateRentalInput{
		RentalUID:  patch.Coalesce(r.RentalUID, uuid.Nil),
		Username:   r.Username,
		PaymentUID: r.PaymentUID,
		CarUID:     r.CarUID,
		DateFrom:   r.DateFrom,
		DateTo:     r.DateTo,
	}
}
