package request

import (
	"car-rental/internal/pkg/patch"
	"car-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	PaymentUID *uuid.UUID `json:"payment_uid"`
	Status     string     `json:"status" binding:"required,oneof=PAID CANCELED"`
	Price      *int       `json:"price" binding:"required,min=0,max=2147483647"`
}

func (r CreatePaymentRequest) ToInput() commands.CreatePaymentInput {
	return commands.CreatePaymentInput{
		PaymentUID: patch.Coalesce(r.PaymentUID, uuid.Nil),
		Status:     r.Status,
		Price:      patch.Coalesce(r.Price, 0),
	}
}
