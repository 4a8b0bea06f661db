package response

import (
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PaymentResponse struct {
	PaymentUID uuid.UUID `json:"payment_uid"`
	Status     string    `json:"status"`
	Price      int       `json:"price"`
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	var res PaymentResponse
	_ = copier.Copy(&res, v)
	return &res
}
