package converter

import (
	"car-rental/internal/domain/payment"
	"car-rental/internal/infra/sqlc"
)

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		PaymentUid: p.UID(),
		Status:     string(p.Status()),
		Price:      int32(p.Price()),
	}
}

func PaymentFromRow(row sqlc.Payment) *payment.Payment {
	return payment.ReconstructPayment(row.PaymentUid, payment.Status(row.Status), int(row.Price))
}
