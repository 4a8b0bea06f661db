//go:build unit || e2e

package builder

import (
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	PaymentUID uuid.UUID
	Status     string
	Price      int
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		PaymentUID: uuid.New(),
		Status:     "PAID",
		Price:      7000,
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

func (b *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{PaymentUID: b.PaymentUID, Status: b.Status, Price: b.Price}
}

func (b *PaymentBuilder) BuildSnapshot() *shared.PaymentSnapshot {
	return &shared.PaymentSnapshot{PaymentUID: b.PaymentUID, Status: b.Status, Price: b.Price}
}

func (b *PaymentBuilder) BuildCreateRequestDTO() reqdto.CreatePaymentRequest {
	uid := b.PaymentUID
	price := b.Price
	return reqdto.CreatePaymentRequest{PaymentUID: &uid, Status: b.Status, Price: &price}
}
