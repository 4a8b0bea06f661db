package commands

import (
	"car-rental/internal/domain/car"
	"car-rental/internal/domain/payment"
	"car-rental/internal/domain/rental"
	"car-rental/internal/usecase/queries"
)

func toCarView(c *car.Car) *queries.CarView {
	return &queries.CarView{
		CarUID:             c.UID(),
		Brand:              c.Brand(),
		Model:              c.Model(),
		RegistrationNumber: c.RegistrationNumber(),
		Power:              c.Power(),
		Price:              c.Price(),
		Type:               string(c.Type()),
		Available:          c.Available(),
	}
}

func toPaymentView(p *payment.Payment) *queries.PaymentView {
	return &queries.PaymentView{
		PaymentUID: p.UID(),
		Status:     string(p.Status()),
		Price:      p.Price(),
	}
}

func toRentalView(r *rental.Rental) *queries.RentalView {
	return &queries.RentalView{
		RentalUID:  r.UID(),
		Username:   r.Username(),
		PaymentUID: r.PaymentUID(),
		CarUID:     r.CarUID(),
		DateFrom:   r.Period().From(),
		DateTo:     r.Period().To(),
		Status:     string(r.Status()),
	}
}
