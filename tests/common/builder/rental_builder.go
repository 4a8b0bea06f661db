//go:build unit || e2e

package builder

import (
	"time"

	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type RentalBuilder struct {
	RentalUID  uuid.UUID
	Username   string
	PaymentUID uuid.UUID
	CarUID     uuid.UUID
	DateFrom   time.Time
	DateTo     time.Time
	Status     string
}

func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		RentalUID:  uuid.New(),
		Username:   "Test Max",
		PaymentUID: uuid.New(),
		CarUID:     uuid.New(),
		DateFrom:   time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC),
		DateTo:     time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC),
		Status:     "IN_PROGRESS",
	}
}

func (b *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(b)
	return b
}

func (b *RentalBuilder) BuildView() *queries.RentalView {
	return &queries.RentalView{
		RentalUID:  b.RentalUID,
		Username:   b.Username,
		PaymentUID: b.PaymentUID,
		CarUID:     b.CarUID,
		DateFrom:   b.DateFrom,
		DateTo:     b.DateTo,
		Status:     b.Status,
	}
}

func (b *RentalBuilder) BuildSnapshot() *shared.RentalSnapshot {
	return &shared.RentalSnapshot{
		RentalUID:  b.RentalUID,
		Username:   b.Username,
		PaymentUID: b.PaymentUID,
		CarUID:     b.CarUID,
		DateFrom:   b.DateFrom,
		DateTo:     b.DateTo,
		Status:     b.Status,
	}
}

func (b *RentalBuilder) BuildCreateRequestDTO() reqdto.CreateRentalRequest {
	uid := b.RentalUID
	return reqdto.CreateRentalRequest{
		RentalUID:  &uid,
		Username:   b.Username,
		PaymentUID: b.PaymentUID,
		CarUID:     b.CarUID,
		DateFrom:   b.DateFrom.Format(dateLayout),
		DateTo:     b.DateTo.Format(dateLayout),
	}
}

// BuildDetails joins the rental with the given car and payment.
func (b *RentalBuilder) BuildDetails(car *CarBuilder, payment *PaymentBuilder) *queries.RentalDetails {
	return &queries.RentalDetails{
		RentalUID: b.RentalUID,
		Status:    b.Status,
		DateFrom:  b.DateFrom,
		DateTo:    b.DateTo,
		Car: queries.RentalCar{
			CarUID:             car.CarUID,
			Brand:              car.Brand,
			Model:              car.Model,
			RegistrationNumber: car.RegistrationNumber,
		},
		Payment: queries.RentalPayment{
			PaymentUID: payment.PaymentUID,
			Status:     payment.Status,
			Price:      payment.Price,
		},
	}
}

func (b *RentalBuilder) BuildBookingRequestDTO() reqdto.BookCarRequest {
	return reqdto.BookCarRequest{
		CarUID:   b.CarUID,
		DateFrom: b.DateFrom.Format(dateLayout),
		DateTo:   b.DateTo.Format(dateLayout),
	}
}

func (b *RentalBuilder) BuildBookingResult(payment *PaymentBuilder) *commands.BookingResult {
	return &commands.BookingResult{
		RentalUID: b.RentalUID,
		Status:    b.Status,
		CarUID:    b.CarUID,
		DateFrom:  b.DateFrom,
		DateTo:    b.DateTo,
		Payment: commands.BookingPayment{
			PaymentUID: payment.PaymentUID,
			Status:     payment.Status,
			Price:      payment.Price,
		},
	}
}
