package response

import (
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Gateway responses are camelCase.

type CatalogCarResponse struct {
	CarUID             uuid.UUID `json:"carUid"`
	Brand              string    `json:"brand"`
	Model              string    `json:"model"`
	RegistrationNumber string    `json:"registrationNumber"`
	Power              *int      `json:"power"`
	Price              int       `json:"price"`
	Type               string    `json:"type"`
	Available          bool      `json:"availability"`
}

type CatalogPageResponse struct {
	Page          int                   `json:"page"`
	PageSize      int                   `json:"pageSize"`
	TotalElements int64                 `json:"totalElements"`
	Items         []*CatalogCarResponse `json:"items"`
}

func FromCarPageSnapshot(p *shared.CarPageSnapshot) *CatalogPageResponse {
	items := make([]*CatalogCarResponse, len(p.Items))
	for i, it := range p.Items {
		var item CatalogCarResponse
		_ = copier.Copy(&item, it)
		items[i] = &item
	}
	return &CatalogPageResponse{
		Page:          p.Page,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		Items:         items,
	}
}

type PaymentInfo struct {
	PaymentUID uuid.UUID `json:"paymentUid"`
	Status     string    `json:"status"`
	Price      int       `json:"price"`
}

type CarInfo struct {
	CarUID             uuid.UUID `json:"carUid"`
	Brand              string    `json:"brand"`
	Model              string    `json:"model"`
	RegistrationNumber string    `json:"registrationNumber"`
}

type UserRentalResponse struct {
	RentalUID uuid.UUID   `json:"rentalUid"`
	Status    string      `json:"status"`
	DateFrom  string      `json:"dateFrom"`
	DateTo    string      `json:"dateTo"`
	Car       CarInfo     `json:"car"`
	Payment   PaymentInfo `json:"payment"`
}

func FromRentalDetails(d *queries.RentalDetails) *UserRentalResponse {
	res := &UserRentalResponse{
		RentalUID: d.RentalUID,
		Status:    d.Status,
		DateFrom:  d.DateFrom.Format(dateLayout),
		DateTo:    d.DateTo.Format(dateLayout),
	}
	_ = copier.Copy(&res.Car, &d.Car)
	_ = copier.Copy(&res.Payment, &d.Payment)
	return res
}

func FromRentalDetailsList(list []*queries.RentalDetails) []*UserRentalResponse {
	res := make([]*UserRentalResponse, len(list))
	for i, d := range list {
		res[i] = FromRentalDetails(d)
	}
	return res
}

type BookingResponse struct {
	RentalUID uuid.UUID   `json:"rentalUid"`
	Status    string      `json:"status"`
	CarUID    uuid.UUID   `json:"carUid"`
	DateFrom  string      `json:"dateFrom"`
	DateTo    string      `json:"dateTo"`
	Payment   PaymentInfo `json:"payment"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	return &BookingResponse{
		RentalUID: r.RentalUID,
		Status:    r.Status,
		CarUID:    r.CarUID,
		DateFrom:  r.DateFrom.Format(dateLayout),
		DateTo:    r.DateTo.Format(dateLayout),
		Payment: PaymentInfo{
			PaymentUID: r.Payment.PaymentUID,
			Status:     r.Payment.Status,
			Price:      r.Payment.Price,
		},
	}
}
