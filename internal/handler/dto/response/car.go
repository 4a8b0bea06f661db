package response

import (
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CarResponse struct {
	CarUID             uuid.UUID `json:"car_uid"`
	Brand              string    `json:"brand"`
	Model              string    `json:"model"`
	RegistrationNumber string    `json:"registration_number"`
	Power              *int      `json:"power"`
	Price              int       `json:"price"`
	Type               string    `json:"type"`
	Available          bool      `json:"availability"`
}

type CarPageResponse struct {
	Page          int            `json:"page"`
	PageSize      int            `json:"page_size"`
	TotalElements int64          `json:"total_elements"`
	Items         []*CarResponse `json:"items"`
}

type AvailabilityResponse struct {
	Message      string    `json:"message"`
	CarUID       uuid.UUID `json:"car_uid"`
	Availability bool      `json:"availability"`
}

func FromCarView(v *queries.CarView) *CarResponse {
	var res CarResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromCarPage(p *queries.CarPage) *CarPageResponse {
	items := make([]*CarResponse, len(p.Items))
	for i, it := range p.Items {
		items[i] = FromCarView(it)
	}
	return &CarPageResponse{
		Page:          p.Page,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		Items:         items,
	}
}

func FromAvailability(v *queries.CarView) *AvailabilityResponse {
	msg := "Car reserved"
	if v.Available {
		msg = "Car released"
	}
	return &AvailabilityResponse{
		Message:      msg,
		CarUID:       v.CarUID,
		Availability: v.Available,
	}
}
