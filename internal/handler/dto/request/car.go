package request

import (
	"car-rental/internal/pkg/patch"
	"car-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type ListCarsQuery struct {
	Page    int  `form:"page,default=1" binding:"min=1"`
	Size    int  `form:"size,default=10" binding:"min=1,max=100"`
	ShowAll bool `form:"showAll"`
}

type CreateCarRequest struct {
	CarUID             *uuid.UUID `json:"car_uid"`
	Brand              string     `json:"brand" binding:"required,max=80"`
	Model              string     `json:"model" binding:"required,max=80"`
	RegistrationNumber string     `json:"registration_number" binding:"required,max=20"`
	Power              *int       `json:"power" binding:"omitempty,min=0"`
	Price              *int       `json:"price" binding:"required,min=0,max=2147483647"`
	Type               string     `json:"type" binding:"required,oneof=SEDAN SUV MINIVAN ROADSTER"`
}

func (r CreateCarRequest) ToInput() commands.CreateCarInput {
	return commands.CreateCarInput{
		CarUID:             patch.Coalesce(r.CarUID, uuid.Nil),
		Brand:              r.Brand,
		Model:              r.Model,
		RegistrationNumber: r.RegistrationNumber,
		Power:              r.Power,
		Price:              patch.Coalesce(r.Price, 0),
		Type:               r.Type,
	}
}

// AvailabilityQuery turns reserve/release into a compare-and-swap when set.
// Holder ties the write to one reservation so a repeated call by the same
// holder succeeds.
type AvailabilityQuery struct {
	ExpectAvailable *bool  `form:"expectAvailable"`
	Holder          string `form:"holder" binding:"omitempty,uuid"`
}

func (q AvailabilityQuery) HolderUID() uuid.UUID {
	if q.Holder == "" {
		return uuid.Nil
	}
	return uuid.MustParse(q.Holder)
}
