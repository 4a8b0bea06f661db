//go:build unit || e2e

package builder

import (
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type CarBuilder struct {
	CarUID             uuid.UUID
	Brand              string
	Model              string
	RegistrationNumber string
	Power              *int
	Price              int
	Type               string
	Available          bool
}

func NewCarBuilder() *CarBuilder {
	power := 249
	return &CarBuilder{
		CarUID:             uuid.New(),
		Brand:              "Mercedes Benz",
		Model:              "GLA 250",
		RegistrationNumber: "ЛО777Х799",
		Power:              &power,
		Price:              3500,
		Type:               "SEDAN",
		Available:          true,
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

func (b *CarBuilder) Reserved() *CarBuilder {
	b.Available = false
	return b
}

func (b *CarBuilder) BuildView() *queries.CarView {
	return &queries.CarView{
		CarUID:             b.CarUID,
		Brand:              b.Brand,
		Model:              b.Model,
		RegistrationNumber: b.RegistrationNumber,
		Power:              b.Power,
		Price:              b.Price,
		Type:               b.Type,
		Available:          b.Available,
	}
}

func (b *CarBuilder) BuildSnapshot() *shared.CarSnapshot {
	return &shared.CarSnapshot{
		CarUID:             b.CarUID,
		Brand:              b.Brand,
		Model:              b.Model,
		RegistrationNumber: b.RegistrationNumber,
		Power:              b.Power,
		Price:              b.Price,
		Type:               b.Type,
		Available:          b.Available,
	}
}

func (b *CarBuilder) BuildCreateRequestDTO() reqdto.CreateCarRequest {
	uid := b.CarUID
	price := b.Price
	return reqdto.CreateCarRequest{
		CarUID:             &uid,
		Brand:              b.Brand,
		Model:              b.Model,
		RegistrationNumber: b.RegistrationNumber,
		Power:              b.Power,
		Price:              &price,
		Type:               b.Type,
	}
}
