package request

import (
	"car-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookCarRequest struct {
	CarUID   uuid.UUID `json:"carUid" binding:"required"`
	DateFrom string    `json:"dateFrom" binding:"required,datetime=2006-01-02"`
	DateTo   string    `json:"dateTo" binding:"required,datetime=2006-01-02"`
}

func (r BookCarRequest) ToInput() commands.BookCarInput {
	return commands.BookCarInput{
		CarUID:   r.CarUID,
		DateFrom: r.DateFrom,
		DateTo:   r.DateTo,
	}
}
