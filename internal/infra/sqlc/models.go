package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Car struct {
	ID                 int32
	CarUid             uuid.UUID
	Brand              string
	Model              string
	RegistrationNumber string
	Power              pgtype.Int4
	Price              int32
	Type               pgtype.Text
	Availability       bool
}

type Payment struct {
	ID         int32
	PaymentUid uuid.UUID
	Status     string
	Price      int32
}

type Rental struct {
	ID         int32
	RentalUid  uuid.UUID
	Username   string
	PaymentUid uuid.UUID
	CarUid     uuid.UUID
	DateFrom   pgtype.Date
	DateTo     pgtype.Date
	Status     string
}
