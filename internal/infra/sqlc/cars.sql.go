package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const carColumns = `id, car_uid, brand, model, registration_number, power, price, type, availability`

func scanCar(row interface{ Scan(...any) error }) (Car, error) {
	var i Car
	err := row.Scan(
		&i.ID,
		&i.CarUid,
		&i.Brand,
		&i.Model,
		&i.RegistrationNumber,
		&i.Power,
		&i.Price,
		&i.Type,
		&i.Availability,
	)
	return i, err
}

const listCars = `-- name: ListCars :many
SELECT ` + carColumns + `
FROM cars
WHERE $1::boolean OR availability
ORDER BY id
LIMIT $2 OFFSET $3
`

type ListCarsParams struct {
	ShowAll bool
	Limit   int32
	Offset  int32
}

func (q *Queries) ListCars(ctx context.Context, db DBTX, arg ListCarsParams) ([]Car, error) {
	rows, err := db.Query(ctx, listCars, arg.ShowAll, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Car
	for rows.Next() {
		i, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countCars = `-- name: CountCars :one
SELECT count(*)
FROM cars
WHERE $1::boolean OR availability
`

func (q *Queries) CountCars(ctx context.Context, db DBTX, showAll bool) (int64, error) {
	row := db.QueryRow(ctx, countCars, showAll)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getCarByUID = `-- name: GetCarByUID :one
SELECT ` + carColumns + `
FROM cars
WHERE car_uid = $1
`

func (q *Queries) GetCarByUID(ctx context.Context, db DBTX, carUid uuid.UUID) (Car, error) {
	return scanCar(db.QueryRow(ctx, getCarByUID, carUid))
}

const carExists = `-- name: CarExists :one
SELECT EXISTS (SELECT 1 FROM cars WHERE car_uid = $1)
`

func (q *Queries) CarExists(ctx context.Context, db DBTX, carUid uuid.UUID) (bool, error) {
	row := db.QueryRow(ctx, carExists, carUid)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const createCar = `-- name: CreateCar :one
INSERT INTO cars (car_uid, brand, model, registration_number, power, price, type, availability)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + carColumns

type CreateCarParams struct {
	CarUid             uuid.UUID
	Brand              string
	Model              string
	RegistrationNumber string
	Power              pgtype.Int4
	Price              int32
	Type               pgtype.Text
	Availability       bool
}

func (q *Queries) CreateCar(ctx context.Context, db DBTX, arg CreateCarParams) (Car, error) {
	row := db.QueryRow(ctx, createCar,
		arg.CarUid,
		arg.Brand,
		arg.Model,
		arg.RegistrationNumber,
		arg.Power,
		arg.Price,
		arg.Type,
		arg.Availability,
	)
	return scanCar(row)
}

const setCarAvailability = `-- name: SetCarAvailability :one
UPDATE cars
SET availability = $2,
    reserved_by  = CASE WHEN $2::boolean THEN NULL ELSE $4::uuid END
WHERE car_uid = $1
  AND CASE
        WHEN $4::uuid IS NOT NULL THEN availability OR reserved_by = $4::uuid
        ELSE $3::boolean IS NULL OR availability = $3::boolean
      END
RETURNING ` + carColumns

type SetCarAvailabilityParams struct {
	CarUid       uuid.UUID
	Availability bool
	Expected     pgtype.Bool
	Holder       pgtype.UUID
}

// SetCarAvailability returns pgx.ErrNoRows when the car is missing or the
// guard rejects the write. With a Holder the write applies only to a free car
// or one the holder already reserved; Expected is ignored then.
func (q *Queries) SetCarAvailability(ctx context.Context, db DBTX, arg SetCarAvailabilityParams) (Car, error) {
	return scanCar(db.QueryRow(ctx, setCarAvailability, arg.CarUid, arg.Availability, arg.Expected, arg.Holder))
}
