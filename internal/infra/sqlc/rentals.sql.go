package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const rentalColumns = `id, rental_uid, username, payment_uid, car_uid, date_from, date_to, status`

func scanRental(row interface{ Scan(...any) error }) (Rental, error) {
	var i Rental
	err := row.Scan(
		&i.ID,
		&i.RentalUid,
		&i.Username,
		&i.PaymentUid,
		&i.CarUid,
		&i.DateFrom,
		&i.DateTo,
		&i.Status,
	)
	return i, err
}

const createRental = `-- name: CreateRental :one
INSERT INTO rental (rental_uid, username, payment_uid, car_uid, date_from, date_to, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (rental_uid) DO UPDATE SET rental_uid = EXCLUDED.rental_uid
RETURNING ` + rentalColumns

type CreateRentalParams struct {
	RentalUid  uuid.UUID
	Username   string
	PaymentUid uuid.UUID
	CarUid     uuid.UUID
	DateFrom   pgtype.Date
	DateTo     pgtype.Date
	Status     string
}

// CreateRental returns the stored row when rental_uid already exists.
func (q *Queries) CreateRental(ctx context.Context, db DBTX, arg CreateRentalParams) (Rental, error) {
	row := db.QueryRow(ctx, createRental,
		arg.RentalUid,
		arg.Username,
		arg.PaymentUid,
		arg.CarUid,
		arg.DateFrom,
		arg.DateTo,
		arg.Status,
	)
	return scanRental(row)
}

const listRentalsByUsername = `-- name: ListRentalsByUsername :many
SELECT ` + rentalColumns + `
FROM rental
WHERE username = $1
ORDER BY id
`

func (q *Queries) ListRentalsByUsername(ctx context.Context, db DBTX, username string) ([]Rental, error) {
	rows, err := db.Query(ctx, listRentalsByUsername, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Rental
	for rows.Next() {
		i, err := scanRental(rows)
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

const getRentalByUID = `-- name: GetRentalByUID :one
SELECT ` + rentalColumns + `
FROM rental
WHERE rental_uid = $1
`

func (q *Queries) GetRentalByUID(ctx context.Context, db DBTX, rentalUid uuid.UUID) (Rental, error) {
	return scanRental(db.QueryRow(ctx, getRentalByUID, rentalUid))
}

const getRentalForUpdate = `-- name: GetRentalForUpdate :one
SELECT ` + rentalColumns + `
FROM rental
WHERE rental_uid = $1
FOR UPDATE
`

func (q *Queries) GetRentalForUpdate(ctx context.Context, db DBTX, rentalUid uuid.UUID) (Rental, error) {
	return scanRental(db.QueryRow(ctx, getRentalForUpdate, rentalUid))
}

const updateRentalStatus = `-- name: UpdateRentalStatus :execrows
UPDATE rental
SET status = $2
WHERE rental_uid = $1
`

type UpdateRentalStatusParams struct {
	RentalUid uuid.UUID
	Status    string
}

func (q *Queries) UpdateRentalStatus(ctx context.Context, db DBTX, arg UpdateRentalStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateRentalStatus, arg.RentalUid, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
