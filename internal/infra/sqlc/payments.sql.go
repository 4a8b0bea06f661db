package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const createPayment = `-- name: CreatePayment :one
INSERT INTO payment (payment_uid, status, price)
VALUES ($1, $2, $3)
ON CONFLICT (payment_uid) DO UPDATE SET payment_uid = EXCLUDED.payment_uid
RETURNING id, payment_uid, status, price
`

type CreatePaymentParams struct {
	PaymentUid uuid.UUID
	Status     string
	Price      int32
}

// CreatePayment returns the stored row when payment_uid already exists.
func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg CreatePaymentParams) (Payment, error) {
	row := db.QueryRow(ctx, createPayment, arg.PaymentUid, arg.Status, arg.Price)
	var i Payment
	err := row.Scan(&i.ID, &i.PaymentUid, &i.Status, &i.Price)
	return i, err
}

const getPaymentByUID = `-- name: GetPaymentByUID :one
SELECT id, payment_uid, status, price
FROM payment
WHERE payment_uid = $1
`

func (q *Queries) GetPaymentByUID(ctx context.Context, db DBTX, paymentUid uuid.UUID) (Payment, error) {
	row := db.QueryRow(ctx, getPaymentByUID, paymentUid)
	var i Payment
	err := row.Scan(&i.ID, &i.PaymentUid, &i.Status, &i.Price)
	return i, err
}

const getPaymentForUpdate = `-- name: GetPaymentForUpdate :one
SELECT id, payment_uid, status, price
FROM payment
WHERE payment_uid = $1
FOR UPDATE
`

func (q *Queries) GetPaymentForUpdate(ctx context.Context, db DBTX, paymentUid uuid.UUID) (Payment, error) {
	row := db.QueryRow(ctx, getPaymentForUpdate, paymentUid)
	var i Payment
	err := row.Scan(&i.ID, &i.PaymentUid, &i.Status, &i.Price)
	return i, err
}

const updatePaymentStatus = `-- name: UpdatePaymentStatus :execrows
UPDATE payment
SET status = $2
WHERE payment_uid = $1
`

type UpdatePaymentStatusParams struct {
	PaymentUid uuid.UUID
	Status     string
}

func (q *Queries) UpdatePaymentStatus(ctx context.Context, db DBTX, arg UpdatePaymentStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updatePaymentStatus, arg.PaymentUid, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
