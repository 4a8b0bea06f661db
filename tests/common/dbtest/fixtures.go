//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"car-rental/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ReferenceCarUID is seeded by the cars migration.
const ReferenceCarUID = "109b42f3-198d-4c89-9276-a7520a7120ab"

// DBLike is satisfied by a pool, a single connection or a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func InsertCar(t *testing.T, db DBLike, b *builder.CarBuilder) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO cars (car_uid, brand, model, registration_number, power, price, type, availability)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.CarUID, b.Brand, b.Model, b.RegistrationNumber, b.Power, b.Price, b.Type, b.Available)
	require.NoError(t, err)
}

func InsertPayment(t *testing.T, db DBLike, b *builder.PaymentBuilder) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO payment (payment_uid, status, price) VALUES ($1, $2, $3)`,
		b.PaymentUID, b.Status, b.Price)
	require.NoError(t, err)
}

func InsertRental(t *testing.T, db DBLike, b *builder.RentalBuilder) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO rental (rental_uid, username, payment_uid, car_uid, date_from, date_to, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.RentalUID, b.Username, b.PaymentUID, b.CarUID, b.DateFrom, b.DateTo, b.Status)
	require.NoError(t, err)
}

func CarAvailability(t *testing.T, db DBLike, carUID string) bool {
	t.Helper()

	var available bool
	err := db.QueryRow(context.Background(), "SELECT availability FROM cars WHERE car_uid = $1", carUID).Scan(&available)
	require.NoError(t, err)
	return available
}

// inserts the reference car when the cars table exists in this database
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		DO $$
		BEGIN
		    IF to_regclass('public.cars') IS NOT NULL THEN
		        INSERT INTO cars (car_uid, brand, model, registration_number, power, price, type, availability)
		        VALUES ('`+ReferenceCarUID+`', 'Mercedes Benz', 'GLA 250', 'ЛО777Х799', 249, 3500, 'SEDAN', true)
		        ON CONFLICT (car_uid) DO NOTHING;
		    END IF;
		END $$;
	`)
	return err
}

// truncates all tables of the pool's database and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := pool.Query(ctx, `
	  SELECT 'public.' || quote_ident(tablename)
	  FROM pg_tables
	  WHERE schemaname = 'public'`)
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	var tables []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			rows.Close()
			return err
		}
		tables = append(tables, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if len(tables) > 0 {
		if _, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" RESTART IDENTITY CASCADE;"); err != nil {
			return err
		}
	}

	return SeedReferenceData(pool)
}
