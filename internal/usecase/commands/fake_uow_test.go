//go:build unit

package commands

import (
	"context"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/payment"
	"car-rental/internal/domain/rental"
	"car-rental/internal/infra"
	"car-rental/internal/infra/sqlc"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

// memoryUoW runs every unit of work against in-memory repositories.
type memoryUoW struct {
	cars     *memoryCars
	payments *memoryPayments
	rentals  *memoryRentals
}

func newMemoryUoW() *memoryUoW {
	return &memoryUoW{
		cars:     &memoryCars{rows: map[uuid.UUID]*car.Car{}, holders: map[uuid.UUID]uuid.UUID{}},
		payments: &memoryPayments{rows: map[uuid.UUID]*payment.Payment{}},
		rentals:  &memoryRentals{rows: map[uuid.UUID]*rental.Rental{}},
	}
}

func (u *memoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u)
}

func (u *memoryUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memoryUoW) Cars() shared.CarRepository         { return u.cars }
func (u *memoryUoW) Payments() shared.PaymentRepository { return u.payments }
func (u *memoryUoW) Rentals() shared.RentalRepository   { return u.rentals }
func (u *memoryUoW) DB() sqlc.DBTX                      { return nil }

type memoryCars struct {
	rows    map[uuid.UUID]*car.Car
	holders map[uuid.UUID]uuid.UUID
}

func (m *memoryCars) Create(ctx context.Context, tx sqlc.DBTX, c *car.Car) (*car.Car, error) {
	if _, ok := m.rows[c.UID()]; ok {
		return nil, infra.WrapRepoErr("duplicate car", nil, infra.KindDuplicateKey)
	}
	m.rows[c.UID()] = c
	return c, nil
}

func (m *memoryCars) SetAvailability(ctx context.Context, tx sqlc.DBTX, carUID uuid.UUID, change car.AvailabilityChange) (*car.Car, error) {
	c, ok := m.rows[carUID]
	if !ok {
		return nil, infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	if !change.Allows(c.Available(), m.holders[carUID]) {
		return nil, infra.WrapRepoErr("guard failed", nil, infra.KindConflict)
	}
	updated := car.ReconstructCar(c.UID(), c.Brand(), c.Model(), c.RegistrationNumber(), c.Power(), c.Price(), c.Type(), change.To)
	m.rows[carUID] = updated
	if change.To {
		delete(m.holders, carUID)
	} else {
		m.holders[carUID] = change.Holder
	}
	return updated, nil
}

type memoryPayments struct {
	rows map[uuid.UUID]*payment.Payment
}

func (m *memoryPayments) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (*payment.Payment, error) {
	if existing, ok := m.rows[p.UID()]; ok {
		return existing, nil
	}
	m.rows[p.UID()] = p
	return p, nil
}

func (m *memoryPayments) FindForUpdate(ctx context.Context, tx sqlc.DBTX, paymentUID uuid.UUID) (*payment.Payment, error) {
	p, ok := m.rows[paymentUID]
	if !ok {
		return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return payment.ReconstructPayment(p.UID(), p.Status(), p.Price()), nil
}

func (m *memoryPayments) UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	m.rows[p.UID()] = p
	return nil
}

type memoryRentals struct {
	rows map[uuid.UUID]*rental.Rental
}

func (m *memoryRentals) Create(ctx context.Context, tx sqlc.DBTX, r *rental.Rental) (*rental.Rental, error) {
	if existing, ok := m.rows[r.UID()]; ok {
		return existing, nil
	}
	m.rows[r.UID()] = r
	return r, nil
}

func (m *memoryRentals) FindForUpdate(ctx context.Context, tx sqlc.DBTX, rentalUID uuid.UUID) (*rental.Rental, error) {
	r, ok := m.rows[rentalUID]
	if !ok {
		return nil, infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return rental.ReconstructRental(r.UID(), r.Username(), r.PaymentUID(), r.CarUID(), r.Period(), r.Status()), nil
}

func (m *memoryRentals) UpdateStatus(ctx context.Context, tx sqlc.DBTX, r *rental.Rental) error {
	m.rows[r.UID()] = r
	return nil
}
