package queries

import (
	"context"

	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../../../tests/mock/queries/gateway.go -package=queriesmock . RentalDetailsQueries,CarCatalogQueries

// RentalDetailsQueries composes rentals with their car and payment. Lookups
// run one after another and any missing reference fails the whole request.
type RentalDetailsQueries interface {
	ListUserRentals(ctx context.Context, username string) ([]*RentalDetails, error)
	GetRentalDetails(ctx context.Context, rentalUID uuid.UUID, username string) (*RentalDetails, error)
}

type rentalDetailsQueriesImpl struct {
	rentals  shared.RentalLedger
	cars     shared.CarRegistry
	payments shared.PaymentLedger
}

func NewRentalDetailsQueries(rentals shared.RentalLedger, cars shared.CarRegistry, payments shared.PaymentLedger) RentalDetailsQueries {
	return &rentalDetailsQueriesImpl{
		rentals:  rentals,
		cars:     cars,
		payments: payments,
	}
}

func (q *rentalDetailsQueriesImpl) ListUserRentals(ctx context.Context, username string) ([]*RentalDetails, error) {
	rentals, err := q.rentals.ListRentals(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(rentals) == 0 {
		return nil, errs.ErrRentalNotFound
	}

	result := make([]*RentalDetails, 0, len(rentals))
	for _, r := range rentals {
		details, err := q.compose(ctx, r)
		if err != nil {
			return nil, err
		}
		result = append(result, details)
	}
	return result, nil
}

func (q *rentalDetailsQueriesImpl) GetRentalDetails(ctx context.Context, rentalUID uuid.UUID, username string) (*RentalDetails, error) {
	r, err := q.rentals.GetRental(ctx, rentalUID, username)
	if err != nil {
		return nil, err
	}
	return q.compose(ctx, r)
}

func (q *rentalDetailsQueriesImpl) compose(ctx context.Context, r *shared.RentalSnapshot) (*RentalDetails, error) {
	c, err := q.cars.GetCar(ctx, r.CarUID)
	if err != nil {
		return nil, errs.Wrapf(err, "car of rental %s", r.RentalUID)
	}
	p, err := q.payments.GetPayment(ctx, r.PaymentUID)
	if err != nil {
		return nil, errs.Wrapf(err, "payment of rental %s", r.RentalUID)
	}

	return &RentalDetails{
		RentalUID: r.RentalUID,
		Status:    r.Status,
		DateFrom:  r.DateFrom,
		DateTo:    r.DateTo,
		Car: RentalCar{
			CarUID:             c.CarUID,
			Brand:              c.Brand,
			Model:              c.Model,
			RegistrationNumber: c.RegistrationNumber,
		},
		Payment: RentalPayment{
			PaymentUID: p.PaymentUID,
			Status:     p.Status,
			Price:      p.Price,
		},
	}, nil
}

type CarCatalogQueries interface {
	ListCars(ctx context.Context, page, size int, showAll bool) (*shared.CarPageSnapshot, error)
}

type carCatalogQueriesImpl struct {
	cars shared.CarRegistry
}

func NewCarCatalogQueries(cars shared.CarRegistry) CarCatalogQueries {
	return &carCatalogQueriesImpl{cars: cars}
}

// ListCars turns the registry's "no cars on this page" 404 into an empty page.
func (q *carCatalogQueriesImpl) ListCars(ctx context.Context, page, size int, showAll bool) (*shared.CarPageSnapshot, error) {
	result, err := q.cars.ListCars(ctx, page, size, showAll)
	if err != nil {
		if errs.Is(err, errs.ErrCarNotFound) {
			return &shared.CarPageSnapshot{
				Page:     page,
				PageSize: size,
				Items:    []*shared.CarSnapshot{},
			}, nil
		}
		return nil, err
	}
	return result, nil
}
