//go:build unit || e2e

// Package fakeupstream provides in-memory stand-ins for the leaf services and
// the gateway's side stores, with per-operation failure injection.
package fakeupstream

import (
	"context"
	"sync"

	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	OpListCars      = "ListCars"
	OpGetCar        = "GetCar"
	OpReserveCar    = "ReserveCar"
	OpReleaseCar    = "ReleaseCar"
	OpCreatePayment = "CreatePayment"
	OpGetPayment    = "GetPayment"
	OpCancelPayment = "CancelPayment"
	OpCreateRental  = "CreateRental"
	OpListRentals   = "ListRentals"
	OpGetRental     = "GetRental"
	OpFinishRental  = "FinishRental"
	OpCancelRental  = "CancelRental"
)

// Services implements shared.CarRegistry, shared.PaymentLedger and
// shared.RentalLedger over maps.
type Services struct {
	mu          sync.Mutex
	cars        map[uuid.UUID]*shared.CarSnapshot
	carOrder    []uuid.UUID
	holders     map[uuid.UUID]uuid.UUID
	payments    map[uuid.UUID]*shared.PaymentSnapshot
	rentals     map[uuid.UUID]*shared.RentalSnapshot
	rentalOrder []uuid.UUID
	failures    map[string][]error
	lost        map[string][]error
	calls       []string
}

func New() *Services {
	return &Services{
		cars:     make(map[uuid.UUID]*shared.CarSnapshot),
		holders:  make(map[uuid.UUID]uuid.UUID),
		payments: make(map[uuid.UUID]*shared.PaymentSnapshot),
		rentals:  make(map[uuid.UUID]*shared.RentalSnapshot),
		failures: make(map[string][]error),
		lost:     make(map[string][]error),
	}
}

func (s *Services) AddCar(c shared.CarSnapshot) *Services {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cars[c.CarUID]; !ok {
		s.carOrder = append(s.carOrder, c.CarUID)
	}
	s.cars[c.CarUID] = &c
	return s
}

func (s *Services) AddPayment(p shared.PaymentSnapshot) *Services {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[p.PaymentUID] = &p
	return s
}

func (s *Services) AddRental(r shared.RentalSnapshot) *Services {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rentals[r.RentalUID]; !ok {
		s.rentalOrder = append(s.rentalOrder, r.RentalUID)
	}
	s.rentals[r.RentalUID] = &r
	return s
}

// FailNext queues err for the next call of op. Queued errors are consumed in order.
func (s *Services) FailNext(op string, err ...error) *Services {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = append(s.failures[op], err...)
	return s
}

// LoseReplyNext lets the next call of op take effect and then return err, as
// when a response is lost after the upstream committed. Only ReserveCar honors it.
func (s *Services) LoseReplyNext(op string, err error) *Services {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lost[op] = append(s.lost[op], err)
	return s
}

// Holder reports who holds the reservation of a car, if anyone.
func (s *Services) Holder(carUID uuid.UUID) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.holders[carUID]
}

func (s *Services) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *Services) Car(uid uuid.UUID) (shared.CarSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cars[uid]
	if !ok {
		return shared.CarSnapshot{}, false
	}
	return *c, true
}

func (s *Services) Payment(uid uuid.UUID) (shared.PaymentSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[uid]
	if !ok {
		return shared.PaymentSnapshot{}, false
	}
	return *p, true
}

func (s *Services) Rental(uid uuid.UUID) (shared.RentalSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rentals[uid]
	if !ok {
		return shared.RentalSnapshot{}, false
	}
	return *r, true
}

func (s *Services) PaymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments)
}

func (s *Services) RentalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rentals)
}

// enter records the call and pops an injected failure. Callers hold s.mu.
func (s *Services) enter(op string) error {
	s.calls = append(s.calls, op)
	queue := s.failures[op]
	if len(queue) == 0 {
		return nil
	}
	s.failures[op] = queue[1:]
	return queue[0]
}

func (s *Services) ListCars(ctx context.Context, page, size int, showAll bool) (*shared.CarPageSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpListCars); err != nil {
		return nil, err
	}

	var matching []*shared.CarSnapshot
	for _, uid := range s.carOrder {
		c := s.cars[uid]
		if showAll || c.Available {
			cp := *c
			matching = append(matching, &cp)
		}
	}
	offset := (page - 1) * size
	if offset >= len(matching) {
		return nil, errs.ErrCarNotFound
	}
	end := min(offset+size, len(matching))
	return &shared.CarPageSnapshot{
		Page:          page,
		PageSize:      size,
		TotalElements: int64(len(matching)),
		Items:         matching[offset:end],
	}, nil
}

func (s *Services) GetCar(ctx context.Context, carUID uuid.UUID) (*shared.CarSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpGetCar); err != nil {
		return nil, err
	}
	c, ok := s.cars[carUID]
	if !ok {
		return nil, errs.ErrCarNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *Services) ReserveCar(ctx context.Context, carUID, holder uuid.UUID) (*shared.CarSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpReserveCar); err != nil {
		return nil, err
	}
	c, ok := s.cars[carUID]
	if !ok {
		return nil, errs.ErrCarNotFound
	}
	if !c.Available && (holder == uuid.Nil || s.holders[carUID] != holder) {
		return nil, errs.CarUnavailable(nil)
	}
	c.Available = false
	s.holders[carUID] = holder
	if queue := s.lost[OpReserveCar]; len(queue) > 0 {
		s.lost[OpReserveCar] = queue[1:]
		return nil, queue[0]
	}
	cp := *c
	return &cp, nil
}

func (s *Services) ReleaseCar(ctx context.Context, carUID, holder uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpReleaseCar); err != nil {
		return err
	}
	c, ok := s.cars[carUID]
	if !ok {
		return errs.ErrCarNotFound
	}
	if holder != uuid.Nil && !c.Available && s.holders[carUID] != holder {
		return errs.Wrap(errs.ErrConflict, "car is held by another reservation")
	}
	c.Available = true
	delete(s.holders, carUID)
	return nil
}

func (s *Services) CreatePayment(ctx context.Context, draft shared.PaymentDraft) (*shared.PaymentSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpCreatePayment); err != nil {
		return nil, err
	}
	p, ok := s.payments[draft.PaymentUID]
	if !ok {
		p = &shared.PaymentSnapshot{PaymentUID: draft.PaymentUID, Status: draft.Status, Price: draft.Price}
		s.payments[draft.PaymentUID] = p
	}
	cp := *p
	return &cp, nil
}

func (s *Services) GetPayment(ctx context.Context, paymentUID uuid.UUID) (*shared.PaymentSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpGetPayment); err != nil {
		return nil, err
	}
	p, ok := s.payments[paymentUID]
	if !ok {
		return nil, errs.ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *Services) CancelPayment(ctx context.Context, paymentUID uuid.UUID) (*shared.PaymentSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpCancelPayment); err != nil {
		return nil, err
	}
	p, ok := s.payments[paymentUID]
	if !ok {
		return nil, errs.ErrPaymentNotFound
	}
	p.Status = "CANCELED"
	cp := *p
	return &cp, nil
}

func (s *Services) CreateRental(ctx context.Context, draft shared.RentalDraft) (*shared.RentalSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpCreateRental); err != nil {
		return nil, err
	}
	r, ok := s.rentals[draft.RentalUID]
	if !ok {
		r = &shared.RentalSnapshot{
			RentalUID:  draft.RentalUID,
			Username:   draft.Username,
			PaymentUID: draft.PaymentUID,
			CarUID:     draft.CarUID,
			DateFrom:   draft.DateFrom,
			DateTo:     draft.DateTo,
			Status:     "IN_PROGRESS",
		}
		s.rentals[draft.RentalUID] = r
		s.rentalOrder = append(s.rentalOrder, draft.RentalUID)
	}
	cp := *r
	return &cp, nil
}

func (s *Services) ListRentals(ctx context.Context, username string) ([]*shared.RentalSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpListRentals); err != nil {
		return nil, err
	}
	var result []*shared.RentalSnapshot
	for _, uid := range s.rentalOrder {
		if r := s.rentals[uid]; r.Username == username {
			cp := *r
			result = append(result, &cp)
		}
	}
	if len(result) == 0 {
		return nil, errs.ErrRentalNotFound
	}
	return result, nil
}

func (s *Services) GetRental(ctx context.Context, rentalUID uuid.UUID, username string) (*shared.RentalSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(OpGetRental); err != nil {
		return nil, err
	}
	r, err := s.ownedRental(rentalUID, username)
	if err != nil {
		return nil, err
	}
	cp := *r
	return &cp, nil
}

func (s *Services) FinishRental(ctx context.Context, rentalUID uuid.UUID, username string) (*shared.RentalSnapshot, error) {
	return s.transition(OpFinishRental, rentalUID, username, "FINISHED")
}

func (s *Services) CancelRental(ctx context.Context, rentalUID uuid.UUID, username string) (*shared.RentalSnapshot, error) {
	return s.transition(OpCancelRental, rentalUID, username, "CANCELED")
}

func (s *Services) transition(op string, rentalUID uuid.UUID, username, to string) (*shared.RentalSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(op); err != nil {
		return nil, err
	}
	r, err := s.ownedRental(rentalUID, username)
	if err != nil {
		return nil, err
	}
	if r.Status != "IN_PROGRESS" {
		return nil, errs.ErrConflict
	}
	r.Status = to
	cp := *r
	return &cp, nil
}

func (s *Services) ownedRental(rentalUID uuid.UUID, username string) (*shared.RentalSnapshot, error) {
	r, ok := s.rentals[rentalUID]
	if !ok {
		return nil, errs.ErrRentalNotFound
	}
	if r.Username != username {
		return nil, errs.ErrForbidden
	}
	return r, nil
}
