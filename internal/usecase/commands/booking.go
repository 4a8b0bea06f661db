package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"car-rental/internal/domain/payment"
	"car-rental/internal/domain/rental"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/saga"
	"car-rental/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

const (
	completeRetries = 2
	completeBackoff = 50 * time.Millisecond
)

// compensationTimeout bounds the unwinding of a failed saga, which runs on a
// context detached from the client request.
const compensationTimeout = 10 * time.Second

type BookCarInput struct {
	CarUID   uuid.UUID `json:"carUid"`
	DateFrom string    `json:"dateFrom"`
	DateTo   string    `json:"dateTo"`
}

type BookingPayment struct {
	PaymentUID uuid.UUID `json:"paymentUid"`
	Status     string    `json:"status"`
	Price      int       `json:"price"`
}

type BookingResult struct {
	RentalUID uuid.UUID      `json:"rentalUid"`
	Status    string         `json:"status"`
	CarUID    uuid.UUID      `json:"carUid"`
	DateFrom  time.Time      `json:"dateFrom"`
	DateTo    time.Time      `json:"dateTo"`
	Payment   BookingPayment `json:"payment"`
	// Replayed is set when the result comes from the idempotency store.
	Replayed bool `json:"-"`
}

//go:generate mockgen -destination=../../../tests/mock/commands/booking.go -package=commandsmock . BookingCommands

// BookingCommands orchestrates the multi-service rental flows. Every method
// takes the caller's username explicitly.
type BookingCommands interface {
	Book(ctx context.Context, username, idempotencyKey string, in BookCarInput) (*BookingResult, error)
	Finish(ctx context.Context, rentalUID uuid.UUID, username string) error
	Cancel(ctx context.Context, rentalUID uuid.UUID, username string) error
}

type bookingCommandsImpl struct {
	cars        shared.CarRegistry
	payments    shared.PaymentLedger
	rentals     shared.RentalLedger
	idempotency shared.IdempotencyStore
	events      shared.EventPublisher
	clock       clock.Clock
	logger      *slog.Logger
}

func NewBookingCommands(
	cars shared.CarRegistry,
	payments shared.PaymentLedger,
	rentals shared.RentalLedger,
	idempotency shared.IdempotencyStore,
	events shared.EventPublisher,
	clock clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		cars:        cars,
		payments:    payments,
		rentals:     rentals,
		idempotency: idempotency,
		events:      events,
		clock:       clock,
		logger:      logger,
	}
}

func (b *bookingCommandsImpl) Book(ctx context.Context, username, idempotencyKey string, in BookCarInput) (*BookingResult, error) {
	period, err := rental.ParsePeriod(in.DateFrom, in.DateTo)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPeriod)
	}

	if idempotencyKey == "" {
		return b.book(ctx, username, in.CarUID, period)
	}

	requestHash := b.calculateRequestHash(in)
	replayed, err := b.handleIdempotency(ctx, idempotencyKey, username, requestHash)
	if err != nil || replayed != nil {
		return replayed, err
	}

	result, err := b.book(ctx, username, in.CarUID, period)
	detached := context.WithoutCancel(ctx)
	if err != nil {
		if releaseErr := b.idempotency.Release(detached, idempotencyKey, username); releaseErr != nil {
			b.logger.Warn("failed to release idempotency key", "key", idempotencyKey, "error", releaseErr.Error())
		}
		return nil, err
	}

	if err := b.completeIdempotency(detached, idempotencyKey, username, requestHash, result); err != nil {
		b.logger.Warn("failed to complete idempotency key", "key", idempotencyKey, "error", err.Error())
	}
	return result, nil
}

// completeIdempotency retries a failed Complete a few times. If it still
// fails the key stays processing until its short claim TTL runs out.
func (b *bookingCommandsImpl) completeIdempotency(ctx context.Context, key, username, requestHash string, result *BookingResult) error {
	body, err := json.Marshal(result)
	if err != nil {
		return errs.Wrap(err, "encode booking result")
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(completeBackoff), completeRetries), ctx)
	return backoff.Retry(func() error {
		return b.idempotency.Complete(ctx, key, username, requestHash, body)
	}, policy)
}

func (b *bookingCommandsImpl) handleIdempotency(ctx context.Context, key, username, requestHash string) (*BookingResult, error) {
	rec, claimed, err := b.idempotency.Claim(ctx, key, username, requestHash)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUpstreamFailure)
	}
	if claimed {
		return nil, nil
	}

	if rec.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyMismatch
	}

	switch rec.Status {
	case shared.IdempotencyStatusCompleted:
		var result BookingResult
		if err := json.Unmarshal(rec.Result, &result); err != nil {
			return nil, errs.Wrap(err, "decode stored booking result")
		}
		result.Replayed = true
		return &result, nil
	case shared.IdempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (b *bookingCommandsImpl) book(ctx context.Context, username string, carUID uuid.UUID, period rental.Period) (*BookingResult, error) {
	rentalUID := uuid.New()
	paymentUID := uuid.New()
	event := shared.RentalEvent{
		Saga:       "book",
		RentalUID:  rentalUID,
		Username:   username,
		CarUID:     carUID,
		PaymentUID: paymentUID,
	}
	log := saga.New("book", b.logger, "rental_uid", rentalUID.String(), "car_uid", carUID.String())

	car, err := b.cars.GetCar(ctx, carUID)
	if err != nil {
		return nil, err
	}
	log.Done("get_car", nil)

	price, err := period.Price(car.Price)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPeriod)
	}
	event.Price = price

	// rentalUID doubles as the reservation holder, so a reserve retried after
	// a lost reply finds its own reservation instead of a conflict.
	releaseCar := func(ctx context.Context) error {
		err := b.cars.ReleaseCar(ctx, carUID, rentalUID)
		if errs.Is(err, errs.ErrConflict) {
			// someone else holds the car, so this booking never did
			return nil
		}
		return err
	}
	if _, err := b.cars.ReserveCar(ctx, carUID, rentalUID); err != nil {
		if errs.Is(err, errs.ErrUpstreamFailure) {
			// the registry may have committed before the call failed
			log.Done("reserve_car", releaseCar)
			return nil, b.abort(ctx, log, event, err)
		}
		return nil, err
	}
	log.Done("reserve_car", releaseCar)

	paid, err := b.payments.CreatePayment(ctx, shared.PaymentDraft{
		PaymentUID: paymentUID,
		Status:     string(payment.StatusPaid),
		Price:      price,
	})
	if err != nil {
		return nil, b.abort(ctx, log, event, errs.Mark(err, errs.ErrUpstreamFailure))
	}
	log.Done("create_payment", func(ctx context.Context) error {
		_, err := b.payments.CancelPayment(ctx, paymentUID)
		return err
	})

	created, err := b.rentals.CreateRental(ctx, shared.RentalDraft{
		RentalUID:  rentalUID,
		Username:   username,
		PaymentUID: paymentUID,
		CarUID:     carUID,
		DateFrom:   period.From(),
		DateTo:     period.To(),
	})
	if err != nil {
		return nil, b.abort(ctx, log, event, errs.Mark(err, errs.ErrUpstreamFailure))
	}
	log.Done("create_rental", nil)

	event.Type = shared.EventRentalBooked
	b.publish(ctx, event)

	return &BookingResult{
		RentalUID: created.RentalUID,
		Status:    created.Status,
		CarUID:    created.CarUID,
		DateFrom:  created.DateFrom,
		DateTo:    created.DateTo,
		Payment: BookingPayment{
			PaymentUID: paid.PaymentUID,
			Status:     paid.Status,
			Price:      paid.Price,
		},
	}, nil
}

func (b *bookingCommandsImpl) Finish(ctx context.Context, rentalUID uuid.UUID, username string) error {
	r, err := b.inProgressRental(ctx, rentalUID, username)
	if err != nil {
		return err
	}
	event := b.eventFor("finish", r)
	log := saga.New("finish", b.logger, "rental_uid", rentalUID.String(), "car_uid", r.CarUID.String())

	if err := b.cars.ReleaseCar(ctx, r.CarUID, uuid.Nil); err != nil {
		return errs.Mark(err, errs.ErrUpstreamFailure)
	}
	log.Done("release_car", b.reReserve(r.CarUID, rentalUID))

	if _, err := b.rentals.FinishRental(ctx, rentalUID, username); err != nil {
		if errs.Is(err, errs.ErrConflict) {
			// a concurrent finish or cancel won the race and already released the car
			return err
		}
		return b.abort(ctx, log, event, errs.Mark(err, errs.ErrUpstreamFailure))
	}
	log.Done("finish_rental", nil)

	event.Type = shared.EventRentalFinished
	b.publish(ctx, event)
	return nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, rentalUID uuid.UUID, username string) error {
	r, err := b.inProgressRental(ctx, rentalUID, username)
	if err != nil {
		return err
	}
	event := b.eventFor("cancel", r)
	log := saga.New("cancel", b.logger, "rental_uid", rentalUID.String(), "car_uid", r.CarUID.String())

	if err := b.cars.ReleaseCar(ctx, r.CarUID, uuid.Nil); err != nil {
		return errs.Mark(err, errs.ErrUpstreamFailure)
	}
	log.Done("release_car", b.reReserve(r.CarUID, rentalUID))

	if _, err := b.rentals.CancelRental(ctx, rentalUID, username); err != nil {
		if errs.Is(err, errs.ErrConflict) {
			return err
		}
		return b.abort(ctx, log, event, errs.Mark(err, errs.ErrUpstreamFailure))
	}
	log.Done("cancel_rental", nil)

	// Past the pivot nothing is undone.
	if _, err := b.payments.CancelPayment(ctx, r.PaymentUID); err != nil {
		b.logger.Error("payment left PAID after rental cancel",
			"rental_uid", rentalUID.String(),
			"payment_uid", r.PaymentUID.String(),
			"error", err.Error())
		event.Type = shared.EventSagaCompensationFailed
		event.Reason = fmt.Sprintf("payment %s left PAID: %v", r.PaymentUID, err)
		b.publish(ctx, event)
		return errs.Mark(err, errs.ErrUpstreamFailure)
	}
	log.Done("cancel_payment", nil)

	event.Type = shared.EventRentalCanceled
	b.publish(ctx, event)
	return nil
}

func (b *bookingCommandsImpl) inProgressRental(ctx context.Context, rentalUID uuid.UUID, username string) (*shared.RentalSnapshot, error) {
	r, err := b.rentals.GetRental(ctx, rentalUID, username)
	if err != nil {
		return nil, err
	}
	if r.Status != string(rental.StatusInProgress) {
		return nil, errs.Wrapf(errs.ErrConflict, "rental %s is %s", rentalUID, r.Status)
	}
	return r, nil
}

func (b *bookingCommandsImpl) reReserve(carUID, rentalUID uuid.UUID) saga.Compensation {
	return func(ctx context.Context) error {
		_, err := b.cars.ReserveCar(ctx, carUID, rentalUID)
		return err
	}
}

// abort unwinds the saga on a context that survives client disconnects and
// returns cause, joined with the compensation error when unwinding failed.
func (b *bookingCommandsImpl) abort(ctx context.Context, log *saga.Log, event shared.RentalEvent, cause error) error {
	if len(log.Steps()) == 0 {
		return cause
	}

	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	b.logger.Warn("saga step failed, compensating",
		"saga", log.Name(),
		"rental_uid", event.RentalUID.String(),
		"steps", log.Steps(),
		"error", cause.Error())

	if err := log.Compensate(cctx); err != nil {
		event.Type = shared.EventSagaCompensationFailed
		event.Reason = err.Error()
		b.publish(cctx, event)
		return errs.Combine(cause, err)
	}

	event.Type = shared.EventSagaCompensated
	event.Reason = cause.Error()
	b.publish(cctx, event)
	return cause
}

func (b *bookingCommandsImpl) eventFor(sagaName string, r *shared.RentalSnapshot) shared.RentalEvent {
	return shared.RentalEvent{
		Saga:       sagaName,
		RentalUID:  r.RentalUID,
		Username:   r.Username,
		CarUID:     r.CarUID,
		PaymentUID: r.PaymentUID,
	}
}

// publish is best effort: a broker outage never fails the request.
func (b *bookingCommandsImpl) publish(ctx context.Context, event shared.RentalEvent) {
	event.OccurredAt = b.clock.Now()
	if err := b.events.Publish(context.WithoutCancel(ctx), event); err != nil {
		b.logger.Warn("failed to publish rental event",
			"type", event.Type,
			"rental_uid", event.RentalUID.String(),
			"error", err.Error())
	}
}

func (b *bookingCommandsImpl) calculateRequestHash(in BookCarInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
