//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	"testing"

	resdto "car-rental/internal/handler/dto/response"
	"car-rental/tests/common/builder"
	"car-rental/tests/common/dbtest"
	"car-rental/tests/common/httptest"
	"car-rental/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	carsURL   = "/api/v1/cars"
	rentalURL = "/api/v1/rental"
	username  = "Test Max"
)

type BookingSuite struct {
	suite.Suite
	p *e2e.Platform
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) SetupSuite() {
	s.p = e2e.StartPlatform(s.T())
}

func (s *BookingSuite) SetupSubTest() {
	s.p.Reset(s.T())
}

func (s *BookingSuite) book(t *testing.T) resdto.BookingResponse {
	t.Helper()
	req := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
		b.CarUID = uuid.MustParse(dbtest.ReferenceCarUID)
	}).BuildBookingRequestDTO()

	w := httptest.PerformRequest(t, s.p.Gateway, http.MethodPost, rentalURL, req, username)
	var booked resdto.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &booked)
	return booked
}

func (s *BookingSuite) count(t *testing.T, env e2e.ServiceEnv, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, env.DB.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func (s *BookingSuite) status(t *testing.T, env e2e.ServiceEnv, query string, uid uuid.UUID) string {
	t.Helper()
	var st string
	require.NoError(t, env.DB.QueryRow(context.Background(), query, uid).Scan(&st))
	return st
}

func (s *BookingSuite) TestCatalog() {
	s.Run("Normal case: gateway pages the registry in camelCase", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.p.Gateway, http.MethodGet, carsURL+"?page=1&size=5", nil, "")
		var page resdto.CatalogPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Equal(t, 5, page.PageSize)
		require.Len(t, page.Items, 1)
		require.Equal(t, dbtest.ReferenceCarUID, page.Items[0].CarUID.String())
		require.True(t, page.Items[0].Available)
	})
}

func (s *BookingSuite) TestBookCar() {
	s.Run("Normal case: car reserved, payment taken, rental opened", func() {
		t := s.T()

		booked := s.book(t)
		require.Equal(t, "IN_PROGRESS", booked.Status)
		require.Equal(t, "2024-10-08", booked.DateFrom)
		require.Equal(t, "PAID", booked.Payment.Status)
		require.Equal(t, 7000, booked.Payment.Price, "two days at 3500")

		require.False(t, dbtest.CarAvailability(t, s.p.Cars.DB, dbtest.ReferenceCarUID))
		require.Equal(t, "PAID", s.status(t, s.p.Payments, "SELECT status FROM payment WHERE payment_uid = $1", booked.Payment.PaymentUID))
		require.Equal(t, "IN_PROGRESS", s.status(t, s.p.Rentals, "SELECT status FROM rental WHERE rental_uid = $1", booked.RentalUID))

		w := httptest.PerformRequest(t, s.p.Gateway, http.MethodGet, rentalURL+"/"+booked.RentalUID.String(), nil, username)
		var details resdto.UserRentalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &details)
		require.Equal(t, "GLA 250", details.Car.Model)
		require.Equal(t, booked.Payment.PaymentUID, details.Payment.PaymentUID)
	})

	s.Run("Error case: reserved car is rejected without side effects", func() {
		t := s.T()
		s.book(t)

		req := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
			b.CarUID = uuid.MustParse(dbtest.ReferenceCarUID)
		}).BuildBookingRequestDTO()
		w := httptest.PerformRequest(t, s.p.Gateway, http.MethodPost, rentalURL, req, "another user")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "already reserved")

		require.Equal(t, 1, s.count(t, s.p.Payments, "SELECT count(*) FROM payment"))
		require.Equal(t, 1, s.count(t, s.p.Rentals, "SELECT count(*) FROM rental"))
	})

	s.Run("Error case: unknown car", func() {
		t := s.T()
		req := builder.NewRentalBuilder().BuildBookingRequestDTO()

		w := httptest.PerformRequest(t, s.p.Gateway, http.MethodPost, rentalURL, req, username)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Car not found")
		require.Zero(t, s.count(t, s.p.Payments, "SELECT count(*) FROM payment"))
	})

	s.Run("Error case: empty period never reaches the registry", func() {
		t := s.T()
		req := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
			b.CarUID = uuid.MustParse(dbtest.ReferenceCarUID)
			b.DateTo = b.DateFrom
		}).BuildBookingRequestDTO()

		w := httptest.PerformRequest(t, s.p.Gateway, http.MethodPost, rentalURL, req, username)
		httptest.AssertValidationError(t, w, "dateTo")
		require.True(t, dbtest.CarAvailability(t, s.p.Cars.DB, dbtest.ReferenceCarUID))
	})
}

func (s *BookingSuite) TestFinishAndCancel() {
	s.Run("Normal case: finish releases the car", func() {
		t := s.T()
		booked := s.book(t)

		w := httptest.PerformRequest(t, s.p.Gateway, http.MethodPost, rentalURL+"/"+booked.RentalUID.String()+"/finish", nil, username)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.True(t, dbtest.CarAvailability(t, s.p.Cars.DB, dbtest.ReferenceCarUID))
		require.Equal(t, "FINISHED", s.status(t, s.p.Rentals, "SELECT status FROM rental WHERE rental_uid = $1", booked.RentalUID))
		require.Equal(t, "PAID", s.status(t, s.p.Payments, "SELECT status FROM payment WHERE payment_uid = $1", booked.Payment.PaymentUID))

		w = httptest.PerformRequest(t, s.p.Gateway, http.MethodPost, rentalURL+"/"+booked.RentalUID.String()+"/finish", nil, username)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "not in progress")
	})

	s.Run("Normal case: cancel releases the car and refunds", func() {
		t := s.T()
		booked := s.book(t)

		w := httptest.PerformRequest(t, s.p.Gateway, http.MethodDelete, rentalURL+"/"+booked.RentalUID.String(), nil, username)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.True(t, dbtest.CarAvailability(t, s.p.Cars.DB, dbtest.ReferenceCarUID))
		require.Equal(t, "CANCELED", s.status(t, s.p.Rentals, "SELECT status FROM rental WHERE rental_uid = $1", booked.RentalUID))
		require.Equal(t, "CANCELED", s.status(t, s.p.Payments, "SELECT status FROM payment WHERE payment_uid = $1", booked.Payment.PaymentUID))
	})

	s.Run("Error case: another user cannot cancel", func() {
		t := s.T()
		booked := s.book(t)

		w := httptest.PerformRequest(t, s.p.Gateway, http.MethodDelete, rentalURL+"/"+booked.RentalUID.String(), nil, "another user")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")

		require.False(t, dbtest.CarAvailability(t, s.p.Cars.DB, dbtest.ReferenceCarUID))
		require.Equal(t, "PAID", s.status(t, s.p.Payments, "SELECT status FROM payment WHERE payment_uid = $1", booked.Payment.PaymentUID))
	})
}
