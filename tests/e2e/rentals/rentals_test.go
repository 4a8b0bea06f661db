//go:build e2e

package rentals_test

import (
	"net/http"
	"testing"

	"car-rental/cmd/bootstrap/components"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/pkg/config"
	"car-rental/tests/common/builder"
	"car-rental/tests/common/dbtest"
	"car-rental/tests/common/httptest"
	"car-rental/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const rentalsURL = "/api/v1/rentals"

type RentalSuite struct {
	e2e.SharedSuite
}

func TestRentalSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, &RentalSuite{SharedSuite: e2e.NewSharedSuite(config.ServiceRentals, components.RentalsModule)})
}

func (s *RentalSuite) TestCreateRental() {
	s.Run("Normal case: rental opens IN_PROGRESS", func() {
		t := s.T()
		rental := builder.NewRentalBuilder()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, rental.BuildCreateRequestDTO(), "")
		var created resdto.RentalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		want := resdto.RentalResponse{
			RentalUID:  rental.RentalUID,
			Username:   rental.Username,
			PaymentUID: rental.PaymentUID,
			CarUID:     rental.CarUID,
			DateFrom:   "2024-10-08",
			DateTo:     "2024-10-10",
			Status:     "IN_PROGRESS",
		}
		if diff := cmp.Diff(want, created); diff != "" {
			t.Errorf("rental mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: dateTo not after dateFrom", func() {
		t := s.T()
		rental := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) { b.DateTo = b.DateFrom })

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, rental.BuildCreateRequestDTO(), "")
		httptest.AssertValidationError(t, w, "date_to")
	})
}

func (s *RentalSuite) TestReadRentals() {
	s.Run("Normal case: only the caller's rentals are listed", func() {
		t := s.T()
		mine := builder.NewRentalBuilder()
		other := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) { b.Username = "someone else" })
		dbtest.InsertRental(t, s.DB, mine)
		dbtest.InsertRental(t, s.DB, other)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, rentalsURL, nil, mine.Username)
		var list []resdto.RentalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		require.Equal(t, mine.RentalUID, list[0].RentalUID)
	})

	s.Run("Error case: another user's rental is forbidden", func() {
		t := s.T()
		rental := builder.NewRentalBuilder()
		dbtest.InsertRental(t, s.DB, rental)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, rentalsURL+"/"+rental.RentalUID.String(), nil, "someone else")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: X-User-Name is required", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, rentalsURL, nil, "")
		httptest.AssertValidationError(s.T(), w, "X-User-Name")
	})
}

func (s *RentalSuite) TestTransitions() {
	s.Run("Normal case: finish then finish again", func() {
		t := s.T()
		rental := builder.NewRentalBuilder()
		dbtest.InsertRental(t, s.DB, rental)
		url := rentalsURL + "/" + rental.RentalUID.String() + "/finish"

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, nil, rental.Username)
		var body resdto.RentalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "FINISHED", body.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, nil, rental.Username)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "not in progress")
	})

	s.Run("Normal case: cancel", func() {
		t := s.T()
		rental := builder.NewRentalBuilder()
		dbtest.InsertRental(t, s.DB, rental)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, rentalsURL+"/"+rental.RentalUID.String()+"/cancel", nil, rental.Username)
		var body resdto.RentalResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "CANCELED", body.Status)
	})

	s.Run("Error case: cancel by another user", func() {
		t := s.T()
		rental := builder.NewRentalBuilder()
		dbtest.InsertRental(t, s.DB, rental)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, rentalsURL+"/"+rental.RentalUID.String()+"/cancel", nil, "someone else")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})
}
