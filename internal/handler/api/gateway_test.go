//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"car-rental/internal/handler"
	"car-rental/internal/handler/api"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/queries"
	"car-rental/internal/usecase/shared"
	"car-rental/tests/common/builder"
	"car-rental/tests/common/httptest"
	"car-rental/tests/common/testutil"
	commandsmock "car-rental/tests/mock/commands"
	queriesmock "car-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const username = "Test Max"

type GatewayHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *commandsmock.MockBookingCommands
	mockRentals *queriesmock.MockRentalDetailsQueries
	mockCatalog *queriesmock.MockCarCatalogQueries
}

func (s *GatewayHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockRentals = queriesmock.NewMockRentalDetailsQueries(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCarCatalogQueries(s.mockCtrl)

	cfg := config.NewTestConfig()
	h := api.NewGatewayHandler(s.mockBooking, s.mockRentals, s.mockCatalog)
	handler.NewGatewayRouter(s.router, cfg, middleware.NewLogger(cfg.Log), h)
}

func (s *GatewayHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGatewayHandlerSuite(t *testing.T) {
	suite.Run(t, new(GatewayHandlerTestSuite))
}

func (s *GatewayHandlerTestSuite) TestListCars() {
	car := builder.NewCarBuilder()

	s.Run("success: camelCase page", func() {
		s.mockCatalog.EXPECT().ListCars(gomock.Any(), 1, 10, false).Return(&shared.CarPageSnapshot{
			Page: 1, PageSize: 10, TotalElements: 1, Items: []*shared.CarSnapshot{car.BuildSnapshot()},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/cars", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(10), body["pageSize"])
		s.Equal(float64(1), body["totalElements"])
		item := body["items"].([]any)[0].(map[string]any)
		s.Equal(car.CarUID.String(), item["carUid"])
		s.Equal(car.RegistrationNumber, item["registrationNumber"])
		s.Equal(true, item["availability"])
	})

	s.Run("success: no X-User-Name needed", func() {
		s.mockCatalog.EXPECT().ListCars(gomock.Any(), 2, 3, true).Return(&shared.CarPageSnapshot{Page: 2, PageSize: 3}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/cars?page=2&size=3&showAll=true", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 when the registry is down", func() {
		s.mockCatalog.EXPECT().ListCars(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("dial tcp: refused"), errs.ErrUpstreamFailure))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/cars", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Upstream")
	})
}

func (s *GatewayHandlerTestSuite) TestRentals() {
	car := builder.NewCarBuilder()
	payment := builder.NewPaymentBuilder()
	rental := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
		b.CarUID = car.CarUID
		b.PaymentUID = payment.PaymentUID
	})

	s.Run("success: list with car and payment", func() {
		s.mockRentals.EXPECT().ListUserRentals(gomock.Any(), username).
			Return([]*queries.RentalDetails{rental.BuildDetails(car, payment)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/rental", nil, username)

		var body []resdto.UserRentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(resdto.UserRentalResponse{
			RentalUID: rental.RentalUID,
			Status:    "IN_PROGRESS",
			DateFrom:  "2024-10-08",
			DateTo:    "2024-10-10",
			Car: resdto.CarInfo{
				CarUID:             car.CarUID,
				Brand:              car.Brand,
				Model:              car.Model,
				RegistrationNumber: car.RegistrationNumber,
			},
			Payment: resdto.PaymentInfo{PaymentUID: payment.PaymentUID, Status: "PAID", Price: payment.Price},
		}, body[0])
	})

	s.Run("success: single rental", func() {
		s.mockRentals.EXPECT().GetRentalDetails(gomock.Any(), rental.RentalUID, username).
			Return(rental.BuildDetails(car, payment), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/rental/"+rental.RentalUID.String(), nil, username)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: every /rental route requires X-User-Name", func() {
		routes := []struct{ method, path string }{
			{http.MethodGet, "/api/v1/rental"},
			{http.MethodGet, "/api/v1/rental/" + rental.RentalUID.String()},
			{http.MethodPost, "/api/v1/rental"},
			{http.MethodPost, "/api/v1/rental/" + rental.RentalUID.String() + "/finish"},
			{http.MethodDelete, "/api/v1/rental/" + rental.RentalUID.String()},
		}
		for _, r := range routes {
			rec := httptest.PerformRequest(s.T(), s.router, r.method, r.path, nil, "")
			httptest.AssertValidationError(s.T(), rec, "X-User-Name")
		}
	})

	s.Run("error: maps fan-out failures", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "rental missing", err: errs.ErrRentalNotFound, status: http.StatusNotFound},
			{name: "car missing", err: errs.Wrap(errs.ErrCarNotFound, "car for rental"), status: http.StatusNotFound},
			{name: "other user", err: errs.ErrForbidden, status: http.StatusForbidden},
			{name: "upstream down", err: errs.Mark(errors.New("timeout"), errs.ErrUpstreamFailure), status: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRentals.EXPECT().GetRentalDetails(gomock.Any(), rental.RentalUID, username).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/rental/"+rental.RentalUID.String(), nil, username)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *GatewayHandlerTestSuite) TestBook() {
	payment := builder.NewPaymentBuilder()
	rental := builder.NewRentalBuilder()
	reqBody := rental.BuildBookingRequestDTO()

	s.Run("success: 200 with the booking", func() {
		s.mockBooking.EXPECT().Book(gomock.Any(), username, "", reqBody.ToInput()).
			Return(rental.BuildBookingResult(payment), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/v1/rental", reqBody, username)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(rental.RentalUID, body.RentalUID)
		s.Equal("2024-10-08", body.DateFrom)
		s.Equal(payment.Price, body.Payment.Price)
		s.Empty(rec.Header().Get("Idempotency-Replayed"))
	})

	s.Run("success: replayed booking is flagged", func() {
		result := rental.BuildBookingResult(payment)
		result.Replayed = true
		s.mockBooking.EXPECT().Book(gomock.Any(), username, "key-1", gomock.Any()).Return(result, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/api/v1/rental", reqBody, map[string]string{
			httptest.HeaderUserName: username,
			"Idempotency-Key":       "key-1",
		})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotency-Replayed": "true"})
	})

	s.Run("error: 400 on invalid body", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
			field  string
		}{
			{name: "missing carUid", mutate: testutil.Field("carUid", nil), field: "carUid"},
			{name: "bad dateFrom", mutate: testutil.Field("dateFrom", "08.10.2024"), field: "dateFrom"},
			{name: "missing dateTo", mutate: testutil.Field("dateTo", nil), field: "dateTo"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/v1/rental", body, username)
				httptest.AssertValidationError(s.T(), rec, tc.field)
			})
		}
	})

	s.Run("error: maps saga failures", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "invalid period", err: errs.Wrap(errs.ErrInvalidPeriod, "dateTo must be after dateFrom"), status: http.StatusBadRequest, msg: "Invalid rental period"},
			{name: "car missing", err: errs.ErrCarNotFound, status: http.StatusNotFound, msg: "Car not found"},
			{name: "car reserved", err: errs.CarUnavailable(nil), status: http.StatusBadRequest, msg: "already reserved"},
			{name: "payment failed", err: errs.Mark(errors.New("503"), errs.ErrUpstreamFailure), status: http.StatusInternalServerError, msg: "Upstream"},
			{name: "payment rejected by the ledger", err: errs.Mark(errs.Wrap(errs.ErrDomainValidation, "price"), errs.ErrUpstreamFailure), status: http.StatusInternalServerError, msg: "Upstream"},
			{name: "rental create conflict", err: errs.Mark(errs.Wrap(errs.ErrConflict, "duplicate"), errs.ErrUpstreamFailure), status: http.StatusInternalServerError, msg: "Upstream"},
			{name: "key in flight", err: errs.ErrIdempotencyInProgress, status: http.StatusConflict, msg: "still being processed"},
			{name: "key reused", err: errs.ErrIdempotencyMismatch, status: http.StatusConflict, msg: "different request"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBooking.EXPECT().Book(gomock.Any(), username, gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/v1/rental", reqBody, username)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})

	s.Run("error: invalid period uses the validation envelope", func() {
		s.mockBooking.EXPECT().Book(gomock.Any(), username, gomock.Any(), gomock.Any()).Return(nil, errs.ErrInvalidPeriod)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/v1/rental", reqBody, username)
		httptest.AssertValidationError(s.T(), rec, "dateTo")
	})
}

func (s *GatewayHandlerTestSuite) TestFinishAndCancel() {
	rental := builder.NewRentalBuilder()
	path := "/api/v1/rental/" + rental.RentalUID.String()

	s.Run("success: finish answers 204", func() {
		s.mockBooking.EXPECT().Finish(gomock.Any(), rental.RentalUID, username).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path+"/finish", nil, username)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("success: cancel answers 204", func() {
		s.mockBooking.EXPECT().Cancel(gomock.Any(), rental.RentalUID, username).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, path, nil, username)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 when the rental is already closed", func() {
		s.mockBooking.EXPECT().Finish(gomock.Any(), rental.RentalUID, username).
			Return(errs.Mark(errors.New("rental is FINISHED"), errs.ErrConflict))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path+"/finish", nil, username)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "not in progress")
	})

	s.Run("error: 403 and 404 from the ledger", func() {
		s.mockBooking.EXPECT().Cancel(gomock.Any(), rental.RentalUID, username).Return(errs.ErrForbidden)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, path, nil, username)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")

		s.mockBooking.EXPECT().Cancel(gomock.Any(), rental.RentalUID, username).Return(errs.ErrRentalNotFound)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, path, nil, username)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Rental not found")
	})

	s.Run("error: 500 when the car release is answered with 404", func() {
		s.mockBooking.EXPECT().Finish(gomock.Any(), rental.RentalUID, username).
			Return(errs.Mark(errs.Wrap(errs.ErrCarNotFound, "release"), errs.ErrUpstreamFailure))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path+"/finish", nil, username)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Upstream")
	})

	s.Run("error: 500 when a step fails", func() {
		s.mockBooking.EXPECT().Cancel(gomock.Any(), rental.RentalUID, username).
			Return(errs.Mark(errors.New("payments unavailable"), errs.ErrUpstreamFailure))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, path, nil, username)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
