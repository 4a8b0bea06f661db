package api

import (
	"net/http"

	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httperr"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	headerIdempotencyKey      = "Idempotency-Key"
	headerIdempotencyReplayed = "Idempotency-Replayed"
)

// A failed saga step is an upstream failure whatever the leaf answered, so
// that rule comes first.
var gatewayRules = []httperr.Rule{
	{Target: errs.ErrUpstreamFailure, Status: http.StatusInternalServerError, Message: "Upstream service failure"},
	{Target: errs.ErrInvalidPeriod, Status: http.StatusBadRequest, Message: "Invalid rental period", Field: "dateTo"},
}

type GatewayHandler struct {
	booking commands.BookingCommands
	rentals queries.RentalDetailsQueries
	catalog queries.CarCatalogQueries
}

func NewGatewayHandler(booking commands.BookingCommands, rentals queries.RentalDetailsQueries, catalog queries.CarCatalogQueries) *GatewayHandler {
	return &GatewayHandler{booking: booking, rentals: rentals, catalog: catalog}
}

// @Summary List cars
// @Description Car catalog. A page past the end is returned empty.
// @Tags gateway
// @Produce json
// @Param page query int false "Page number (from 1)" default(1)
// @Param size query int false "Page size (1-100)" default(10)
// @Param showAll query bool false "Include reserved cars"
// @Success 200 {object} resdto.CatalogPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/v1/cars [get]
func (h *GatewayHandler) ListCars(c *gin.Context) {
	var query reqdto.ListCarsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithValidation(c, err)
		return
	}
	page, err := h.catalog.ListCars(c.Request.Context(), query.Page, query.Size, query.ShowAll)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, gatewayRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCarPageSnapshot(page))
}

// @Summary List user rentals
// @Description Rentals of the caller with car and payment details.
// @Tags gateway
// @Produce json
// @Param X-User-Name header string true "Caller"
// @Success 200 {array} resdto.UserRentalResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/v1/rental [get]
func (h *GatewayHandler) ListRentals(c *gin.Context) {
	username, ok := requireUser(c)
	if !ok {
		return
	}
	list, err := h.rentals.ListUserRentals(c.Request.Context(), username)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, gatewayRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalDetailsList(list))
}

// @Summary Get rental
// @Tags gateway
// @Produce json
// @Param X-User-Name header string true "Caller"
// @Param rentalUid path string true "Rental UID"
// @Success 200 {object} resdto.UserRentalResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/v1/rental/{rentalUid} [get]
func (h *GatewayHandler) GetRental(c *gin.Context) {
	username, ok := requireUser(c)
	if !ok {
		return
	}
	uid, ok := parseUID(c, "rentalUid")
	if !ok {
		return
	}
	details, err := h.rentals.GetRentalDetails(c.Request.Context(), uid, username)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, gatewayRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalDetails(details))
}

// @Summary Book car
// @Description Reserve a car, take payment and open a rental. Failed steps are undone.
// @Tags gateway
// @Accept json
// @Produce json
// @Param X-User-Name header string true "Caller"
// @Param Idempotency-Key header string false "Replays the first response for retried requests"
// @Param request body reqdto.BookCarRequest true "Booking"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/v1/rental [post]
func (h *GatewayHandler) Book(c *gin.Context) {
	username, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.BookCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithValidation(c, err)
		return
	}
	result, err := h.booking.Book(c.Request.Context(), username, c.GetHeader(headerIdempotencyKey), req.ToInput())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, gatewayRules...)
		return
	}
	if result.Replayed {
		c.Header(headerIdempotencyReplayed, "true")
	}
	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary Finish rental
// @Description Release the car and close the rental.
// @Tags gateway
// @Param X-User-Name header string true "Caller"
// @Param rentalUid path string true "Rental UID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/v1/rental/{rentalUid}/finish [post]
func (h *GatewayHandler) Finish(c *gin.Context) {
	username, ok := requireUser(c)
	if !ok {
		return
	}
	uid, ok := parseUID(c, "rentalUid")
	if !ok {
		return
	}
	if err := h.booking.Finish(c.Request.Context(), uid, username); err != nil {
		httperr.AbortWithUseCaseError(c, err, gatewayRules...)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel rental
// @Description Release the car, cancel the rental and refund the payment.
// @Tags gateway
// @Param X-User-Name header string true "Caller"
// @Param rentalUid path string true "Rental UID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/v1/rental/{rentalUid} [delete]
func (h *GatewayHandler) Cancel(c *gin.Context) {
	username, ok := requireUser(c)
	if !ok {
		return
	}
	uid, ok := parseUID(c, "rentalUid")
	if !ok {
		return
	}
	if err := h.booking.Cancel(c.Request.Context(), uid, username); err != nil {
		httperr.AbortWithUseCaseError(c, err, gatewayRules...)
		return
	}
	c.Status(http.StatusNoContent)
}
