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

// A failed compare-and-swap is a 409 on the registry.
var availabilityRules = []httperr.Rule{
	{Target: errs.ErrCarUnavailable, Status: http.StatusConflict, Message: "Car is already reserved"},
	{Target: errs.ErrConflict, Status: http.StatusConflict, Message: "Car availability has changed"},
}

var createCarRules = []httperr.Rule{
	{Target: errs.ErrConflict, Status: http.StatusBadRequest, Message: "Car already exists"},
}

type CarHandler struct {
	cmds commands.CarCommands
	q    queries.CarQueries
}

func NewCarHandler(cmds commands.CarCommands, q queries.CarQueries) *CarHandler {
	return &CarHandler{cmds: cmds, q: q}
}

// @Summary List cars
// @Description List cars page by page. Reserved cars are hidden unless showAll is set.
// @Tags cars
// @Produce json
// @Param page query int false "Page number (from 1)" default(1)
// @Param size query int false "Page size (1-100)" default(10)
// @Param showAll query bool false "Include reserved cars"
// @Success 200 {object} resdto.CarPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/cars [get]
func (h *CarHandler) List(c *gin.Context) {
	var query reqdto.ListCarsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithValidation(c, err)
		return
	}
	page, err := h.q.List(c.Request.Context(), query.Page, query.Size, query.ShowAll)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCarPage(page))
}

// @Summary Get car
// @Tags cars
// @Produce json
// @Param carUid path string true "Car UID"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/cars/{carUid} [get]
func (h *CarHandler) Get(c *gin.Context) {
	uid, ok := parseUID(c, "carUid")
	if !ok {
		return
	}
	view, err := h.q.GetByUID(c.Request.Context(), uid)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

// @Summary Register car
// @Description Add a car to the registry. It starts available.
// @Tags cars
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCarRequest true "Car"
// @Success 201 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/cars [post]
func (h *CarHandler) Create(c *gin.Context) {
	var req reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithValidation(c, err)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, createCarRules...)
		return
	}
	c.Header("Location", "/api/v1/cars/"+view.CarUID.String())
	c.JSON(http.StatusCreated, resdto.FromCarView(view))
}

// @Summary Reserve car
// @Description Mark a car unavailable. With expectAvailable=true the call fails with 409 when the car is already reserved.
// @Tags cars
// @Produce json
// @Param carUid path string true "Car UID"
// @Param expectAvailable query bool false "Required current availability"
// @Param holder query string false "Reservation owner; a repeated reserve by the same holder succeeds"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/v1/cars/{carUid}/reserve [put]
func (h *CarHandler) Reserve(c *gin.Context) {
	h.setAvailability(c, false)
}

// @Summary Release car
// @Description Mark a car available. With expectAvailable=false the call fails with 409 when the car is not reserved.
// @Tags cars
// @Produce json
// @Param carUid path string true "Car UID"
// @Param expectAvailable query bool false "Required current availability"
// @Param holder query string false "Release only if this holder has the car"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/v1/cars/{carUid}/release [put]
func (h *CarHandler) Release(c *gin.Context) {
	h.setAvailability(c, true)
}

func (h *CarHandler) setAvailability(c *gin.Context, available bool) {
	uid, ok := parseUID(c, "carUid")
	if !ok {
		return
	}
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithValidation(c, err)
		return
	}
	view, err := h.cmds.SetAvailability(c.Request.Context(), uid, available, query.ExpectAvailable, query.HolderUID())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, availabilityRules...)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(view))
}
