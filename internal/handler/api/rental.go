package api

import (
	"net/http"

	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httperr"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RentalHandler struct {
	cmds commands.RentalCommands
	q    queries.RentalQueries
}

func NewRentalHandler(cmds commands.RentalCommands, q queries.RentalQueries) *RentalHandler {
	return &RentalHandler{cmds: cmds, q: q}
}

// @Summary Create rental
// @Description Open an IN_PROGRESS rental. Repeating a call with the same rental_uid returns the stored record.
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRentalRequest true "Rental"
// @Success 201 {object} resdto.RentalResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/rentals [post]
func (h *RentalHandler) Create(c *gin.Context) {
	var req reqdto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithValidation(c, err)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/v1/rentals/"+view.RentalUID.String())
	c.JSON(http.StatusCreated, resdto.FromRentalView(view))
}

// @Summary List user rentals
// @Tags rentals
// @Produce json
// @Param X-User-Name header string true "Caller"
// @Success 200 {array} resdto.RentalResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/rentals [get]
func (h *RentalHandler) List(c *gin.Context) {
	username, ok := requireUser(c)
	if !ok {
		return
	}
	views, err := h.q.ListByUsername(c.Request.Context(), username)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

// @Summary Get rental
// @Tags rentals
// @Produce json
// @Param X-User-Name header string true "Caller"
// @Param rentalUid path string true "Rental UID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/rentals/{rentalUid} [get]
func (h *RentalHandler) Get(c *gin.Context) {
	username, ok := requireUser(c)
	if !ok {
		return
	}
	uid, ok := parseUID(c, "rentalUid")
	if !ok {
		return
	}
	view, err := h.q.GetByUID(c.Request.Context(), uid, username)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Cancel rental
// @Description Move an IN_PROGRESS rental to CANCELED.
// @Tags rentals
// @Produce json
// @Param X-User-Name header string true "Caller"
// @Param rentalUid path string true "Rental UID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/rentals/{rentalUid}/cancel [put]
func (h *RentalHandler) Cancel(c *gin.Context) {
	username, ok := requireUser(c)
	if !ok {
		return
	}
	uid, ok := parseUID(c, "rentalUid")
	if !ok {
		return
	}
	view, err := h.cmds.Cancel(c.Request.Context(), uid, username)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Finish rental
// @Description Move an IN_PROGRESS rental to FINISHED. Ownership is checked when X-User-Name is sent.
// @Tags rentals
// @Produce json
// @Param X-User-Name header string false "Caller"
// @Param rentalUid path string true "Rental UID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/rentals/{rentalUid}/finish [put]
func (h *RentalHandler) Finish(c *gin.Context) {
	uid, ok := parseUID(c, "rentalUid")
	if !ok {
		return
	}
	username, _ := middleware.CurrentUser(c)
	view, err := h.cmds.Finish(c.Request.Context(), uid, username)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}
