package api

import (
	"net/http"

	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httperr"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Create payment
// @Description Record a payment. Repeating a call with the same payment_uid returns the stored record.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePaymentRequest true "Payment"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithValidation(c, err)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/v1/payments/"+view.PaymentUID.String())
	c.JSON(http.StatusCreated, resdto.FromPaymentView(view))
}

// @Summary Get payment
// @Tags payments
// @Produce json
// @Param paymentUid path string true "Payment UID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/v1/payments/{paymentUid} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	uid, ok := parseUID(c, "paymentUid")
	if !ok {
		return
	}
	view, err := h.q.GetByUID(c.Request.Context(), uid)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary Cancel payment
// @Description Move a payment to CANCELED. Canceling twice is a no-op.
// @Tags payments
// @Produce json
// @Param paymentUid path string true "Payment UID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/v1/payments/{paymentUid}/cancel [put]
func (h *PaymentHandler) Cancel(c *gin.Context) {
	uid, ok := parseUID(c, "paymentUid")
	if !ok {
		return
	}
	view, err := h.cmds.Cancel(c.Request.Context(), uid)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}
