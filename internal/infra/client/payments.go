package client

import (
	"context"
	"log/slog"
	"net/http"

	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentsClient struct {
	up *upstream
}

func NewPaymentsClient(cfg config.Config, httpClient *http.Client, logger *slog.Logger) *PaymentsClient {
	return &PaymentsClient{up: newUpstream(config.ServicePayments, cfg.Upstream.PaymentsURL, httpClient, cfg.Upstream, logger)}
}

// CreatePayment is safe to retry: the ledger treats a repeated payment_uid
// as the same payment.
func (c *PaymentsClient) CreatePayment(ctx context.Context, draft shared.PaymentDraft) (*shared.PaymentSnapshot, error) {
	var body paymentBody
	err := c.up.do(ctx, call{
		method: http.MethodPost,
		path:   "/api/v1/payments",
		body: paymentBody{
			PaymentUID: draft.PaymentUID,
			Status:     draft.Status,
			Price:      draft.Price,
		},
	}, &body, mapStatuses(errs.ErrPaymentNotFound, nil))
	if err != nil {
		return nil, err
	}
	return body.snapshot(), nil
}

func (c *PaymentsClient) GetPayment(ctx context.Context, paymentUID uuid.UUID) (*shared.PaymentSnapshot, error) {
	var body paymentBody
	err := c.up.do(ctx, call{
		method: http.MethodGet,
		path:   "/api/v1/payments/" + paymentUID.String(),
	}, &body, mapStatuses(errs.ErrPaymentNotFound, nil))
	if err != nil {
		return nil, err
	}
	return body.snapshot(), nil
}

func (c *PaymentsClient) CancelPayment(ctx context.Context, paymentUID uuid.UUID) (*shared.PaymentSnapshot, error) {
	var body paymentBody
	err := c.up.do(ctx, call{
		method: http.MethodPut,
		path:   "/api/v1/payments/" + paymentUID.String() + "/cancel",
	}, &body, mapStatuses(errs.ErrPaymentNotFound, nil))
	if err != nil {
		return nil, err
	}
	return body.snapshot(), nil
}
