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

type RentalsClient struct {
	up *upstream
}

func NewRentalsClient(cfg config.Config, httpClient *http.Client, logger *slog.Logger) *RentalsClient {
	return &RentalsClient{up: newUpstream(config.ServiceRentals, cfg.Upstream.RentalsURL, httpClient, cfg.Upstream, logger)}
}

// The ledger answers 400 when a rental is no longer IN_PROGRESS.
var transitionStatuses = map[int]error{
	http.StatusBadRequest: errs.ErrConflict,
}

func (c *RentalsClient) CreateRental(ctx context.Context, draft shared.RentalDraft) (*shared.RentalSnapshot, error) {
	var body rentalBody
	err := c.up.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/v1/rentals",
		username: draft.Username,
		body: createRentalBody{
			RentalUID:  draft.RentalUID,
			Username:   draft.Username,
			PaymentUID: draft.PaymentUID,
			CarUID:     draft.CarUID,
			DateFrom:   draft.DateFrom.Format(dateLayout),
			DateTo:     draft.DateTo.Format(dateLayout),
		},
	}, &body, mapStatuses(errs.ErrRentalNotFound, nil))
	if err != nil {
		return nil, err
	}
	return body.snapshot()
}

// ListRentals reports ErrRentalNotFound when the user has no rentals.
func (c *RentalsClient) ListRentals(ctx context.Context, username string) ([]*shared.RentalSnapshot, error) {
	var body []rentalBody
	err := c.up.do(ctx, call{
		method:   http.MethodGet,
		path:     "/api/v1/rentals",
		username: username,
	}, &body, mapStatuses(errs.ErrRentalNotFound, nil))
	if err != nil {
		return nil, err
	}

	result := make([]*shared.RentalSnapshot, 0, len(body))
	for _, b := range body {
		snapshot, err := b.snapshot()
		if err != nil {
			return nil, err
		}
		result = append(result, snapshot)
	}
	return result, nil
}

func (c *RentalsClient) GetRental(ctx context.Context, rentalUID uuid.UUID, username string) (*shared.RentalSnapshot, error) {
	return c.rentalCall(ctx, http.MethodGet, "/api/v1/rentals/"+rentalUID.String(), username, nil)
}

func (c *RentalsClient) FinishRental(ctx context.Context, rentalUID uuid.UUID, username string) (*shared.RentalSnapshot, error) {
	return c.rentalCall(ctx, http.MethodPut, "/api/v1/rentals/"+rentalUID.String()+"/finish", username, transitionStatuses)
}

func (c *RentalsClient) CancelRental(ctx context.Context, rentalUID uuid.UUID, username string) (*shared.RentalSnapshot, error) {
	return c.rentalCall(ctx, http.MethodPut, "/api/v1/rentals/"+rentalUID.String()+"/cancel", username, transitionStatuses)
}

func (c *RentalsClient) rentalCall(ctx context.Context, method, path, username string, overrides map[int]error) (*shared.RentalSnapshot, error) {
	var body rentalBody
	err := c.up.do(ctx, call{
		method:   method,
		path:     path,
		username: username,
	}, &body, mapStatuses(errs.ErrRentalNotFound, overrides))
	if err != nil {
		return nil, err
	}
	return body.snapshot()
}
