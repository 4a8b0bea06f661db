package client

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type CarsClient struct {
	up *upstream
}

func NewCarsClient(cfg config.Config, httpClient *http.Client, logger *slog.Logger) *CarsClient {
	return &CarsClient{up: newUpstream(config.ServiceCars, cfg.Upstream.CarsURL, httpClient, cfg.Upstream, logger)}
}

func (c *CarsClient) ListCars(ctx context.Context, page, size int, showAll bool) (*shared.CarPageSnapshot, error) {
	var body carPageBody
	err := c.up.do(ctx, call{
		method: http.MethodGet,
		path:   "/api/v1/cars",
		query: url.Values{
			"page":    {strconv.Itoa(page)},
			"size":    {strconv.Itoa(size)},
			"showAll": {strconv.FormatBool(showAll)},
		},
	}, &body, mapStatuses(errs.ErrCarNotFound, nil))
	if err != nil {
		return nil, err
	}

	items := make([]*shared.CarSnapshot, len(body.Items))
	for i, item := range body.Items {
		items[i] = item.snapshot()
	}
	return &shared.CarPageSnapshot{
		Page:          body.Page,
		PageSize:      body.PageSize,
		TotalElements: body.TotalElements,
		Items:         items,
	}, nil
}

func (c *CarsClient) GetCar(ctx context.Context, carUID uuid.UUID) (*shared.CarSnapshot, error) {
	var body carBody
	err := c.up.do(ctx, call{
		method: http.MethodGet,
		path:   "/api/v1/cars/" + carUID.String(),
	}, &body, mapStatuses(errs.ErrCarNotFound, nil))
	if err != nil {
		return nil, err
	}
	return body.snapshot(), nil
}

// ReserveCar uses the registry's compare-and-swap so two bookings cannot
// both hold one car. The holder makes a retried reserve idempotent.
func (c *CarsClient) ReserveCar(ctx context.Context, carUID, holder uuid.UUID) (*shared.CarSnapshot, error) {
	var body availabilityBody
	err := c.up.do(ctx, call{
		method: http.MethodPut,
		path:   "/api/v1/cars/" + carUID.String() + "/reserve",
		query:  holderQuery(url.Values{"expectAvailable": {"true"}}, holder),
	}, &body, mapStatuses(errs.ErrCarNotFound, map[int]error{
		http.StatusConflict: errs.ErrCarUnavailable,
	}))
	if err != nil {
		return nil, err
	}
	return &shared.CarSnapshot{CarUID: body.CarUID, Available: body.Availability}, nil
}

func (c *CarsClient) ReleaseCar(ctx context.Context, carUID, holder uuid.UUID) error {
	return c.up.do(ctx, call{
		method: http.MethodPut,
		path:   "/api/v1/cars/" + carUID.String() + "/release",
		query:  holderQuery(url.Values{}, holder),
	}, nil, mapStatuses(errs.ErrCarNotFound, nil))
}

func holderQuery(q url.Values, holder uuid.UUID) url.Values {
	if holder != uuid.Nil {
		q.Set("holder", holder.String())
	}
	return q
}
