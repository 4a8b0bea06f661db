// Package client holds the gateway's HTTP clients for the leaf services.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

const (
	HeaderUserName = "X-User-Name"

	maxResponseBytes = 1 << 20
)

// statusMapper turns a 4xx response into a client error.
type statusMapper func(status int, message string) error

type call struct {
	method   string
	path     string
	query    url.Values
	username string
	body     any
}

type upstream struct {
	name    string
	baseURL string
	http    *http.Client
	cfg     config.UpstreamConfig
	logger  *slog.Logger
}

func newUpstream(name, baseURL string, httpClient *http.Client, cfg config.UpstreamConfig, logger *slog.Logger) *upstream {
	if logger == nil {
		logger = slog.Default()
	}
	return &upstream{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		cfg:     cfg,
		logger:  logger,
	}
}

// NewHTTPClient returns the pooled client shared by every upstream. Timeouts
// are applied per attempt through the request context.
func NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 32
	transport.IdleConnTimeout = 90 * time.Second
	return &http.Client{Transport: transport}
}

// do runs c with a per-attempt timeout. Transport errors and 5xx responses are
// retried with exponential backoff; 4xx responses are final. Exhausted retries
// surface as ErrUpstreamFailure.
func (u *upstream) do(ctx context.Context, c call, out any, mapStatus statusMapper) error {
	var payload []byte
	if c.body != nil {
		var err error
		payload, err = json.Marshal(c.body)
		if err != nil {
			return errs.Wrap(err, "encode upstream request")
		}
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(u.newBackOff(), u.cfg.MaxRetries), ctx)
	notify := func(err error, wait time.Duration) {
		u.logger.Warn("upstream call failed, retrying",
			"upstream", u.name,
			"method", c.method,
			"path", c.path,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}

	return backoff.RetryNotify(func() error {
		return u.attempt(ctx, c, payload, out, mapStatus)
	}, policy, notify)
}

func (u *upstream) attempt(ctx context.Context, c call, payload []byte, out any, mapStatus statusMapper) error {
	actx, cancel := context.WithTimeout(ctx, u.cfg.Timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(actx, c.method, u.baseURL+c.path, body)
	if err != nil {
		return backoff.Permanent(errs.Mark(errs.Wrap(err, "build upstream request"), errs.ErrUpstreamFailure))
	}
	if len(c.query) > 0 {
		req.URL.RawQuery = c.query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" {
		req.Header.Set(HeaderUserName, c.username)
	}

	resp, err := u.http.Do(req)
	if err != nil {
		failure := errs.Mark(errs.Wrapf(err, "%s %s %s", u.name, c.method, c.path), errs.ErrUpstreamFailure)
		if ctx.Err() != nil {
			return backoff.Permanent(failure)
		}
		return failure
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "%s %s %s: read body", u.name, c.method, c.path), errs.ErrUpstreamFailure)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return errs.Wrapf(errs.ErrUpstreamFailure, "%s %s %s: status %d", u.name, c.method, c.path, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return backoff.Permanent(mapStatus(resp.StatusCode, errorMessage(raw)))
	case resp.StatusCode >= http.StatusMultipleChoices:
		return backoff.Permanent(errs.Wrapf(errs.ErrUpstreamFailure, "%s %s %s: unexpected status %d", u.name, c.method, c.path, resp.StatusCode))
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return backoff.Permanent(errs.Mark(errs.Wrapf(err, "%s %s %s: decode body", u.name, c.method, c.path), errs.ErrUpstreamFailure))
	}
	return nil
}

func (u *upstream) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = u.cfg.RetryBaseDelay
	b.MaxInterval = u.cfg.RetryMaxDelay
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		return strings.TrimSpace(string(raw))
	}
	return body.Message
}

// mapStatuses maps the common 4xx statuses; notFound is the sentinel for the
// resource the call addresses. overrides win over the defaults.
func mapStatuses(notFound error, overrides map[int]error) statusMapper {
	return func(status int, message string) error {
		if sentinel, ok := overrides[status]; ok {
			if errs.Is(sentinel, errs.ErrCarUnavailable) {
				return errs.CarUnavailable(errs.New(message))
			}
			return errs.Wrap(sentinel, message)
		}
		switch status {
		case http.StatusNotFound:
			return errs.Wrap(notFound, message)
		case http.StatusForbidden:
			return errs.Wrap(errs.ErrForbidden, message)
		case http.StatusConflict:
			return errs.Wrap(errs.ErrConflict, message)
		case http.StatusBadRequest:
			return errs.Wrap(errs.ErrDomainValidation, message)
		default:
			return errs.Wrapf(errs.ErrUpstreamFailure, "unexpected status %d: %s", status, message)
		}
	}
}
