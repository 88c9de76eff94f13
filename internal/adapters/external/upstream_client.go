// Package external provides adapters for the upstream APIs a lookup talks to
// (OpenWeatherMap, TimezoneDB, Nominatim) and for the session stores.
package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const maxResponseBytes = 4 << 20

// Outcome labels reported to the UpstreamObserver
const (
	OutcomeSuccess      = "success"
	OutcomeHTTPError    = "http_error"
	OutcomeNetworkError = "network_error"
	OutcomeCircuitOpen  = "circuit_open"
	OutcomeDecodeError  = "decode_error"
	OutcomeRateLimited  = "rate_limited"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// UpstreamObserver receives one observation per upstream call
type UpstreamObserver interface {
	ObserveUpstream(upstream, outcome string, duration time.Duration)
}

// UpstreamClientParams holds parameters for creating an upstream client
type UpstreamClientParams struct {
	Name             string
	HTTPClient       HTTPClient
	Timeout          time.Duration
	MaxFailures      int
	OpenTimeout      time.Duration
	HalfOpenRequests int
	UserAgent        string
	Limiter          *rate.Limiter
	Observer         UpstreamObserver
	Logger           ports.Logger
}

// UpstreamClient performs JSON GET requests against one upstream API.
// Calls go through a circuit breaker and are never retried.
type UpstreamClient struct {
	name      string
	client    HTTPClient
	timeout   time.Duration
	userAgent string
	limiter   *rate.Limiter
	breaker   *gobreaker.CircuitBreaker[[]byte]
	observer  UpstreamObserver
	logger    ports.Logger
}

// statusError is returned for non-2xx responses
type statusError struct {
	upstream string
	code     int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.upstream, e.code)
}

// NewUpstreamClient creates an upstream client with its own circuit breaker
func NewUpstreamClient(params UpstreamClientParams) (*UpstreamClient, error) {
	if params.Name == "" {
		return nil, errors.NewValidationError("upstream name is required")
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	maxFailures := params.MaxFailures
	if maxFailures < 1 {
		maxFailures = 5
	}
	openTimeout := params.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}
	halfOpen := params.HalfOpenRequests
	if halfOpen < 1 {
		halfOpen = 1
	}

	c := &UpstreamClient{
		name:      params.Name,
		client:    httpClient,
		timeout:   params.Timeout,
		userAgent: params.UserAgent,
		limiter:   params.Limiter,
		observer:  params.Observer,
		logger:    params.Logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        params.Name,
		MaxRequests: uint32(halfOpen),
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(maxFailures)
		},
		IsSuccessful: func(err error) bool {
			// a caller giving up says nothing about the upstream
			return err == nil || stderrors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("Upstream circuit breaker state changed",
				ports.F("upstream", name),
				ports.F("from", from.String()),
				ports.F("to", to.String()))
		},
	})

	return c, nil
}

// Name returns the upstream name used in logs and metrics
func (c *UpstreamClient) Name() string {
	return c.name
}

// BreakerState returns closed, half-open or open
func (c *UpstreamClient) BreakerState() string {
	return c.breaker.State().String()
}

// GetJSON sends a GET request to endpoint with query and decodes the JSON body into out
func (c *UpstreamClient) GetJSON(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	start := time.Now()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.observe(OutcomeRateLimited, start)
			return errors.NewExternalAPIError(c.name+" rate limit wait aborted", err)
		}
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.fetch(ctx, endpoint, query)
	})
	if err != nil {
		return c.fail(err, start)
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.observe(OutcomeDecodeError, start)
		return errors.NewExternalAPIError("failed to decode "+c.name+" response", err)
	}

	c.observe(OutcomeSuccess, start)
	return nil
}

func (c *UpstreamClient) fetch(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	target := endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close upstream response body",
				ports.F("upstream", c.name),
				ports.F("error", closeErr.Error()))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &statusError{upstream: c.name, code: resp.StatusCode}
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
}

func (c *UpstreamClient) fail(err error, start time.Time) error {
	var statusErr *statusError
	switch {
	case stderrors.Is(err, gobreaker.ErrOpenState), stderrors.Is(err, gobreaker.ErrTooManyRequests):
		c.observe(OutcomeCircuitOpen, start)
		return errors.NewExternalAPIError(c.name+" is temporarily unavailable", err)
	case stderrors.As(err, &statusErr):
		c.observe(OutcomeHTTPError, start)
		return errors.NewExternalAPIError(statusErr.Error(), err)
	default:
		c.observe(OutcomeNetworkError, start)
		return errors.NewExternalAPIError("failed to call "+c.name, err)
	}
}

func (c *UpstreamClient) observe(outcome string, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveUpstream(c.name, outcome, time.Since(start))
	}
}

// StatusCode extracts the upstream HTTP status from err, or 0
func StatusCode(err error) int {
	var statusErr *statusError
	if stderrors.As(err, &statusErr) {
		return statusErr.code
	}
	return 0
}
