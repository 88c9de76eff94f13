package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

func TestServerOptions_Validate(t *testing.T) {
	valid := func() ServerOptions {
		return ServerOptions{
			Session:          ports.SessionConfig{TTL: time.Hour, CookieName: testCookie},
			DashboardUseCase: &dashboardUseCaseMock{},
			WeatherUseCase:   &weatherUseCaseMock{},
			HealthChecker:    mocks.NewSystemHealthChecker(t),
			Gatherer:         prometheus.NewRegistry(),
			Logger:           mocks.NewLogger(t),
		}
	}

	opts := valid()
	assert.NoError(t, opts.Validate())

	tests := map[string]func(*ServerOptions){
		"NoDashboard": func(o *ServerOptions) { o.DashboardUseCase = nil },
		"NoWeather":   func(o *ServerOptions) { o.WeatherUseCase = nil },
		"NoHealth":    func(o *ServerOptions) { o.HealthChecker = nil },
		"NoGatherer":  func(o *ServerOptions) { o.Gatherer = nil },
		"NoLogger":    func(o *ServerOptions) { o.Logger = nil },
		"NoCookie":    func(o *ServerOptions) { o.Session.CookieName = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			opts := valid()
			mutate(&opts)
			assert.True(t, errors.IsValidationError(opts.Validate()))
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		statuses   map[string]ports.HealthStatus
		statusCode int
		overall    string
	}{
		{
			name: "Healthy",
			statuses: map[string]ports.HealthStatus{
				"sessionStore": {Component: "sessionStore", Status: "healthy"},
				"upstreams":    {Component: "upstreams", Status: "healthy"},
			},
			statusCode: http.StatusOK,
			overall:    `"status":"healthy"`,
		},
		{
			name: "BreakerOpen",
			statuses: map[string]ports.HealthStatus{
				"sessionStore": {Component: "sessionStore", Status: "healthy"},
				"upstreams":    {Component: "upstreams", Status: "degraded"},
			},
			statusCode: http.StatusOK,
			overall:    `"status":"degraded"`,
		},
		{
			name: "StoreDown",
			statuses: map[string]ports.HealthStatus{
				"sessionStore": {Component: "sessionStore", Status: "unhealthy", Error: "connection refused"},
				"upstreams":    {Component: "upstreams", Status: "degraded"},
			},
			statusCode: http.StatusServiceUnavailable,
			overall:    `"status":"unhealthy"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.health.EXPECT().CheckAll(mock.Anything).Return(tt.statuses)

			w := ts.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))

			assert.Equal(t, tt.statusCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.overall)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "weatherdash_test_total", Help: "test"})
	ts.registry.MustRegister(counter)
	counter.Inc()

	w := ts.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "weatherdash_test_total 1")
}

func TestHandleError_UnknownError(t *testing.T) {
	ts := newTestServer(t)
	ts.weather.On("SearchByName", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	w := ts.do(httptest.NewRequest(http.MethodGet, "/api/weather?city=Natal", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestStart_ShutsDownOnCancel(t *testing.T) {
	ts := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- ts.server.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "28", formatNumber(28))
	assert.Equal(t, "28.4", formatNumber(28.4))
	assert.Equal(t, "-3.33", formatNumber(-3.3333))
}
