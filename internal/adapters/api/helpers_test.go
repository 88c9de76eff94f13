package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
)

const testCookie = "weatherdash_session"

type dashboardUseCaseMock struct{ mock.Mock }

func (m *dashboardUseCaseMock) State(ctx context.Context, sessionID string) (*dashboard.State, error) {
	args := m.Called(ctx, sessionID)
	state, _ := args.Get(0).(*dashboard.State)
	return state, args.Error(1)
}

func (m *dashboardUseCaseMock) Search(ctx context.Context, sessionID, query string) (*dashboard.State, error) {
	args := m.Called(ctx, sessionID, query)
	state, _ := args.Get(0).(*dashboard.State)
	return state, args.Error(1)
}

func (m *dashboardUseCaseMock) Locate(ctx context.Context, sessionID string, request dashboard.LocateRequest) (*dashboard.State, error) {
	args := m.Called(ctx, sessionID, request)
	state, _ := args.Get(0).(*dashboard.State)
	return state, args.Error(1)
}

func (m *dashboardUseCaseMock) ToggleTheme(ctx context.Context, sessionID string) (*dashboard.State, error) {
	args := m.Called(ctx, sessionID)
	state, _ := args.Get(0).(*dashboard.State)
	return state, args.Error(1)
}

type weatherUseCaseMock struct{ mock.Mock }

func (m *weatherUseCaseMock) SearchByName(ctx context.Context, request weather.SearchRequest) (*weather.Bundle, error) {
	args := m.Called(ctx, request)
	bundle, _ := args.Get(0).(*weather.Bundle)
	return bundle, args.Error(1)
}

func (m *weatherUseCaseMock) SearchByCoordinates(ctx context.Context, request weather.CoordinatesRequest) (*weather.Bundle, error) {
	args := m.Called(ctx, request)
	bundle, _ := args.Get(0).(*weather.Bundle)
	return bundle, args.Error(1)
}

type testServer struct {
	server    *HTTPServerAdapter
	dashboard *dashboardUseCaseMock
	weather   *weatherUseCaseMock
	health    *mocks.SystemHealthChecker
	registry  *prometheus.Registry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := mocks.NewLogger(t)
	for n := 0; n <= 4; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		logger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		logger.EXPECT().Info(mock.Anything, fields...).Maybe()
		logger.EXPECT().Error(mock.Anything, fields...).Maybe()
	}

	ts := &testServer{
		dashboard: &dashboardUseCaseMock{},
		weather:   &weatherUseCaseMock{},
		health:    mocks.NewSystemHealthChecker(t),
		registry:  prometheus.NewRegistry(),
	}
	t.Cleanup(func() {
		ts.dashboard.AssertExpectations(t)
		ts.weather.AssertExpectations(t)
	})

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:           ports.ServerConfig{Port: 0},
		Session:          ports.SessionConfig{TTL: time.Hour, CookieName: testCookie},
		DashboardUseCase: ts.dashboard,
		WeatherUseCase:   ts.weather,
		HealthChecker:    ts.health,
		Gatherer:         ts.registry,
		Logger:           logger,
	})
	require.NoError(t, err)
	ts.server = server
	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ts.server.GetRouter().ServeHTTP(w, req)
	return w
}

func postForm(path string, form url.Values, session string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: session})
	}
	return req
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}
