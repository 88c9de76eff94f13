// Package api provides the HTTP adapter: the server-rendered dashboard, its
// form actions, and a small JSON API over the same lookups.
package api

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const shutdownTimeout = 10 * time.Second

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	server           *http.Server
	config           ports.ServerConfig
	session          ports.SessionConfig
	dashboardUseCase DashboardUseCase
	weatherUseCase   WeatherUseCase
	healthChecker    ports.SystemHealthChecker
	logger           ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type DashboardUseCase interface {
	State(ctx context.Context, sessionID string) (*dashboard.State, error)
	Search(ctx context.Context, sessionID, query string) (*dashboard.State, error)
	Locate(ctx context.Context, sessionID string, request dashboard.LocateRequest) (*dashboard.State, error)
	ToggleTheme(ctx context.Context, sessionID string) (*dashboard.State, error)
}

type WeatherUseCase interface {
	SearchByName(ctx context.Context, request weather.SearchRequest) (*weather.Bundle, error)
	SearchByCoordinates(ctx context.Context, request weather.CoordinatesRequest) (*weather.Bundle, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ports.ServerConfig
	Session          ports.SessionConfig
	DashboardUseCase DashboardUseCase
	WeatherUseCase   WeatherUseCase
	HealthChecker    ports.SystemHealthChecker
	Gatherer         prometheus.Gatherer
	Logger           ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := registerValidations(); err != nil {
		return nil, fmt.Errorf("register validations: %w", err)
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	s := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		session:          opts.Session,
		dashboardUseCase: opts.DashboardUseCase,
		weatherUseCase:   opts.WeatherUseCase,
		healthChecker:    opts.HealthChecker,
		logger:           opts.Logger,
	}

	s.setupRoutes(opts.Gatherer)
	return s, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.DashboardUseCase == nil {
		return errors.NewValidationError("dashboard use case is required")
	}
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Gatherer == nil {
		return errors.NewValidationError("metrics gatherer is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	if opts.Session.CookieName == "" || opts.Session.TTL <= 0 {
		return errors.NewValidationError("session cookie name and TTL are required")
	}
	return nil
}

func (s *HTTPServerAdapter) setupRoutes(gatherer prometheus.Gatherer) {
	s.router.Use(s.requestLogger())

	page := s.router.Group("/", s.sessionMiddleware())
	{
		page.GET("/", s.showDashboard)
		page.POST("/search", s.search)
		page.POST("/locate", s.locate)
		page.POST("/theme", s.toggleTheme)
	}

	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/weather/coordinates", s.getWeatherByCoordinates)
		api.GET("/dashboard", s.sessionMiddleware(), s.getDashboard)
		api.GET("/health", s.getHealth)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// Start serves HTTP until ctx is canceled, then shuts down gracefully
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", ports.F("port", s.config.Port))
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("Shutting down HTTP server")
		return s.server.Shutdown(shutdownCtx)
	}
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

func (s *HTTPServerAdapter) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("HTTP request",
			ports.F("method", c.Request.Method),
			ports.F("path", c.FullPath()),
			ports.F("status", c.Writer.Status()),
			ports.F("duration_ms", time.Since(start).Milliseconds()))
	}
}
