package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"weatherdash.app/internal/adapters/api"
	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
)

const sessionSweepInterval = time.Minute

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	weatherUseCase   *weather.UseCase
	dashboardUseCase *dashboard.UseCase

	// Adapters
	httpAdapter *api.HTTPServerAdapter

	// Infrastructure
	ports *ports.ApplicationPorts
}

func NewApplication(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}
	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Geocoder:         a.ports.Geocoder,
		WeatherProvider:  a.ports.WeatherProvider,
		TimezoneProvider: a.ports.TimezoneProvider,
		ReverseGeocoder:  a.ports.ReverseGeocoder,
		Config:           a.ports.ConfigProvider,
		Logger:           a.ports.Logger,
		Metrics:          a.ports.LookupMetrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	dashboardUseCase, err := dashboard.NewUseCase(dashboard.UseCaseDependencies{
		Lookup:  weatherUseCase,
		Store:   a.ports.SessionStore,
		Config:  a.ports.ConfigProvider,
		Logger:  a.ports.Logger,
		Metrics: a.ports.LookupMetrics,
	})
	if err != nil {
		return fmt.Errorf("create dashboard use case: %w", err)
	}
	a.dashboardUseCase = dashboardUseCase

	return nil
}

func (a *Application) initializeAdapters() error {
	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config:           a.ports.ConfigProvider.GetServerConfig(),
		Session:          a.ports.ConfigProvider.GetSessionConfig(),
		DashboardUseCase: a.dashboardUseCase,
		WeatherUseCase:   a.weatherUseCase,
		HealthChecker:    a.ports.HealthChecker,
		Gatherer:         a.deps.Registry(),
		Logger:           a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpAdapter = httpAdapter
	return nil
}

// Start serves HTTP and runs background housekeeping until ctx is canceled
func (a *Application) Start(ctx context.Context) error {
	a.ports.Logger.Info("Starting application",
		ports.F("port", a.config.Server.Port),
		ports.F("sessionStore", a.config.Session.Store.String()))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.httpAdapter.Start(ctx)
	})

	if store, ok := a.ports.SessionStore.(*external.MemorySessionStore); ok {
		g.Go(func() error {
			a.sweepSessions(ctx, store)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// sweepSessions drops expired in-memory sessions; Redis expires keys itself
func (a *Application) sweepSessions(ctx context.Context, store *external.MemorySessionStore) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := store.Sweep(); removed > 0 {
				a.ports.Logger.Debug("Expired sessions removed", ports.F("count", removed))
			}
		}
	}
}

// Shutdown releases resources held by the dependency container
func (a *Application) Shutdown() error {
	a.ports.Logger.Info("Shutting down application")
	if err := a.deps.Cleanup(); err != nil {
		return fmt.Errorf("cleanup dependencies: %w", err)
	}
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.httpAdapter.GetRouter()
}
