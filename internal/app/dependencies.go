package app

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"
	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

// Upstream names used in logs, metrics and health details
const (
	upstreamOpenWeatherMap = "openweathermap"
	upstreamTimezoneDB     = "timezonedb"
	upstreamNominatim      = "nominatim"
)

type DependencyContainer struct {
	config     *config.Config
	registry   *prometheus.Registry
	metrics    *infrastructure.PrometheusMetrics
	upstreams  []*external.UpstreamClient
	store      ports.SessionStore
	fileLogger *infrastructure.FileLoggerAdapter
	ports      *ports.ApplicationPorts
}

// DependencyOptions overrides pieces of the container, mainly for tests
type DependencyOptions struct {
	HTTPClient external.HTTPClient
	LogOutput  io.Writer
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:   cfg,
		registry: prometheus.NewRegistry(),
	}
	container.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	container.metrics = infrastructure.NewPrometheusMetrics(container.registry)

	logger, err := container.initializeLogger(opts.LogOutput)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	if err := container.initializePorts(logger, opts.HTTPClient); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeLogger(output io.Writer) (ports.Logger, error) {
	if output == nil {
		output = os.Stderr
	}
	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(infrastructure.NewTextLogger(output, c.config.Log.Level))

	if c.config.Log.FilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Log.FilePath, c.config.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("create file logger: %w", err)
		}
		c.fileLogger = fileLogger
		logger = infrastructure.NewMultiLogger(logger, fileLogger)
		logger.Info("File logging enabled", ports.F("path", c.config.Log.FilePath))
	}

	return logger, nil
}

func (c *DependencyContainer) newUpstreamClient(name string, httpClient external.HTTPClient, logger ports.Logger, tune func(*external.UpstreamClientParams)) (*external.UpstreamClient, error) {
	params := external.UpstreamClientParams{
		Name:             name,
		HTTPClient:       httpClient,
		Timeout:          c.config.Upstream.Timeout(),
		MaxFailures:      c.config.Upstream.BreakerMaxFailures,
		OpenTimeout:      c.config.Upstream.OpenTimeout(),
		HalfOpenRequests: c.config.Upstream.BreakerHalfOpenReqs,
		Observer:         c.metrics,
		Logger:           logger,
	}
	if tune != nil {
		tune(&params)
	}

	client, err := external.NewUpstreamClient(params)
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", name, err)
	}
	c.upstreams = append(c.upstreams, client)
	return client, nil
}

func (c *DependencyContainer) initializePorts(logger ports.Logger, httpClient external.HTTPClient) error {
	owmClient, err := c.newUpstreamClient(upstreamOpenWeatherMap, httpClient, logger, nil)
	if err != nil {
		return err
	}
	tzClient, err := c.newUpstreamClient(upstreamTimezoneDB, httpClient, logger, nil)
	if err != nil {
		return err
	}
	nominatimCfg := c.config.Nominatim
	nominatimClient, err := c.newUpstreamClient(upstreamNominatim, httpClient, logger, func(p *external.UpstreamClientParams) {
		p.UserAgent = nominatimCfg.UserAgent
		p.Limiter = rate.NewLimiter(rate.Limit(nominatimCfg.RateLimit), nominatimCfg.Burst)
	})
	if err != nil {
		return err
	}

	openWeatherMap, err := external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:      c.config.OpenWeatherMap.APIKey,
		BaseURL:     c.config.OpenWeatherMap.BaseURL,
		Language:    c.config.OpenWeatherMap.Language,
		SampleCount: c.config.OpenWeatherMap.SampleCount,
		Client:      owmClient,
	})
	if err != nil {
		return fmt.Errorf("create OpenWeatherMap provider: %w", err)
	}

	timezoneDB, err := external.NewTimezoneDBProviderAdapter(external.TimezoneDBProviderParams{
		APIKey:  c.config.TimezoneDB.APIKey,
		BaseURL: c.config.TimezoneDB.BaseURL,
		Client:  tzClient,
	})
	if err != nil {
		return fmt.Errorf("create TimezoneDB provider: %w", err)
	}

	nominatim, err := external.NewNominatimProviderAdapter(external.NominatimProviderParams{
		BaseURL:  nominatimCfg.BaseURL,
		Language: nominatimCfg.Language,
		Client:   nominatimClient,
	})
	if err != nil {
		return fmt.Errorf("create Nominatim provider: %w", err)
	}

	store, err := external.NewSessionStoreFactory().CreateSessionStore(&c.config.Session)
	if err != nil {
		return fmt.Errorf("create session store: %w", err)
	}
	c.store = store
	logger.Info("Session store initialized",
		ports.F("type", c.config.Session.Store.String()),
		ports.F("ttl", c.config.Session.TTL().String()))

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	reporters := make([]infrastructure.BreakerReporter, 0, len(c.upstreams))
	for _, upstream := range c.upstreams {
		reporters = append(reporters, upstream)
	}
	healthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		SessionChecker:  infrastructure.NewSessionStoreHealthChecker(store, c.config.Session.Store.String()),
		UpstreamChecker: infrastructure.NewUpstreamHealthChecker(reporters...),
		ConfigProvider:  configProvider,
	})

	c.ports = &ports.ApplicationPorts{
		Geocoder:         openWeatherMap,
		WeatherProvider:  external.NewWeatherProviderLoggingDecorator(openWeatherMap, logger),
		TimezoneProvider: timezoneDB,
		ReverseGeocoder:  nominatim,
		SessionStore:     store,
		ConfigProvider:   configProvider,
		Logger:           logger,
		LookupMetrics:    c.metrics,
		HealthChecker:    healthChecker,
	}

	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Registry returns the Prometheus registry served on /metrics
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

// Cleanup releases the session store connection and the log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	if closer, ok := c.store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			firstErr = err
		}
	}
	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
