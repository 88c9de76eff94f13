package external

import (
	"context"
	"time"

	"weatherdash.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetCurrentWeather wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetCurrentWeather(ctx context.Context, coord ports.Coordinate) (*ports.CurrentConditions, error) {
	providerName := d.provider.GetProviderName()
	d.logger.Debug("Current weather request started",
		ports.F("provider", providerName),
		ports.F("lat", coord.Latitude),
		ports.F("lon", coord.Longitude),
		ports.F("event", "request"))

	startTime := time.Now()
	current, err := d.provider.GetCurrentWeather(ctx, coord)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Current weather request failed",
			ports.F("provider", providerName),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Current weather request completed",
		ports.F("provider", providerName),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("temperature", current.Temperature),
		ports.F("humidity", current.Humidity),
		ports.F("description", current.Description))

	return current, nil
}

// GetForecast wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetForecast(ctx context.Context, coord ports.Coordinate) ([]ports.ForecastSample, error) {
	providerName := d.provider.GetProviderName()
	d.logger.Debug("Forecast request started",
		ports.F("provider", providerName),
		ports.F("lat", coord.Latitude),
		ports.F("lon", coord.Longitude),
		ports.F("event", "request"))

	startTime := time.Now()
	samples, err := d.provider.GetForecast(ctx, coord)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Forecast request failed",
			ports.F("provider", providerName),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Forecast request completed",
		ports.F("provider", providerName),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("samples", len(samples)))

	return samples, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}
