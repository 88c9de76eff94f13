package ports

import (
	"context"
	"time"
)

// Coordinate is a latitude/longitude pair in decimal degrees
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// CurrentConditions represents the current weather at a coordinate
type CurrentConditions struct {
	Temperature      float64
	FeelsLike        float64
	Humidity         float64
	WindSpeed        float64 // meters per second
	VisibilityMeters float64
	Description      string
}

// ForecastSample represents one 3-hourly forecast entry
type ForecastSample struct {
	Time        time.Time
	TempMin     float64
	TempMax     float64
	Description string
}

// LocalTime represents the wall clock time at a coordinate
type LocalTime struct {
	Formatted string // "YYYY-MM-DD HH:MM:SS"
	ZoneName  string
}

// Address represents a reverse geocoded place
type Address struct {
	Town    string
	City    string
	Village string
	Hamlet  string
	State   string
	Country string
}

// Geocoder resolves a free-text place name to coordinates
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*Coordinate, error)
}

// WeatherProvider defines the contract for current conditions and forecast data
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, coord Coordinate) (*CurrentConditions, error)
	GetForecast(ctx context.Context, coord Coordinate) ([]ForecastSample, error)
	GetProviderName() string
}

// TimezoneProvider resolves the local time at a coordinate
type TimezoneProvider interface {
	GetLocalTime(ctx context.Context, coord Coordinate) (*LocalTime, error)
}

// ReverseGeocoder resolves coordinates to an address
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, coord Coordinate) (*Address, error)
}
