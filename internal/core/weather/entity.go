package weather

import (
	"fmt"
	"math"
	"strings"
	"time"

	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/ports"
)

// Lookup flows, used for logging and metrics
const (
	FlowSearch      = "search"
	FlowGeolocation = "geolocation"
)

const (
	upstreamTimeLayout = "2006-01-02 15:04:05"
	localTimeLayout    = "02/01/2006, 15:04:05"
	msToKmh            = 3.6
)

// Coordinate represents a point on the globe in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// CurrentWeather represents the current conditions shown on the weather card
type CurrentWeather struct {
	City         string  `json:"city"`
	Country      string  `json:"country"`
	State        string  `json:"state,omitempty"`
	Temperature  float64 `json:"temp"`
	FeelsLike    float64 `json:"feels_like"`
	Condition    string  `json:"condition"`
	Humidity     float64 `json:"humidity"`
	WindSpeedKmh float64 `json:"windSpeed"`
	VisibilityKm int     `json:"visibility"`
	LocalTime    string  `json:"localTime"`
	Icon         string  `json:"icon"`
}

// Bundle is the complete result of one lookup
type Bundle struct {
	Current  CurrentWeather          `json:"current"`
	Forecast []forecast.DailySummary `json:"forecast"`
}

// SearchRequest represents a lookup by place name
type SearchRequest struct {
	Query string
}

// CoordinatesRequest represents a lookup by device coordinates
type CoordinatesRequest struct {
	Latitude  float64
	Longitude float64
}

// IsValid validates the search request
func (r *SearchRequest) IsValid() error {
	if strings.TrimSpace(r.Query) == "" {
		return fmt.Errorf("query cannot be empty")
	}
	return nil
}

// NormalizeQuery trims surrounding whitespace from the query
func (r *SearchRequest) NormalizeQuery() {
	r.Query = strings.TrimSpace(r.Query)
}

// IsValid validates the coordinates request
func (r *CoordinatesRequest) IsValid() error {
	return r.Coordinate().IsValid()
}

// Coordinate returns the requested point
func (r *CoordinatesRequest) Coordinate() Coordinate {
	return Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}

// IsValid validates the coordinate ranges
func (c Coordinate) IsValid() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// CityName picks the most specific settlement name, preferring town, then
// city, village and hamlet.
func CityName(addr ports.Address) string {
	for _, name := range []string{addr.Town, addr.City, addr.Village, addr.Hamlet} {
		if strings.TrimSpace(name) != "" {
			return name
		}
	}
	return ""
}

// FormatLocalTime converts "YYYY-MM-DD HH:MM:SS" into "DD/MM/YYYY, HH:MM:SS"
func FormatLocalTime(raw string) (string, error) {
	t, err := time.Parse(upstreamTimeLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("unexpected local time format %q: %w", raw, err)
	}
	return t.Format(localTimeLayout), nil
}

// VisibilityKm converts meters to whole kilometers, rounding halves up
func VisibilityKm(meters float64) int {
	return int(math.Floor(meters/1000 + 0.5))
}

// WindSpeedKmh converts meters per second to km/h with one decimal
func WindSpeedKmh(metersPerSecond float64) float64 {
	return math.Round(metersPerSecond*msToKmh*10) / 10
}

// String returns a string representation of the current weather
func (w *CurrentWeather) String() string {
	return fmt.Sprintf("%s: %.1f°C, %s (%s)", w.Location(), w.Temperature, w.Condition, w.LocalTime)
}

// Location renders "City, State, Country", skipping empty parts
func (w *CurrentWeather) Location() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{w.City, w.State, w.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
