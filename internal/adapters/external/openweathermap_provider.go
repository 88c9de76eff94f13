package external

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// OpenWeatherMapProviderAdapter implements the Geocoder and WeatherProvider ports for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey      string
	baseURL     string
	language    string
	sampleCount int
	client      *UpstreamClient
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey      string
	BaseURL     string
	Language    string
	SampleCount int
	Client      *UpstreamClient
}

type openWeatherMapGeocodeEntry struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

type openWeatherMapCondition struct {
	Description string `json:"description"`
}

// OpenWeatherMapCurrentResponse represents the /data/2.5/weather response
type OpenWeatherMapCurrentResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility float64                   `json:"visibility"`
	Weather    []openWeatherMapCondition `json:"weather"`
}

// OpenWeatherMapForecastResponse represents the /data/2.5/forecast response
type OpenWeatherMapForecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []openWeatherMapCondition `json:"weather"`
	} `json:"list"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) (*OpenWeatherMapProviderAdapter, error) {
	if params.APIKey == "" {
		return nil, errors.NewConfigurationError("OpenWeatherMap API key is required", nil)
	}
	if params.Client == nil {
		return nil, errors.NewValidationError("upstream client is required")
	}

	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org"
	}
	language := params.Language
	if language == "" {
		language = "pt_br"
	}
	sampleCount := params.SampleCount
	if sampleCount <= 0 {
		sampleCount = 40
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:      params.APIKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		language:    language,
		sampleCount: sampleCount,
		client:      params.Client,
	}, nil
}

// Geocode resolves a free-text place name to the first matching coordinate
func (p *OpenWeatherMapProviderAdapter) Geocode(ctx context.Context, query string) (*ports.Coordinate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.NewValidationError("query cannot be empty")
	}

	params := url.Values{}
	// city,state,country with state and country left blank
	params.Set("q", query+",,")
	params.Set("limit", "1")
	params.Set("appid", p.apiKey)

	var entries []openWeatherMapGeocodeEntry
	if err := p.client.GetJSON(ctx, p.baseURL+"/geo/1.0/direct", params, &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.NewLocationNotFoundError(query)
	}

	return &ports.Coordinate{Latitude: entries[0].Lat, Longitude: entries[0].Lon}, nil
}

// GetCurrentWeather retrieves the current conditions in metric units
func (p *OpenWeatherMapProviderAdapter) GetCurrentWeather(ctx context.Context, coord ports.Coordinate) (*ports.CurrentConditions, error) {
	var apiResp OpenWeatherMapCurrentResponse
	if err := p.client.GetJSON(ctx, p.baseURL+"/data/2.5/weather", p.pointQuery(coord), &apiResp); err != nil {
		return nil, err
	}
	if len(apiResp.Weather) == 0 {
		return nil, errors.NewExternalAPIError("OpenWeatherMap response has no weather entries", nil)
	}

	return &ports.CurrentConditions{
		Temperature:      apiResp.Main.Temp,
		FeelsLike:        apiResp.Main.FeelsLike,
		Humidity:         apiResp.Main.Humidity,
		WindSpeed:        apiResp.Wind.Speed,
		VisibilityMeters: apiResp.Visibility,
		Description:      apiResp.Weather[0].Description,
	}, nil
}

// GetForecast retrieves the 3-hourly forecast samples
func (p *OpenWeatherMapProviderAdapter) GetForecast(ctx context.Context, coord ports.Coordinate) ([]ports.ForecastSample, error) {
	params := p.pointQuery(coord)
	params.Set("cnt", strconv.Itoa(p.sampleCount))

	var apiResp OpenWeatherMapForecastResponse
	if err := p.client.GetJSON(ctx, p.baseURL+"/data/2.5/forecast", params, &apiResp); err != nil {
		return nil, err
	}

	samples := make([]ports.ForecastSample, 0, len(apiResp.List))
	for i, entry := range apiResp.List {
		if len(entry.Weather) == 0 {
			return nil, errors.NewExternalAPIError(fmt.Sprintf("OpenWeatherMap forecast entry %d has no weather", i), nil)
		}
		samples = append(samples, ports.ForecastSample{
			Time:        time.Unix(entry.Dt, 0).UTC(),
			TempMin:     entry.Main.TempMin,
			TempMax:     entry.Main.TempMax,
			Description: entry.Weather[0].Description,
		})
	}

	return samples, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

func (p *OpenWeatherMapProviderAdapter) pointQuery(coord ports.Coordinate) url.Values {
	params := url.Values{}
	params.Set("lat", formatCoordinate(coord.Latitude))
	params.Set("lon", formatCoordinate(coord.Longitude))
	params.Set("appid", p.apiKey)
	params.Set("units", "metric")
	params.Set("lang", p.language)
	return params
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
