package external

import (
	"context"
	"net/url"
	"strings"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// TimezoneDBProviderAdapter implements the TimezoneProvider port for TimezoneDB
type TimezoneDBProviderAdapter struct {
	apiKey  string
	baseURL string
	client  *UpstreamClient
}

// TimezoneDBProviderParams holds parameters for creating the TimezoneDB provider
type TimezoneDBProviderParams struct {
	APIKey  string
	BaseURL string
	Client  *UpstreamClient
}

// TimezoneDBResponse represents the get-time-zone response
type TimezoneDBResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	ZoneName  string `json:"zoneName"`
	Formatted string `json:"formatted"`
}

// NewTimezoneDBProviderAdapter creates a new TimezoneDB provider adapter
func NewTimezoneDBProviderAdapter(params TimezoneDBProviderParams) (*TimezoneDBProviderAdapter, error) {
	if params.APIKey == "" {
		return nil, errors.NewConfigurationError("TimezoneDB API key is required", nil)
	}
	if params.Client == nil {
		return nil, errors.NewValidationError("upstream client is required")
	}

	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.timezonedb.com"
	}

	return &TimezoneDBProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  params.Client,
	}, nil
}

// GetLocalTime returns the wall-clock time at coord as "YYYY-MM-DD HH:MM:SS"
func (p *TimezoneDBProviderAdapter) GetLocalTime(ctx context.Context, coord ports.Coordinate) (*ports.LocalTime, error) {
	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("format", "json")
	params.Set("by", "position")
	params.Set("lat", formatCoordinate(coord.Latitude))
	params.Set("lng", formatCoordinate(coord.Longitude))

	var apiResp TimezoneDBResponse
	if err := p.client.GetJSON(ctx, p.baseURL+"/v2.1/get-time-zone", params, &apiResp); err != nil {
		return nil, err
	}

	// TimezoneDB reports failures with a 200 and status FAILED
	if apiResp.Status != "" && apiResp.Status != "OK" {
		return nil, errors.NewExternalAPIError("TimezoneDB lookup failed: "+apiResp.Message, nil)
	}
	if apiResp.Formatted == "" {
		return nil, errors.NewExternalAPIError("TimezoneDB response has no formatted time", nil)
	}

	return &ports.LocalTime{
		Formatted: apiResp.Formatted,
		ZoneName:  apiResp.ZoneName,
	}, nil
}
