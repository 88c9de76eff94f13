package external

import (
	"context"
	"net/url"
	"strings"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// NominatimProviderAdapter implements the ReverseGeocoder port for OpenStreetMap Nominatim.
// The public instance requires an identifying User-Agent and at most one request per
// second, both enforced by the upstream client it is built with.
type NominatimProviderAdapter struct {
	baseURL  string
	language string
	client   *UpstreamClient
}

// NominatimProviderParams holds parameters for creating the Nominatim provider
type NominatimProviderParams struct {
	BaseURL  string
	Language string
	Client   *UpstreamClient
}

// NominatimResponse represents the /reverse response
type NominatimResponse struct {
	Error   string `json:"error"`
	Address struct {
		Town    string `json:"town"`
		City    string `json:"city"`
		Village string `json:"village"`
		Hamlet  string `json:"hamlet"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

// NewNominatimProviderAdapter creates a new Nominatim provider adapter
func NewNominatimProviderAdapter(params NominatimProviderParams) (*NominatimProviderAdapter, error) {
	if params.Client == nil {
		return nil, errors.NewValidationError("upstream client is required")
	}

	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	language := params.Language
	if language == "" {
		language = "pt"
	}

	return &NominatimProviderAdapter{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
		client:   params.Client,
	}, nil
}

// ReverseGeocode returns the address components around coord
func (p *NominatimProviderAdapter) ReverseGeocode(ctx context.Context, coord ports.Coordinate) (*ports.Address, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", formatCoordinate(coord.Latitude))
	params.Set("lon", formatCoordinate(coord.Longitude))
	params.Set("accept-language", p.language)

	var apiResp NominatimResponse
	if err := p.client.GetJSON(ctx, p.baseURL+"/reverse", params, &apiResp); err != nil {
		return nil, err
	}
	if apiResp.Error != "" {
		return nil, errors.NewExternalAPIError("Nominatim reverse lookup failed: "+apiResp.Error, nil)
	}

	addr := apiResp.Address
	return &ports.Address{
		Town:    addr.Town,
		City:    addr.City,
		Village: addr.Village,
		Hamlet:  addr.Hamlet,
		State:   addr.State,
		Country: addr.Country,
	}, nil
}
