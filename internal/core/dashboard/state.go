package dashboard

import (
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/pkg/errors"
)

// User-facing messages, kept generic. Details go to the log.
const (
	MessageSearchFailed           = "Erro ao buscar dados meteorológicos"
	MessageLocateFailed           = "Erro ao obter localização"
	MessageGeolocationUnsupported = "Geolocalização não suportada pelo seu navegador"
	MessageGeolocationDenied      = "Erro ao acessar localização"
)

// State is everything the dashboard view renders for one session
type State struct {
	Query      string                  `json:"query"`
	Current    *weather.CurrentWeather `json:"current,omitempty"`
	Forecast   []forecast.DailySummary `json:"forecast"`
	Loading    bool                    `json:"loading"`
	Error      string                  `json:"error,omitempty"`
	// DarkMode is read from the store's theme on every load
	DarkMode   bool                    `json:"darkMode"`
	Generation uint64                  `json:"generation"`
}

// HasWeather reports whether a bundle has been loaded
func (s *State) HasWeather() bool {
	return s.Current != nil
}

// GeolocationFailure is reported by the browser instead of coordinates
type GeolocationFailure string

const (
	GeolocationUnavailable GeolocationFailure = "unavailable"
	GeolocationDenied      GeolocationFailure = "denied"
)

// LocateRequest carries either device coordinates or the reason they are missing.
// A non-empty Failure wins over coordinates.
type LocateRequest struct {
	Latitude  float64
	Longitude float64
	Failure   GeolocationFailure
}

// failureError maps a browser geolocation failure to its typed error
func (r *LocateRequest) failureError() error {
	switch r.Failure {
	case GeolocationUnavailable:
		return errors.NewGeolocationUnavailableError()
	case GeolocationDenied:
		return errors.NewGeolocationDeniedError()
	default:
		return nil
	}
}

// UserMessage turns a failed action into the message shown on the dashboard
func UserMessage(flow string, err error) string {
	switch errors.TypeOf(err) {
	case errors.GeolocationUnavailableError:
		return MessageGeolocationUnsupported
	case errors.GeolocationDeniedError:
		return MessageGeolocationDenied
	}
	if flow == weather.FlowGeolocation {
		return MessageLocateFailed
	}
	return MessageSearchFailed
}
