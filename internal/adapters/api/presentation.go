package api

import (
	"embed"
	"fmt"
	"html/template"
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"weatherdash.app/internal/core/condition"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/weather"
)

//go:embed templates/*.html
var templateFS embed.FS

// PresentationHints are derived from the current conditions for rendering
type PresentationHints struct {
	Category     condition.Category     `json:"category"`
	Daytime      bool                   `json:"daytime"`
	Illustration condition.Illustration `json:"illustration"`
	Backdrop     string                 `json:"backdrop"`
}

// WeatherResponse represents the HTTP response for one lookup
type WeatherResponse struct {
	Current      weather.CurrentWeather  `json:"current"`
	Forecast     []forecast.DailySummary `json:"forecast"`
	Presentation PresentationHints       `json:"presentation"`
}

// DashboardResponse is the session state with hints for the current card, if any
type DashboardResponse struct {
	*dashboard.State
	Presentation *PresentationHints `json:"presentation,omitempty"`
}

// hintsFor resolves the illustration and backdrop for current conditions
func hintsFor(current *weather.CurrentWeather) PresentationHints {
	category, daytime, illustration := condition.Describe(current.Icon, current.LocalTime)
	return PresentationHints{
		Category:     category,
		Daytime:      daytime,
		Illustration: illustration,
		Backdrop:     condition.Backdrop(category),
	}
}

func newWeatherResponse(bundle *weather.Bundle) WeatherResponse {
	return WeatherResponse{
		Current:      bundle.Current,
		Forecast:     bundle.Forecast,
		Presentation: hintsFor(&bundle.Current),
	}
}

func newDashboardResponse(state *dashboard.State) DashboardResponse {
	resp := DashboardResponse{State: state}
	if state.HasWeather() {
		hints := hintsFor(state.Current)
		resp.Presentation = &hints
	}
	return resp
}

// detailTile is one of the four small cards under the current conditions
type detailTile struct {
	Icon  string
	Label string
	Value string
	Tone  string
}

// pageView is the data handed to the dashboard template
type pageView struct {
	State    *dashboard.State
	Hints    PresentationHints
	Details  []detailTile
	Backdrop string
}

func newPageView(state *dashboard.State) pageView {
	view := pageView{State: state, Backdrop: condition.Backdrop(condition.CategoryDefault)}
	if !state.HasWeather() {
		return view
	}

	view.Hints = hintsFor(state.Current)
	view.Backdrop = view.Hints.Backdrop
	current := state.Current
	view.Details = []detailTile{
		{Icon: "thermometer", Label: "Sensação", Value: fmt.Sprintf("%s°C", formatNumber(current.FeelsLike)), Tone: "text-orange-500"},
		{Icon: "droplets", Label: "Umidade", Value: fmt.Sprintf("%s%%", formatNumber(current.Humidity)), Tone: "text-blue-500"},
		{Icon: "wind", Label: "Vento", Value: fmt.Sprintf("%s km/h", formatNumber(current.WindSpeedKmh)), Tone: "text-green-500"},
		{Icon: "eye", Label: "Visibilidade", Value: fmt.Sprintf("%d km", current.VisibilityKm), Tone: "text-purple-500"},
	}
	return view
}

// formatNumber drops a trailing ".0" and keeps at most two decimals
func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%g", math.Round(v*100)/100)
}

func parseTemplates() (*template.Template, error) {
	titler := cases.Title(language.BrazilianPortuguese)
	funcs := template.FuncMap{
		"capitalize":   func(s string) string { return titler.String(s) },
		"forecastIcon": condition.ForecastIcon,
		"number":       formatNumber,
	}
	return template.New("dashboard").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
