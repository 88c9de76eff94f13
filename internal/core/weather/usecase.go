package weather

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type UseCase struct {
	geocoder         ports.Geocoder
	weatherProvider  ports.WeatherProvider
	timezoneProvider ports.TimezoneProvider
	reverseGeocoder  ports.ReverseGeocoder
	config           ports.ConfigProvider
	logger           ports.Logger
	metrics          ports.LookupMetrics
	now              func() time.Time
}

type UseCaseDependencies struct {
	Geocoder         ports.Geocoder
	WeatherProvider  ports.WeatherProvider
	TimezoneProvider ports.TimezoneProvider
	ReverseGeocoder  ports.ReverseGeocoder
	Config           ports.ConfigProvider
	Logger           ports.Logger
	Metrics          ports.LookupMetrics
	Now              func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoder is required")
	}
	if deps.WeatherProvider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.TimezoneProvider == nil {
		return nil, errors.NewValidationError("timezone provider is required")
	}
	if deps.ReverseGeocoder == nil {
		return nil, errors.NewValidationError("reverse geocoder is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &UseCase{
		geocoder:         deps.Geocoder,
		weatherProvider:  deps.WeatherProvider,
		timezoneProvider: deps.TimezoneProvider,
		reverseGeocoder:  deps.ReverseGeocoder,
		config:           deps.Config,
		logger:           deps.Logger,
		metrics:          deps.Metrics,
		now:              now,
	}, nil
}

// SearchByName resolves a place name and looks up its weather. Samples that
// fall on today's date are left out of the forecast.
func (uc *UseCase) SearchByName(ctx context.Context, request SearchRequest) (*Bundle, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid search request: " + err.Error())
	}

	request.NormalizeQuery()
	uc.logger.Debug("Searching weather by name", ports.F("query", request.Query))

	coord, err := uc.geocoder.Geocode(ctx, request.Query)
	if err != nil {
		if !errors.IsLocationNotFoundError(err) {
			err = errors.NewExternalAPIError("geocoding failed", err)
		}
		return nil, uc.fail(FlowSearch, "geocode", err, ports.F("query", request.Query))
	}

	bundle, err := uc.lookup(ctx, FlowSearch, Coordinate{Latitude: coord.Latitude, Longitude: coord.Longitude}, true)
	if err != nil {
		return nil, fmt.Errorf("search weather for %q: %w", request.Query, err)
	}
	return bundle, nil
}

// SearchByCoordinates looks up the weather at device coordinates
func (uc *UseCase) SearchByCoordinates(ctx context.Context, request CoordinatesRequest) (*Bundle, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid coordinates request: " + err.Error())
	}

	coord := request.Coordinate()
	uc.logger.Debug("Searching weather by coordinates",
		ports.F("lat", coord.Latitude),
		ports.F("lon", coord.Longitude))

	excludeToday := uc.config.GetLookupConfig().ExcludeTodayOnGeolocation
	bundle, err := uc.lookup(ctx, FlowGeolocation, coord, excludeToday)
	if err != nil {
		return nil, fmt.Errorf("search weather at %.4f,%.4f: %w", coord.Latitude, coord.Longitude, err)
	}
	return bundle, nil
}

// upstreamData collects the four responses a bundle is assembled from
type upstreamData struct {
	current   *ports.CurrentConditions
	samples   []ports.ForecastSample
	localTime *ports.LocalTime
	address   *ports.Address
}

func (uc *UseCase) lookup(ctx context.Context, flow string, coord Coordinate, excludeToday bool) (*Bundle, error) {
	cfg := uc.config.GetLookupConfig()
	point := ports.Coordinate{Latitude: coord.Latitude, Longitude: coord.Longitude}

	fetch := uc.fetchSequential
	if cfg.ParallelFetch {
		fetch = uc.fetchParallel
	}

	data, err := fetch(ctx, point)
	if err != nil {
		return nil, uc.fail(flow, "fetch", err,
			ports.F("lat", coord.Latitude),
			ports.F("lon", coord.Longitude))
	}

	localTime, err := FormatLocalTime(data.localTime.Formatted)
	if err != nil {
		return nil, uc.fail(flow, "format_local_time", errors.NewTimezoneFetchError(err))
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	bundle := &Bundle{
		Current:  uc.assembleCurrent(data, localTime),
		Forecast: forecast.Aggregate(toSamples(data.samples), uc.now().In(location), excludeToday),
	}

	uc.metrics.RecordLookup(flow, "success")
	uc.logger.Info("Weather lookup completed",
		ports.F("flow", flow),
		ports.F("city", bundle.Current.City),
		ports.F("temperature", bundle.Current.Temperature),
		ports.F("forecast_days", len(bundle.Forecast)))
	return bundle, nil
}

// fetchSequential calls the upstreams one after another, stopping at the first failure
func (uc *UseCase) fetchSequential(ctx context.Context, coord ports.Coordinate) (*upstreamData, error) {
	data := &upstreamData{}
	var err error

	if data.current, err = uc.fetchCurrent(ctx, coord); err != nil {
		return nil, err
	}
	if data.samples, err = uc.fetchForecast(ctx, coord); err != nil {
		return nil, err
	}
	if data.localTime, err = uc.fetchLocalTime(ctx, coord); err != nil {
		return nil, err
	}
	if data.address, err = uc.fetchAddress(ctx, coord); err != nil {
		return nil, err
	}
	return data, nil
}

// fetchParallel calls the upstreams concurrently. The first failure cancels the
// others and aborts the whole lookup.
func (uc *UseCase) fetchParallel(ctx context.Context, coord ports.Coordinate) (*upstreamData, error) {
	data := &upstreamData{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		data.current, err = uc.fetchCurrent(gCtx, coord)
		return err
	})
	g.Go(func() (err error) {
		data.samples, err = uc.fetchForecast(gCtx, coord)
		return err
	})
	g.Go(func() (err error) {
		data.localTime, err = uc.fetchLocalTime(gCtx, coord)
		return err
	})
	g.Go(func() (err error) {
		data.address, err = uc.fetchAddress(gCtx, coord)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

func (uc *UseCase) fetchCurrent(ctx context.Context, coord ports.Coordinate) (*ports.CurrentConditions, error) {
	current, err := uc.weatherProvider.GetCurrentWeather(ctx, coord)
	if err != nil {
		return nil, errors.NewWeatherFetchError(err)
	}
	return current, nil
}

func (uc *UseCase) fetchForecast(ctx context.Context, coord ports.Coordinate) ([]ports.ForecastSample, error) {
	samples, err := uc.weatherProvider.GetForecast(ctx, coord)
	if err != nil {
		return nil, errors.NewForecastFetchError(err)
	}
	return samples, nil
}

func (uc *UseCase) fetchLocalTime(ctx context.Context, coord ports.Coordinate) (*ports.LocalTime, error) {
	localTime, err := uc.timezoneProvider.GetLocalTime(ctx, coord)
	if err != nil {
		return nil, errors.NewTimezoneFetchError(err)
	}
	return localTime, nil
}

func (uc *UseCase) fetchAddress(ctx context.Context, coord ports.Coordinate) (*ports.Address, error) {
	address, err := uc.reverseGeocoder.ReverseGeocode(ctx, coord)
	if err != nil {
		return nil, errors.NewReverseGeocodeError(err)
	}
	return address, nil
}

func (uc *UseCase) assembleCurrent(data *upstreamData, localTime string) CurrentWeather {
	return CurrentWeather{
		City:         CityName(*data.address),
		Country:      data.address.Country,
		State:        data.address.State,
		Temperature:  data.current.Temperature,
		FeelsLike:    data.current.FeelsLike,
		Condition:    data.current.Description,
		Humidity:     data.current.Humidity,
		WindSpeedKmh: WindSpeedKmh(data.current.WindSpeed),
		VisibilityKm: VisibilityKm(data.current.VisibilityMeters),
		LocalTime:    localTime,
		Icon:         data.current.Description,
	}
}

// fail logs a lookup failure with its step and records it before handing the error back
func (uc *UseCase) fail(flow, step string, err error, fields ...ports.Field) error {
	outcome := errors.TypeOf(err).String()
	uc.metrics.RecordLookup(flow, outcome)

	logFields := append([]ports.Field{
		ports.F("flow", flow),
		ports.F("step", step),
		ports.F("error_type", outcome),
		ports.F("error", err.Error()),
	}, fields...)
	uc.logger.Error("Weather lookup failed", logFields...)
	return err
}

func toSamples(samples []ports.ForecastSample) []forecast.Sample {
	result := make([]forecast.Sample, len(samples))
	for i, s := range samples {
		result[i] = forecast.Sample{
			Time:        s.Time,
			TempMin:     s.TempMin,
			TempMax:     s.TempMax,
			Description: s.Description,
		}
	}
	return result
}
