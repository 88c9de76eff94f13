// Package dashboard owns the per-session view state of the weather dashboard.
//
// Every action that starts a lookup takes a fresh generation from the session
// store. The outcome is written back only while that generation is still the
// latest one, so a slow lookup can never overwrite the result of a newer action.
// The theme lives beside the state in the store and is never written by a lookup.
package dashboard

import (
	"context"
	"encoding/json"
	"strings"

	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// WeatherLookup is the part of the weather use case the dashboard drives
type WeatherLookup interface {
	SearchByName(ctx context.Context, request weather.SearchRequest) (*weather.Bundle, error)
	SearchByCoordinates(ctx context.Context, request weather.CoordinatesRequest) (*weather.Bundle, error)
}

type UseCase struct {
	lookup  WeatherLookup
	store   ports.SessionStore
	config  ports.ConfigProvider
	logger  ports.Logger
	metrics ports.LookupMetrics
}

type UseCaseDependencies struct {
	Lookup  WeatherLookup
	Store   ports.SessionStore
	Config  ports.ConfigProvider
	Logger  ports.Logger
	Metrics ports.LookupMetrics
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Lookup == nil {
		return nil, errors.NewValidationError("weather lookup is required")
	}
	if deps.Store == nil {
		return nil, errors.NewValidationError("session store is required")
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

	return &UseCase{
		lookup:  deps.Lookup,
		store:   deps.Store,
		config:  deps.Config,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}, nil
}

// State returns the session's current view state. Unknown sessions get an empty state.
func (uc *UseCase) State(ctx context.Context, sessionID string) (*State, error) {
	return uc.load(ctx, sessionID)
}

// Search looks up the weather for a place name. A blank query leaves the state untouched.
func (uc *UseCase) Search(ctx context.Context, sessionID, query string) (*State, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return uc.load(ctx, sessionID)
	}

	return uc.run(ctx, sessionID, weather.FlowSearch,
		func(s *State) { s.Query = query },
		func(ctx context.Context) (*weather.Bundle, error) {
			return uc.lookup.SearchByName(ctx, weather.SearchRequest{Query: query})
		})
}

// Locate looks up the weather at the device position, or records why the
// browser could not provide one. The search box is cleared either way.
func (uc *UseCase) Locate(ctx context.Context, sessionID string, request LocateRequest) (*State, error) {
	clearQuery := func(s *State) { s.Query = "" }

	if failure := request.failureError(); failure != nil {
		return uc.run(ctx, sessionID, weather.FlowGeolocation, clearQuery,
			func(context.Context) (*weather.Bundle, error) { return nil, failure })
	}

	return uc.run(ctx, sessionID, weather.FlowGeolocation, clearQuery,
		func(ctx context.Context) (*weather.Bundle, error) {
			return uc.lookup.SearchByCoordinates(ctx, weather.CoordinatesRequest{
				Latitude:  request.Latitude,
				Longitude: request.Longitude,
			})
		})
}

// ToggleTheme flips between the light and dark palette. It takes no generation
// and leaves the lookup state alone, so an in-flight lookup stays current.
func (uc *UseCase) ToggleTheme(ctx context.Context, sessionID string) (*State, error) {
	dark, err := uc.store.ToggleDarkMode(ctx, sessionID, uc.config.GetSessionConfig().TTL)
	if err != nil {
		return nil, errors.NewSessionError("failed to toggle theme", err)
	}

	uc.logger.Debug("Theme toggled", ports.F("session_id", sessionID), ports.F("dark_mode", dark))
	return uc.load(ctx, sessionID)
}

// run executes one lookup action under a new generation
func (uc *UseCase) run(
	ctx context.Context,
	sessionID string,
	flow string,
	prepare func(*State),
	fetch func(context.Context) (*weather.Bundle, error),
) (result *State, err error) {
	ttl := uc.config.GetSessionConfig().TTL

	generation, err := uc.store.NextGeneration(ctx, sessionID, ttl)
	if err != nil {
		return nil, errors.NewSessionError("failed to start dashboard action", err)
	}

	state, err := uc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if prepare != nil {
		prepare(state)
	}
	state.Loading = true
	state.Error = ""
	state.Generation = generation
	if _, err := uc.saveIfCurrent(ctx, sessionID, generation, state); err != nil {
		return nil, err
	}

	var (
		bundle   *weather.Bundle
		fetchErr error
	)

	// The outcome is written even when the request context is gone.
	defer func() {
		result, err = uc.complete(context.WithoutCancel(ctx), sessionID, flow, generation, bundle, fetchErr)
	}()

	bundle, fetchErr = fetch(ctx)
	return result, err
}

// complete writes the outcome of an action if it still owns the session
func (uc *UseCase) complete(
	ctx context.Context,
	sessionID string,
	flow string,
	generation uint64,
	bundle *weather.Bundle,
	fetchErr error,
) (*State, error) {
	state, err := uc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Loading = false
	state.Generation = generation
	if fetchErr != nil {
		// the previous bundle stays on screen
		state.Error = UserMessage(flow, fetchErr)
		uc.logger.Warn("Dashboard action failed",
			ports.F("session_id", sessionID),
			ports.F("flow", flow),
			ports.F("error", fetchErr.Error()))
	} else {
		current := bundle.Current
		state.Current = &current
		state.Forecast = bundle.Forecast
		if state.Forecast == nil {
			state.Forecast = []forecast.DailySummary{}
		}
		state.Error = ""
	}

	saved, err := uc.saveIfCurrent(ctx, sessionID, generation, state)
	if err != nil {
		return nil, err
	}
	if !saved {
		uc.metrics.RecordStaleResult(flow)
		uc.logger.Info("Discarded stale dashboard result",
			ports.F("session_id", sessionID),
			ports.F("flow", flow),
			ports.F("generation", generation))
		return uc.load(ctx, sessionID)
	}

	return state, nil
}

func (uc *UseCase) load(ctx context.Context, sessionID string) (*State, error) {
	state, err := uc.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	dark, err := uc.store.DarkMode(ctx, sessionID)
	if err != nil {
		return nil, errors.NewSessionError("failed to load theme", err)
	}
	state.DarkMode = dark
	return state, nil
}

func (uc *UseCase) loadState(ctx context.Context, sessionID string) (*State, error) {
	data, err := uc.store.Load(ctx, sessionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return &State{Forecast: []forecast.DailySummary{}}, nil
		}
		return nil, errors.NewSessionError("failed to load dashboard state", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		uc.logger.Warn("Discarding unreadable dashboard state",
			ports.F("session_id", sessionID),
			ports.F("error", err.Error()))
		return &State{Forecast: []forecast.DailySummary{}}, nil
	}
	if state.Forecast == nil {
		state.Forecast = []forecast.DailySummary{}
	}
	return &state, nil
}

func (uc *UseCase) saveIfCurrent(ctx context.Context, sessionID string, generation uint64, state *State) (bool, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return false, errors.NewSessionError("failed to encode dashboard state", err)
	}
	saved, err := uc.store.SaveIfCurrent(ctx, sessionID, generation, data, uc.config.GetSessionConfig().TTL)
	if err != nil {
		return false, errors.NewSessionError("failed to save dashboard state", err)
	}
	return saved, nil
}
