package dashboard

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const session = "session-1"

// fakeStore is a minimal SessionStore honouring generations
type fakeStore struct {
	mu   sync.Mutex
	gens map[string]uint64
	data map[string][]byte
	dark map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{gens: map[string]uint64{}, data: map[string][]byte{}, dark: map[string]bool{}}
}

func (s *fakeStore) NextGeneration(_ context.Context, id string, _ time.Duration) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[id]++
	return s.gens[id], nil
}

func (s *fakeStore) Load(_ context.Context, id string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[id]
	if !ok {
		return nil, errors.NewNotFoundError("no state")
	}
	return data, nil
}

func (s *fakeStore) ToggleDarkMode(_ context.Context, id string, _ time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark[id] = !s.dark[id]
	return s.dark[id], nil
}

func (s *fakeStore) DarkMode(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark[id], nil
}

func (s *fakeStore) SaveIfCurrent(_ context.Context, id string, generation uint64, state []byte, _ time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[id] != generation {
		return false, nil
	}
	s.data[id] = state
	return true, nil
}

func (s *fakeStore) Ping(context.Context) error { return nil }

// gatedStore lets a test hold a theme toggle or a state write at the store boundary
type gatedStore struct {
	*fakeStore
	beforeToggle func()
	beforeSave   func(call int)
	saves        int
}

func (s *gatedStore) ToggleDarkMode(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	if s.beforeToggle != nil {
		s.beforeToggle()
	}
	return s.fakeStore.ToggleDarkMode(ctx, id, ttl)
}

func (s *gatedStore) SaveIfCurrent(ctx context.Context, id string, generation uint64, state []byte, ttl time.Duration) (bool, error) {
	s.saves++
	if s.beforeSave != nil {
		s.beforeSave(s.saves)
	}
	return s.fakeStore.SaveIfCurrent(ctx, id, generation, state, ttl)
}

// fakeLookup answers lookups through swappable functions
type fakeLookup struct {
	byName   func(ctx context.Context, req weather.SearchRequest) (*weather.Bundle, error)
	byCoords func(ctx context.Context, req weather.CoordinatesRequest) (*weather.Bundle, error)
}

func (f *fakeLookup) SearchByName(ctx context.Context, req weather.SearchRequest) (*weather.Bundle, error) {
	return f.byName(ctx, req)
}

func (f *fakeLookup) SearchByCoordinates(ctx context.Context, req weather.CoordinatesRequest) (*weather.Bundle, error) {
	return f.byCoords(ctx, req)
}

func bundleFor(city string) *weather.Bundle {
	return &weather.Bundle{
		Current: weather.CurrentWeather{City: city, Country: "Brasil", Temperature: 22, Condition: "nublado"},
		Forecast: []forecast.DailySummary{
			{Date: "terça-feira", MinTemp: 10, MaxTemp: 22, Condition: "nublado", Icon: "nublado"},
		},
	}
}

func allowLogging(logger *mocks.Logger) {
	for n := 0; n <= 6; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		logger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		logger.EXPECT().Info(mock.Anything, fields...).Maybe()
		logger.EXPECT().Warn(mock.Anything, fields...).Maybe()
		logger.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
}

func newTestUseCase(t *testing.T, store ports.SessionStore, lookup WeatherLookup) (*UseCase, *mocks.LookupMetrics) {
	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetSessionConfig().Return(ports.SessionConfig{TTL: time.Hour, CookieName: "weatherdash_session"}).Maybe()
	logger := mocks.NewLogger(t)
	allowLogging(logger)
	metrics := mocks.NewLookupMetrics(t)

	uc, err := NewUseCase(UseCaseDependencies{
		Lookup:  lookup,
		Store:   store,
		Config:  config,
		Logger:  logger,
		Metrics: metrics,
	})
	require.NoError(t, err)
	return uc, metrics
}

func TestUseCase_Search_Success(t *testing.T) {
	lookup := &fakeLookup{byName: func(_ context.Context, req weather.SearchRequest) (*weather.Bundle, error) {
		return bundleFor(req.Query), nil
	}}
	uc, _ := newTestUseCase(t, newFakeStore(), lookup)

	state, err := uc.Search(context.Background(), session, " Florianópolis ")

	require.NoError(t, err)
	assert.Equal(t, "Florianópolis", state.Query)
	require.True(t, state.HasWeather())
	assert.Equal(t, "Florianópolis", state.Current.City)
	assert.Len(t, state.Forecast, 1)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	assert.Equal(t, uint64(1), state.Generation)

	stored, err := uc.State(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, state, stored)
}

func TestUseCase_Search_BlankQueryIsNoOp(t *testing.T) {
	store := mocks.NewSessionStore(t)
	store.EXPECT().Load(mock.Anything, session).Return(nil, errors.NewNotFoundError("no state"))
	store.EXPECT().DarkMode(mock.Anything, session).Return(false, nil)
	uc, _ := newTestUseCase(t, store, &fakeLookup{})

	state, err := uc.Search(context.Background(), session, "   ")

	require.NoError(t, err)
	assert.False(t, state.HasWeather())
	assert.False(t, state.Loading)
	assert.NotNil(t, state.Forecast)
}

func TestUseCase_Search_FailureKeepsPreviousBundle(t *testing.T) {
	fail := false
	lookup := &fakeLookup{byName: func(_ context.Context, req weather.SearchRequest) (*weather.Bundle, error) {
		if fail {
			return nil, fmt.Errorf("search weather for %q: %w", req.Query, errors.NewLocationNotFoundError(req.Query))
		}
		return bundleFor(req.Query), nil
	}}
	uc, _ := newTestUseCase(t, newFakeStore(), lookup)

	_, err := uc.Search(context.Background(), session, "Curitiba")
	require.NoError(t, err)

	fail = true
	state, err := uc.Search(context.Background(), session, "Zzzzz")

	require.NoError(t, err)
	assert.Equal(t, MessageSearchFailed, state.Error)
	assert.Equal(t, "Curitiba", state.Current.City)
	assert.Len(t, state.Forecast, 1)
	assert.False(t, state.Loading)
}

func TestUseCase_Locate(t *testing.T) {
	tests := []struct {
		name      string
		request   LocateRequest
		lookupErr error
		wantCity  string
		wantError string
	}{
		{
			name:     "Coordinates",
			request:  LocateRequest{Latitude: -27.59, Longitude: -48.55},
			wantCity: "-27.59,-48.55",
		},
		{
			name:      "LookupFailure",
			request:   LocateRequest{Latitude: -27.59, Longitude: -48.55},
			lookupErr: errors.NewReverseGeocodeError(fmt.Errorf("status 503")),
			wantError: MessageLocateFailed,
		},
		{
			name:      "Unavailable",
			request:   LocateRequest{Failure: GeolocationUnavailable},
			wantError: MessageGeolocationUnsupported,
		},
		{
			name:      "Denied",
			request:   LocateRequest{Failure: GeolocationDenied, Latitude: 1, Longitude: 1},
			wantError: MessageGeolocationDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			lookup := &fakeLookup{byCoords: func(_ context.Context, req weather.CoordinatesRequest) (*weather.Bundle, error) {
				calls++
				if tt.lookupErr != nil {
					return nil, tt.lookupErr
				}
				return bundleFor(fmt.Sprintf("%.2f,%.2f", req.Latitude, req.Longitude)), nil
			}}
			uc, _ := newTestUseCase(t, newFakeStore(), lookup)

			state, err := uc.Locate(context.Background(), session, tt.request)

			require.NoError(t, err)
			assert.False(t, state.Loading)
			assert.Equal(t, tt.wantError, state.Error)
			if tt.wantCity != "" {
				require.True(t, state.HasWeather())
				assert.Equal(t, tt.wantCity, state.Current.City)
			} else {
				assert.False(t, state.HasWeather())
			}
			if tt.request.Failure != "" {
				assert.Zero(t, calls)
			}
		})
	}
}

func TestUseCase_LoadingVisibleDuringLookup(t *testing.T) {
	var uc *UseCase
	var during *State
	lookup := &fakeLookup{byName: func(ctx context.Context, req weather.SearchRequest) (*weather.Bundle, error) {
		var err error
		during, err = uc.State(ctx, session)
		require.NoError(t, err)
		return bundleFor(req.Query), nil
	}}
	uc, _ = newTestUseCase(t, newFakeStore(), lookup)

	state, err := uc.Search(context.Background(), session, "Recife")

	require.NoError(t, err)
	require.NotNil(t, during)
	assert.True(t, during.Loading)
	assert.Equal(t, "Recife", during.Query)
	assert.False(t, state.Loading)
}

func TestUseCase_StaleResultIsDiscarded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	lookup := &fakeLookup{byName: func(_ context.Context, req weather.SearchRequest) (*weather.Bundle, error) {
		if req.Query == "Lenta" {
			close(entered)
			<-release
		}
		return bundleFor(req.Query), nil
	}}
	uc, metrics := newTestUseCase(t, newFakeStore(), lookup)
	metrics.EXPECT().RecordStaleResult(weather.FlowSearch).Once()

	var slow *State
	var slowErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		slow, slowErr = uc.Search(context.Background(), session, "Lenta")
	}()

	<-entered
	fast, err := uc.Search(context.Background(), session, "Rápida")
	require.NoError(t, err)
	assert.Equal(t, "Rápida", fast.Current.City)

	close(release)
	<-done

	require.NoError(t, slowErr)
	assert.Equal(t, "Rápida", slow.Current.City)

	final, err := uc.State(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, "Rápida", final.Current.City)
	assert.Equal(t, "Rápida", final.Query)
	assert.False(t, final.Loading)
	assert.Equal(t, uint64(2), final.Generation)
}

func TestUseCase_ToggleTheme(t *testing.T) {
	uc, _ := newTestUseCase(t, newFakeStore(), &fakeLookup{})

	state, err := uc.ToggleTheme(context.Background(), session)
	require.NoError(t, err)
	assert.True(t, state.DarkMode)

	state, err = uc.ToggleTheme(context.Background(), session)
	require.NoError(t, err)
	assert.False(t, state.DarkMode)
}

func TestUseCase_ToggleThemeDuringLookupKeepsBoth(t *testing.T) {
	var uc *UseCase
	lookup := &fakeLookup{byName: func(ctx context.Context, req weather.SearchRequest) (*weather.Bundle, error) {
		_, err := uc.ToggleTheme(ctx, session)
		require.NoError(t, err)
		return bundleFor(req.Query), nil
	}}
	uc, _ = newTestUseCase(t, newFakeStore(), lookup)

	state, err := uc.Search(context.Background(), session, "Natal")

	require.NoError(t, err)
	assert.True(t, state.DarkMode)
	assert.Equal(t, "Natal", state.Current.City)
}

func TestUseCase_ToggleHeldUntilLookupCompletes(t *testing.T) {
	lookupEntered := make(chan struct{})
	lookupRelease := make(chan struct{})
	toggleEntered := make(chan struct{})
	toggleRelease := make(chan struct{})

	store := &gatedStore{fakeStore: newFakeStore()}
	store.beforeToggle = func() {
		close(toggleEntered)
		<-toggleRelease
	}
	lookup := &fakeLookup{byName: func(_ context.Context, req weather.SearchRequest) (*weather.Bundle, error) {
		close(lookupEntered)
		<-lookupRelease
		return bundleFor(req.Query), nil
	}}
	uc, _ := newTestUseCase(t, store, lookup)

	searchDone := make(chan error)
	go func() {
		_, err := uc.Search(context.Background(), session, "Salvador")
		searchDone <- err
	}()
	<-lookupEntered

	toggleDone := make(chan error)
	go func() {
		_, err := uc.ToggleTheme(context.Background(), session)
		toggleDone <- err
	}()
	<-toggleEntered

	close(lookupRelease)
	require.NoError(t, <-searchDone)
	close(toggleRelease)
	require.NoError(t, <-toggleDone)

	final, err := uc.State(context.Background(), session)
	require.NoError(t, err)
	assert.False(t, final.Loading)
	require.True(t, final.HasWeather())
	assert.Equal(t, "Salvador", final.Current.City)
	assert.True(t, final.DarkMode)
}

func TestUseCase_ToggleWhileResultIsBeingWritten(t *testing.T) {
	saveEntered := make(chan struct{})
	saveRelease := make(chan struct{})

	store := &gatedStore{fakeStore: newFakeStore()}
	store.beforeSave = func(call int) {
		// call 1 marks loading, call 2 writes the result
		if call == 2 {
			close(saveEntered)
			<-saveRelease
		}
	}
	lookup := &fakeLookup{byName: func(_ context.Context, req weather.SearchRequest) (*weather.Bundle, error) {
		return bundleFor(req.Query), nil
	}}
	uc, _ := newTestUseCase(t, store, lookup)

	searchDone := make(chan error)
	go func() {
		_, err := uc.Search(context.Background(), session, "Belém")
		searchDone <- err
	}()
	<-saveEntered

	toggled, err := uc.ToggleTheme(context.Background(), session)
	require.NoError(t, err)
	assert.True(t, toggled.DarkMode)
	assert.True(t, toggled.Loading)

	close(saveRelease)
	require.NoError(t, <-searchDone)

	final, err := uc.State(context.Background(), session)
	require.NoError(t, err)
	assert.False(t, final.Loading)
	require.True(t, final.HasWeather())
	assert.Equal(t, "Belém", final.Current.City)
	assert.True(t, final.DarkMode)
}

func TestUseCase_ThemeStoreFailure(t *testing.T) {
	store := mocks.NewSessionStore(t)
	store.EXPECT().ToggleDarkMode(mock.Anything, session, time.Hour).Return(false, fmt.Errorf("connection refused"))
	uc, _ := newTestUseCase(t, store, &fakeLookup{})

	state, err := uc.ToggleTheme(context.Background(), session)

	assert.Nil(t, state)
	assert.True(t, errors.IsSessionError(err))
}

func TestUseCase_LocateClearsQuery(t *testing.T) {
	lookup := &fakeLookup{
		byName: func(_ context.Context, req weather.SearchRequest) (*weather.Bundle, error) {
			return bundleFor(req.Query), nil
		},
		byCoords: func(_ context.Context, _ weather.CoordinatesRequest) (*weather.Bundle, error) {
			return bundleFor("Maceió"), nil
		},
	}
	uc, _ := newTestUseCase(t, newFakeStore(), lookup)

	_, err := uc.Search(context.Background(), session, "Aracaju")
	require.NoError(t, err)

	state, err := uc.Locate(context.Background(), session, LocateRequest{Latitude: -9.66, Longitude: -35.73})
	require.NoError(t, err)
	assert.Empty(t, state.Query)
	assert.Equal(t, "Maceió", state.Current.City)

	_, err = uc.Search(context.Background(), session, "Aracaju")
	require.NoError(t, err)

	state, err = uc.Locate(context.Background(), session, LocateRequest{Failure: GeolocationDenied})
	require.NoError(t, err)
	assert.Empty(t, state.Query)
	assert.Equal(t, MessageGeolocationDenied, state.Error)
}

func TestUseCase_SessionStoreFailure(t *testing.T) {
	store := mocks.NewSessionStore(t)
	store.EXPECT().NextGeneration(mock.Anything, session, time.Hour).Return(uint64(0), fmt.Errorf("connection refused"))
	uc, _ := newTestUseCase(t, store, &fakeLookup{})

	state, err := uc.Search(context.Background(), session, "Manaus")

	assert.Nil(t, state)
	assert.True(t, errors.IsSessionError(err))
}

func TestUseCase_UnreadableStateStartsFresh(t *testing.T) {
	store := mocks.NewSessionStore(t)
	store.EXPECT().Load(mock.Anything, session).Return([]byte("{not json"), nil)
	store.EXPECT().DarkMode(mock.Anything, session).Return(false, nil)
	uc, _ := newTestUseCase(t, store, &fakeLookup{})

	state, err := uc.State(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, &State{Forecast: []forecast.DailySummary{}}, state)
}

func TestUserMessage(t *testing.T) {
	upstream := errors.NewWeatherFetchError(fmt.Errorf("timeout"))

	assert.Equal(t, MessageSearchFailed, UserMessage(weather.FlowSearch, upstream))
	assert.Equal(t, MessageLocateFailed, UserMessage(weather.FlowGeolocation, upstream))
	assert.Equal(t, MessageGeolocationUnsupported, UserMessage(weather.FlowGeolocation, errors.NewGeolocationUnavailableError()))
	assert.Equal(t, MessageGeolocationDenied, UserMessage(weather.FlowGeolocation, errors.NewGeolocationDeniedError()))
	assert.Equal(t, MessageSearchFailed, UserMessage(weather.FlowSearch, fmt.Errorf("wrapped: %w", errors.NewLocationNotFoundError("x"))))
}

func TestNewUseCase_Validation(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "weather lookup is required")
}
