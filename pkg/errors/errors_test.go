package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("status 500")
				return NewForecastFetchError(cause)
			},
			expected: "FORECAST_FETCH_ERROR: failed to fetch forecast (caused by: status 500)",
		},
		{
			name: "LocationNotFound",
			setup: func() *AppError {
				return NewLocationNotFoundError("Zzzzz")
			},
			expected: `LOCATION_NOT_FOUND: location not found: "Zzzzz"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewWeatherFetchError(cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, NewNotFoundError("missing").Unwrap())
}

func TestTypeOf_WrappedError(t *testing.T) {
	inner := NewTimezoneFetchError(fmt.Errorf("status 503"))
	wrapped := fmt.Errorf("search by name: %w", inner)

	assert.Equal(t, TimezoneFetchError, TypeOf(wrapped))
	assert.True(t, IsUpstreamError(wrapped))
	assert.False(t, IsLocationNotFoundError(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
}

func TestErrorType_IsUpstream(t *testing.T) {
	upstream := []ErrorType{WeatherFetchError, ForecastFetchError, TimezoneFetchError, ReverseGeocodeError, ExternalAPIError}
	for _, et := range upstream {
		assert.True(t, et.IsUpstream(), et.String())
	}

	local := []ErrorType{ValidationError, LocationNotFoundError, GeolocationDeniedError, GeolocationUnavailableError, SessionError}
	for _, et := range local {
		assert.False(t, et.IsUpstream(), et.String())
	}
}

func TestHelpers(t *testing.T) {
	assert.True(t, IsLocationNotFoundError(NewLocationNotFoundError("x")))
	assert.True(t, IsValidationError(NewValidationError("bad")))
	assert.True(t, IsNotFoundError(NewNotFoundError("cache miss")))
	assert.True(t, IsSessionError(NewSessionError("store down", nil)))
	assert.True(t, IsConfigurationError(NewConfigurationError("bad config", nil)))
	assert.False(t, IsValidationError(nil))
}
