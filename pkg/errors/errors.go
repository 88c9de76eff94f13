package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to input and lookup rules
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeLocationNotFound
	ErrorTypeGeolocationUnavailable
	ErrorTypeGeolocationDenied

	// Upstream Errors - one per collaborator called during a lookup
	ErrorTypeWeatherFetch
	ErrorTypeForecastFetch
	ErrorTypeTimezoneFetch
	ErrorTypeReverseGeocode
	ErrorTypeExternalAPI

	// Infrastructure/Configuration Errors
	ErrorTypeSession
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeLocationNotFound:
		return "LOCATION_NOT_FOUND"
	case ErrorTypeGeolocationUnavailable:
		return "GEOLOCATION_UNAVAILABLE"
	case ErrorTypeGeolocationDenied:
		return "GEOLOCATION_DENIED"
	case ErrorTypeWeatherFetch:
		return "WEATHER_FETCH_ERROR"
	case ErrorTypeForecastFetch:
		return "FORECAST_FETCH_ERROR"
	case ErrorTypeTimezoneFetch:
		return "TIMEZONE_FETCH_ERROR"
	case ErrorTypeReverseGeocode:
		return "REVERSE_GEOCODE_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeSession:
		return "SESSION_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// IsUpstream reports whether the type describes a failed call to an upstream API
func (e ErrorType) IsUpstream() bool {
	switch e {
	case ErrorTypeWeatherFetch, ErrorTypeForecastFetch, ErrorTypeTimezoneFetch,
		ErrorTypeReverseGeocode, ErrorTypeExternalAPI:
		return true
	default:
		return false
	}
}

// Short aliases used across handlers and tests
const (
	ValidationError             = ErrorTypeValidation
	NotFoundError               = ErrorTypeNotFound
	LocationNotFoundError       = ErrorTypeLocationNotFound
	GeolocationUnavailableError = ErrorTypeGeolocationUnavailable
	GeolocationDeniedError      = ErrorTypeGeolocationDenied
	WeatherFetchError           = ErrorTypeWeatherFetch
	ForecastFetchError          = ErrorTypeForecastFetch
	TimezoneFetchError          = ErrorTypeTimezoneFetch
	ReverseGeocodeError         = ErrorTypeReverseGeocode
	ExternalAPIError            = ErrorTypeExternalAPI
	SessionError                = ErrorTypeSession
	ConfigurationError          = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewLocationNotFoundError(query string) *AppError {
	return New(LocationNotFoundError, fmt.Sprintf("location not found: %q", query))
}

func NewGeolocationUnavailableError() *AppError {
	return New(GeolocationUnavailableError, "geolocation is not supported by the client")
}

func NewGeolocationDeniedError() *AppError {
	return New(GeolocationDeniedError, "geolocation permission was denied")
}

// Upstream Error Constructors
func NewWeatherFetchError(cause error) *AppError {
	return Wrap(WeatherFetchError, "failed to fetch current weather", cause)
}

func NewForecastFetchError(cause error) *AppError {
	return Wrap(ForecastFetchError, "failed to fetch forecast", cause)
}

func NewTimezoneFetchError(cause error) *AppError {
	return Wrap(TimezoneFetchError, "failed to fetch local time", cause)
}

func NewReverseGeocodeError(cause error) *AppError {
	return Wrap(ReverseGeocodeError, "failed to reverse geocode coordinates", cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

// Infrastructure/Configuration Error Constructors
func NewSessionError(message string, cause error) *AppError {
	return Wrap(SessionError, message, cause)
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the outermost AppError in the chain
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsLocationNotFoundError(err error) bool {
	return TypeOf(err) == LocationNotFoundError
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsUpstreamError(err error) bool {
	return TypeOf(err).IsUpstream()
}

func IsSessionError(err error) bool {
	return TypeOf(err) == SessionError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
