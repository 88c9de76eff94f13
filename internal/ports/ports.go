package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Lookup
	Geocoder         Geocoder
	WeatherProvider  WeatherProvider
	TimezoneProvider TimezoneProvider
	ReverseGeocoder  ReverseGeocoder

	// Dashboard
	SessionStore SessionStore

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	LookupMetrics  LookupMetrics
	HealthChecker  SystemHealthChecker
}
