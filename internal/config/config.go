package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/pkg/errors"
)

const (
	maxRedisDB           = 15
	maxPortNumber        = 65535
	maxForecastSamples   = 40
	maxSessionTTLMinutes = 10080
)

// Config represents the application configuration structure
type Config struct {
	Server         ServerConfig         `split_words:"true"`
	OpenWeatherMap OpenWeatherMapConfig `split_words:"true"`
	TimezoneDB     TimezoneDBConfig     `split_words:"true"`
	Nominatim      NominatimConfig      `split_words:"true"`
	Lookup         LookupConfig         `split_words:"true"`
	Upstream       UpstreamConfig       `split_words:"true"`
	Session        SessionConfig        `split_words:"true"`
	Log            LogConfig            `split_words:"true"`
}

type ServerConfig struct {
	Port         int  `envconfig:"SERVER_PORT" default:"8080"`
	SecureCookie bool `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
}

// OpenWeatherMapConfig covers geocoding, current conditions and the 5 day forecast
type OpenWeatherMapConfig struct {
	APIKey      string `envconfig:"API_KEY"`
	BaseURL     string `envconfig:"OPENWEATHERMAP_BASE_URL" default:"https://api.openweathermap.org"`
	Language    string `envconfig:"WEATHER_LANG" default:"pt_br"`
	SampleCount int    `envconfig:"FORECAST_SAMPLE_COUNT" default:"40"`
}

type TimezoneDBConfig struct {
	APIKey  string `envconfig:"API_KEY_HORA"`
	BaseURL string `envconfig:"TIMEZONEDB_BASE_URL" default:"https://api.timezonedb.com"`
}

type NominatimConfig struct {
	BaseURL   string  `envconfig:"NOMINATIM_BASE_URL" default:"https://nominatim.openstreetmap.org"`
	Language  string  `envconfig:"NOMINATIM_LANGUAGE" default:"pt"`
	UserAgent string  `envconfig:"NOMINATIM_USER_AGENT" default:"weatherdash/1.0"`
	RateLimit float64 `envconfig:"NOMINATIM_RATE_LIMIT" default:"1"`
	Burst     int     `envconfig:"NOMINATIM_BURST" default:"1"`
}

type LookupConfig struct {
	Timezone                  string `envconfig:"FORECAST_TIMEZONE" default:"America/Sao_Paulo"`
	ExcludeTodayOnGeolocation bool   `envconfig:"FORECAST_EXCLUDE_TODAY_ON_GEOLOCATION" default:"false"`
	ParallelFetch             bool   `envconfig:"LOOKUP_PARALLEL_FETCH" default:"false"`

	location *time.Location
}

// Location returns the zone forecast days are computed in
func (l LookupConfig) Location() *time.Location {
	if l.location == nil {
		return time.Local
	}
	return l.location
}

type UpstreamConfig struct {
	TimeoutSeconds      int `envconfig:"UPSTREAM_TIMEOUT_SECONDS" default:"10"`
	BreakerMaxFailures  int `envconfig:"UPSTREAM_BREAKER_MAX_FAILURES" default:"5"`
	BreakerOpenSeconds  int `envconfig:"UPSTREAM_BREAKER_OPEN_SECONDS" default:"30"`
	BreakerHalfOpenReqs int `envconfig:"UPSTREAM_BREAKER_HALF_OPEN_REQUESTS" default:"1"`
}

// Timeout returns the per request timeout. Zero means no timeout.
func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// OpenTimeout returns how long a tripped breaker rejects calls before probing again
func (u UpstreamConfig) OpenTimeout() time.Duration {
	return time.Duration(u.BreakerOpenSeconds) * time.Second
}

// SessionStoreType represents the backend holding dashboard sessions
type SessionStoreType int

const (
	SessionStoreTypeUnknown SessionStoreType = iota
	SessionStoreTypeMemory
	SessionStoreTypeRedis
)

// String returns the string representation of session store type
func (s SessionStoreType) String() string {
	switch s {
	case SessionStoreTypeMemory:
		return "memory"
	case SessionStoreTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the session store type is valid
func (s SessionStoreType) IsValid() bool {
	return s == SessionStoreTypeMemory || s == SessionStoreTypeRedis
}

// SessionStoreTypeFromString converts string to SessionStoreType enum
func SessionStoreTypeFromString(s string) SessionStoreType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return SessionStoreTypeMemory
	case "redis":
		return SessionStoreTypeRedis
	default:
		return SessionStoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *SessionStoreType) UnmarshalText(text []byte) error {
	*s = SessionStoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s SessionStoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type SessionConfig struct {
	Store      SessionStoreType `envconfig:"SESSION_STORE" default:"memory"`
	TTLMinutes int              `envconfig:"SESSION_TTL_MINUTES" default:"60"`
	CookieName string           `envconfig:"SESSION_COOKIE_NAME" default:"weatherdash_session"`
	Redis      RedisConfig      `split_words:"true"`
}

// TTL returns how long an idle session is kept
func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type LogConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH" default:""`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.OpenWeatherMap.Validate(); err != nil {
		return err
	}
	if err := c.TimezoneDB.Validate(); err != nil {
		return err
	}
	if err := c.Nominatim.Validate(); err != nil {
		return err
	}
	if err := c.Lookup.Validate(); err != nil {
		return err
	}
	if err := c.Upstream.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (o *OpenWeatherMapConfig) Validate() error {
	if o.APIKey == "" {
		return errors.NewConfigurationError("API_KEY must be set to an OpenWeatherMap key", nil)
	}
	if err := validateBaseURL("OPENWEATHERMAP_BASE_URL", o.BaseURL); err != nil {
		return err
	}
	if o.Language == "" {
		return errors.NewConfigurationError("WEATHER_LANG cannot be empty", nil)
	}
	if o.SampleCount < 1 || o.SampleCount > maxForecastSamples {
		return errors.NewConfigurationError("FORECAST_SAMPLE_COUNT must be between 1 and 40", nil)
	}
	return nil
}

func (t *TimezoneDBConfig) Validate() error {
	if t.APIKey == "" {
		return errors.NewConfigurationError("API_KEY_HORA must be set to a TimezoneDB key", nil)
	}
	return validateBaseURL("TIMEZONEDB_BASE_URL", t.BaseURL)
}

func (n *NominatimConfig) Validate() error {
	if err := validateBaseURL("NOMINATIM_BASE_URL", n.BaseURL); err != nil {
		return err
	}
	if strings.TrimSpace(n.UserAgent) == "" {
		return errors.NewConfigurationError("NOMINATIM_USER_AGENT cannot be empty", nil)
	}
	if n.RateLimit <= 0 {
		return errors.NewConfigurationError("NOMINATIM_RATE_LIMIT must be greater than 0", nil)
	}
	if n.Burst < 1 {
		return errors.NewConfigurationError("NOMINATIM_BURST must be at least 1", nil)
	}
	return nil
}

// Validate also resolves the forecast timezone
func (l *LookupConfig) Validate() error {
	location, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("FORECAST_TIMEZONE %q is not a known timezone", l.Timezone), err)
	}
	l.location = location
	return nil
}

func (u *UpstreamConfig) Validate() error {
	if u.TimeoutSeconds < 0 {
		return errors.NewConfigurationError("UPSTREAM_TIMEOUT_SECONDS cannot be negative", nil)
	}
	if u.BreakerMaxFailures < 1 {
		return errors.NewConfigurationError("UPSTREAM_BREAKER_MAX_FAILURES must be at least 1", nil)
	}
	if u.BreakerOpenSeconds < 1 {
		return errors.NewConfigurationError("UPSTREAM_BREAKER_OPEN_SECONDS must be at least 1 second", nil)
	}
	if u.BreakerHalfOpenReqs < 1 {
		return errors.NewConfigurationError("UPSTREAM_BREAKER_HALF_OPEN_REQUESTS must be at least 1", nil)
	}
	return nil
}

func (s *SessionConfig) Validate() error {
	if !s.Store.IsValid() {
		return errors.NewConfigurationError("SESSION_STORE must be one of: memory, redis", nil)
	}
	if s.TTLMinutes < 1 || s.TTLMinutes > maxSessionTTLMinutes {
		return errors.NewConfigurationError("SESSION_TTL_MINUTES must be between 1 and 10080 minutes", nil)
	}
	if strings.TrimSpace(s.CookieName) == "" {
		return errors.NewConfigurationError("SESSION_COOKIE_NAME cannot be empty", nil)
	}

	if s.Store == SessionStoreTypeRedis {
		return s.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using the Redis session store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
}

func validateBaseURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}
