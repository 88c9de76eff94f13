package ports

import (
	"time"
)

// LookupConfig represents weather lookup behaviour
type LookupConfig struct {
	Location                  *time.Location
	ParallelFetch             bool
	ExcludeTodayOnGeolocation bool
}

// SessionConfig represents dashboard session configuration
type SessionConfig struct {
	TTL        time.Duration
	CookieName string
	Secure     bool
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetLookupConfig() LookupConfig
	GetSessionConfig() SessionConfig
	GetServerConfig() ServerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// LookupMetrics defines the contract for recording lookup outcomes
type LookupMetrics interface {
	RecordLookup(flow string, outcome string)
	RecordStaleResult(action string)
}
