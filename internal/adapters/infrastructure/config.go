package infrastructure

import (
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetLookupConfig returns weather lookup configuration
func (c *ConfigProviderAdapter) GetLookupConfig() ports.LookupConfig {
	return ports.LookupConfig{
		Location:                  c.config.Lookup.Location(),
		ParallelFetch:             c.config.Lookup.ParallelFetch,
		ExcludeTodayOnGeolocation: c.config.Lookup.ExcludeTodayOnGeolocation,
	}
}

// GetSessionConfig returns dashboard session configuration
func (c *ConfigProviderAdapter) GetSessionConfig() ports.SessionConfig {
	return ports.SessionConfig{
		TTL:        c.config.Session.TTL(),
		CookieName: c.config.Session.CookieName,
		Secure:     c.config.Server.SecureCookie,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}
