package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	sessionChecker  ports.HealthChecker
	upstreamChecker ports.HealthChecker
	configProvider  ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	SessionChecker  ports.HealthChecker
	UpstreamChecker ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		sessionChecker:  config.SessionChecker,
		upstreamChecker: config.UpstreamChecker,
		configProvider:  config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.sessionChecker != nil {
		results["sessionStore"] = s.sessionChecker.Check(ctx)
	}

	if s.upstreamChecker != nil {
		results["upstreams"] = s.upstreamChecker.Check(ctx)
	}

	if s.configProvider != nil {
		lookup := s.configProvider.GetLookupConfig()
		details := map[string]interface{}{
			"parallelFetch":             lookup.ParallelFetch,
			"excludeTodayOnGeolocation": lookup.ExcludeTodayOnGeolocation,
		}
		if lookup.Location != nil {
			details["forecastTimezone"] = lookup.Location.String()
		}
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details:   details,
		}
	}

	return results
}
