package ports

import "context"

// HealthChecker reports the state of one component (session store, upstream breakers)
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// HealthStatus is healthy, degraded or unhealthy. Degraded components keep
// the service up; an unhealthy one fails /api/health.
type HealthStatus struct {
	Component string                 `json:"component"`
	Status    string                 `json:"status"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// SystemHealthChecker runs every component check, keyed by component name
type SystemHealthChecker interface {
	CheckAll(ctx context.Context) map[string]HealthStatus
}
