package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// SessionStoreHealthChecker pings the session backend
type SessionStoreHealthChecker struct {
	store   ports.SessionStore
	backend string
}

// NewSessionStoreHealthChecker creates a new session store health checker
func NewSessionStoreHealthChecker(store ports.SessionStore, backend string) *SessionStoreHealthChecker {
	return &SessionStoreHealthChecker{store: store, backend: backend}
}

// Check verifies session store connectivity
func (s *SessionStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "sessionStore",
		Details: map[string]interface{}{
			"backend": s.backend,
		},
	}

	if s.store == nil {
		status.Status = statusUnhealthy
		status.Error = "session store is not configured"
		return status
	}

	if err := s.store.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = statusHealthy
	return status
}

// BreakerReporter exposes the circuit breaker of one upstream
type BreakerReporter interface {
	Name() string
	BreakerState() string
}

// UpstreamHealthChecker reports the breaker state of every upstream API.
// An open breaker degrades the service without making it unhealthy.
type UpstreamHealthChecker struct {
	upstreams []BreakerReporter
}

// NewUpstreamHealthChecker creates a new upstream health checker
func NewUpstreamHealthChecker(upstreams ...BreakerReporter) *UpstreamHealthChecker {
	return &UpstreamHealthChecker{upstreams: upstreams}
}

// Check reads breaker states without calling any upstream
func (u *UpstreamHealthChecker) Check(_ context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "upstreams",
		Status:    statusHealthy,
		Details:   make(map[string]interface{}, len(u.upstreams)),
	}

	for _, upstream := range u.upstreams {
		state := upstream.BreakerState()
		status.Details[upstream.Name()] = state
		if state != "closed" {
			status.Status = statusDegraded
		}
	}

	return status
}
