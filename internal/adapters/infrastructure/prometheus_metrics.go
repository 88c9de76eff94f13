package infrastructure

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "weatherdash"

// PrometheusMetrics records lookup outcomes and upstream calls
type PrometheusMetrics struct {
	lookups          *prometheus.CounterVec
	staleResults     *prometheus.CounterVec
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

// NewPrometheusMetrics registers all collectors on reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lookups_total",
			Help:      "Weather lookups by flow and outcome.",
		}, []string{"flow", "outcome"}),
		staleResults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "stale_results_discarded_total",
			Help:      "Lookup results dropped because a newer action owned the session.",
		}, []string{"flow"}),
		upstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "upstream_requests_total",
			Help:      "Requests sent to upstream APIs by outcome.",
		}, []string{"upstream", "outcome"}),
		upstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"upstream"}),
	}
}

// RecordLookup implements ports.LookupMetrics
func (m *PrometheusMetrics) RecordLookup(flow string, outcome string) {
	m.lookups.WithLabelValues(flow, outcome).Inc()
}

// RecordStaleResult implements ports.LookupMetrics
func (m *PrometheusMetrics) RecordStaleResult(flow string) {
	m.staleResults.WithLabelValues(flow).Inc()
}

// ObserveUpstream records one upstream call
func (m *PrometheusMetrics) ObserveUpstream(upstream, outcome string, duration time.Duration) {
	m.upstreamRequests.WithLabelValues(upstream, outcome).Inc()
	m.upstreamDuration.WithLabelValues(upstream).Observe(duration.Seconds())
}
