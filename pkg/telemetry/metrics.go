package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/ganymede/pkg/config"
)

// RelayMetrics tracks the relay's own operation.
//
// Metrics:
//   - ganymede_relay_flush_requests_total: watermark-triggered flush requests
//   - ganymede_relay_harvests_total: completed encode-and-reset harvests
//   - ganymede_relay_harvested_bytes_total: encoded payload bytes produced
//   - ganymede_relay_decode_failures_total: payloads rejected at decode
//   - ganymede_relay_updates_replayed_total: updates applied, by container
//   - ganymede_relay_updates_skipped_total: unknown-identifier updates
//     dropped, by container
//
// All methods are safe on a nil receiver, so components can carry an
// optional *RelayMetrics without guarding every call site.
type RelayMetrics struct {
	flushRequests  prometheus.Counter
	harvests       prometheus.Counter
	harvestedBytes prometheus.Counter
	decodeFailures prometheus.Counter

	updatesReplayed *prometheus.CounterVec
	updatesSkipped  *prometheus.CounterVec
}

// NewRelayMetrics creates and registers relay metrics with the provided
// registry. If registry is nil a new one is created. A disabled telemetry
// config returns nil, which every method tolerates.
func NewRelayMetrics(cfg *config.TelemetryConfig, registry *prometheus.Registry) *RelayMetrics {
	if cfg != nil && !cfg.Enabled {
		return nil
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	namespace := config.DefaultTelemetryNamespace
	subsystem := config.DefaultTelemetrySubsystem
	if cfg != nil {
		if cfg.Namespace != "" {
			namespace = cfg.Namespace
		}
		if cfg.Subsystem != "" {
			subsystem = cfg.Subsystem
		}
	}

	m := &RelayMetrics{
		flushRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "flush_requests_total",
			Help:      "Total number of watermark-triggered flush requests",
		}),
		harvests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "harvests_total",
			Help:      "Total number of completed payload harvests",
		}),
		harvestedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "harvested_bytes_total",
			Help:      "Total encoded payload bytes produced by harvests",
		}),
		decodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decode_failures_total",
			Help:      "Total number of payloads rejected as structurally invalid",
		}),
		updatesReplayed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "updates_replayed_total",
			Help:      "Total number of metric updates applied during replay",
		}, []string{"container"}),
		updatesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "updates_skipped_total",
			Help:      "Total number of updates dropped for unknown identifiers",
		}, []string{"container"}),
	}

	registry.MustRegister(
		m.flushRequests,
		m.harvests,
		m.harvestedBytes,
		m.decodeFailures,
		m.updatesReplayed,
		m.updatesSkipped,
	)

	return m
}

// FlushRequested counts one watermark-triggered flush request.
func (m *RelayMetrics) FlushRequested() {
	if m == nil {
		return
	}
	m.flushRequests.Inc()
}

// HarvestCompleted counts one harvest and its encoded size.
func (m *RelayMetrics) HarvestCompleted(bytes int) {
	if m == nil {
		return
	}
	m.harvests.Inc()
	m.harvestedBytes.Add(float64(bytes))
}

// DecodeFailed counts one rejected payload.
func (m *RelayMetrics) DecodeFailed() {
	if m == nil {
		return
	}
	m.decodeFailures.Inc()
}

// UpdateReplayed counts one applied update for the named container.
func (m *RelayMetrics) UpdateReplayed(container string) {
	if m == nil {
		return
	}
	m.updatesReplayed.WithLabelValues(container).Inc()
}

// UpdateSkipped counts one unknown-identifier drop for the named container.
func (m *RelayMetrics) UpdateSkipped(container string) {
	if m == nil {
		return
	}
	m.updatesSkipped.WithLabelValues(container).Inc()
}
