package config

import (
	"time"

	"mercator-hq/ganymede/pkg/relay"
)

// Config is the root configuration structure for the Ganymede metric relay.
type Config struct {
	// Transport contains sizing limits for the cross-process transport.
	Transport TransportConfig `yaml:"transport"`

	// Flush contains configuration for the flush scheduler.
	Flush FlushConfig `yaml:"flush"`

	// Telemetry contains configuration for the relay's own Prometheus
	// metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Log contains logging configuration.
	Log LogConfig `yaml:"log"`
}

// TransportConfig contains sizing limits for the cross-process transport.
// The transport itself is external; the relay only needs its ceiling to
// size the overflow watermark.
type TransportConfig struct {
	// MaxMessageBytes is the hard ceiling on one transport message. The
	// access watermark is derived from it so that a full burst of
	// worst-case updates between flush requests cannot exceed it.
	// Default: 268435456 (256 MiB)
	MaxMessageBytes int64 `yaml:"max_message_bytes"`
}

// AccessWatermark returns the number of payload accesses between flush
// requests for this transport ceiling: half the ceiling's worst-case-update
// capacity, clamped to the compiled default so a generous ceiling never
// produces batches larger than the relay was designed for.
func (t *TransportConfig) AccessWatermark() uint64 {
	capacity := uint64(t.MaxMessageBytes) / relay.WorstCaseUpdateBytes
	watermark := capacity / 2
	if watermark > relay.DefaultAccessWatermark {
		watermark = relay.DefaultAccessWatermark
	}
	if watermark == 0 {
		watermark = 1
	}
	return watermark
}

// FlushConfig contains configuration for the flush scheduler.
type FlushConfig struct {
	// Schedule is an optional cron expression for periodic flushes in
	// addition to watermark-triggered ones (e.g. "* * * * *" for every
	// minute). Empty disables periodic flushing.
	// Default: ""
	Schedule string `yaml:"schedule"`

	// Timeout bounds one flush-and-transmit cycle.
	// Default: 5s
	Timeout time.Duration `yaml:"timeout"`
}

// TelemetryConfig contains configuration for the relay's own Prometheus
// metrics.
type TelemetryConfig struct {
	// Enabled controls whether relay operation counters are recorded.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Namespace is the Prometheus namespace for relay metrics.
	// Default: "ganymede"
	Namespace string `yaml:"namespace"`

	// Subsystem is the Prometheus subsystem for relay metrics.
	// Default: "relay"
	Subsystem string `yaml:"subsystem"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", or "error".
	// Default: "info"
	Level string `yaml:"level"`
}
