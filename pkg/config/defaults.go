package config

import (
	"time"

	"mercator-hq/ganymede/pkg/relay"
)

// Default values for configuration fields.
const (
	// Transport defaults
	DefaultMaxMessageBytes = int64(relay.MaxMessageBytes)

	// Flush defaults
	DefaultFlushSchedule = ""
	DefaultFlushTimeout  = 5 * time.Second

	// Telemetry defaults
	DefaultTelemetryEnabled   = true
	DefaultTelemetryNamespace = "ganymede"
	DefaultTelemetrySubsystem = "relay"

	// Log defaults
	DefaultLogLevel = "info"
)

// DefaultConfig returns a configuration populated with every default value.
func DefaultConfig() *Config {
	return &Config{
		Transport: TransportConfig{
			MaxMessageBytes: DefaultMaxMessageBytes,
		},
		Flush: FlushConfig{
			Schedule: DefaultFlushSchedule,
			Timeout:  DefaultFlushTimeout,
		},
		Telemetry: TelemetryConfig{
			Enabled:   DefaultTelemetryEnabled,
			Namespace: DefaultTelemetryNamespace,
			Subsystem: DefaultTelemetrySubsystem,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ApplyDefaults fills zero-valued fields with their defaults. Boolean
// fields are left alone; use DefaultConfig as the starting point when the
// true-by-default telemetry toggle matters.
func ApplyDefaults(cfg *Config) {
	if cfg.Transport.MaxMessageBytes == 0 {
		cfg.Transport.MaxMessageBytes = DefaultMaxMessageBytes
	}
	if cfg.Flush.Timeout == 0 {
		cfg.Flush.Timeout = DefaultFlushTimeout
	}
	if cfg.Telemetry.Namespace == "" {
		cfg.Telemetry.Namespace = DefaultTelemetryNamespace
	}
	if cfg.Telemetry.Subsystem == "" {
		cfg.Telemetry.Subsystem = DefaultTelemetrySubsystem
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
