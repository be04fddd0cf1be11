package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// Parsing starts from DefaultConfig, so keys absent from the file keep
// their defaults (including the true-by-default telemetry toggle). The
// result is validated before being returned.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies environment variable overrides. Variables follow the naming
// convention GANYMEDE_SECTION_FIELD (e.g. GANYMEDE_FLUSH_SCHEDULE) and
// always take precedence over file-based configuration.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies GANYMEDE_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("GANYMEDE_TRANSPORT_MAX_MESSAGE_BYTES"); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Transport.MaxMessageBytes = n
		}
	}
	if val := os.Getenv("GANYMEDE_FLUSH_SCHEDULE"); val != "" {
		cfg.Flush.Schedule = val
	}
	if val := os.Getenv("GANYMEDE_FLUSH_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Flush.Timeout = d
		}
	}
	if val := os.Getenv("GANYMEDE_TELEMETRY_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Enabled = b
		}
	}
	if val := os.Getenv("GANYMEDE_TELEMETRY_NAMESPACE"); val != "" {
		cfg.Telemetry.Namespace = val
	}
	if val := os.Getenv("GANYMEDE_LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}
}
