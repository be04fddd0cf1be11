// Package config provides YAML-based configuration for the Ganymede metric
// relay: the transport sizing the overflow watermark is derived from, the
// flush schedule, telemetry settings, and logging.
//
// # Loading
//
// Configuration loads in layers:
//
//  1. Parse the YAML file
//  2. Apply default values for anything unset
//  3. Apply GANYMEDE_* environment variable overrides
//  4. Validate the final result
//
// # Basic Usage
//
//	cfg, err := config.LoadConfig("ganymede.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	acc := buffer.New(&buffer.Config{
//	    Watermark: cfg.Transport.AccessWatermark(),
//	    Notifier:  notifier,
//	})
package config
