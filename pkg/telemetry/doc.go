// Package telemetry provides Prometheus counters for the relay's own
// operation: flush requests raised, harvests completed, decode failures,
// and per-container replay outcomes. Decode failures and silently skipped
// unknown identifiers are never surfaced as errors from the replay path,
// so these counters are the only place they become observable.
package telemetry
