package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"

	"mercator-hq/ganymede/pkg/relay"
)

// FieldError represents a validation error for a specific configuration
// field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g.
	// "transport.max_message_bytes").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a
// configuration. It implements the error interface and provides access to
// all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// validLogLevels are the accepted values for log.level.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate validates the entire configuration and returns a
// ValidationError if any validation rules fail. All errors are collected
// and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	if cfg.Transport.MaxMessageBytes < relay.WorstCaseUpdateBytes {
		errs = append(errs, FieldError{
			Field: "transport.max_message_bytes",
			Message: fmt.Sprintf("must be at least %d bytes (one worst-case update), got %d",
				relay.WorstCaseUpdateBytes, cfg.Transport.MaxMessageBytes),
		})
	}

	if cfg.Flush.Schedule != "" {
		if _, err := cron.ParseStandard(cfg.Flush.Schedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "flush.schedule",
				Message: fmt.Sprintf("invalid cron expression %q: %v", cfg.Flush.Schedule, err),
			})
		}
	}

	if cfg.Flush.Timeout <= 0 {
		errs = append(errs, FieldError{
			Field:   "flush.timeout",
			Message: "must be positive",
		})
	}

	if !validLogLevels[cfg.Log.Level] {
		errs = append(errs, FieldError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error; got %q", cfg.Log.Level),
		})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
