package config

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "telemetry.logging.level").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
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

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)
	errs = append(errs, validateOutput(&cfg.Output)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if cfg.Logging.Level == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: "logging level is required",
		})
	} else if !validLevels[cfg.Logging.Level] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid logging level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.Logging.Level),
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "console": true}
	if cfg.Logging.Format == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: "logging format is required",
		})
	} else if !validFormats[cfg.Logging.Format] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid logging format %q: must be 'json', 'text', or 'console'", cfg.Logging.Format),
		})
	}

	seen := make(map[string]bool)
	for i, p := range cfg.Logging.RedactPatterns {
		field := fmt.Sprintf("telemetry.logging.redact_patterns[%d]", i)
		if p.Name == "" {
			errs = append(errs, FieldError{Field: field + ".name", Message: "pattern name is required"})
		} else if seen[p.Name] {
			errs = append(errs, FieldError{Field: field + ".name", Message: fmt.Sprintf("duplicate pattern name %q", p.Name)})
		}
		seen[p.Name] = true

		if p.Pattern == "" {
			errs = append(errs, FieldError{Field: field + ".pattern", Message: "pattern is required"})
		} else if _, err := regexp.Compile(p.Pattern); err != nil {
			errs = append(errs, FieldError{Field: field + ".pattern", Message: fmt.Sprintf("invalid regular expression: %v", err)})
		}
	}

	return errs
}

func validateOutput(cfg *OutputConfig) []FieldError {
	validFormats := map[string]bool{"text": true, "json": true, "yaml": true}
	if !validFormats[cfg.Format] {
		return []FieldError{{
			Field:   "output.format",
			Message: fmt.Sprintf("invalid output format %q: must be 'text', 'json', or 'yaml'", cfg.Format),
		}}
	}
	return nil
}
