// Package config provides configuration management for the zero-trust command.
//
// Configuration is read from a YAML file, completed with defaults, overridden
// from the environment and then validated.
//
// # Configuration Loading
//
//	cfg, err := config.Load(config.LoadOptions{
//	    Path:    "zero-trust.yaml",
//	    EnvFile: ".env",
//	})
//
// A missing configuration file falls back to the defaults, and a missing .env
// file is skipped. When LoadOptions.Required (or LoadOptions.EnvFileRequired
// for the .env file) is set, a missing file fails the load instead.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention ZERO_TRUST_SECTION_FIELD:
//
//   - ZERO_TRUST_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//   - ZERO_TRUST_OUTPUT_FORMAT overrides output.format
//
// NO_COLOR (any non-empty value) disables colored output. Variables defined in
// the .env file are loaded first and never replace variables that are already
// set in the process environment.
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Variables from the .env file (only those not already set)
//  4. Environment variable overrides
//  5. Validation (fails fast if invalid)
//
// # Example Configuration
//
//	telemetry:
//	  logging:
//	    level: "info"
//	    format: "text"
//	    redact_pii: true
//	    redact_patterns:
//	      - name: "employee_id"
//	        pattern: "EMP-[0-9]{6}"
//	        replacement: "EMP-******"
//
//	output:
//	  format: "text"
//	  no_color: false
package config
