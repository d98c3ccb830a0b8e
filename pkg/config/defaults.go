package config

// Default values for configuration fields.
const (
	// DefaultConfigPath is the configuration file used when none is given.
	DefaultConfigPath = "zero-trust.yaml"
	// DefaultEnvFile is the dotenv file used when none is given.
	DefaultEnvFile = ".env"

	// Logging defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "text"
	DefaultLoggingRedactPII = true

	// Output defaults
	DefaultOutputFormat = "text"
)

// Default returns a configuration populated with default values only.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every unset field of cfg with its default value.
// Fields that are already set are preserved.
func ApplyDefaults(cfg *Config) {
	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Logging.RedactPII == nil {
		redact := DefaultLoggingRedactPII
		cfg.Telemetry.Logging.RedactPII = &redact
	}

	// Output defaults
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
}
