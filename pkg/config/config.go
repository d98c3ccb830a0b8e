package config

// Config is the root configuration structure for the zero-trust command.
type Config struct {
	// Telemetry contains configuration for logging.
	Telemetry TelemetryConfig `yaml:"telemetry" json:"telemetry"`

	// Output controls how command results are printed.
	Output OutputConfig `yaml:"output" json:"output"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level" json:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "text"
	Format string `yaml:"format" json:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source" json:"add_source"`

	// RedactPII enables automatic PII redaction in logs.
	// Redacts API keys, emails, SSN, IP addresses, etc.
	// Default: true
	RedactPII *bool `yaml:"redact_pii,omitempty" json:"redact_pii,omitempty"`

	// RedactPatterns contains custom PII redaction patterns.
	// Each pattern has a name, regex, and replacement string.
	RedactPatterns []RedactPattern `yaml:"redact_patterns,omitempty" json:"redact_patterns,omitempty"`
}

// RedactionEnabled reports whether PII redaction is on.
func (c LoggingConfig) RedactionEnabled() bool {
	return c.RedactPII == nil || *c.RedactPII
}

// RedactPattern defines a custom PII redaction pattern.
type RedactPattern struct {
	// Name is a descriptive name for the pattern.
	Name string `yaml:"name" json:"name"`

	// Pattern is the regular expression to match.
	Pattern string `yaml:"pattern" json:"pattern"`

	// Replacement is the string to replace matches with.
	Replacement string `yaml:"replacement" json:"replacement"`
}

// OutputConfig controls command output.
type OutputConfig struct {
	// Format is the default output format for command results.
	// Options: "text", "json", "yaml"
	// Default: "text"
	Format string `yaml:"format" json:"format"`

	// NoColor disables ANSI styling of text output.
	// Default: false
	NoColor bool `yaml:"no_color" json:"no_color"`
}
