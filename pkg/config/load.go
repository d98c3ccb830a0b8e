package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every configuration environment variable.
const EnvPrefix = "ZERO_TRUST_"

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path is the YAML configuration file. Empty means DefaultConfigPath.
	Path string

	// Required makes a missing configuration file an error.
	Required bool

	// EnvFile is a dotenv file loaded into the process environment before
	// overrides are applied. Empty disables dotenv loading.
	EnvFile string

	// EnvFileRequired makes a missing dotenv file an error.
	EnvFileRequired bool
}

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any errors.
// The configuration is not modified by environment variables; use LoadConfigWithEnvOverrides
// for that functionality.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg, err := parse(path, data)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables always take precedence
// over file-based configuration.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	return Load(LoadOptions{Path: path, Required: true})
}

// Load reads configuration as described by opts.
//
// The loading sequence is:
// 1. Load YAML from file (or start from defaults if the file is optional and absent)
// 2. Apply default values
// 3. Load the dotenv file, if any
// 4. Apply environment variable overrides
// 5. Validate final configuration
func Load(opts LoadOptions) (*Config, error) {
	path := opts.Path
	if path == "" {
		path = DefaultConfigPath
	}

	var cfg *Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg, err = parse(path, data)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist) && !opts.Required:
		cfg = Default()
	default:
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	if opts.EnvFile != "" {
		if err := LoadEnvFile(opts.EnvFile, opts.EnvFileRequired); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadEnvFile loads variables from a dotenv file into the process
// environment. Variables that are already set are left untouched.
// A missing file is ignored unless required is true.
func LoadEnvFile(path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to read env file %q: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to parse env file %q: %w", path, err)
	}
	return nil
}

// parse decodes YAML configuration and applies defaults.
func parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables use the format ZERO_TRUST_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Telemetry overrides
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_ADD_SOURCE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Logging.AddSource = b
		}
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_REDACT_PII"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Logging.RedactPII = &b
		}
	}

	// Output overrides
	if val := os.Getenv(EnvPrefix + "OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}
	if val := os.Getenv(EnvPrefix + "OUTPUT_NO_COLOR"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Output.NoColor = b
		}
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.Output.NoColor = true
	}
}
