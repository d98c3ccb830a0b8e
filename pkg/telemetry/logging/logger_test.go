package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/zero-trust-ai/framework/pkg/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid JSON config",
			config:  Config{Level: "info", Format: "json", RedactPII: true},
			wantErr: false,
		},
		{
			name:    "valid text config",
			config:  Config{Level: "debug", Format: "text"},
			wantErr: false,
		},
		{
			name:    "valid console config",
			config:  Config{Level: "warn", Format: "console", RedactPII: true},
			wantErr: false,
		},
		{
			name:    "empty values use defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name:    "invalid log level",
			config:  Config{Level: "invalid", Format: "json"},
			wantErr: true,
		},
		{
			name:    "invalid format",
			config:  Config{Level: "info", Format: "invalid"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.Writer = &bytes.Buffer{}

			logger, err := New(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && logger == nil {
				t.Error("New() returned nil logger")
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		logMethod func(*Logger, string)
		wantLog   bool
	}{
		{
			name:      "debug level logs debug",
			logLevel:  "debug",
			logMethod: func(l *Logger, msg string) { l.Debug(msg) },
			wantLog:   true,
		},
		{
			name:      "info level filters debug",
			logLevel:  "info",
			logMethod: func(l *Logger, msg string) { l.Debug(msg) },
			wantLog:   false,
		},
		{
			name:      "info level logs info",
			logLevel:  "info",
			logMethod: func(l *Logger, msg string) { l.Info(msg) },
			wantLog:   true,
		},
		{
			name:      "warn level filters info",
			logLevel:  "warn",
			logMethod: func(l *Logger, msg string) { l.Info(msg) },
			wantLog:   false,
		},
		{
			name:      "warn level logs warn",
			logLevel:  "warn",
			logMethod: func(l *Logger, msg string) { l.Warn(msg) },
			wantLog:   true,
		},
		{
			name:      "error level filters warn",
			logLevel:  "error",
			logMethod: func(l *Logger, msg string) { l.Warn(msg) },
			wantLog:   false,
		},
		{
			name:      "error level logs error",
			logLevel:  "error",
			logMethod: func(l *Logger, msg string) { l.Error(msg) },
			wantLog:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger, err := New(Config{Level: tt.logLevel, Format: "json", Writer: buf})
			if err != nil {
				t.Fatalf("Failed to create logger: %v", err)
			}

			testMsg := "test message"
			tt.logMethod(logger, testMsg)

			hasLog := strings.Contains(buf.String(), testMsg)
			if hasLog != tt.wantLog {
				t.Errorf("Log filtering failed: got log=%v, want log=%v, output=%s",
					hasLog, tt.wantLog, buf.String())
			}
		})
	}
}

func TestLogger_StructuredFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "json", Writer: buf})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("test message",
		"string_field", "value",
		"int_field", 42,
		"bool_field", true,
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}

	if entry["msg"] != "test message" {
		t.Errorf("msg = %v, want %q", entry["msg"], "test message")
	}
	if entry["string_field"] != "value" {
		t.Errorf("string_field = %v, want %q", entry["string_field"], "value")
	}
	if entry["int_field"] != float64(42) {
		t.Errorf("int_field = %v, want 42", entry["int_field"])
	}
	if entry["bool_field"] != true {
		t.Errorf("bool_field = %v, want true", entry["bool_field"])
	}
}

func TestLogger_ConsoleFormatOmitsTime(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "console", Writer: buf})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("hello", "k", "v")

	out := buf.String()
	if strings.Contains(out, "time=") {
		t.Errorf("console output should not carry a timestamp: %s", out)
	}
	if !strings.Contains(out, "msg=hello") || !strings.Contains(out, "k=v") {
		t.Errorf("unexpected console output: %s", out)
	}
}

func TestLogger_Redaction(t *testing.T) {
	tests := []struct {
		name      string
		redactPII bool
		wantRaw   bool
	}{
		{name: "redaction enabled", redactPII: true, wantRaw: false},
		{name: "redaction disabled", redactPII: false, wantRaw: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger, err := New(Config{Level: "info", Format: "json", RedactPII: tt.redactPII, Writer: buf})
			if err != nil {
				t.Fatalf("Failed to create logger: %v", err)
			}

			logger.Info("contact", "email", "alice@example.com", "api_key", "sk-abc123xyz789")

			out := buf.String()
			if got := strings.Contains(out, "alice@example.com"); got != tt.wantRaw {
				t.Errorf("email present = %v, want %v: %s", got, tt.wantRaw, out)
			}
			if got := strings.Contains(out, "sk-abc123xyz789"); got != tt.wantRaw {
				t.Errorf("api key present = %v, want %v: %s", got, tt.wantRaw, out)
			}
		})
	}
}

func TestLogger_RedactsAttrArguments(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "json", RedactPII: true, Writer: buf})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("agent interaction",
		slog.String("agent_output", "john.doe@example.com"),
		"password", "hunter2hunter2",
		slog.Group("request", slog.String("caller", "ops@example.com")),
	)

	out := buf.String()
	for _, secret := range []string{"john.doe@example.com", "hunter2hunter2", "ops@example.com"} {
		if strings.Contains(out, secret) {
			t.Errorf("output leaks %q: %s", secret, out)
		}
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}
	if entry["agent_output"] != "***@***" {
		t.Errorf("agent_output = %v, want %q", entry["agent_output"], "***@***")
	}
	if entry["password"] != "hunt***" {
		t.Errorf("password = %v, want %q", entry["password"], "hunt***")
	}
}

func TestLogger_ConsoleFormatRedacts(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "console", RedactPII: true, Writer: buf})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("contact", "email", "alice@example.com")

	out := buf.String()
	if strings.Contains(out, "alice@example.com") {
		t.Errorf("email should be redacted: %s", out)
	}
	if strings.Contains(out, "time=") {
		t.Errorf("console output should not carry a timestamp: %s", out)
	}
}

func TestLogger_RunIDNotRedacted(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "json", RedactPII: true, Writer: buf})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	// The trailing 16 hex digits of this ID look like a card number.
	runID := "3f2a1b4c-1d2e-4012-8345-678901234567"
	ctx := WithRunID(context.Background(), runID)
	ctx = WithCommand(ctx, "zero-trust config show")

	logger.InfoContext(ctx, "loaded")
	logger.WithContext(ctx).Info("again")

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("output is not JSON: %v: %s", err, line)
		}
		if entry["run_id"] != runID {
			t.Errorf("run_id = %v, want %q", entry["run_id"], runID)
		}
		if entry["command"] != "zero-trust config show" {
			t.Errorf("command = %v, want %q", entry["command"], "zero-trust config show")
		}
	}
}

func TestLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "json", RedactPII: true, Writer: buf})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	child := logger.With("component", "cli", "token", "supersecretvalue")
	child.Info("test message")

	out := buf.String()
	if !strings.Contains(out, `"component":"cli"`) {
		t.Errorf("expected component field: %s", out)
	}
	if strings.Contains(out, "supersecretvalue") {
		t.Errorf("token should be redacted in With fields: %s", out)
	}
}

func TestLogger_ContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "debug", Format: "json", Writer: buf})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	ctx := WithRunID(context.Background(), "run-42")
	ctx = WithCommand(ctx, "version")

	logger.InfoContext(ctx, "context message")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}
	if entry["run_id"] != "run-42" {
		t.Errorf("run_id = %v, want %q", entry["run_id"], "run-42")
	}
	if entry["command"] != "version" {
		t.Errorf("command = %v, want %q", entry["command"], "version")
	}
}

func TestLogger_WithContext(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "json", Writer: buf})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	if got := logger.WithContext(context.Background()); got != logger {
		t.Error("WithContext with empty context should return the same logger")
	}

	logger.WithContext(WithCommand(context.Background(), "roadmap")).Warn("careful")
	if !strings.Contains(buf.String(), `"command":"roadmap"`) {
		t.Errorf("expected command field: %s", buf.String())
	}
}

func TestLogger_Enabled(t *testing.T) {
	logger, err := New(Config{Level: "warn", Writer: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	if logger.Enabled(slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !logger.Enabled(slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	if logger.Enabled(slog.LevelError) {
		t.Error("Nop logger should not emit errors")
	}
	// Must not panic.
	logger.Error("discarded", "k", "v")
}

func TestConfigFrom(t *testing.T) {
	off := false
	buf := &bytes.Buffer{}
	cfg := ConfigFrom(config.LoggingConfig{
		Level:     "debug",
		Format:    "text",
		AddSource: true,
		RedactPII: &off,
		RedactPatterns: []config.RedactPattern{
			{Name: "ticket", Pattern: `TCK-\d+`},
		},
	}, buf)

	if cfg.Level != "debug" || cfg.Format != "text" || !cfg.AddSource {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.RedactPII {
		t.Error("RedactPII should follow the explicit false")
	}
	if len(cfg.RedactPatterns) != 1 {
		t.Errorf("expected 1 redact pattern, got %d", len(cfg.RedactPatterns))
	}
	if cfg.Writer != buf {
		t.Error("writer not passed through")
	}

	if !ConfigFrom(config.LoggingConfig{}, nil).RedactPII {
		t.Error("unset redact_pii should default to enabled")
	}
}
