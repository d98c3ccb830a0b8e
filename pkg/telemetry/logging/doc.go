// Package logging provides structured logging with PII redaction.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON, text, and console formats
//   - Automatic PII redaction (API keys, emails, SSN, etc.)
//   - Context-aware logging with run IDs and command names
//   - Configurable log levels (debug, info, warn, error)
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:     "info",
//	    Format:    "json",
//	    RedactPII: true,
//	})
//
//	logger.Info("configuration loaded",
//	    "path", "zero-trust.yaml",
//	    "api_key", "sk-abc123",  // Automatically redacted
//	)
//
//	ctx = logging.WithRunID(ctx, logging.NewRunID())
//	logger.InfoContext(ctx, "starting")  // Includes run_id automatically
//
// # PII Redaction
//
// PII is automatically redacted from log fields when RedactPII is enabled:
//
//   - API keys: sk-abc123xyz → sk-***
//   - Emails: user@example.com → ***@***
//   - SSN: 123-45-6789 → ***-**-****
//   - IP addresses: 192.168.1.100 → 192.*.*.*
//   - Bearer tokens: Bearer abc.def → Bearer ***
//
// Values of fields whose key names a secret (password, token, api_key, ...)
// are masked regardless of their content. Redaction runs in the handler's
// ReplaceAttr hook, so slog.Attr arguments, With fields and group members are
// all covered. The top-level run_id and command fields are left intact.
package logging
