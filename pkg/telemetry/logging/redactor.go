package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/zero-trust-ai/framework/pkg/config"
)

// Redactor redacts PII (Personally Identifiable Information) from log fields.
type Redactor struct {
	patterns []*redactPattern
}

// redactPattern contains a compiled regex and replacement string.
type redactPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Common PII pattern names.
const (
	PatternBearerToken = "bearer_token"
	PatternPassword    = "password"
	PatternAPIKey      = "api_key"
	PatternEmail       = "email"
	PatternSSN         = "ssn"
	PatternCreditCard  = "credit_card"
	PatternIPv4        = "ipv4"
	PatternIPv6        = "ipv6"
	PatternPhone       = "phone"
)

// defaultPatterns run in order: the more specific shapes first so that a
// broader pattern never sees half of a token.
var defaultPatterns = []struct {
	name        string
	regex       string
	replacement string
}{
	{PatternBearerToken, `Bearer\s+[a-zA-Z0-9\-._~+/]+=*`, "Bearer ***"},
	{PatternPassword, `(password|passwd|pwd)[:=]\s*[^\s]+`, "$1: ***"},
	{PatternAPIKey, `(sk-[a-zA-Z0-9\-_]+|api[-_]?key[-_:=]\s*[a-zA-Z0-9]+)`, "sk-***"},
	{PatternEmail, `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`, "***@***"},
	{PatternSSN, `\b\d{3}-\d{2}-\d{4}\b`, "***-**-****"},
	{PatternCreditCard, `\b(?:\d{4}[ -]?){3}\d{1,4}\b`, "****-****-****-****"},
	{PatternIPv4, `\b(\d{1,3})\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`, "$1.*.*.*"},
	{PatternIPv6, `\b(?:[0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}\b`, "****:****:****:****:****:****:****:****"},
	{PatternPhone, `\(?\b\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}\b`, "***-***-****"},
}

// sensitiveKeys are substrings of field names whose values are always masked.
var sensitiveKeys = []string{
	"password", "passwd", "pwd",
	"secret", "token", "api_key", "apikey",
	"auth", "authorization",
	"ssn", "social_security",
	"credit_card", "creditcard",
	"private_key", "privatekey",
}

// NewRedactor creates a new Redactor with default and custom patterns.
// Custom patterns run after the defaults. Invalid custom patterns are skipped;
// config.Validate rejects them before they get here.
func NewRedactor(customPatterns []config.RedactPattern) *Redactor {
	r := &Redactor{}

	for _, p := range defaultPatterns {
		r.patterns = append(r.patterns, &redactPattern{
			name:        p.name,
			regex:       regexp.MustCompile(p.regex),
			replacement: p.replacement,
		})
	}

	for _, p := range customPatterns {
		regex, err := regexp.Compile(p.Pattern)
		if err != nil {
			continue
		}
		replacement := p.Replacement
		if replacement == "" {
			replacement = "***"
		}
		r.patterns = append(r.patterns, &redactPattern{
			name:        p.Name,
			regex:       regex,
			replacement: replacement,
		})
	}

	return r
}

// PatternNames returns the names of the active patterns in evaluation order.
func (r *Redactor) PatternNames() []string {
	names := make([]string, len(r.patterns))
	for i, p := range r.patterns {
		names[i] = p.name
	}
	return names
}

// RedactString redacts PII from a string value.
func (r *Redactor) RedactString(value string) string {
	if value == "" {
		return value
	}

	redacted := value
	for _, pattern := range r.patterns {
		redacted = pattern.regex.ReplaceAllString(redacted, pattern.replacement)
	}

	return redacted
}

// ReplaceAttr is a slog.HandlerOptions.ReplaceAttr hook. It sees every
// attribute after slog has normalized it, including slog.Attr arguments, With
// attributes and group members. Top-level correlation fields (run_id, command)
// and the built-in record keys pass through unchanged.
func (r *Redactor) ReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 {
		switch a.Key {
		case slog.TimeKey, slog.LevelKey, slog.SourceKey, slog.MessageKey,
			string(RunIDKey), string(CommandKey):
			return a
		}
	}

	v := a.Value.Resolve()
	if isSensitiveKey(a.Key) {
		if v.Kind() == slog.KindString {
			return slog.String(a.Key, redactValue(v.String()))
		}
		return slog.String(a.Key, "***")
	}

	switch v.Kind() {
	case slog.KindString:
		return slog.String(a.Key, r.RedactString(v.String()))
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return slog.String(a.Key, r.RedactString(err.Error()))
		}
	}
	return a
}

// isSensitiveKey checks if a key name indicates sensitive data.
func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(lowerKey, sensitive) {
			return true
		}
	}
	return false
}

// redactValue masks a sensitive value, keeping a short prefix of longer
// strings for debugging.
func redactValue(v string) string {
	if v == "" {
		return ""
	}
	runes := []rune(v)
	if len(runes) <= 8 {
		return "***"
	}
	return string(runes[:4]) + "***"
}
