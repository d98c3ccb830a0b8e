package logging

import (
	"context"

	"github.com/google/uuid"
)

// Context keys for common log fields.
type contextKey string

const (
	// RunIDKey is the context key for the ID of one command invocation.
	RunIDKey contextKey = "run_id"

	// CommandKey is the context key for the command being run.
	CommandKey contextKey = "command"
)

// NewRunID returns a fresh random run ID.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run ID from the context.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// WithCommand adds a command name to the context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, CommandKey, command)
}

// GetCommand retrieves the command name from the context.
func GetCommand(ctx context.Context) string {
	if command, ok := ctx.Value(CommandKey).(string); ok {
		return command
	}
	return ""
}

// extractContextFields returns the key/value pairs stored in ctx, in a
// stable order.
func extractContextFields(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}

	var fields []any
	if runID := GetRunID(ctx); runID != "" {
		fields = append(fields, string(RunIDKey), runID)
	}
	if command := GetCommand(ctx); command != "" {
		fields = append(fields, string(CommandKey), command)
	}
	return fields
}
