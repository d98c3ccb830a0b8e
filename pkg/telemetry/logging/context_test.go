package logging

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestContextKeys(t *testing.T) {
	ctx := context.Background()

	ctx = WithRunID(ctx, "run-123")
	if got := GetRunID(ctx); got != "run-123" {
		t.Errorf("GetRunID() = %q, want %q", got, "run-123")
	}

	ctx = WithCommand(ctx, "config validate")
	if got := GetCommand(ctx); got != "config validate" {
		t.Errorf("GetCommand() = %q, want %q", got, "config validate")
	}
}

func TestContextKeys_Missing(t *testing.T) {
	ctx := context.Background()

	if got := GetRunID(ctx); got != "" {
		t.Errorf("GetRunID() = %q, want empty", got)
	}
	if got := GetCommand(ctx); got != "" {
		t.Errorf("GetCommand() = %q, want empty", got)
	}
}

func TestNewRunID(t *testing.T) {
	a := NewRunID()
	b := NewRunID()

	if a == b {
		t.Errorf("NewRunID() returned the same ID twice: %q", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("NewRunID() = %q is not a UUID: %v", a, err)
	}
}

func TestExtractContextFields(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want []any
	}{
		{
			name: "nil context",
			ctx:  nil,
			want: nil,
		},
		{
			name: "empty context",
			ctx:  context.Background(),
			want: nil,
		},
		{
			name: "run id only",
			ctx:  WithRunID(context.Background(), "r1"),
			want: []any{"run_id", "r1"},
		},
		{
			name: "run id and command",
			ctx:  WithCommand(WithRunID(context.Background(), "r1"), "version"),
			want: []any{"run_id", "r1", "command", "version"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractContextFields(tt.ctx)
			if len(got) != len(tt.want) {
				t.Fatalf("extractContextFields() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("field %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
