package logger

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Envs(t *testing.T) {
	for _, env := range []string{"prod", "local", "dev", "docker", "cli"} {
		t.Run(env, func(t *testing.T) {
			l, err := NewLogger(env)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l == nil {
				t.Fatal("expected logger")
			}
		})
	}
}

func TestNewLogger_UnknownEnv(t *testing.T) {
	if _, err := NewLogger("staging"); err == nil {
		t.Error("expected error for unknown env")
	}
}

func TestNewLogger_LevelOverride(t *testing.T) {
	l, err := NewLogger("prod", "warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !l.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled")
	}

	if _, err := NewLogger("prod", "loud"); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestCLILoggerIsQuiet(t *testing.T) {
	l, err := NewLogger("cli")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Error("cli logger should drop info")
	}
}

func TestFromContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := ContextWithLogger(context.Background(), zap.New(core))

	FromContext(ctx).Info("hello", zap.String("k", "v"))
	if logs.Len() != 1 || logs.All()[0].Message != "hello" {
		t.Errorf("logs = %v", logs.All())
	}

	// Missing logger falls back to a no-op.
	FromContext(context.Background()).Info("dropped")
	if logs.Len() != 1 {
		t.Errorf("expected nop fallback, got %d entries", logs.Len())
	}
}

func TestWithClientIDAndQuery(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := ContextWithLogger(context.Background(), zap.New(core))

	ctx = WithClientID(ctx, "client-7")
	ctx = WithQuery(ctx, "كافيه حطين")
	FromContext(ctx).Info("search executed")

	fields := logs.All()[0].ContextMap()
	if fields["client_id"] != "client-7" || fields["query"] != "كافيه حطين" {
		t.Errorf("fields = %v", fields)
	}
	if _, ok := fields["query_len"]; ok {
		t.Error("short query should not report query_len")
	}
}

func TestWithQuery_TruncatesOnRuneBoundary(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := ContextWithLogger(context.Background(), zap.New(core))

	long := strings.Repeat("ق", MaxQueryLogLen) // two bytes per rune
	FromContext(WithQuery(ctx, "a"+long)).Info("ask executed")

	fields := logs.All()[0].ContextMap()
	got, _ := fields["query"].(string)
	if len(got) > MaxQueryLogLen || !utf8.ValidString(got) {
		t.Errorf("query field len = %d, valid = %v", len(got), utf8.ValidString(got))
	}
	if fields["query_len"] != int64(1+len(long)) {
		t.Errorf("query_len = %v", fields["query_len"])
	}
}

func TestWith_EmptyValuesAndMissingLogger(t *testing.T) {
	ctx := context.Background()
	if WithClientID(ctx, "") != ctx || WithQuery(ctx, "") != ctx {
		t.Error("empty values should return the same context")
	}
	// no logger to extend: still a no-op logger, never a panic
	FromContext(WithQuery(ctx, "x")).Info("dropped")
}
