package logger

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"
)

type ctxKey struct{}

// MaxQueryLogLen caps the query field in bytes; longer queries are cut on a rune boundary.
const MaxQueryLogLen = 256

// ContextWithLogger stores a logger in the context.
func ContextWithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext extracts a logger from the context.
// Returns zap.NewNop() if no logger is found.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// With returns a context whose logger carries fields. Without a logger in ctx
// the fields are dropped.
func With(ctx context.Context, fields ...zap.Field) context.Context {
	l, ok := ctx.Value(ctxKey{}).(*zap.Logger)
	if !ok || len(fields) == 0 {
		return ctx
	}
	return ContextWithLogger(ctx, l.With(fields...))
}

// WithClientID tags later log lines with the client whose recent-search list
// the request touches. An empty id adds nothing.
func WithClientID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return With(ctx, zap.String("client_id", id))
}

// WithQuery tags later log lines with the user's search text, truncated to
// MaxQueryLogLen.
func WithQuery(ctx context.Context, query string) context.Context {
	if query == "" {
		return ctx
	}
	fields := []zap.Field{zap.String("query", truncate(query, MaxQueryLogLen))}
	if len(query) > MaxQueryLogLen {
		fields = append(fields, zap.Int("query_len", len(query)))
	}
	return With(ctx, fields...)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
