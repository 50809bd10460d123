package logging

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

type contextKey string

// loggingContextKey is the single key under which request-scoped logging
// facilities travel in a context.
var loggingContextKey = contextKey("tyl_logging")

// contextValue holds the logging facilities attached to a context. Stored by
// value, so deriving a child context never mutates the parent's entry.
type contextValue struct {
	logger    Logger
	requestID string
}

func contextValues(ctx context.Context) contextValue {
	if ctx == nil {
		return contextValue{}
	}

	if values, ok := ctx.Value(loggingContextKey).(contextValue); ok {
		return values
	}

	return contextValue{}
}

// ContextWithLogger returns a context carrying the logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	values := contextValues(ctx)
	values.logger = logger

	return context.WithValue(ctx, loggingContextKey, values)
}

// LoggerFromContext extracts the logger from the context, falling back to a
// NopLogger so callers never need a nil check.
//
//nolint:ireturn
func LoggerFromContext(ctx context.Context) Logger {
	if values := contextValues(ctx); values.logger != nil {
		return values.logger
	}

	return &NopLogger{}
}

// ContextWithRequestID returns a context carrying the correlation ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	values := contextValues(ctx)
	values.requestID = requestID

	return context.WithValue(ctx, loggingContextKey, values)
}

// RequestIDFromContext extracts the correlation ID from the context. Blank
// IDs count as absent; callers that need one regardless can mint it with
// GenerateRequestID.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	values := contextValues(ctx)

	if trimmed := strings.TrimSpace(values.requestID); trimmed != "" {
		return trimmed, true
	}

	return "", false
}

// NewRecordFromContext builds a record enriched with the request-scoped data
// the context carries: the correlation ID when present, and trace_id/span_id
// fields when the context holds an active OpenTelemetry span, so log lines
// correlate with distributed traces.
func NewRecordFromContext(ctx context.Context, level Level, message string) Record {
	record := NewRecord(level, message)

	if ctx == nil {
		return record
	}

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		record.AddField("trace_id", sc.TraceID().String())
		record.AddField("span_id", sc.SpanID().String())
	}

	if requestID, ok := RequestIDFromContext(ctx); ok {
		record = record.WithRequestID(requestID)
	}

	return record
}
