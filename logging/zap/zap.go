package zap

import (
	"go.uber.org/zap"

	"github.com/the-yaml-life/tyl-logging/logging"
)

// Logger renders facade records through a zap backend.
type Logger struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
}

// Compile-time assertion: *Logger implements logging.Logger.
var _ logging.Logger = (*Logger)(nil)

func (l *Logger) must() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}

	return l.logger
}

// Log implements logging.Logger. Record fields become zap fields and the
// request ID is appended as request_id when present. The record's own
// timestamp is not forwarded; zap stamps entries itself.
func (l *Logger) Log(record *logging.Record) {
	if record == nil {
		return
	}

	fields := recordFieldsToZap(record)

	switch record.Level() {
	case logging.LevelTrace, logging.LevelDebug:
		l.must().Debug(record.Message(), fields...)
	case logging.LevelInfo:
		l.must().Info(record.Message(), fields...)
	case logging.LevelWarn:
		l.must().Warn(record.Message(), fields...)
	case logging.LevelError:
		l.must().Error(record.Message(), fields...)
	default:
		l.must().Info(record.Message(), fields...)
	}
}

// Sync flushes buffered entries. Call it on process shutdown.
func (l *Logger) Sync() error {
	return l.must().Sync()
}

// Level returns the runtime-adjustable level handle for this logger.
func (l *Logger) Level() zap.AtomicLevel {
	return l.atomicLevel
}

// Raw returns the underlying zap logger.
func (l *Logger) Raw() *zap.Logger {
	return l.must()
}

// recordFieldsToZap converts a record's fields and request ID to zap fields.
func recordFieldsToZap(record *logging.Record) []zap.Field {
	recordFields := record.Fields()

	fields := make([]zap.Field, 0, len(recordFields)+1)
	for key, value := range recordFields {
		fields = append(fields, zap.Any(key, value))
	}

	if requestID, ok := record.RequestID(); ok {
		fields = append(fields, zap.String("request_id", requestID))
	}

	return fields
}
