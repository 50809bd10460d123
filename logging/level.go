package logging

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log record.
//
// Higher numeric values indicate higher severity (LevelTrace=0 is the most
// verbose, LevelError=4 the most severe), so levels compare directly with the
// < and >= operators.
type Level uint8

// Level constants define record severity in ascending order.
//
//	LevelTrace (0) -- finest-grained diagnostics
//	LevelDebug (1) -- development diagnostics
//	LevelInfo  (2) -- normal operation
//	LevelWarn  (3) -- degraded but functioning
//	LevelError (4) -- operation failed
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the fixed uppercase literal for the level.
func (level Level) String() string {
	switch level {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel takes a level literal and returns a Level constant. It accepts
// the canonical TRACE/DEBUG/INFO/WARN/ERROR literals plus the WARNING alias,
// case-insensitively.
func ParseLevel(lvl string) (Level, error) {
	switch strings.ToLower(lvl) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}

	var l Level

	return l, fmt.Errorf("%w: %q", ErrInvalidLogLevel, lvl)
}
