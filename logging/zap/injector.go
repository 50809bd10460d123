package zap

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/the-yaml-life/tyl-logging/logging"
)

const callerSkipFrames = 1

// New creates a zap-backed logger from a facade config and returns it with a
// runtime-adjustable level handle. The config's environment selects the
// baseline zap profile and the service name is stamped on every entry.
func New(cfg logging.Config) (*Logger, zap.AtomicLevel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid logging config: %w", err)
	}

	baseConfig := buildConfigByEnvironment(cfg.Environment)

	level := zap.NewAtomicLevelAt(levelToZap(cfg.Level))
	baseConfig.Level = level
	baseConfig.DisableStacktrace = true
	baseConfig.InitialFields = map[string]any{"service": cfg.ServiceName}

	built, err := baseConfig.Build(zap.AddCallerSkip(callerSkipFrames))
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to build logger: %w", err)
	}

	return &Logger{logger: built, atomicLevel: level}, level, nil
}

// levelToZap converts a facade level to a zapcore.Level. Trace collapses into
// debug; zap has no finer level.
func levelToZap(level logging.Level) zapcore.Level {
	switch level {
	case logging.LevelTrace, logging.LevelDebug:
		return zapcore.DebugLevel
	case logging.LevelInfo:
		return zapcore.InfoLevel
	case logging.LevelWarn:
		return zapcore.WarnLevel
	case logging.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func buildConfigByEnvironment(environment logging.Environment) zap.Config {
	if environment == logging.EnvironmentDevelopment || environment == logging.EnvironmentTest {
		cfg := zap.NewDevelopmentConfig()
		cfg.Encoding = "json"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

		return cfg
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg
}
