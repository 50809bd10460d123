package logging

import (
	"fmt"
	"os"
	"strings"
)

// Environment identifies the runtime profile a service boots with. Adapters
// use it to pick sensible defaults (a development zap profile versus a
// production one, for instance).
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
	EnvironmentTest        Environment = "test"
)

// Environment variable names read by EnvironmentFromEnv and Config.MergeEnv.
// The TYL_-prefixed form always wins over the bare alias.
const (
	EnvKeyLogLevel         = "TYL_LOG_LEVEL"
	EnvKeyLogLevelAlias    = "LOG_LEVEL"
	EnvKeyServiceName      = "TYL_SERVICE_NAME"
	EnvKeyServiceNameAlias = "SERVICE_NAME"
	EnvKeyEnvironment      = "TYL_ENVIRONMENT"
	EnvKeyEnvironmentAlias = "ENVIRONMENT"
)

// ParseEnvironment takes an environment literal and returns an Environment
// constant. It accepts development/dev, production/prod, and test/testing,
// case-insensitively.
func ParseEnvironment(env string) (Environment, error) {
	switch strings.ToLower(env) {
	case "development", "dev":
		return EnvironmentDevelopment, nil
	case "production", "prod":
		return EnvironmentProduction, nil
	case "test", "testing":
		return EnvironmentTest, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidEnvironment, env)
}

// EnvironmentFromEnv derives the runtime environment from TYL_ENVIRONMENT,
// then ENVIRONMENT. The lookup is read-through (never cached) and total:
// unknown or absent values fall back to development.
func EnvironmentFromEnv() Environment {
	raw, ok := getenvFirst(EnvKeyEnvironment, EnvKeyEnvironmentAlias)
	if !ok {
		return EnvironmentDevelopment
	}

	environment, err := ParseEnvironment(raw)
	if err != nil {
		return EnvironmentDevelopment
	}

	return environment
}

// Config carries the logging settings a service boots with.
type Config struct {
	// ServiceName identifies the emitting service. Must be non-empty.
	ServiceName string
	// Level is the minimum severity the service intends to emit.
	Level Level
	// Environment selects the runtime profile.
	Environment Environment
}

// ConfigPlugin is the surface a host configuration aggregator drives: it
// names the section and its env prefix, validates the merged values, and
// overlays process-environment variables.
type ConfigPlugin interface {
	Name() string
	EnvPrefix() string
	Validate() error
	MergeEnv() error
}

// Compile-time assertion: *Config implements ConfigPlugin.
var _ ConfigPlugin = (*Config)(nil)

// NewConfig creates a config for the named service: Info level, environment
// derived from the process environment.
func NewConfig(serviceName string) Config {
	return Config{
		ServiceName: serviceName,
		Level:       LevelInfo,
		Environment: EnvironmentFromEnv(),
	}
}

// ConfigFromEnv builds a config entirely from the process environment, using
// "app" as the service name when none is set.
func ConfigFromEnv() (Config, error) {
	config := NewConfig("app")

	if err := config.MergeEnv(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// WithLevel returns the config with the minimum level replaced, builder-style.
func (c Config) WithLevel(level Level) Config {
	c.Level = level
	return c
}

// WithEnvironment returns the config with the environment replaced,
// builder-style.
func (c Config) WithEnvironment(environment Environment) Config {
	c.Environment = environment
	return c
}

// Name identifies this configuration section to a host aggregator.
func (c *Config) Name() string {
	return "logging"
}

// EnvPrefix is the bare prefix this section's alias variables share.
func (c *Config) EnvPrefix() string {
	return "LOG"
}

// Validate reports whether the config can boot a service. The sole rule is a
// non-empty service name.
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return ErrEmptyServiceName
	}

	return nil
}

// MergeEnv overlays the config with process-environment variables: the log
// level, the service name, then the runtime environment. Absent variables
// leave values untouched; invalid level or environment literals stop the
// merge with an error, so values already overlaid stay applied.
func (c *Config) MergeEnv() error {
	if raw, ok := getenvFirst(EnvKeyLogLevel, EnvKeyLogLevelAlias); ok {
		level, err := ParseLevel(raw)
		if err != nil {
			return err
		}

		c.Level = level
	}

	if name, ok := getenvFirst(EnvKeyServiceName, EnvKeyServiceNameAlias); ok {
		c.ServiceName = name
	}

	if raw, ok := getenvFirst(EnvKeyEnvironment, EnvKeyEnvironmentAlias); ok {
		environment, err := ParseEnvironment(raw)
		if err != nil {
			return err
		}

		c.Environment = environment
	}

	return nil
}

// getenvFirst returns the first non-empty value among the given variables.
// Empty counts as unset.
func getenvFirst(keys ...string) (string, bool) {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value, true
		}
	}

	return "", false
}
