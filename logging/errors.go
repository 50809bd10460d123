package logging

import "errors"

var (
	// ErrEmptyServiceName indicates a config without a service name.
	ErrEmptyServiceName = errors.New("service name must not be empty")
	// ErrInvalidLogLevel indicates a level literal outside the known set.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidEnvironment indicates an environment literal outside the known set.
	ErrInvalidEnvironment = errors.New("invalid environment")
)
