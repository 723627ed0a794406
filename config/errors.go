package config

import "errors"

// Validation errors returned by [Config.validate] when the merged
// configuration is incomplete or out of range.
var (
	// ErrInvalidPort indicates a port outside the 1-65535 range.
	ErrInvalidPort = errors.New("port must be between 1 and 65535")
	// ErrInvalidTimeout indicates a non-positive request timeout.
	ErrInvalidTimeout = errors.New("timeout must be positive")
	// ErrInvalidRetries indicates a negative retry count.
	ErrInvalidRetries = errors.New("max retries must not be negative")
	// ErrInvalidHost indicates an empty host.
	ErrInvalidHost = errors.New("host must not be empty")
)
