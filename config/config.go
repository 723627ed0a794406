// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the connection configuration for the go-obs-remote SDK. It is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - env  — environment variable name, looked up with the "OBS_" prefix
//     (caarlos0/env).
//   - json — field name inside the optional JSON configuration file.
type Config struct {
	// Host is the hostname or IP address of the machine running OBS Studio.
	// Env: OBS_HOST. Default: "127.0.0.1".
	Host string `env:"HOST" json:"host"`

	// Port is the TCP port of the obs-websocket server.
	// Env: OBS_PORT. Default: 4455.
	Port int `env:"PORT" json:"port"`

	// Password is the obs-websocket authentication password. Leave empty
	// when authentication is disabled in OBS.
	// Env: OBS_PASSWORD.
	Password string `env:"PASSWORD" json:"password"`

	// Timeout is the maximum duration allowed for a single request
	// (including the connection handshake) before it is abandoned.
	// Env: OBS_TIMEOUT. Default: 10s.
	Timeout time.Duration `env:"TIMEOUT" json:"timeout"`

	// MaxRetries is the number of additional attempts made for a request
	// that failed at the transport level. Protocol-level request errors are
	// never retried.
	// Env: OBS_MAX_RETRIES. Default: 3.
	MaxRetries int `env:"MAX_RETRIES" json:"max_retries"`

	// EventSubscriptions is the obs-websocket event subscription bitmask
	// sent during identification. Zero means the server default (all
	// non-high-volume events).
	// Env: OBS_EVENT_SUBSCRIPTIONS.
	EventSubscriptions int `env:"EVENT_SUBSCRIPTIONS" json:"event_subscriptions"`

	// LogLevel is the textual log level applied at startup
	// ("debug", "info", "warn", "error").
	// Env: OBS_LOG_LEVEL. Default: "info".
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the OBS_CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Default returns a Config populated with the built-in defaults. It is
// merged below all explicit configuration sources.
func Default() *Config {
	return &Config{
		Host:       "127.0.0.1",
		Port:       4455,
		Timeout:    10 * time.Second,
		MaxRetries: 3,
		LogLevel:   "info",
	}
}

// WebSocketURL returns the ws:// URL of the obs-websocket server described
// by the configuration.
func (cfg *Config) WebSocketURL() string {
	return "ws://" + net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
}

// Get loads, merges, and validates the SDK configuration from all available
// sources in the following priority order (first source wins for a field it
// sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func Get() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// GetEnv behaves like Get but skips command-line flag parsing. It is meant
// for programs that manage their own flag surface (for example a cobra CLI)
// and merge address overrides on top themselves.
func GetEnv() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
