// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [Config] satisfies all invariants
// before a connection is attempted.
//
// Returns nil if the configuration is valid, or a descriptive error wrapping
// one of the sentinel values from errors.go otherwise.
func (cfg *Config) validate() error {
	if strings.TrimSpace(cfg.Host) == "" {
		return ErrInvalidHost
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, cfg.Timeout)
	}

	if cfg.MaxRetries < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRetries, cfg.MaxRetries)
	}

	return nil
}
