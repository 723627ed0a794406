// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is prepended to every `env` tag lookup on [Config], so all SDK
// environment variables live in the OBS_ namespace (OBS_HOST, OBS_PORT, ...).
const envPrefix = "OBS_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` tags defined on [Config].
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *Config) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
