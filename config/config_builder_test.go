// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultsOnly(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg, err := newConfigBuilder().withEnv().withDefaults().build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 4455, cfg.Port)
	assert.Empty(t, cfg.Password)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestBuild_EnvOverridesDefaults(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"OBS_HOST": "obs.example.com",
		"OBS_PORT": "4460",
	})

	// Act
	cfg, err := newConfigBuilder().withEnv().withDefaults().build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "obs.example.com", cfg.Host)
	assert.Equal(t, 4460, cfg.Port)
	// Fields not set via env keep the defaults
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestBuild_EnvOverridesJSON(t *testing.T) {
	// Arrange
	jsonPath := writeJSONConfig(t, `{"host": "json-host", "port": 5000, "timeout": "25s"}`)
	setEnvVars(t, map[string]string{
		"OBS_HOST":   "env-host",
		"OBS_CONFIG": jsonPath,
	})

	// Act
	cfg, err := newConfigBuilder().withEnv().withJSON().withDefaults().build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "env-host", cfg.Host, "env value must win over JSON")
	assert.Equal(t, 5000, cfg.Port, "JSON value must win over defaults")
	assert.Equal(t, 25*time.Second, cfg.Timeout)
}

func TestBuild_JSONFileMissing(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"OBS_CONFIG": "/definitely/not/a/real/file.json",
	})

	// Act
	_, err := newConfigBuilder().withEnv().withJSON().withDefaults().build()

	// Assert
	require.Error(t, err)
}

func TestBuild_InvalidPortFailsValidation(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"OBS_PORT": "70000"})

	// Act
	_, err := newConfigBuilder().withEnv().withDefaults().build()

	// Assert
	require.ErrorIs(t, err, ErrInvalidPort)
}

func TestWebSocketURL(t *testing.T) {
	cfg := &Config{Host: "127.0.0.1", Port: 4455}
	assert.Equal(t, "ws://127.0.0.1:4455", cfg.WebSocketURL())

	cfg = &Config{Host: "::1", Port: 4455}
	assert.Equal(t, "ws://[::1]:4455", cfg.WebSocketURL())
}

func writeJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
