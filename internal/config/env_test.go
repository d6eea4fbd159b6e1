// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN":          "bearer",
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",
		"APP_LOG_FILE":       "/tmp/cadet.log",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_ADDRESS":         "http://backend:8080",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"WORKERS_SYNC_INTERVAL":          "2m",
		"WORKERS_CACHE_REFRESH_INTERVAL": "5m",
		"WORKERS_QUEUE_POLL_INTERVAL":    "5s",
		"WORKERS_PROBE_INTERVAL":         "15s",
		"WORKERS_MAX_ATTEMPTS":           "12",
		"WORKERS_MAX_BACKOFF":            "30m",

		"METRICS_ADDRESS": "localhost:9100",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/var/lib/cadet/cadet.db",
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnvFrom(cfg, environ)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "bearer", cfg.App.Token)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "/tmp/cadet.log", cfg.App.LogFile)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://backend:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 5*time.Minute, cfg.Workers.CacheRefreshInterval)
	assert.Equal(t, 5*time.Second, cfg.Workers.QueuePollInterval)
	assert.Equal(t, 15*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, 12, cfg.Workers.MaxAttempts)
	assert.Equal(t, 30*time.Minute, cfg.Workers.MaxBackoff)

	assert.Equal(t, "localhost:9100", cfg.Metrics.Address)
	assert.Equal(t, "/var/lib/cadet/cadet.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_PartialFields(t *testing.T) {
	environ := map[string]string{
		"ADAPTER_ADDRESS": "localhost:8080",
	}

	cfg := &StructuredConfig{}
	err := parseEnvFrom(cfg, environ)

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.App.Token)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Workers.MaxAttempts)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	environ := map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	}

	cfg := &StructuredConfig{}
	err := parseEnvFrom(cfg, environ)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
