// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the development backend. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the bearer token and
	// token signing parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local SQLite store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network settings for the development backend.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the backend address and outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds intervals and retry policy of background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Metrics holds the Prometheus exporter settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level values: authentication and logging.
type App struct {
	// Token is the bearer token attached to every backend request. It is
	// persisted in the local store on first start so later runs can omit it.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// TokenSignKey is the secret the development backend uses to sign and
	// verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in development tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a development token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogFile is the path of the rotated client log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Server holds network and timeout settings for the development backend.
type Server struct {
	// HTTPAddress is the TCP address the backend listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite file path (e.g. "cadet-sync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings for the outbound REST adapter.
type Adapter struct {
	// HTTPAddress is the backend base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request so a hung call cannot hold
	// the single-sync guard (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is how often the queue is drained while online.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// CacheRefreshInterval is how often reference data is refreshed while
	// online.
	// Env: WORKERS_CACHE_REFRESH_INTERVAL
	CacheRefreshInterval time.Duration `env:"CACHE_REFRESH_INTERVAL"`

	// QueuePollInterval is how often the pending-count is re-read.
	// Env: WORKERS_QUEUE_POLL_INTERVAL
	QueuePollInterval time.Duration `env:"QUEUE_POLL_INTERVAL"`

	// ProbeInterval is how often backend reachability is probed.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// MaxAttempts flags queue items for manual attention once they have
	// failed this many passes. Zero disables flagging. Items are never
	// dropped because of it.
	// Env: WORKERS_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// MaxBackoff caps the interval growth of the periodic sync worker while
	// passes keep failing transiently.
	// Env: WORKERS_MAX_BACKOFF
	MaxBackoff time.Duration `env:"MAX_BACKOFF"`
}

// Metrics holds the Prometheus exporter configuration.
type Metrics struct {
	// Address is where /metrics is served. Empty disables the exporter.
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
