// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied to the client view when a source leaves a value unset.
const (
	DefaultRequestTimeout       = 10 * time.Second
	DefaultSyncInterval         = time.Minute
	DefaultCacheRefreshInterval = 5 * time.Minute
	DefaultQueuePollInterval    = 5 * time.Second
	DefaultProbeInterval        = 10 * time.Second
	DefaultMaxBackoff           = 15 * time.Minute
	DefaultDSN                  = "cadet-sync.db"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Token is the bearer token used for backend calls.
	Token string
	// LogFile is the rotated log file path.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base address.
	HTTPAddress string
	// RequestTimeout is the timeout applied to each outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	SyncInterval         time.Duration
	CacheRefreshInterval time.Duration
	QueuePollInterval    time.Duration
	ProbeInterval        time.Duration
	MaxAttempts          int
	MaxBackoff           time.Duration
}

// ClientMetrics contains the Prometheus exporter settings.
type ClientMetrics struct {
	Address string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Metrics ClientMetrics
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Token:   cfg.App.Token,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: orDuration(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: orString(cfg.Storage.DB.DSN, DefaultDSN)},
		},
		Workers: ClientWorkers{
			SyncInterval:         orDuration(cfg.Workers.SyncInterval, DefaultSyncInterval),
			CacheRefreshInterval: orDuration(cfg.Workers.CacheRefreshInterval, DefaultCacheRefreshInterval),
			QueuePollInterval:    orDuration(cfg.Workers.QueuePollInterval, DefaultQueuePollInterval),
			ProbeInterval:        orDuration(cfg.Workers.ProbeInterval, DefaultProbeInterval),
			MaxAttempts:          cfg.Workers.MaxAttempts,
			MaxBackoff:           orDuration(cfg.Workers.MaxBackoff, DefaultMaxBackoff),
		},
		Metrics: ClientMetrics{Address: cfg.Metrics.Address},
	}

	return clientCfg
}

func orDuration(v, fallback time.Duration) time.Duration {
	if v <= 0 {
		return fallback
	}
	return v
}

func orString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
