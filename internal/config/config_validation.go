// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every binary. Per-binary requirements are checked by
// the projected views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.MaxAttempts < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.QueuePollInterval <= 0 ||
		cfg.Workers.CacheRefreshInterval <= 0 || cfg.Workers.ProbeInterval <= 0 ||
		cfg.Workers.MaxAttempts < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *DevServerConfig) validate() error {
	if cfg.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
