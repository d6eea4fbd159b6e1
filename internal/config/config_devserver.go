package config

import (
	"fmt"
	"time"
)

// DevServerConfig is the configuration view of the development backend.
type DevServerConfig struct {
	Server        Server
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// GetDevServerConfig builds and validates the development backend view of
// the merged structured configuration.
func GetDevServerConfig() (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := &DevServerConfig{
		Server: Server{
			HTTPAddress:    orString(cfg.Server.HTTPAddress, "localhost:8080"),
			RequestTimeout: orDuration(cfg.Server.RequestTimeout, 30*time.Second),
		},
		TokenSignKey:  cfg.App.TokenSignKey,
		TokenIssuer:   orString(cfg.App.TokenIssuer, "cadet-sync-dev"),
		TokenDuration: orDuration(cfg.App.TokenDuration, 24*time.Hour),
	}

	return devCfg, devCfg.validate()
}
