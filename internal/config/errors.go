package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing backend address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an in-memory DSN that would lose the queue on exit).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative max attempts value).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a development backend without a token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
