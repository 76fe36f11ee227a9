package config

import "errors"

// Validation errors returned by [ServerConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing store address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid server storage settings
	// (for example, empty DSN or blob directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid token or signing settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates an invalid listen address or
	// public URL.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
