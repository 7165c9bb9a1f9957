package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidRemoteConfigs indicates missing or malformed remote API
	// settings (base URL, username, password, timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
