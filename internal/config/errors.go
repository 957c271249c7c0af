package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. A missing or
// short master secret is a configuration error and stops the process at
// startup rather than at the first encrypt call.
var (
	// ErrInvalidCryptoConfigs indicates missing or too short secret material.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidGuardConfigs indicates non-positive rate limit settings.
	ErrInvalidGuardConfigs = errors.New("invalid guard configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an unsupported database driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates a missing token sign key or issuer.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
