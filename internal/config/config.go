// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-page-guard service. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the version string and log level.
	App App `envPrefix:"APP_"`

	// Crypto holds the master secret and the cost parameters of the key
	// derivation and password hashing functions.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Guard holds rate limiting settings.
	Guard Guard `envPrefix:"GUARD_"`

	// Export holds defaults for bundle packaging and the obfuscator.
	Export Export `envPrefix:"EXPORT_"`

	// Storage holds the audit log database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds the parameters used to verify bearer tokens issued by the
	// identity service.
	Auth Auth `envPrefix:"AUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Crypto holds secret material and KDF tuning.
type Crypto struct {
	// MasterSecret is the root secret every field key is derived from.
	// It has no default: startup fails when it is missing.
	// Env: CRYPTO_MASTER_SECRET
	MasterSecret string `env:"MASTER_SECRET" json:"-"`

	// KDFTime is the Argon2id time cost (passes over memory) used when
	// deriving field keys.
	// Env: CRYPTO_KDF_TIME
	KDFTime uint32 `env:"KDF_TIME"`

	// KDFMemoryKiB is the Argon2id memory cost in KiB for field keys.
	// Env: CRYPTO_KDF_MEMORY_KIB
	KDFMemoryKiB uint32 `env:"KDF_MEMORY_KIB"`

	// KDFThreads is the Argon2id parallelism for field keys.
	// Env: CRYPTO_KDF_THREADS
	KDFThreads uint8 `env:"KDF_THREADS"`

	// PasswordTime is the Argon2id time cost for password hashing.
	// Env: CRYPTO_PASSWORD_TIME
	PasswordTime uint32 `env:"PASSWORD_TIME"`

	// PasswordMemoryKiB is the Argon2id memory cost in KiB for password
	// hashing. The defaults target roughly 100ms per verification.
	// Env: CRYPTO_PASSWORD_MEMORY_KIB
	PasswordMemoryKiB uint32 `env:"PASSWORD_MEMORY_KIB"`

	// WorkerLimit caps how many KDF or hashing calls run at the same time.
	// Env: CRYPTO_WORKER_LIMIT
	WorkerLimit int64 `env:"WORKER_LIMIT"`

	// KeyContexts lists the key context labels callers may encrypt under,
	// besides the default one. Fields naming any other label are refused.
	// Env: CRYPTO_KEY_CONTEXTS (comma separated)
	KeyContexts []string `env:"KEY_CONTEXTS" envSeparator:","`
}

// Guard holds rate limiting settings.
type Guard struct {
	// MaxAttempts is the number of calls allowed per identifier per window.
	// Env: GUARD_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// APIMaxRequests is the number of API requests allowed per caller per
	// window by the HTTP middleware.
	// Env: GUARD_API_MAX_REQUESTS
	APIMaxRequests int `env:"API_MAX_REQUESTS"`

	// Window is the fixed window length.
	// Env: GUARD_WINDOW
	Window time.Duration `env:"WINDOW"`

	// SweepInterval is how often expired windows are evicted from memory.
	// Env: GUARD_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// Export holds packaging settings.
type Export struct {
	// ObfuscatorURL is the base URL of a remote obfuscation service. When
	// empty the local minifying obfuscator is used.
	// Env: EXPORT_OBFUSCATOR_URL
	ObfuscatorURL string `env:"OBFUSCATOR_URL"`

	// ObfuscatorTimeout bounds a single remote obfuscation call.
	// Env: EXPORT_OBFUSCATOR_TIMEOUT
	ObfuscatorTimeout time.Duration `env:"OBFUSCATOR_TIMEOUT"`

	// Obfuscate turns script obfuscation on for every export.
	// Env: EXPORT_OBFUSCATE
	Obfuscate bool `env:"OBFUSCATE"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the audit log database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the audit log database.
type DB struct {
	// Driver is "pgx" (PostgreSQL) or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string, or the database file path for SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds bearer token verification settings.
type Auth struct {
	// TokenSignKey is the HMAC secret shared with the identity service.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"-"`

	// TokenIssuer is the expected "iss" claim.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// GetStructuredConfig loads, merges, defaults and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
