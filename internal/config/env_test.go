// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":   "1.2.3",
		"APP_LOG_LEVEL": "warn",

		"CRYPTO_MASTER_SECRET":       "0123456789abcdef0123",
		"CRYPTO_KDF_TIME":            "2",
		"CRYPTO_KDF_MEMORY_KIB":      "32768",
		"CRYPTO_KDF_THREADS":         "2",
		"CRYPTO_PASSWORD_TIME":       "3",
		"CRYPTO_PASSWORD_MEMORY_KIB": "65536",
		"CRYPTO_WORKER_LIMIT":        "8",
		"CRYPTO_KEY_CONTEXTS":        "billing,cards",

		"GUARD_MAX_ATTEMPTS":   "10",
		"GUARD_WINDOW":         "2m",
		"GUARD_SWEEP_INTERVAL": "10m",

		"EXPORT_OBFUSCATOR_URL":     "http://obf:9000",
		"EXPORT_OBFUSCATOR_TIMEOUT": "5s",
		"EXPORT_OBFUSCATE":          "true",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"AUTH_TOKEN_SIGN_KEY": "jwt_secret",
		"AUTH_TOKEN_ISSUER":   "test_issuer",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "/var/lib/audit.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)

	assert.Equal(t, "0123456789abcdef0123", cfg.Crypto.MasterSecret)
	assert.Equal(t, uint32(2), cfg.Crypto.KDFTime)
	assert.Equal(t, uint32(32768), cfg.Crypto.KDFMemoryKiB)
	assert.Equal(t, uint8(2), cfg.Crypto.KDFThreads)
	assert.Equal(t, uint32(3), cfg.Crypto.PasswordTime)
	assert.Equal(t, uint32(65536), cfg.Crypto.PasswordMemoryKiB)
	assert.Equal(t, int64(8), cfg.Crypto.WorkerLimit)
	assert.Equal(t, []string{"billing", "cards"}, cfg.Crypto.KeyContexts)

	assert.Equal(t, 10, cfg.Guard.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.Guard.Window)
	assert.Equal(t, 10*time.Minute, cfg.Guard.SweepInterval)

	assert.Equal(t, "http://obf:9000", cfg.Export.ObfuscatorURL)
	assert.Equal(t, 5*time.Second, cfg.Export.ObfuscatorTimeout)
	assert.True(t, cfg.Export.Obfuscate)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "jwt_secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.Auth.TokenIssuer)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "/var/lib/audit.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CRYPTO_MASTER_SECRET": "0123456789abcdef",
		"SERVER_ADDRESS":       "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "0123456789abcdef", cfg.Crypto.MasterSecret)
	assert.Zero(t, cfg.Crypto.KDFTime)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	// Others untouched
	assert.Equal(t, Guard{}, cfg.Guard)
	assert.Equal(t, Auth{}, cfg.Auth)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"GUARD_WINDOW": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidInteger(t *testing.T) {
	setEnvVars(t, map[string]string{"GUARD_MAX_ATTEMPTS": "many"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",
		"APP_LOG_LEVEL",

		"CRYPTO_MASTER_SECRET",
		"CRYPTO_KDF_TIME",
		"CRYPTO_KDF_MEMORY_KIB",
		"CRYPTO_KDF_THREADS",
		"CRYPTO_PASSWORD_TIME",
		"CRYPTO_PASSWORD_MEMORY_KIB",
		"CRYPTO_WORKER_LIMIT",
		"CRYPTO_KEY_CONTEXTS",

		"GUARD_MAX_ATTEMPTS",
		"GUARD_WINDOW",
		"GUARD_SWEEP_INTERVAL",

		"EXPORT_OBFUSCATOR_URL",
		"EXPORT_OBFUSCATOR_TIMEOUT",
		"EXPORT_OBFUSCATE",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"AUTH_TOKEN_SIGN_KEY",
		"AUTH_TOKEN_ISSUER",

		"STORAGE_DB_DRIVER",
		"STORAGE_DB_DATABASE_URI",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
