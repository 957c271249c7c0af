// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// MinMasterSecretLen is the shortest master secret accepted at startup.
const MinMasterSecretLen = 16

// Supported audit database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// defaults returns the base layer every source is merged onto. Secrets have
// no default.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "info",
		},
		Crypto: Crypto{
			KDFTime:           1,
			KDFMemoryKiB:      64 * 1024,
			KDFThreads:        4,
			PasswordTime:      3,
			PasswordMemoryKiB: 64 * 1024,
			WorkerLimit:       4,
			KeyContexts:       []string{"pii", "billing", "contact"},
		},
		Guard: Guard{
			MaxAttempts:    5,
			APIMaxRequests: 120,
			Window:         time.Minute,
			SweepInterval:  5 * time.Minute,
		},
		Export: Export{
			ObfuscatorTimeout: 10 * time.Second,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Auth: Auth{
			TokenIssuer: "page-builder",
		},
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.Crypto.MasterSecret) < MinMasterSecretLen {
		return fmt.Errorf("%w: master secret must be at least %d bytes", ErrInvalidCryptoConfigs, MinMasterSecretLen)
	}
	if cfg.Crypto.KDFTime == 0 || cfg.Crypto.KDFMemoryKiB == 0 || cfg.Crypto.KDFThreads == 0 ||
		cfg.Crypto.PasswordTime == 0 || cfg.Crypto.PasswordMemoryKiB == 0 || cfg.Crypto.WorkerLimit < 1 {
		return fmt.Errorf("%w: cost parameters must be positive", ErrInvalidCryptoConfigs)
	}

	if cfg.Guard.MaxAttempts < 1 || cfg.Guard.APIMaxRequests < 1 || cfg.Guard.Window <= 0 || cfg.Guard.SweepInterval <= 0 {
		return ErrInvalidGuardConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}
