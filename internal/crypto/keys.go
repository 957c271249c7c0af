// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-page-guard/internal/config"
	"golang.org/x/crypto/argon2"
	"golang.org/x/sync/singleflight"
)

// DefaultKeyContext is the context label used by [Vault.Encrypt].
const DefaultKeyContext = "sensitive-data"

const (
	keyLen = 32

	defaultKDFTime    = 1
	defaultKDFMemory  = 64 * 1024
	defaultKDFThreads = 4
)

// keyManager is the private implementation of [KeyManager].
type keyManager struct {
	secret []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8

	mu       sync.RWMutex
	keys     map[string][]byte
	inflight singleflight.Group
}

// NewKeyManager validates the master secret once and returns a [KeyManager]
// bound to it. Zero cost parameters fall back to 1 pass, 64 MiB, 4 threads.
//
// Returns an error wrapping [ErrConfiguration] when the secret is empty or
// shorter than [config.MinMasterSecretLen] bytes.
func NewKeyManager(cfg config.Crypto) (KeyManager, error) {
	if cfg.MasterSecret == "" {
		return nil, fmt.Errorf("%w: master secret is not set", ErrConfiguration)
	}
	if len(cfg.MasterSecret) < config.MinMasterSecretLen {
		return nil, fmt.Errorf("%w: master secret must be at least %d bytes", ErrConfiguration, config.MinMasterSecretLen)
	}

	k := &keyManager{
		secret:       []byte(cfg.MasterSecret),
		argonTime:    cfg.KDFTime,
		argonMemory:  cfg.KDFMemoryKiB,
		argonThreads: cfg.KDFThreads,
		keys:         make(map[string][]byte),
	}
	if k.argonTime == 0 {
		k.argonTime = defaultKDFTime
	}
	if k.argonMemory == 0 {
		k.argonMemory = defaultKDFMemory
	}
	if k.argonThreads == 0 {
		k.argonThreads = defaultKDFThreads
	}

	return k, nil
}

// DeriveKey implements [KeyManager]. The Argon2id salt is SHA-256 of the
// context label. Keys are cached per label for the process lifetime, so
// callers must only pass labels from a fixed set.
//
// Derivation runs outside the cache lock; concurrent requests for the same
// label share one derivation.
func (k *keyManager) DeriveKey(context string) []byte {
	k.mu.RLock()
	key, ok := k.keys[context]
	k.mu.RUnlock()
	if ok {
		return bytes.Clone(key)
	}

	v, _, _ := k.inflight.Do(context, func() (any, error) {
		salt := sha256.Sum256([]byte(context))
		key := argon2.IDKey(k.secret, salt[:], k.argonTime, k.argonMemory, k.argonThreads, keyLen)

		k.mu.Lock()
		k.keys[context] = key
		k.mu.Unlock()
		return key, nil
	})

	return bytes.Clone(v.([]byte))
}

// cached reports how many keys are held. Used by tests.
func (k *keyManager) cached() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.keys)
}
