// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-page-guard/internal/config"
	"github.com/MKhiriev/go-page-guard/models"
	"golang.org/x/crypto/argon2"
)

// MinPasswordLength is the shortest password [CredentialHasher.ValidateStrength]
// accepts, counted in runes.
const MinPasswordLength = 12

const (
	saltSize    = 16
	passHashLen = 32

	defaultPasswordTime    = 3
	defaultPasswordMemory  = 64 * 1024
	defaultPasswordThreads = 4
)

// credentialHasher is the private implementation of [CredentialHasher].
type credentialHasher struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewCredentialHasher returns a [CredentialHasher] using Argon2id with the
// password cost parameters from cfg. The defaults (3 passes, 64 MiB) take
// roughly 100ms per hash on commodity hardware.
func NewCredentialHasher(cfg config.Crypto) CredentialHasher {
	h := &credentialHasher{
		argonTime:    cfg.PasswordTime,
		argonMemory:  cfg.PasswordMemoryKiB,
		argonThreads: cfg.KDFThreads,
	}
	if h.argonTime == 0 {
		h.argonTime = defaultPasswordTime
	}
	if h.argonMemory == 0 {
		h.argonMemory = defaultPasswordMemory
	}
	if h.argonThreads == 0 {
		h.argonThreads = defaultPasswordThreads
	}
	return h
}

// HashPassword implements [CredentialHasher]. The output is always 32 bytes
// regardless of password length.
func (h *credentialHasher) HashPassword(password string) (models.PasswordHash, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.PasswordHash{}, fmt.Errorf("generate salt: %w", err)
	}

	return models.PasswordHash{
		Hash: hex.EncodeToString(h.derive(password, salt)),
		Salt: hex.EncodeToString(salt),
	}, nil
}

// VerifyPassword implements [CredentialHasher]. Undecodable hash or salt
// values never match.
func (h *credentialHasher) VerifyPassword(password, hash, salt string) bool {
	want, err := hex.DecodeString(hash)
	if err != nil || len(want) != passHashLen {
		return false
	}
	rawSalt, err := hex.DecodeString(salt)
	if err != nil || len(rawSalt) == 0 {
		return false
	}

	got := h.derive(password, rawSalt)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func (h *credentialHasher) derive(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, h.argonTime, h.argonMemory, h.argonThreads, passHashLen)
}

// ValidateStrength implements [CredentialHasher].
func (h *credentialHasher) ValidateStrength(password string) models.StrengthReport {
	return ValidateStrength(password)
}

// ValidateStrength checks length and character class diversity and returns
// every violated rule in a fixed order.
func ValidateStrength(password string) models.StrengthReport {
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	var violations []models.PasswordViolation
	if utf8.RuneCountInString(password) < MinPasswordLength {
		violations = append(violations, models.PasswordViolation{
			Rule:    models.RuleMinLength,
			Message: fmt.Sprintf("must be at least %d characters long", MinPasswordLength),
		})
	}
	if !lower {
		violations = append(violations, models.PasswordViolation{Rule: models.RuleLowercase, Message: "must contain a lowercase letter"})
	}
	if !upper {
		violations = append(violations, models.PasswordViolation{Rule: models.RuleUppercase, Message: "must contain an uppercase letter"})
	}
	if !digit {
		violations = append(violations, models.PasswordViolation{Rule: models.RuleDigit, Message: "must contain a digit"})
	}
	if !symbol {
		violations = append(violations, models.PasswordViolation{Rule: models.RuleSymbol, Message: "must contain a symbol"})
	}

	return models.StrengthReport{
		IsValid:    len(violations) == 0,
		Violations: violations,
	}
}
