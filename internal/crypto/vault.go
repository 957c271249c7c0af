// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-page-guard/models"
)

const (
	ivSize  = 12
	tagSize = 16

	ownerBindingPrefix = "owner:"
)

// vault is the private implementation of [Vault].
type vault struct {
	keys     KeyManager
	contexts map[string]struct{}

	// binding is the GCM associated data. Empty for the unbound vault.
	binding []byte
}

// NewVault returns a [Vault] sealing fields with AES-256-GCM under keys from
// km. contexts lists the key context labels accepted besides
// [DefaultKeyContext]; any other label is refused before a key is derived.
func NewVault(km KeyManager, contexts ...string) Vault {
	allowed := make(map[string]struct{}, len(contexts)+1)
	allowed[DefaultKeyContext] = struct{}{}
	for _, c := range contexts {
		if c = strings.TrimSpace(c); c != "" {
			allowed[c] = struct{}{}
		}
	}
	return &vault{keys: km, contexts: allowed}
}

// ForOwner implements [Vault]. The owner id becomes GCM associated data, so
// a field sealed for one owner fails to open for any other.
func (v *vault) ForOwner(owner string) Vault {
	return &vault{
		keys:     v.keys,
		contexts: v.contexts,
		binding:  []byte(ownerBindingPrefix + owner),
	}
}

// Encrypt implements [Vault].
func (v *vault) Encrypt(plaintext string) (models.EncryptedField, error) {
	return v.seal(plaintext, DefaultKeyContext, "")
}

// EncryptWithContext implements [Vault]. An empty context is the default
// context and leaves Salt empty.
func (v *vault) EncryptWithContext(plaintext, context string) (models.EncryptedField, error) {
	if context == "" || context == DefaultKeyContext {
		return v.seal(plaintext, DefaultKeyContext, "")
	}
	if !v.allowed(context) {
		return models.EncryptedField{}, fmt.Errorf("%w: unknown key context %q", ErrValidation, context)
	}
	return v.seal(plaintext, context, context)
}

// seal encrypts plaintext and splits the GCM output into ciphertext and tag.
func (v *vault) seal(plaintext, context, salt string) (models.EncryptedField, error) {
	gcm, err := v.gcm(context)
	if err != nil {
		return models.EncryptedField{}, err
	}

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.EncryptedField{}, fmt.Errorf("generate iv: %w", err)
	}

	// Seal appends the tag to the ciphertext.
	sealed := gcm.Seal(nil, iv, []byte(plaintext), v.binding)
	ciphertext, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	return models.EncryptedField{
		Ciphertext: hex.EncodeToString(ciphertext),
		IV:         hex.EncodeToString(iv),
		AuthTag:    hex.EncodeToString(tag),
		Salt:       salt,
	}, nil
}

// Decrypt implements [Vault].
func (v *vault) Decrypt(field models.EncryptedField) (string, error) {
	ciphertext, err := hex.DecodeString(field.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: malformed ciphertext", ErrIntegrity)
	}
	iv, err := hex.DecodeString(field.IV)
	if err != nil || len(iv) != ivSize {
		return "", fmt.Errorf("%w: malformed iv", ErrIntegrity)
	}
	tag, err := hex.DecodeString(field.AuthTag)
	if err != nil || len(tag) != tagSize {
		return "", fmt.Errorf("%w: malformed auth tag", ErrIntegrity)
	}

	context := DefaultKeyContext
	if field.Salt != "" {
		context = field.Salt
	}
	// An unknown label was never used to seal anything here.
	if !v.allowed(context) {
		return "", fmt.Errorf("%w: unknown key context", ErrIntegrity)
	}

	gcm, err := v.gcm(context)
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, iv, append(ciphertext, tag...), v.binding)
	if err != nil {
		return "", ErrIntegrity
	}

	return string(plaintext), nil
}

// EncryptCard implements [Vault].
func (v *vault) EncryptCard(number string) (models.EncryptedCard, error) {
	return v.encryptNumber(number, "card")
}

// EncryptAccount implements [Vault].
func (v *vault) EncryptAccount(number string) (models.EncryptedCard, error) {
	return v.encryptNumber(number, "account")
}

// encryptNumber seals the number exactly as given and keeps the last four
// digits of its normalised form.
func (v *vault) encryptNumber(number, what string) (models.EncryptedCard, error) {
	digits, ok := normaliseNumber(number)
	if !ok {
		return models.EncryptedCard{}, fmt.Errorf("%w: %s number must contain at least 4 digits and nothing but digits, spaces or dashes", ErrValidation, what)
	}

	field, err := v.Encrypt(number)
	if err != nil {
		return models.EncryptedCard{}, err
	}

	return models.EncryptedCard{
		Field: field,
		Last4: digits[len(digits)-4:],
	}, nil
}

func (v *vault) allowed(context string) bool {
	_, ok := v.contexts[context]
	return ok
}

func (v *vault) gcm(context string) (cipher.AEAD, error) {
	key := v.keys.DeriveKey(context)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// normaliseNumber strips spaces and dashes. It reports false when anything
// other than digits remains or fewer than four digits are left.
func normaliseNumber(number string) (string, bool) {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(number)
	if len(digits) < 4 {
		return "", false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return digits, true
}
