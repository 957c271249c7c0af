// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedField is the at-rest form of a single sensitive value sealed with
// AES-256-GCM. All members are hex-encoded.
//
// The authentication tag is kept apart from the ciphertext so that storage
// layers with fixed-width columns can hold each part separately.
type EncryptedField struct {
	// Ciphertext is the sealed value without the GCM tag.
	Ciphertext string `json:"ciphertext"`

	// IV is the 12-byte GCM nonce. A fresh one is drawn for every call.
	IV string `json:"iv"`

	// AuthTag is the 16-byte GCM authentication tag.
	AuthTag string `json:"auth_tag"`

	// Salt is the key-derivation context label the field was sealed under.
	// Empty means the vault default context.
	Salt string `json:"salt,omitempty"`
}

// EncryptedCard is a sealed card or bank-account number together with the
// last four digits kept in the clear for routine display.
type EncryptedCard struct {
	Field EncryptedField `json:"field"`
	Last4 string         `json:"last4"`
}

// MaskKind selects the masking rule applied by the vault.
type MaskKind string

const (
	// MaskEmail keeps the first two characters of the local part and the domain.
	MaskEmail MaskKind = "email"

	// MaskCard keeps the last four digits, grouped like a printed card number.
	MaskCard MaskKind = "card"

	// MaskAccount keeps the last four digits of a bank account number.
	MaskAccount MaskKind = "account"
)

// Valid reports whether k is one of the known mask kinds.
func (k MaskKind) Valid() bool {
	switch k {
	case MaskEmail, MaskCard, MaskAccount:
		return true
	}
	return false
}
