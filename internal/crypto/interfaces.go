// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-page-guard/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyManager выводит симметричные ключи из мастер-секрета процесса.
//
// Вывод детерминирован: тот же мастер-секрет, та же метка контекста и те же
// параметры стоимости всегда дают тот же ключ, поэтому данные,
// зашифрованные до перезапуска, остаются читаемыми.
type KeyManager interface {
	// DeriveKey возвращает 32-байтовый ключ для метки контекста.
	// Возвращается копия, вызывающий может её менять.
	DeriveKey(context string) []byte
}

// Vault шифрует отдельные чувствительные поля с аутентификацией.
//
// Схема работы:
//
//	key    = KeyManager.DeriveKey(context)           (Шаг 1)
//	owned  = Vault.ForOwner(userID)                  (Шаг 2)
//	field  = owned.EncryptWithContext(text, context) (Шаг 3)
//	text   = owned.Decrypt(field)                    (Шаг 4)
type Vault interface {
	// ForOwner возвращает Vault, привязанный к владельцу: id владельца
	// уходит в GCM как associated data. Поле, зашифрованное для одного
	// владельца, не откроется ни для какого другого.
	// Шаг 2.
	ForOwner(owner string) Vault

	// Encrypt шифрует plaintext ключом контекста по умолчанию. Каждый вызов
	// берёт новый случайный IV.
	Encrypt(plaintext string) (models.EncryptedField, error)

	// EncryptWithContext шифрует plaintext ключом, выведенным для context.
	// Метка контекста записывается в поле Salt. Метка, которой нет в
	// конфигурации, даёт ErrValidation, ключ для неё не выводится.
	// Шаг 3.
	EncryptWithContext(plaintext, context string) (models.EncryptedField, error)

	// Decrypt открывает поле, зашифрованное Encrypt или EncryptWithContext.
	// Любая испорченная или подменённая часть даёт ErrIntegrity и никакого
	// открытого текста.
	// Шаг 4.
	Decrypt(field models.EncryptedField) (string, error)

	// Mask renders a display-safe view of plaintext. It never needs and
	// never accepts ciphertext.
	Mask(plaintext string, kind models.MaskKind) string

	// EncryptCard seals a card number and keeps its last four digits in the
	// clear beside the ciphertext.
	EncryptCard(number string) (models.EncryptedCard, error)

	// EncryptAccount is EncryptCard for bank account numbers.
	EncryptAccount(number string) (models.EncryptedCard, error)
}

// CredentialHasher hashes and verifies passwords.
type CredentialHasher interface {
	// HashPassword hashes password with a fresh random salt.
	HashPassword(password string) (models.PasswordHash, error)

	// VerifyPassword reports whether password matches the hex-encoded hash
	// and salt. Comparison is constant time.
	VerifyPassword(password, hash, salt string) bool

	// ValidateStrength checks password against every strength rule and
	// reports all violations.
	ValidateStrength(password string) models.StrengthReport
}

// OTP generates and verifies time-based one-time codes.
type OTP interface {
	// Enroll returns a new base32-encoded shared secret for account with
	// its otpauth:// provisioning URI.
	Enroll(issuer, account string) (models.OTPSecret, error)

	// GenerateCode returns the 6-digit code for secret in the given 30 s
	// time bucket.
	GenerateCode(secret []byte, bucket uint64) string

	// VerifyCode checks code against the current time bucket only.
	VerifyCode(secret []byte, code string) bool
}
