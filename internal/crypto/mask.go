// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"

	"github.com/MKhiriev/go-page-guard/models"
)

const (
	maskRune     = '*'
	emailFiller  = "***"
	numberFiller = "****"

	// fullMask is returned for input that cannot be masked safely.
	fullMask = "********"
)

// Mask implements [Vault].
func (v *vault) Mask(plaintext string, kind models.MaskKind) string {
	return Mask(plaintext, kind)
}

// Mask renders a display-safe view of plaintext:
//   - email: first two characters of the local part, filler, "@domain";
//   - card: every digit but the last four replaced, grouped by four;
//   - account: filler followed by the last four digits.
//
// Input that does not look like the requested kind yields a full filler.
func Mask(plaintext string, kind models.MaskKind) string {
	switch kind {
	case models.MaskEmail:
		return maskEmail(plaintext)
	case models.MaskCard:
		return maskCard(plaintext)
	case models.MaskAccount:
		return maskAccount(plaintext)
	default:
		return fullMask
	}
}

func maskEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 1 || at == len(email)-1 {
		return fullMask
	}
	local, domain := []rune(email[:at]), email[at+1:]

	visible := local
	if len(visible) > 2 {
		visible = visible[:2]
	}

	return string(visible) + emailFiller + "@" + domain
}

func maskCard(number string) string {
	digits, ok := normaliseNumber(number)
	if !ok {
		return fullMask
	}

	var b strings.Builder
	hidden := len(digits) - 4
	for i := 0; i < len(digits); i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		if i < hidden {
			b.WriteByte(maskRune)
		} else {
			b.WriteByte(digits[i])
		}
	}

	return b.String()
}

func maskAccount(number string) string {
	digits, ok := normaliseNumber(number)
	if !ok {
		return fullMask
	}
	return numberFiller + digits[len(digits)-4:]
}
