// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrConfiguration is returned when secret material is missing or
	// invalid. It is fatal: no default key is ever substituted.
	ErrConfiguration = errors.New("crypto configuration error")

	// ErrIntegrity is returned when a sealed field fails authentication or
	// cannot be parsed. No partial plaintext accompanies it.
	ErrIntegrity = errors.New("integrity check failed")

	// ErrValidation is returned for malformed input such as a card number
	// with no digits or an undecodable OTP secret.
	ErrValidation = errors.New("validation failed")
)
