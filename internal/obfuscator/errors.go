// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obfuscator

import "errors"

var (
	// ErrObfuscation wraps every adapter failure.
	ErrObfuscation = errors.New("obfuscation failed")

	// ErrEmptyResult is returned when a transformer answers with no code.
	ErrEmptyResult = errors.New("obfuscator returned empty code")
)
