// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packager

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned when an export request cannot be packaged.
	ErrInvalidRequest = errors.New("invalid export request")

	// ErrEmptyContent is returned when the request carries no HTML.
	ErrEmptyContent = errors.New("export has no html content")

	// ErrInvalidDomain is returned for a domain-lock entry that is not a bare
	// hostname.
	ErrInvalidDomain = errors.New("invalid domain lock entry")

	// ErrCorruptPayload is returned by Decode when the bytes do not match
	// their checksum.
	ErrCorruptPayload = errors.New("corrupt payload")
)

// Stage names a server-side packaging stage.
type Stage string

const (
	StageCompose Stage = "compose"
	StageEncrypt Stage = "encrypt"
	StageEmbed   Stage = "embed"
)

// StageError reports which stage failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("packager %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
