// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package obfuscator adapts external JavaScript transformers behind one
// [Obfuscator] interface. Callers own the fallback policy: an adapter only
// reports failure.
package obfuscator

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/obfuscator_mock.go -package=mock

// Options is the configuration record passed to an obfuscator.
type Options struct {
	// RenameLocals lets the transformer shorten local identifiers.
	RenameLocals bool `json:"rename_locals"`

	// Preset is a strength hint understood by remote services
	// ("low", "medium", "high"). Local adapters ignore it.
	Preset string `json:"preset,omitempty"`

	// Seed makes remote output reproducible when non-zero.
	Seed int64 `json:"seed,omitempty"`
}

// Obfuscator transforms JavaScript source. It is treated as an opaque box:
// any failure is returned wrapped in [ErrObfuscation].
type Obfuscator interface {
	Obfuscate(ctx context.Context, source string, opts Options) (string, error)
}
