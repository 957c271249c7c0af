// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obfuscator

import (
	"context"
	"fmt"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/js"
)

const jsMediaType = "application/javascript"

// minifyObfuscator runs the tdewolff JavaScript minifier in process. It
// strips whitespace and comments and, with RenameLocals, shortens local
// identifiers.
type minifyObfuscator struct{}

// NewMinifyObfuscator returns the local [Obfuscator].
func NewMinifyObfuscator() Obfuscator {
	return &minifyObfuscator{}
}

// Obfuscate implements [Obfuscator].
func (m *minifyObfuscator) Obfuscate(ctx context.Context, source string, opts Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrObfuscation, err)
	}

	mini := minify.New()
	mini.Add(jsMediaType, &js.Minifier{KeepVarNames: !opts.RenameLocals})

	out, err := mini.String(jsMediaType, source)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrObfuscation, err)
	}
	if strings.TrimSpace(out) == "" && strings.TrimSpace(source) != "" {
		return "", fmt.Errorf("%w: %w", ErrObfuscation, ErrEmptyResult)
	}

	return out, nil
}
