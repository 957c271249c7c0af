// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is configured. This is a fatal misconfiguration.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoRateLimiter is returned by NewHandlers without an API limiter.
	errNoRateLimiter = errors.New("api rate limiter is required")
)
