// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import "errors"

var (
	// ErrRateLimited is returned by callers that turn a denied Allow into an
	// error, such as the HTTP middleware.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidLimits is returned by NewRateLimiter for a non-positive
	// attempt count or window.
	ErrInvalidLimits = errors.New("rate limit parameters must be positive")
)
