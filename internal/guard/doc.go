// Package guard holds the abuse deterrence primitives: a fixed-window
// [RateLimiter] and construction plus best-effort persistence of immutable
// audit entries.
package guard
