// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"sync"
	"time"
)

// RateWindow is the counter state of one identifier.
type RateWindow struct {
	Count   int
	ResetAt time.Time
}

// RateLimiter is a fixed-window counter keyed by an arbitrary identifier
// (user id, remote address, route+user).
//
// The first call in a window starts it with Count = 1 and ResetAt = now +
// window. Later calls are allowed until Count reaches the maximum. Once
// ResetAt has passed the next call starts a fresh window. Because windows are
// fixed, up to twice the maximum can pass around a window boundary.
//
// All methods are safe for concurrent use.
type RateLimiter struct {
	maxAttempts int
	window      time.Duration
	nowF        func() time.Time

	mu      sync.Mutex
	windows map[string]*RateWindow
}

// NewRateLimiter returns a [RateLimiter] driven by the wall clock.
func NewRateLimiter(maxAttempts int, window time.Duration) (*RateLimiter, error) {
	return NewRateLimiterWithClock(maxAttempts, window, time.Now)
}

// NewRateLimiterWithClock returns a [RateLimiter] reading time from nowF.
func NewRateLimiterWithClock(maxAttempts int, window time.Duration, nowF func() time.Time) (*RateLimiter, error) {
	if maxAttempts < 1 || window <= 0 {
		return nil, ErrInvalidLimits
	}
	return &RateLimiter{
		maxAttempts: maxAttempts,
		window:      window,
		nowF:        nowF,
		windows:     make(map[string]*RateWindow),
	}, nil
}

// Allow counts one attempt for identifier and reports whether it is within
// the limit. A denied attempt does not extend the window.
func (l *RateLimiter) Allow(identifier string) bool {
	now := l.nowF()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[identifier]
	if !ok || !now.Before(w.ResetAt) {
		l.windows[identifier] = &RateWindow{Count: 1, ResetAt: now.Add(l.window)}
		return true
	}

	if w.Count >= l.maxAttempts {
		return false
	}
	w.Count++
	return true
}

// Reset forgets the window of identifier, e.g. after a successful login.
func (l *RateLimiter) Reset(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.windows, identifier)
}

// Window returns a copy of the current window of identifier.
func (l *RateLimiter) Window(identifier string) (RateWindow, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[identifier]
	if !ok {
		return RateWindow{}, false
	}
	return *w, true
}

// Sweep evicts every window whose ResetAt is not after now and returns the
// number evicted.
func (l *RateLimiter) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for id, w := range l.windows {
		if !now.Before(w.ResetAt) {
			delete(l.windows, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of tracked identifiers.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.windows)
}

// MaxAttempts returns the per-window limit.
func (l *RateLimiter) MaxAttempts() int { return l.maxAttempts }

// Now returns the limiter clock reading.
func (l *RateLimiter) Now() time.Time { return l.nowF() }
