package guard

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(t *testing.T, clock *fakeClock) *RateLimiter {
	t.Helper()
	l, err := NewRateLimiterWithClock(5, time.Minute, clock.Now)
	require.NoError(t, err)
	return l
}

func TestNewRateLimiter_InvalidLimits(t *testing.T) {
	tests := []struct {
		name   string
		max    int
		window time.Duration
	}{
		{"zero attempts", 0, time.Minute},
		{"negative attempts", -1, time.Minute},
		{"zero window", 5, 0},
		{"negative window", 5, -time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewRateLimiter(tt.max, tt.window)
			assert.Nil(t, l)
			assert.ErrorIs(t, err, ErrInvalidLimits)
		})
	}
}

func TestRateLimiter_FiveWithinWindowSixthDenied(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(t, clock)

	for i := 1; i <= 5; i++ {
		assert.True(t, l.Allow("user-1"), "attempt %d", i)
		clock.Advance(10 * time.Second)
	}
	assert.False(t, l.Allow("user-1"))

	w, ok := l.Window("user-1")
	require.True(t, ok)
	assert.Equal(t, 5, w.Count)
}

func TestRateLimiter_NewWindowAfterReset(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(t, clock)
	start := clock.Now()

	for i := 0; i < 6; i++ {
		l.Allow("user-1")
	}

	clock.Advance(59 * time.Second)
	assert.False(t, l.Allow("user-1"), "window still open")

	clock.Advance(time.Second)
	assert.True(t, l.Allow("user-1"))

	w, ok := l.Window("user-1")
	require.True(t, ok)
	assert.Equal(t, 1, w.Count)
	assert.Equal(t, start.Add(2*time.Minute), w.ResetAt)
}

func TestRateLimiter_DeniedAttemptDoesNotExtendWindow(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(t, clock)
	start := clock.Now()

	for i := 0; i < 10; i++ {
		l.Allow("ip-1")
		clock.Advance(time.Second)
	}

	w, _ := l.Window("ip-1")
	assert.Equal(t, start.Add(time.Minute), w.ResetAt)
}

func TestRateLimiter_IdentifiersAreIndependent(t *testing.T) {
	l := newTestLimiter(t, newFakeClock())

	for i := 0; i < 5; i++ {
		require.True(t, l.Allow("a"))
	}
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))
	assert.Equal(t, 2, l.Len())
}

func TestRateLimiter_Reset(t *testing.T) {
	l := newTestLimiter(t, newFakeClock())

	for i := 0; i < 5; i++ {
		l.Allow("user-1")
	}
	require.False(t, l.Allow("user-1"))

	l.Reset("user-1")

	_, ok := l.Window("user-1")
	assert.False(t, ok)
	assert.True(t, l.Allow("user-1"))
}

func TestRateLimiter_Sweep(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(t, clock)

	l.Allow("old")
	clock.Advance(30 * time.Second)
	l.Allow("new")

	assert.Equal(t, 0, l.Sweep(clock.Now()))

	clock.Advance(30 * time.Second)
	assert.Equal(t, 1, l.Sweep(clock.Now()))
	assert.Equal(t, 1, l.Len())

	_, ok := l.Window("old")
	assert.False(t, ok)
	_, ok = l.Window("new")
	assert.True(t, ok)
}

func TestRateLimiter_ConcurrentAllowNeverExceedsMax(t *testing.T) {
	l := newTestLimiter(t, newFakeClock())

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, l.MaxAttempts(), allowed)
}

func TestRateLimiter_ConcurrentDistinctIdentifiers(t *testing.T) {
	l := newTestLimiter(t, newFakeClock())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.True(t, l.Allow(fmt.Sprintf("id-%d", n)))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, l.Len())
}
