package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestNewRateWindowJanitor_InvalidInterval(t *testing.T) {
	_, err := NewRateWindowJanitor(0, logger.Nop())

	assert.ErrorIs(t, err, errInvalidSweepInterval)
}

func TestRateWindowJanitor_SweepEvictsExpiredWindows(t *testing.T) {
	clock := &manualClock{now: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)}
	short, err := guard.NewRateLimiterWithClock(5, time.Minute, clock.Now)
	require.NoError(t, err)
	long, err := guard.NewRateLimiterWithClock(5, time.Hour, clock.Now)
	require.NoError(t, err)

	short.Allow("a")
	short.Allow("b")
	long.Allow("c")

	j, err := NewRateWindowJanitor(time.Second, logger.Nop(), short, long)
	require.NoError(t, err)

	assert.Zero(t, j.Sweep())

	clock.Advance(2 * time.Minute)
	assert.Equal(t, 2, j.Sweep())
	assert.Zero(t, short.Len())
	assert.Equal(t, 1, long.Len())
}

func TestRateWindowJanitor_RunSweepsUntilCancelled(t *testing.T) {
	l, err := guard.NewRateLimiter(1, time.Millisecond)
	require.NoError(t, err)
	l.Allow("once")

	j, err := NewRateWindowJanitor(5*time.Millisecond, logger.Nop(), l)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Run(ctx) }()

	assert.Eventually(t, func() bool { return l.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}
