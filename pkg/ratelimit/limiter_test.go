package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(limit int) (*SlidingWindowLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewSlidingWindowLimiter(limit, time.Minute)
	l.now = clock.now
	return l, clock
}

func TestSlidingWindowLimiter(t *testing.T) {
	ctx := context.Background()
	l, clock := newTestLimiter(2)

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, ok)
		clock.advance(10 * time.Second)
	}

	ok, _ := l.Allow(ctx, "a")
	assert.False(t, ok)
	assert.Equal(t, 40*time.Second, l.RetryAfter("a"))

	ok, _ = l.Allow(ctx, "b")
	assert.True(t, ok, "keys are limited independently")

	clock.advance(40 * time.Second)
	ok, _ = l.Allow(ctx, "a")
	assert.True(t, ok, "first request left the window")
	assert.Zero(t, l.RetryAfter("b"))
}

func TestSlidingWindowLimiterReset(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLimiter(1)

	ok, _ := l.Allow(ctx, "a")
	require.True(t, ok)
	ok, _ = l.Allow(ctx, "a")
	require.False(t, ok)

	l.Reset("a")
	ok, _ = l.Allow(ctx, "a")
	assert.True(t, ok)
}

func TestSlidingWindowLimiterPrunesIdleKeys(t *testing.T) {
	ctx := context.Background()
	l, clock := newTestLimiter(5)

	for _, key := range []string{"a", "b", "c"} {
		_, err := l.Allow(ctx, key)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, l.Keys())

	clock.advance(2 * time.Minute)
	_, err := l.Allow(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, 1, l.Keys())
}

func TestSlidingWindowLimiterCancelledContext(t *testing.T) {
	l, _ := newTestLimiter(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := l.Allow(ctx, "a")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}
