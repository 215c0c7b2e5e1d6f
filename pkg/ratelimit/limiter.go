package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether a request identified by key may proceed
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// SlidingWindowLimiter admits at most limit requests per key in any window
// of the configured size
type SlidingWindowLimiter struct {
	mu         sync.Mutex
	windows    map[string][]time.Time
	limit      int
	windowSize time.Duration
	lastPrune  time.Time
	now        func() time.Time
}

// NewSlidingWindowLimiter creates a new sliding window rate limiter
func NewSlidingWindowLimiter(limit int, windowSize time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		windows:    make(map[string][]time.Time),
		limit:      limit,
		windowSize: windowSize,
		now:        time.Now,
	}
}

// Allow records a request for key and reports whether it is within the limit.
// Rejected requests do not count against the window.
func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-l.windowSize)
	l.pruneLocked(now)

	requests := trim(l.windows[key], windowStart)
	if len(requests) >= l.limit {
		l.windows[key] = requests
		return false, nil
	}

	l.windows[key] = append(requests, now)
	return true, nil
}

// RetryAfter returns how long until key may make another request
func (l *SlidingWindowLimiter) RetryAfter(key string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	requests := trim(l.windows[key], now.Add(-l.windowSize))
	if len(requests) < l.limit {
		return 0
	}
	return requests[0].Add(l.windowSize).Sub(now)
}

// Reset forgets every request recorded for key
func (l *SlidingWindowLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// Keys returns the number of tracked keys
func (l *SlidingWindowLimiter) Keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// pruneLocked drops keys with no request inside the window, at most once per window
func (l *SlidingWindowLimiter) pruneLocked(now time.Time) {
	if now.Sub(l.lastPrune) < l.windowSize {
		return
	}
	l.lastPrune = now

	windowStart := now.Add(-l.windowSize)
	for key, requests := range l.windows {
		if len(trim(requests, windowStart)) == 0 {
			delete(l.windows, key)
		}
	}
}

// trim drops timestamps at or before start. Timestamps are kept in order.
func trim(requests []time.Time, start time.Time) []time.Time {
	i := 0
	for i < len(requests) && !requests[i].After(start) {
		i++
	}
	return requests[i:]
}
