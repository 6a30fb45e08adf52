package http

import (
	"sync"
	"time"
)

// rateLimiter counts posts in fixed one-minute windows. A zero limit
// disables it.
type rateLimiter struct {
	mu          sync.Mutex
	limit       int
	counter     int
	windowStart time.Time
}

func newRateLimiter(limit int) *rateLimiter {
	if limit <= 0 {
		return &rateLimiter{limit: 0}
	}
	return &rateLimiter{
		limit:       limit,
		windowStart: time.Now(),
	}
}

func (r *rateLimiter) allow() bool {
	if r == nil || r.limit <= 0 {
		return true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if now.Sub(r.windowStart) >= time.Minute {
		r.windowStart = now
		r.counter = 0
	}
	r.counter++
	return r.counter <= r.limit
}
