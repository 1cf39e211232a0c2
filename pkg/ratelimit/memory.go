package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter keeps request timestamps per key in process memory.
// It is used when no Redis address is configured and in tests.
type MemoryLimiter struct {
	mu       sync.Mutex
	config   Config
	requests map[string][]time.Time
	now      func() time.Time
}

func NewMemoryLimiter(config Config) *MemoryLimiter {
	return &MemoryLimiter{
		config:   config,
		requests: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (l *MemoryLimiter) WithClock(now func() time.Time) *MemoryLimiter {
	l.now = now
	return l
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (*Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	live := l.evict(key, now)
	if len(live) >= l.config.RequestsPerWindow {
		res := l.result(live, now, false)
		if len(live) > 0 {
			res.RetryAfter = live[0].Add(l.config.WindowSize).Sub(now)
		}
		return res, nil
	}
	live = append(live, now)
	l.requests[key] = live
	return l.result(live, now, true), nil
}

func (l *MemoryLimiter) Peek(_ context.Context, key string) (*Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	live := l.evict(key, now)
	return l.result(live, now, len(live) < l.config.RequestsPerWindow), nil
}

func (l *MemoryLimiter) Config() Config {
	return l.config
}

// Prune drops keys whose requests all fell out of the window.
func (l *MemoryLimiter) Prune() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	pruned := 0
	for key := range l.requests {
		if len(l.evict(key, now)) == 0 {
			delete(l.requests, key)
			pruned++
		}
	}
	return pruned
}

// evict must be called with mu held.
func (l *MemoryLimiter) evict(key string, now time.Time) []time.Time {
	stamps := l.requests[key]
	windowStart := now.Add(-l.config.WindowSize)
	i := 0
	for i < len(stamps) && !stamps[i].After(windowStart) {
		i++
	}
	live := stamps[i:]
	if len(live) == 0 {
		delete(l.requests, key)
		return nil
	}
	l.requests[key] = live
	return live
}

func (l *MemoryLimiter) result(live []time.Time, now time.Time, allowed bool) *Result {
	remaining := l.config.RequestsPerWindow - len(live)
	if remaining < 0 {
		remaining = 0
	}
	resetAt := now.Add(l.config.WindowSize)
	if len(live) > 0 {
		resetAt = live[0].Add(l.config.WindowSize)
	}
	return &Result{
		Allowed:   allowed,
		Remaining: remaining,
		Limit:     l.config.RequestsPerWindow,
		Window:    l.config.WindowSize,
		ResetAt:   resetAt,
	}
}
