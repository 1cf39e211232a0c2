// Package ratelimit provides per-key sliding window limiters for the analysis budget.
package ratelimit

import (
	"context"
	"time"
)

// Result describes the outcome of a rate limit check for a single key.
type Result struct {
	Allowed   bool
	Remaining int
	Limit     int
	Window    time.Duration
	ResetAt   time.Time
	// Only set when the request was denied.
	RetryAfter time.Duration
}

// Limiter is implemented by RedisLimiter and MemoryLimiter.
type Limiter interface {
	// Allow consumes one unit from key's budget if any is left.
	Allow(ctx context.Context, key string) (*Result, error)
	// Peek reports the budget of key without consuming it.
	Peek(ctx context.Context, key string) (*Result, error)
	Config() Config
}

// Config holds the limit shared by every key.
type Config struct {
	// RequestsPerWindow is the maximum number of requests allowed in the window
	RequestsPerWindow int
	// WindowSize is the sliding window length
	WindowSize time.Duration
}

// DefaultConfig matches the analysis budget of 10 requests per minute.
func DefaultConfig() Config {
	return Config{
		RequestsPerWindow: 10,
		WindowSize:        time.Minute,
	}
}

func (c Config) WindowSeconds() int {
	return int(c.WindowSize / time.Second)
}
