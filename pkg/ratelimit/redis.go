package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// allowScript trims the window, then admits the request if the set is below the limit.
// Returns {allowed, remaining, oldest_ms}.
var allowScript = redis.NewScript(`
	local key = KEYS[1]
	local counter_key = KEYS[2]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local limit = tonumber(ARGV[3])
	local window_ms = tonumber(ARGV[4])

	redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)
	local count = redis.call('ZCARD', key)

	if count < limit then
		local counter = redis.call('INCR', counter_key)
		redis.call('ZADD', key, now, now .. ':' .. counter)
		redis.call('PEXPIRE', key, window_ms)
		redis.call('PEXPIRE', counter_key, window_ms)
		count = count + 1
		local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
		return {1, limit - count, tonumber(oldest[2])}
	end

	local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	local oldest_ms = 0
	if #oldest >= 2 then
		oldest_ms = tonumber(oldest[2])
	end
	return {0, 0, oldest_ms}
`)

// RedisLimiter implements a sliding window over a Redis sorted set, so the budget
// is shared by every API instance.
type RedisLimiter struct {
	client *redis.Client
	config Config
	prefix string
}

func NewRedisLimiter(client *redis.Client, config Config, prefix string) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		config: config,
		prefix: prefix,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (*Result, error) {
	now := time.Now()
	windowStart := now.Add(-l.config.WindowSize)
	redisKey := l.prefix + key

	raw, err := allowScript.Run(ctx, l.client, []string{redisKey, redisKey + ":counter"},
		now.UnixMilli(),
		windowStart.UnixMilli(),
		l.config.RequestsPerWindow,
		l.config.WindowSize.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to run rate limit script: %w", err)
	}
	if len(raw) != 3 {
		return nil, fmt.Errorf("unexpected rate limit script result length: %d", len(raw))
	}

	res := &Result{
		Allowed:   raw[0] == 1,
		Remaining: int(raw[1]),
		Limit:     l.config.RequestsPerWindow,
		Window:    l.config.WindowSize,
		ResetAt:   now.Add(l.config.WindowSize),
	}
	if raw[2] > 0 {
		res.ResetAt = time.UnixMilli(raw[2]).Add(l.config.WindowSize)
	}
	if !res.Allowed {
		res.RetryAfter = res.ResetAt.Sub(now)
	}
	return res, nil
}

func (l *RedisLimiter) Peek(ctx context.Context, key string) (*Result, error) {
	now := time.Now()
	windowStart := now.Add(-l.config.WindowSize)
	redisKey := l.prefix + key

	count, err := l.client.ZCount(ctx, redisKey, "("+strconv.FormatInt(windowStart.UnixMilli(), 10), "+inf").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get request count: %w", err)
	}
	remaining := l.config.RequestsPerWindow - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return &Result{
		Allowed:   remaining > 0,
		Remaining: remaining,
		Limit:     l.config.RequestsPerWindow,
		Window:    l.config.WindowSize,
		ResetAt:   now.Add(l.config.WindowSize),
	}, nil
}

func (l *RedisLimiter) Config() Config {
	return l.config
}
