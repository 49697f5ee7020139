package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tasknest/todo-system/internal/core/domain"
)

const (
	defaultLimit  = 10
	defaultWindow = time.Minute
)

// FixedWindowLimiter admits at most limit requests per principal within each
// fixed window, backed by Redis.
// Key format: ratelimit:<principal>:<window_start_unix_ms>
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewFixedWindowLimiter creates a limiter wrapping the given Redis client.
// Non-positive limit falls back to the default; windows shorter than a
// millisecond cannot be bucketed and fall back as well.
func NewFixedWindowLimiter(client *redis.Client, limit int64, window time.Duration) *FixedWindowLimiter {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window < time.Millisecond {
		window = defaultWindow
	}
	return &FixedWindowLimiter{client: client, limit: limit, window: window}
}

// Admit counts this request against the principal's current window and
// returns domain.ErrRateLimited once the budget is exceeded. INCR is the
// single atomic increment-and-compare step, so two concurrent requests can
// never both slip under the limit.
func (l *FixedWindowLimiter) Admit(ctx context.Context, key string) error {
	k := l.key(key, time.Now())

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return fmt.Errorf("rate limit expire: %w", err)
		}
	}
	if n > l.limit {
		return domain.ErrRateLimited
	}
	return nil
}

func (l *FixedWindowLimiter) key(principal string, now time.Time) string {
	// millisecond buckets so sub-second windows divide cleanly
	ms := now.UnixMilli()
	windowStart := ms - ms%l.window.Milliseconds()
	return fmt.Sprintf("ratelimit:%s:%d", principal, windowStart)
}
