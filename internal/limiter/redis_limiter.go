package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter shares the fixed-window counters between API instances.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := fmt.Sprintf("%s:%s:%d", r.prefix, key, r.now().UnixNano()/int64(r.window))

	results := r.client.DoMulti(
		ctx,
		r.client.B().Incr().Key(windowKey).Build(),
		r.client.B().Pexpire().Key(windowKey).Milliseconds(r.window.Milliseconds()).Build(),
	)

	count, err := results[0].AsInt64()
	if err != nil {
		return false, err
	}
	if err := results[1].Error(); err != nil {
		return false, err
	}

	return count <= int64(r.limit), nil
}
