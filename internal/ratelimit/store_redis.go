package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces limiter counters in a shared Redis database.
const redisKeyPrefix = "ratelimit:"

// RedisStore is the shared [Store] implementation backed by Redis. Counters
// are plain INCR keys whose TTL marks the end of the window, so atomicity of
// the read-modify-write comes from Redis itself and expiry needs no sweeping.
//
// Selecting this store makes the limit global across all application
// instances pointed at the same Redis database.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a [Store] on top of an established Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Incr implements [Store]. The INCR and the conditional EXPIRE run in one
// pipeline; the NX option sets the TTL only when the key has none yet (first
// request of a window), so later increments never extend the window.
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (Entry, error) {
	rkey := redisKeyPrefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, rkey)
	pipe.ExpireNX(ctx, rkey, window)
	ttl := pipe.PTTL(ctx, rkey)

	if _, err := pipe.Exec(ctx); err != nil {
		return Entry{}, fmt.Errorf("redis rate limit incr: %w", err)
	}

	return Entry{
		Count:   incr.Val(),
		ResetAt: time.Now().Add(ttl.Val()),
	}, nil
}

// Get implements [Store].
func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	rkey := redisKeyPrefix + key

	pipe := s.client.TxPipeline()
	count := pipe.Get(ctx, rkey)
	ttl := pipe.PTTL(ctx, rkey)

	if _, err := pipe.Exec(ctx); err != nil {
		if err == redis.Nil {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("redis rate limit get: %w", err)
	}

	n, err := count.Int64()
	if err != nil {
		return Entry{}, false, fmt.Errorf("redis rate limit get: %w", err)
	}

	return Entry{Count: n, ResetAt: time.Now().Add(ttl.Val())}, true, nil
}

// Delete implements [Store].
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis rate limit delete: %w", err)
	}
	return nil
}

// Sweep implements [Store]. Redis expires counters via TTL, so there is
// nothing to remove here.
func (s *RedisStore) Sweep(context.Context) (int, error) {
	return 0, nil
}
