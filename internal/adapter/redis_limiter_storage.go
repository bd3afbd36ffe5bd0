package adapter

import (
	"context"
	"errors"
	"time"

	"trivia-api/internal/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const (
	defaultStorageTimeout = 2 * time.Second
	resetScanCount        = 100
)

// RedisLimiterStorage implements fiber.Storage on Redis so rate-limit counters
// are shared between API instances. Keys live under trivia:ratelimit:.
type RedisLimiterStorage struct {
	client  redis.UniversalClient
	timeout time.Duration
}

var _ fiber.Storage = (*RedisLimiterStorage)(nil)

// NewRedisLimiterStorage wraps a connected client. The client is owned by the
// caller and is not closed by Close.
func NewRedisLimiterStorage(client redis.UniversalClient) *RedisLimiterStorage {
	return &RedisLimiterStorage{client: client, timeout: defaultStorageTimeout}
}

// Get returns nil, nil for a missing key.
func (s *RedisLimiterStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := s.ctx()
	defer cancel()

	val, err := s.client.Get(ctx, cache.RateLimitKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return val, nil
}

// Set stores val; exp 0 means no expiry.
func (s *RedisLimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()

	return s.client.Set(ctx, cache.RateLimitKey(key), val, exp).Err()
}

func (s *RedisLimiterStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()

	return s.client.Del(ctx, cache.RateLimitKey(key)).Err()
}

// Reset removes every rate-limit key, leaving the rest of the database alone.
func (s *RedisLimiterStorage) Reset() error {
	ctx, cancel := s.ctx()
	defer cancel()

	pattern := cache.NamespacePattern(cache.NamespaceRateLimit)
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, resetScanCount).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Close is a no-op; the shared client is closed by its owner.
func (s *RedisLimiterStorage) Close() error {
	return nil
}

func (s *RedisLimiterStorage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}
