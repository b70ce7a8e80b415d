package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "event-staffing:credential:"

// RedisKeyValueStore keeps named values as plain Redis strings without expiry.
type RedisKeyValueStore struct {
	client redis.Cmdable
}

func NewRedisKeyValueStore(client redis.Cmdable) *RedisKeyValueStore {
	return &RedisKeyValueStore{client: client}
}

func (s *RedisKeyValueStore) GetKey(ctx context.Context, name string) (string, bool, error) {
	v, err := s.client.Get(ctx, redisKeyPrefix+name).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get credential %q: %w", name, err)
	}
	return v, true, nil
}

func (s *RedisKeyValueStore) SetKey(ctx context.Context, name, value string) error {
	if err := s.client.Set(ctx, redisKeyPrefix+name, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set credential %q: %w", name, err)
	}
	return nil
}

func (s *RedisKeyValueStore) DeleteKey(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+name).Err(); err != nil {
		return fmt.Errorf("redis delete credential %q: %w", name, err)
	}
	return nil
}
