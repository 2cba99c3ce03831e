package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// QuestionCache stores generated questions by key. A write always replaces
// whatever was stored before.
type QuestionCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type redisQuestionCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisQuestionCache returns a cache backed by plain string keys. A ttl
// of zero stores entries without expiration.
func NewRedisQuestionCache(client redis.Cmdable, ttl time.Duration) QuestionCache {
	return &redisQuestionCache{
		client: client,
		ttl:    ttl,
	}
}

// Get implements QuestionCache.
func (c *redisQuestionCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	return value, true, nil
}

// Set implements QuestionCache.
func (c *redisQuestionCache) Set(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}
