package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/disaster_response_system/internal/service"
)

const upstreamCachePrefix = "upstream:"

// UpstreamCache хранит тела ответов внешних сервисов в Redis
type UpstreamCache struct {
	redisClient *redis.Client
}

func NewUpstreamCache(redisClient *redis.Client) service.UpstreamCache {
	return &UpstreamCache{redisClient: redisClient}
}

// Get пытается получить ответ из Redis. Промах - (nil, nil).
func (c *UpstreamCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.redisClient.Get(ctx, upstreamCachePrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get upstream response from cache: %w", err)
	}
	return val, nil
}

func (c *UpstreamCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.redisClient.Set(ctx, upstreamCachePrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set upstream response in cache: %w", err)
	}
	return nil
}
