// Package ratecache keeps the current fee-rate version in Redis.
package ratecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/cache"
	"github.com/redis/go-redis/v9"
)

const (
	currentKey = "shift:rates:current"
	ttl        = 10 * time.Minute
)

type Redis struct {
	cache *cache.RedisClient
}

func NewRedis(c *cache.RedisClient) *Redis {
	return &Redis{cache: c}
}

func (r *Redis) Get(ctx context.Context) (*model.RateConfig, error) {
	val, err := r.cache.Client.Get(ctx, currentKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached rates: %w", err)
	}
	var rc model.RateConfig
	if err := json.Unmarshal([]byte(val), &rc); err != nil {
		return nil, fmt.Errorf("decode cached rates: %w", err)
	}
	return &rc, nil
}

func (r *Redis) Set(ctx context.Context, rc *model.RateConfig) error {
	b, err := json.Marshal(rc)
	if err != nil {
		return fmt.Errorf("encode rates: %w", err)
	}
	if err := r.cache.Client.Set(ctx, currentKey, b, ttl).Err(); err != nil {
		return fmt.Errorf("cache rates: %w", err)
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context) error {
	return r.cache.Client.Del(ctx, currentKey).Err()
}
