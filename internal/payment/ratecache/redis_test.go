package ratecache

import (
	"context"
	"os"
	"testing"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/cache"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func TestRedisRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	c := NewRedis(cache.Wrap(client))
	ctx := context.Background()

	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	miss, err := c.Get(ctx)
	if err != nil || miss != nil {
		t.Fatalf("expected miss, got %v, %v", miss, err)
	}

	rc := &model.RateConfig{Version: 3, StoneCardRate: decimal.RequireFromString("3.5")}
	if err := c.Set(ctx, rc); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := c.Get(ctx)
	if err != nil || got.Version != 3 || !got.StoneCardRate.Equal(rc.StoneCardRate) {
		t.Fatalf("unexpected cached rates %+v, %v", got, err)
	}
}
