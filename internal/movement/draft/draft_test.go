package draft

import (
	"context"
	"os"
	"testing"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/movement"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/cache"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func exerciseStore(t *testing.T, store movement.DraftStore) {
	t.Helper()
	ctx := context.Background()
	shiftID := uuid.New().String()

	steps := []struct {
		product string
		field   model.MovementField
		value   int64
	}{
		{"p-b", model.FieldLeftover, 3},
		{"p-a", model.FieldArrival, 4},
		{"p-b", model.FieldLeftover, 2},
		{"p-b", model.FieldDiscard, 1},
	}
	for _, s := range steps {
		if err := store.Stage(ctx, shiftID, s.product, s.field, s.value); err != nil {
			t.Fatalf("stage: %v", err)
		}
	}

	drafts, err := store.List(ctx, shiftID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(drafts) != 2 || drafts[0].ProductID != "p-a" || drafts[1].ProductID != "p-b" {
		t.Fatalf("unexpected drafts %+v", drafts)
	}
	if drafts[1].Fields[model.FieldLeftover] != 2 || drafts[1].Fields[model.FieldDiscard] != 1 {
		t.Fatalf("latest staged value must win, got %+v", drafts[1].Fields)
	}

	other, err := store.List(ctx, "other-shift")
	if err != nil || len(other) != 0 {
		t.Fatalf("drafts must be scoped per shift, got %v, %v", other, err)
	}

	if err := store.Clear(ctx, shiftID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	drafts, err = store.List(ctx, shiftID)
	if err != nil || len(drafts) != 0 {
		t.Fatalf("expected empty after clear, got %v, %v", drafts, err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	exerciseStore(t, NewRedisStore(cache.Wrap(client)))
}
