package draft

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/cache"
)

const (
	keyPrefix = "shift:drafts:"
	draftTTL  = 24 * time.Hour
)

// RedisStore keeps one hash per shift, with "<productID>|<field>" members,
// so drafts survive a register restart.
type RedisStore struct {
	cache *cache.RedisClient
}

func NewRedisStore(c *cache.RedisClient) *RedisStore {
	return &RedisStore{cache: c}
}

func draftKey(shiftID string) string {
	return keyPrefix + shiftID
}

func (s *RedisStore) Stage(ctx context.Context, shiftID, productID string, field model.MovementField, value int64) error {
	key := draftKey(shiftID)
	pipe := s.cache.Client.TxPipeline()
	pipe.HSet(ctx, key, productID+"|"+string(field), value)
	pipe.Expire(ctx, key, draftTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("stage draft: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, shiftID string) ([]model.MovementDraft, error) {
	values, err := s.cache.Client.HGetAll(ctx, draftKey(shiftID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}

	byProduct := make(map[string]map[model.MovementField]int64)
	for member, raw := range values {
		productID, field, ok := strings.Cut(member, "|")
		if !ok {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("list drafts: member %s: %w", member, err)
		}
		fields, ok := byProduct[productID]
		if !ok {
			fields = make(map[model.MovementField]int64)
			byProduct[productID] = fields
		}
		fields[model.MovementField(field)] = v
	}

	drafts := make([]model.MovementDraft, 0, len(byProduct))
	for productID, fields := range byProduct {
		drafts = append(drafts, model.MovementDraft{ShiftID: shiftID, ProductID: productID, Fields: fields})
	}
	sortDrafts(drafts)
	return drafts, nil
}

func (s *RedisStore) Clear(ctx context.Context, shiftID string) error {
	if err := s.cache.Client.Del(ctx, draftKey(shiftID)).Err(); err != nil {
		return fmt.Errorf("clear drafts: %w", err)
	}
	return nil
}
