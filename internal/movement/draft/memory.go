// Package draft holds the staging buffers for uncommitted movement edits.
package draft

import (
	"context"
	"sort"
	"sync"

	"github.com/fekuna/omnipos-shift-service/internal/model"
)

// MemoryStore is the in-process buffer used when Redis is not configured.
type MemoryStore struct {
	mu     sync.Mutex
	shifts map[string]map[string]map[model.MovementField]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{shifts: make(map[string]map[string]map[model.MovementField]int64)}
}

func (s *MemoryStore) Stage(_ context.Context, shiftID, productID string, field model.MovementField, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, ok := s.shifts[shiftID]
	if !ok {
		products = make(map[string]map[model.MovementField]int64)
		s.shifts[shiftID] = products
	}
	fields, ok := products[productID]
	if !ok {
		fields = make(map[model.MovementField]int64)
		products[productID] = fields
	}
	fields[field] = value
	return nil
}

func (s *MemoryStore) List(_ context.Context, shiftID string) ([]model.MovementDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drafts := make([]model.MovementDraft, 0, len(s.shifts[shiftID]))
	for productID, fields := range s.shifts[shiftID] {
		cp := make(map[model.MovementField]int64, len(fields))
		for f, v := range fields {
			cp[f] = v
		}
		drafts = append(drafts, model.MovementDraft{ShiftID: shiftID, ProductID: productID, Fields: cp})
	}
	sortDrafts(drafts)
	return drafts, nil
}

func (s *MemoryStore) Clear(_ context.Context, shiftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.shifts, shiftID)
	return nil
}

func sortDrafts(drafts []model.MovementDraft) {
	sort.Slice(drafts, func(i, j int) bool { return drafts[i].ProductID < drafts[j].ProductID })
}
