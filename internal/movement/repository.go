package movement

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/model"
)

type Repository interface {
	// FindByShiftAndProduct returns nil, nil when no record exists yet.
	FindByShiftAndProduct(ctx context.Context, shiftID, productID string) (*model.MovementRecord, error)
	FindByShift(ctx context.Context, shiftID string) ([]model.MovementRecord, error)
	// CreateIfAbsent keeps the first record (and its price snapshot) when
	// two writers race on the same product.
	CreateIfAbsent(ctx context.Context, m *model.MovementRecord) error
	UpdateField(ctx context.Context, shiftID, productID string, field model.MovementField, value int64, at time.Time) error
}

// DraftStore buffers uncommitted employee edits per shift.
type DraftStore interface {
	Stage(ctx context.Context, shiftID, productID string, field model.MovementField, value int64) error
	List(ctx context.Context, shiftID string) ([]model.MovementDraft, error)
	Clear(ctx context.Context, shiftID string) error
}
