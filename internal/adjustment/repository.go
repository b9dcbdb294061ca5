package adjustment

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, a *model.CashAdjustment) error
	FindByShift(ctx context.Context, shiftID string) ([]model.CashAdjustment, error)
	// FindPending returns shift-less adjustments not consumed by any shift.
	FindPending(ctx context.Context) ([]model.CashAdjustment, error)
	// FindConsumedBy returns the pending adjustments a shift consumed at open.
	FindConsumedBy(ctx context.Context, shiftID string) ([]model.CashAdjustment, error)
	Consume(ctx context.Context, shiftID string, adjustmentIDs []string, at time.Time) error
}
