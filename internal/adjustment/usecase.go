package adjustment

import (
	"context"

	"github.com/fekuna/omnipos-shift-service/internal/adjustment/dto"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/shopspring/decimal"
)

type UseCase interface {
	CreateAdjustment(ctx context.Context, input *dto.CreateAdjustmentInput) (*model.CashAdjustment, error)
	ListByShift(ctx context.Context, shiftID string) ([]model.CashAdjustment, error)
	ListPending(ctx context.Context) ([]model.CashAdjustment, error)

	// ShiftTotal sums both adjustment types recorded against the shift.
	ShiftTotal(ctx context.Context, shiftID string) (decimal.Decimal, error)
	PendingTotal(ctx context.Context) (decimal.Decimal, error)
	// ConsumePending marks every outstanding pending adjustment as applied
	// to shiftID and returns their total. Call it inside the open
	// transaction.
	ConsumePending(ctx context.Context, shiftID string) (decimal.Decimal, error)
}
