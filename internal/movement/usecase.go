package movement

import (
	"context"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/movement/dto"
	"github.com/shopspring/decimal"
)

type UseCase interface {
	RecordMovement(ctx context.Context, input *dto.RecordMovementInput) (*model.MovementRecord, error)
	SetEntry(ctx context.Context, input *dto.SetEntryInput) (*model.MovementRecord, error)
	ListMovements(ctx context.Context, shiftID string) ([]model.MovementRecord, error)
	TotalRevenue(ctx context.Context, shiftID string) (decimal.Decimal, error)

	// Drafts
	StageDraft(ctx context.Context, input *dto.RecordMovementInput) (*model.MovementDraft, error)
	ListDrafts(ctx context.Context, shiftID string) ([]model.MovementDraft, error)
	SaveDrafts(ctx context.Context, shiftID string) ([]model.MovementRecord, error)
	DiscardDrafts(ctx context.Context, shiftID string) error
}
