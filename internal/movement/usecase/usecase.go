package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"github.com/fekuna/omnipos-shift-service/internal/catalog"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/movement"
	"github.com/fekuna/omnipos-shift-service/internal/movement/dto"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-shift-service/internal/shift"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type movementUseCase struct {
	repo     movement.Repository
	shifts   shift.Repository
	products catalog.Repository
	drafts   movement.DraftStore
	tx       *database.Transactor
	logger   logger.ZapLogger
	now      func() time.Time
}

func NewMovementUseCase(
	repo movement.Repository,
	shifts shift.Repository,
	products catalog.Repository,
	drafts movement.DraftStore,
	tx *database.Transactor,
	log logger.ZapLogger,
) movement.UseCase {
	return &movementUseCase{
		repo:     repo,
		shifts:   shifts,
		products: products,
		drafts:   drafts,
		tx:       tx,
		logger:   log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (uc *movementUseCase) RecordMovement(ctx context.Context, input *dto.RecordMovementInput) (*model.MovementRecord, error) {
	if err := validateEmployeeWrite(input); err != nil {
		return nil, err
	}

	var rec *model.MovementRecord
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := uc.lockOpenShift(ctx, input.ShiftID); err != nil {
			return err
		}
		var err error
		rec, err = uc.write(ctx, input.ShiftID, input.ProductID, input.Field, input.Value)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.warnOverdrawn(rec)
	return rec, nil
}

// SetEntry is the system path for entry_qty. It is driven by the restock
// feed and never exposed to employees.
func (uc *movementUseCase) SetEntry(ctx context.Context, input *dto.SetEntryInput) (*model.MovementRecord, error) {
	if input.ProductID == "" {
		return nil, apperror.Validation(apperror.CodeInvalidArgument, "product_id", "product_id is required")
	}
	if input.Quantity < 0 {
		return nil, apperror.Validation(apperror.CodeInvalidQuantity, string(model.FieldEntry), "must be a non-negative integer")
	}

	var rec *model.MovementRecord
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		shiftID := input.ShiftID
		if shiftID == "" {
			open, err := uc.shifts.FindOpen(ctx)
			if err != nil {
				return err
			}
			if open == nil {
				return apperror.NotFound(apperror.CodeNoOpenShift, "no shift is open")
			}
			shiftID = open.ID
		}
		if _, err := uc.lockOpenShift(ctx, shiftID); err != nil {
			return err
		}
		var err error
		rec, err = uc.write(ctx, shiftID, input.ProductID, model.FieldEntry, input.Quantity)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("entry quantity set",
		zap.String("shift_id", rec.ShiftID),
		zap.String("product_id", rec.ProductID),
		zap.Int64("entry_qty", rec.EntryQty))
	uc.warnOverdrawn(rec)
	return rec, nil
}

func (uc *movementUseCase) ListMovements(ctx context.Context, shiftID string) ([]model.MovementRecord, error) {
	return uc.repo.FindByShift(ctx, shiftID)
}

func (uc *movementUseCase) TotalRevenue(ctx context.Context, shiftID string) (decimal.Decimal, error) {
	records, err := uc.repo.FindByShift(ctx, shiftID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i := range records {
		total = total.Add(records[i].ItemTotal())
	}
	return total, nil
}

func (uc *movementUseCase) StageDraft(ctx context.Context, input *dto.RecordMovementInput) (*model.MovementDraft, error) {
	if err := validateEmployeeWrite(input); err != nil {
		return nil, err
	}
	s, err := uc.shifts.FindByID(ctx, input.ShiftID)
	if err != nil {
		return nil, err
	}
	if err := requireOpen(s); err != nil {
		return nil, err
	}

	if err := uc.drafts.Stage(ctx, input.ShiftID, input.ProductID, input.Field, input.Value); err != nil {
		return nil, err
	}
	drafts, err := uc.drafts.List(ctx, input.ShiftID)
	if err != nil {
		return nil, err
	}
	for i := range drafts {
		if drafts[i].ProductID == input.ProductID {
			return &drafts[i], nil
		}
	}
	return nil, fmt.Errorf("staged draft for %s not found after write", input.ProductID)
}

func (uc *movementUseCase) ListDrafts(ctx context.Context, shiftID string) ([]model.MovementDraft, error) {
	return uc.drafts.List(ctx, shiftID)
}

// SaveDrafts commits every staged field in one transaction and clears the
// buffer afterwards.
func (uc *movementUseCase) SaveDrafts(ctx context.Context, shiftID string) ([]model.MovementRecord, error) {
	drafts, err := uc.drafts.List(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	saved := make([]model.MovementRecord, 0, len(drafts))
	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := uc.lockOpenShift(ctx, shiftID); err != nil {
			return err
		}
		for _, d := range drafts {
			var rec *model.MovementRecord
			for _, field := range model.EmployeeFields {
				value, ok := d.Fields[field]
				if !ok {
					continue
				}
				if value < 0 {
					return apperror.Validation(apperror.CodeInvalidQuantity, string(field), "must be a non-negative integer")
				}
				rec, err = uc.write(ctx, shiftID, d.ProductID, field, value)
				if err != nil {
					return err
				}
			}
			if rec != nil {
				saved = append(saved, *rec)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.drafts.Clear(ctx, shiftID); err != nil {
		uc.logger.Error("failed to clear saved drafts", zap.String("shift_id", shiftID), zap.Error(err))
	}
	for i := range saved {
		uc.warnOverdrawn(&saved[i])
	}
	uc.logger.Info("drafts saved", zap.String("shift_id", shiftID), zap.Int("products", len(saved)))
	return saved, nil
}

func (uc *movementUseCase) DiscardDrafts(ctx context.Context, shiftID string) error {
	return uc.drafts.Clear(ctx, shiftID)
}

// write applies one field, creating the record with the current catalog
// price on first touch.
func (uc *movementUseCase) write(ctx context.Context, shiftID, productID string, field model.MovementField, value int64) (*model.MovementRecord, error) {
	existing, err := uc.repo.FindByShiftAndProduct(ctx, shiftID, productID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if existing == nil {
		p, err := uc.products.FindByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, apperror.NotFound(apperror.CodeProductNotFound, "product not found").With("product_id", productID)
		}
		rec := &model.MovementRecord{
			ID:            uuid.New().String(),
			ShiftID:       shiftID,
			ProductID:     productID,
			PriceSnapshot: p.BasePrice,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := uc.repo.CreateIfAbsent(ctx, rec); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.UpdateField(ctx, shiftID, productID, field, value, now); err != nil {
		return nil, err
	}
	return uc.repo.FindByShiftAndProduct(ctx, shiftID, productID)
}

func (uc *movementUseCase) lockOpenShift(ctx context.Context, shiftID string) (*model.Shift, error) {
	s, err := uc.shifts.FindByIDForShare(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if err := requireOpen(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *movementUseCase) warnOverdrawn(rec *model.MovementRecord) {
	if rec != nil && rec.Overdrawn() {
		uc.logger.Warn("movement counts exceed available stock, sold quantity clamped to zero",
			zap.String("shift_id", rec.ShiftID),
			zap.String("product_id", rec.ProductID))
	}
}

func requireOpen(s *model.Shift) error {
	if s == nil {
		return apperror.NotFound(apperror.CodeShiftNotFound, "shift not found")
	}
	if !s.IsOpen() {
		return apperror.NotFound(apperror.CodeShiftClosed, "shift is closed").With("shift_id", s.ID)
	}
	return nil
}

func validateEmployeeWrite(input *dto.RecordMovementInput) error {
	if input.ShiftID == "" {
		return apperror.Validation(apperror.CodeInvalidArgument, "shift_id", "shift_id is required")
	}
	if input.ProductID == "" {
		return apperror.Validation(apperror.CodeInvalidArgument, "product_id", "product_id is required")
	}
	if input.Field == model.FieldEntry {
		return apperror.Validation(apperror.CodeFieldNotEditable, "field", "entry_qty is set by the restock feed")
	}
	if !input.Field.EmployeeEditable() {
		return apperror.Validation(apperror.CodeUnknownField, "field", fmt.Sprintf("unknown movement field %q", input.Field))
	}
	if input.Value < 0 {
		return apperror.Validation(apperror.CodeInvalidQuantity, string(input.Field), "must be a non-negative integer")
	}
	return nil
}
