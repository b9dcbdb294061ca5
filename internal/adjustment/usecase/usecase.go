package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fekuna/omnipos-shift-service/internal/adjustment"
	"github.com/fekuna/omnipos-shift-service/internal/adjustment/dto"
	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"github.com/fekuna/omnipos-shift-service/internal/cash"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-shift-service/internal/shift"
	"github.com/fekuna/omnipos-shift-service/internal/timeline"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type adjustmentUseCase struct {
	repo            adjustment.Repository
	shifts          shift.Repository
	tx              *database.Transactor
	sink            timeline.Sink
	minReasonLength int
	logger          logger.ZapLogger
	now             func() time.Time
}

func NewAdjustmentUseCase(
	repo adjustment.Repository,
	shifts shift.Repository,
	tx *database.Transactor,
	sink timeline.Sink,
	minReasonLength int,
	log logger.ZapLogger,
) adjustment.UseCase {
	return &adjustmentUseCase{
		repo:            repo,
		shifts:          shifts,
		tx:              tx,
		sink:            sink,
		minReasonLength: minReasonLength,
		logger:          log,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// CreateAdjustment records an administrator withdrawal or adjustment under
// the register lock, so it lands either inside a closing shift's snapshot
// or after it.
func (uc *adjustmentUseCase) CreateAdjustment(ctx context.Context, input *dto.CreateAdjustmentInput) (*model.CashAdjustment, error) {
	if !input.Actor.IsAdmin() {
		uc.logger.Warn("non-admin adjustment rejected", zap.String("user_id", input.Actor.UserID))
		return nil, apperror.Unauthorized(apperror.CodeAdminRequired, "only administrators may issue cash adjustments")
	}
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	a := &model.CashAdjustment{
		ID:          uuid.New().String(),
		Type:        input.Type,
		Amount:      input.Amount,
		Reason:      strings.TrimSpace(input.Reason),
		ActorUserID: input.Actor.UserID,
		SourceIP:    input.Actor.SourceIP,
		CreatedAt:   uc.now(),
	}

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.tx.LockRegister(ctx); err != nil {
			return err
		}

		if input.ShiftID != "" {
			s, err := uc.shifts.FindByID(ctx, input.ShiftID)
			if err != nil {
				return err
			}
			if s == nil {
				return apperror.NotFound(apperror.CodeShiftNotFound, "shift not found")
			}
			if !s.IsOpen() {
				return apperror.NotFound(apperror.CodeShiftClosed, "shift is closed").With("shift_id", s.ID)
			}
			a.ShiftID = &s.ID
		} else {
			open, err := uc.shifts.FindOpen(ctx)
			if err != nil {
				return err
			}
			if open != nil {
				a.ShiftID = &open.ID
			}
		}

		return uc.repo.Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	shiftRef := "pending"
	if a.ShiftID != nil {
		shiftRef = *a.ShiftID
	}
	uc.logger.Info("cash adjustment created",
		zap.String("adjustment_id", a.ID),
		zap.String("type", string(a.Type)),
		zap.String("amount", a.Amount.StringFixed(2)),
		zap.String("shift", shiftRef))

	timeline.Emit(ctx, uc.sink, uc.logger, timeline.NewEvent(
		model.ActionCashWithdrawal,
		a.ShiftID,
		a.ActorUserID,
		fmt.Sprintf("%s of %s: %s", a.Type, a.Amount.StringFixed(2), a.Reason),
		model.Metadata{
			"adjustment_id": a.ID,
			"type":          string(a.Type),
			"amount":        a.Amount.StringFixed(2),
			"pending":       strconv.FormatBool(a.Pending()),
			"source_ip":     a.SourceIP,
		},
	))
	return a, nil
}

func (uc *adjustmentUseCase) validate(input *dto.CreateAdjustmentInput) error {
	if !input.Type.Valid() {
		return apperror.Validation(apperror.CodeInvalidAdjustmentType, "type", "type must be withdraw or adjustment")
	}
	if !input.Amount.IsPositive() {
		return apperror.Validation(apperror.CodeInvalidAmount, "amount", "amount must be greater than zero")
	}
	if utf8.RuneCountInString(strings.TrimSpace(input.Reason)) < uc.minReasonLength {
		return apperror.Validation(apperror.CodeReasonTooShort, "reason",
			fmt.Sprintf("reason must be at least %d characters", uc.minReasonLength)).
			With("min_length", strconv.Itoa(uc.minReasonLength))
	}
	return nil
}

func (uc *adjustmentUseCase) ListByShift(ctx context.Context, shiftID string) ([]model.CashAdjustment, error) {
	return uc.repo.FindByShift(ctx, shiftID)
}

func (uc *adjustmentUseCase) ListPending(ctx context.Context) ([]model.CashAdjustment, error) {
	return uc.repo.FindPending(ctx)
}

func (uc *adjustmentUseCase) ShiftTotal(ctx context.Context, shiftID string) (decimal.Decimal, error) {
	adjustments, err := uc.repo.FindByShift(ctx, shiftID)
	if err != nil {
		return decimal.Zero, err
	}
	return cash.Total(adjustments, amountOf), nil
}

func (uc *adjustmentUseCase) PendingTotal(ctx context.Context) (decimal.Decimal, error) {
	pending, err := uc.repo.FindPending(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return cash.Total(pending, amountOf), nil
}

func (uc *adjustmentUseCase) ConsumePending(ctx context.Context, shiftID string) (decimal.Decimal, error) {
	pending, err := uc.repo.FindPending(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if len(pending) == 0 {
		return decimal.Zero, nil
	}
	ids := make([]string, len(pending))
	for i := range pending {
		ids[i] = pending[i].ID
	}
	if err := uc.repo.Consume(ctx, shiftID, ids, uc.now()); err != nil {
		return decimal.Zero, err
	}
	return cash.Total(pending, amountOf), nil
}

func amountOf(a model.CashAdjustment) decimal.Decimal {
	return a.Amount
}
