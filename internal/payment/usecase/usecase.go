package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"github.com/fekuna/omnipos-shift-service/internal/cash"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/payment"
	"github.com/fekuna/omnipos-shift-service/internal/payment/dto"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-shift-service/internal/shift"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var maxRate = decimal.NewFromInt(100)

type paymentUseCase struct {
	repo    payment.Repository
	shifts  shift.Repository
	revenue payment.RevenueSource
	cache   payment.RateCache
	tx      *database.Transactor
	epsilon decimal.Decimal
	logger  logger.ZapLogger
	now     func() time.Time
}

// NewPaymentUseCase accepts a nil cache.
func NewPaymentUseCase(
	repo payment.Repository,
	shifts shift.Repository,
	revenue payment.RevenueSource,
	cache payment.RateCache,
	tx *database.Transactor,
	epsilon decimal.Decimal,
	log logger.ZapLogger,
) payment.UseCase {
	return &paymentUseCase{
		repo:    repo,
		shifts:  shifts,
		revenue: revenue,
		cache:   cache,
		tx:      tx,
		epsilon: epsilon,
		logger:  log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// DeclarePayments upserts the shift's declaration and snapshots the rate
// version current at save time, so later rate changes never alter it.
func (uc *paymentUseCase) DeclarePayments(ctx context.Context, input *dto.DeclarePaymentsInput) (*model.PaymentDeclaration, error) {
	if input.ShiftID == "" {
		return nil, apperror.Validation(apperror.CodeInvalidArgument, "shift_id", "shift_id is required")
	}
	if input.Cash.Valid {
		if err := nonNegative(string(model.MethodCash), input.Cash.Decimal); err != nil {
			return nil, err
		}
	}
	for field, v := range map[string]decimal.Decimal{
		string(model.MethodPix):          input.Pix,
		string(model.MethodStoneCard):    input.StoneCard,
		string(model.MethodStoneVoucher): input.StoneVoucher,
		string(model.MethodPagBankCard):  input.PagBankCard,
	} {
		if err := nonNegative(field, v); err != nil {
			return nil, err
		}
	}

	var decl *model.PaymentDeclaration
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		s, err := uc.shifts.FindByIDForShare(ctx, input.ShiftID)
		if err != nil {
			return err
		}
		if s == nil {
			return apperror.NotFound(apperror.CodeShiftNotFound, "shift not found")
		}
		if !s.IsOpen() {
			return apperror.NotFound(apperror.CodeShiftClosed, "shift is closed").With("shift_id", s.ID)
		}

		rates, err := uc.repo.FindCurrentRates(ctx)
		if err != nil {
			return err
		}
		existing, err := uc.repo.FindByShift(ctx, input.ShiftID)
		if err != nil {
			return err
		}

		now := uc.now()
		decl = &model.PaymentDeclaration{
			ShiftID:          input.ShiftID,
			Cash:             input.Cash,
			Pix:              input.Pix,
			StoneCard:        input.StoneCard,
			StoneVoucher:     input.StoneVoucher,
			PagBankCard:      input.PagBankCard,
			RateVersion:      rates.Version,
			PixRate:          rates.PixRate,
			StoneCardRate:    rates.StoneCardRate,
			StoneVoucherRate: rates.StoneVoucherRate,
			PagBankCardRate:  rates.PagBankCardRate,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if existing != nil {
			decl.CreatedAt = existing.CreatedAt
		}
		return uc.repo.Upsert(ctx, decl)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("payments declared", zap.String("shift_id", decl.ShiftID), zap.Int64("rate_version", decl.RateVersion))
	return decl, nil
}

func (uc *paymentUseCase) GetDeclaration(ctx context.Context, shiftID string) (*model.PaymentDeclaration, error) {
	return uc.repo.FindByShift(ctx, shiftID)
}

// GetTotals always reports all five methods. A shift without a declaration
// reports zeros at the current rates.
func (uc *paymentUseCase) GetTotals(ctx context.Context, shiftID string) (*cash.Totals, error) {
	decl, err := uc.repo.FindByShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	var rates model.RateConfig
	if decl != nil {
		rates = decl.Rates()
	} else {
		current, err := uc.GetRates(ctx)
		if err != nil {
			return nil, err
		}
		rates = *current
		decl = &model.PaymentDeclaration{ShiftID: shiftID}
	}

	lines := make([]cash.Line, 0, len(model.PaymentMethods))
	for _, m := range model.PaymentMethods {
		lines = append(lines, cash.Line{Method: string(m), Gross: decl.Gross(m), Rate: rates.Rate(m)})
	}
	totals := cash.Sum(lines)
	return &totals, nil
}

// CheckConsistency compares declared payments with product revenue. It is
// advisory and never blocks a close.
func (uc *paymentUseCase) CheckConsistency(ctx context.Context, shiftID string) (*cash.Consistency, error) {
	decl, err := uc.repo.FindByShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.revenue.TotalRevenue(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	declaredCash := decimal.NullDecimal{}
	others := decimal.Zero
	if decl != nil {
		declaredCash = decl.Cash
		for _, m := range model.PaymentMethods {
			if m != model.MethodCash {
				others = others.Add(decl.Gross(m))
			}
		}
	}

	c := cash.CheckConsistency(declaredCash, others, revenue, uc.epsilon)
	if !c.Consistent {
		uc.logger.Warn("declared payments differ from product revenue",
			zap.String("shift_id", shiftID),
			zap.String("declared", c.DeclaredTotal.StringFixed(2)),
			zap.String("revenue", c.Revenue.StringFixed(2)))
	}
	return &c, nil
}

func (uc *paymentUseCase) GetRates(ctx context.Context) (*model.RateConfig, error) {
	if uc.cache != nil {
		rc, err := uc.cache.Get(ctx)
		if err != nil {
			uc.logger.Warn("rate cache read failed", zap.Error(err))
		} else if rc != nil {
			return rc, nil
		}
	}

	rc, err := uc.repo.FindCurrentRates(ctx)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, rc); err != nil {
			uc.logger.Warn("rate cache write failed", zap.Error(err))
		}
	}
	return rc, nil
}

// UpdateRates inserts a new rate version. Declarations already saved keep
// the version they snapshotted.
func (uc *paymentUseCase) UpdateRates(ctx context.Context, input *dto.UpdateRatesInput) (*model.RateConfig, error) {
	if !input.Actor.IsAdmin() {
		return nil, apperror.Unauthorized(apperror.CodeAdminRequired, "only administrators may change fee rates")
	}
	for field, v := range map[string]decimal.Decimal{
		"pix_rate":           input.PixRate,
		"stone_card_rate":    input.StoneCardRate,
		"stone_voucher_rate": input.StoneVoucherRate,
		"pagbank_card_rate":  input.PagBankCardRate,
	} {
		if v.IsNegative() || v.GreaterThan(maxRate) {
			return nil, apperror.Validation(apperror.CodeInvalidRate, field, "rate must be between 0 and 100")
		}
	}

	var rc *model.RateConfig
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := uc.repo.FindCurrentRates(ctx)
		if err != nil {
			return err
		}
		rc = &model.RateConfig{
			Version:          current.Version + 1,
			PixRate:          input.PixRate,
			StoneCardRate:    input.StoneCardRate,
			StoneVoucherRate: input.StoneVoucherRate,
			PagBankCardRate:  input.PagBankCardRate,
			UpdatedBy:        input.Actor.UserID,
			CreatedAt:        uc.now(),
		}
		err = uc.repo.CreateRates(ctx, rc)
		if database.IsUniqueViolation(err) {
			return apperror.Conflict(apperror.CodeRateVersionConflict, "rates were changed concurrently, reload and retry")
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, rc); err != nil {
			uc.logger.Warn("rate cache write failed, invalidating", zap.Error(err))
			_ = uc.cache.Invalidate(ctx)
		}
	}
	uc.logger.Info("fee rates updated", zap.Int64("version", rc.Version), zap.String("updated_by", rc.UpdatedBy))
	return rc, nil
}

func nonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return apperror.Validation(apperror.CodeInvalidAmount, field, "amount must not be negative")
	}
	return nil
}
