package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/adjustment"
	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"github.com/fekuna/omnipos-shift-service/internal/cash"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/movement"
	"github.com/fekuna/omnipos-shift-service/internal/payment"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-shift-service/internal/shift"
	"github.com/fekuna/omnipos-shift-service/internal/shift/dto"
	"github.com/fekuna/omnipos-shift-service/internal/timeline"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type shiftUseCase struct {
	repo        shift.Repository
	movements   movement.UseCase
	payments    payment.UseCase
	adjustments adjustment.UseCase
	tx          *database.Transactor
	sink        timeline.Sink
	policy      cash.Policy
	bootstrap   cash.Bootstrap
	logger      logger.ZapLogger
	now         func() time.Time
}

func NewShiftUseCase(
	repo shift.Repository,
	movements movement.UseCase,
	payments payment.UseCase,
	adjustments adjustment.UseCase,
	tx *database.Transactor,
	sink timeline.Sink,
	policy cash.Policy,
	bootstrap cash.Bootstrap,
	log logger.ZapLogger,
) shift.UseCase {
	return &shiftUseCase{
		repo:        repo,
		movements:   movements,
		payments:    payments,
		adjustments: adjustments,
		tx:          tx,
		sink:        sink,
		policy:      policy,
		bootstrap:   bootstrap,
		logger:      log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// OpenShift starts the single open shift. The float comes from the last
// closed shift minus outstanding pending adjustments unless the caller
// overrides it; pending adjustments are consumed either way.
func (uc *shiftUseCase) OpenShift(ctx context.Context, input *dto.OpenShiftInput) (*model.Shift, error) {
	for field, v := range map[string]*decimal.Decimal{"initial_cash": input.InitialCash, "initial_coins": input.InitialCoins} {
		if v != nil && v.IsNegative() {
			return nil, apperror.Validation(apperror.CodeInvalidAmount, field, "amount must not be negative")
		}
	}

	var (
		s       *model.Shift
		initial cash.Initial
	)
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.tx.LockRegister(ctx); err != nil {
			return err
		}

		open, err := uc.repo.FindOpen(ctx)
		if err != nil {
			return err
		}
		if open != nil {
			return alreadyOpen(open.ID)
		}

		initial, err = uc.nextInitial(ctx)
		if err != nil {
			return err
		}

		now := uc.now()
		s = &model.Shift{
			BaseModel:      model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
			OwnerUserID:    input.Actor.UserID,
			StartTime:      now,
			InitialCash:    initial.Cash,
			InitialCoins:   initial.Coins,
			PendingApplied: initial.PendingApplied,
			Notes:          strings.TrimSpace(input.Notes),
		}
		if input.InitialCash != nil {
			s.InitialCash = *input.InitialCash
		}
		if input.InitialCoins != nil {
			s.InitialCoins = *input.InitialCoins
		}

		created, err := uc.repo.CreateIfNoneOpen(ctx, s)
		if database.IsUniqueViolation(err) || (err == nil && !created) {
			return alreadyOpen("")
		}
		if err != nil {
			return err
		}

		consumed, err := uc.adjustments.ConsumePending(ctx, s.ID)
		if err != nil {
			return err
		}
		if !consumed.Equal(initial.PendingApplied) {
			return fmt.Errorf("pending adjustments changed while opening: %s != %s", consumed, initial.PendingApplied)
		}
		return nil
	})
	if err != nil {
		if apperror.IsKind(err, apperror.KindConflict) {
			uc.logger.Warn("open rejected, shift already open", zap.String("user_id", input.Actor.UserID))
		}
		return nil, err
	}

	uc.logger.Info("shift opened",
		zap.String("shift_id", s.ID),
		zap.String("owner", s.OwnerUserID),
		zap.String("initial_cash", s.InitialCash.StringFixed(2)),
		zap.String("initial_coins", s.InitialCoins.StringFixed(2)),
		zap.String("pending_applied", s.PendingApplied.StringFixed(2)))

	timeline.Emit(ctx, uc.sink, uc.logger, timeline.NewEvent(
		model.ActionShiftOpened,
		&s.ID,
		s.OwnerUserID,
		fmt.Sprintf("shift opened with %s cash and %s coins", s.InitialCash.StringFixed(2), s.InitialCoins.StringFixed(2)),
		model.Metadata{
			"initial_cash":    s.InitialCash.StringFixed(2),
			"initial_coins":   s.InitialCoins.StringFixed(2),
			"pending_applied": s.PendingApplied.StringFixed(2),
			"bootstrapped":    strconv.FormatBool(initial.Bootstrapped),
			"overridden":      strconv.FormatBool(input.InitialCash != nil || input.InitialCoins != nil),
		},
	))
	return s, nil
}

// CloseShift reconciles and finalizes the open shift in one transaction.
// A policy rejection leaves the shift open and nothing written.
func (uc *shiftUseCase) CloseShift(ctx context.Context, input *dto.CloseShiftInput) (*model.Shift, error) {
	if err := validateCounted(input); err != nil {
		return nil, err
	}

	var (
		s      *model.Shift
		result cash.Result
	)
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.tx.LockRegister(ctx); err != nil {
			return err
		}

		var err error
		s, err = uc.repo.FindOpenForUpdate(ctx)
		if err != nil {
			return err
		}
		if s == nil {
			return noOpenShift()
		}

		in, _, err := uc.closeInput(ctx, s, input)
		if err != nil {
			return err
		}
		result, err = cash.Reconcile(in, uc.policy)
		if err != nil {
			return err
		}

		carry := cash.CarryFromClose(input.CountedCash, input.CountedCoins, in.TotalAdjustments)
		now := uc.now()
		s.EndTime = &now
		s.UpdatedAt = now
		s.CountedFinalCash = decimal.NewNullDecimal(input.CountedCash)
		s.CountedFinalCoins = decimal.NewNullDecimal(input.CountedCoins)
		s.ExpectedCash = decimal.NewNullDecimal(result.ExpectedCash)
		s.ExpectedTotal = decimal.NewNullDecimal(result.ExpectedTotal)
		s.CashDivergence = decimal.NewNullDecimal(result.Divergence)
		s.InheritedCash = decimal.NewNullDecimal(carry.Cash)
		s.InheritedCoins = decimal.NewNullDecimal(carry.Coins)
		if notes := strings.TrimSpace(input.Notes); notes != "" {
			s.Notes = notes
		}
		return uc.repo.Close(ctx, s)
	})
	if err != nil {
		if apperror.IsKind(err, apperror.KindBusinessRule) {
			uc.logger.Warn("close rejected by policy", zap.String("code", string(apperror.CodeOf(err))), zap.Error(err))
		}
		return nil, err
	}

	divergence := result.Divergence.StringFixed(2)
	uc.logger.Info("shift closed",
		zap.String("shift_id", s.ID),
		zap.String("expected_total", result.ExpectedTotal.StringFixed(2)),
		zap.String("counted_total", result.CountedTotal.StringFixed(2)),
		zap.String("divergence", divergence))

	timeline.Emit(ctx, uc.sink, uc.logger, timeline.NewEvent(
		model.ActionShiftClosed,
		&s.ID,
		input.Actor.UserID,
		fmt.Sprintf("shift closed with %s counted against %s expected", result.CountedTotal.StringFixed(2), result.ExpectedTotal.StringFixed(2)),
		model.Metadata{
			"expected_cash":   result.ExpectedCash.StringFixed(2),
			"expected_total":  result.ExpectedTotal.StringFixed(2),
			"counted_cash":    input.CountedCash.StringFixed(2),
			"counted_coins":   input.CountedCoins.StringFixed(2),
			"divergence":      divergence,
			"inherited_cash":  s.InheritedCash.Decimal.StringFixed(2),
			"inherited_coins": s.InheritedCoins.Decimal.StringFixed(2),
		},
	))
	if !result.Divergence.IsZero() {
		timeline.Emit(ctx, uc.sink, uc.logger, timeline.NewEvent(
			model.ActionCashDivergence,
			&s.ID,
			input.Actor.UserID,
			fmt.Sprintf("cash divergence of %s at close", divergence),
			model.Metadata{
				"divergence":     divergence,
				"max_divergence": uc.policy.MaxDivergence.StringFixed(2),
				"notes":          s.Notes,
			},
		))
	}
	return s, nil
}

// PreviewClose runs the close arithmetic against the open shift without
// writing anything.
func (uc *shiftUseCase) PreviewClose(ctx context.Context, input *dto.CloseShiftInput) (*dto.ClosePreview, error) {
	if err := validateCounted(input); err != nil {
		return nil, err
	}
	s, err := uc.repo.FindOpen(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, noOpenShift()
	}

	in, revenue, err := uc.closeInput(ctx, s, input)
	if err != nil {
		return nil, err
	}
	r := cash.Figures(in, uc.policy)

	p := &dto.ClosePreview{
		ShiftID:          s.ID,
		Revenue:          revenue,
		CashSales:        in.CashSales,
		TotalAdjustments: in.TotalAdjustments,
		Result:           r,
		Unconfirmed:      []string{},
	}
	if r.LowCash && !input.ConfirmLowCash {
		p.Unconfirmed = append(p.Unconfirmed, "cash")
	}
	if r.LowCoins && !input.ConfirmLowCoins {
		p.Unconfirmed = append(p.Unconfirmed, "coins")
	}
	p.NotesRequired = r.Divergence.Abs().GreaterThan(uc.policy.MaxDivergence) && strings.TrimSpace(input.Notes) == ""
	return p, nil
}

func (uc *shiftUseCase) StageValues(ctx context.Context, input *dto.StageValuesInput) (*model.Shift, error) {
	if input.ShiftID == "" {
		return nil, apperror.Validation(apperror.CodeInvalidArgument, "shift_id", "shift_id is required")
	}
	if input.FinalCash.Valid && input.FinalCash.Decimal.IsNegative() {
		return nil, apperror.Validation(apperror.CodeInvalidAmount, "final_cash", "amount must not be negative")
	}
	if input.FinalCoins.Valid && input.FinalCoins.Decimal.IsNegative() {
		return nil, apperror.Validation(apperror.CodeInvalidAmount, "final_coins", "amount must not be negative")
	}

	s, err := uc.requireOpen(ctx, input.ShiftID)
	if err != nil {
		return nil, err
	}
	s.StagedFinalCash = input.FinalCash
	s.StagedFinalCoins = input.FinalCoins
	s.GasExchange = input.GasExchange
	s.UpdatedAt = uc.now()

	ok, err := uc.repo.StageValues(ctx, s)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NotFound(apperror.CodeShiftClosed, "shift is closed").With("shift_id", s.ID)
	}
	uc.logger.Debug("shift values staged", zap.String("shift_id", s.ID), zap.Bool("gas_exchange", s.GasExchange))
	return s, nil
}

func (uc *shiftUseCase) GetCurrentShift(ctx context.Context) (*model.Shift, error) {
	s, err := uc.repo.FindOpen(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, noOpenShift()
	}
	return uc.withCollaborators(ctx, s)
}

func (uc *shiftUseCase) GetShift(ctx context.Context, id string) (*model.Shift, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperror.NotFound(apperror.CodeShiftNotFound, "shift not found")
	}
	return uc.withCollaborators(ctx, s)
}

func (uc *shiftUseCase) ListShifts(ctx context.Context, filters *dto.ShiftFilters) ([]model.Shift, int, error) {
	if filters.Status != "" && filters.Status != "open" && filters.Status != "closed" {
		return nil, 0, apperror.Validation(apperror.CodeInvalidArgument, "status", "status must be open or closed")
	}
	return uc.repo.FindAll(ctx, filters)
}

// GetSummary reports a shift's figures. A closed shift shows what was
// persisted at close; an open one shows the running expectation.
func (uc *shiftUseCase) GetSummary(ctx context.Context, id string) (*dto.Summary, error) {
	s, err := uc.GetShift(ctx, id)
	if err != nil {
		return nil, err
	}

	movements, err := uc.movements.ListMovements(ctx, id)
	if err != nil {
		return nil, err
	}
	revenue := cash.Total(movements, func(m model.MovementRecord) decimal.Decimal { return m.ItemTotal() })

	totals, err := uc.payments.GetTotals(ctx, id)
	if err != nil {
		return nil, err
	}
	consistency, err := uc.payments.CheckConsistency(ctx, id)
	if err != nil {
		return nil, err
	}
	adjustments, err := uc.adjustments.ListByShift(ctx, id)
	if err != nil {
		return nil, err
	}
	totalAdjustments := cash.Total(adjustments, func(a model.CashAdjustment) decimal.Decimal { return a.Amount })

	sum := &dto.Summary{
		Shift:            s,
		Movements:        movements,
		Revenue:          revenue,
		Payments:         *totals,
		Consistency:      *consistency,
		Adjustments:      adjustments,
		TotalAdjustments: totalAdjustments,
		Warnings:         []string{},
	}

	if s.IsOpen() {
		decl, err := uc.payments.GetDeclaration(ctx, id)
		if err != nil {
			return nil, err
		}
		declaredCash := decimal.NullDecimal{}
		if decl != nil {
			declaredCash = decl.Cash
		}
		expected := s.InitialCash.Add(cash.CashSales(declaredCash, revenue)).Sub(totalAdjustments)
		sum.ExpectedCash = expected
		sum.ExpectedTotal = expected.Add(s.InitialCoins)
	} else {
		sum.ExpectedCash = s.ExpectedCash.Decimal
		sum.ExpectedTotal = s.ExpectedTotal.Decimal
	}

	for i := range movements {
		if movements[i].Overdrawn() {
			sum.Warnings = append(sum.Warnings, fmt.Sprintf("product %s: more stock left than was available, sold clamped to 0", movements[i].ProductID))
		}
	}
	if !consistency.Consistent {
		sum.Warnings = append(sum.Warnings, fmt.Sprintf("declared payments %s differ from product revenue %s",
			consistency.DeclaredTotal.StringFixed(2), consistency.Revenue.StringFixed(2)))
	}
	return sum, nil
}

func (uc *shiftUseCase) NextInitial(ctx context.Context) (*cash.Initial, error) {
	initial, err := uc.nextInitial(ctx)
	if err != nil {
		return nil, err
	}
	return &initial, nil
}

func (uc *shiftUseCase) AddCollaborator(ctx context.Context, input *dto.CollaboratorInput) (*model.Collaborator, error) {
	if input.UserID == "" {
		return nil, apperror.Validation(apperror.CodeInvalidArgument, "user_id", "user_id is required")
	}
	s, err := uc.requireOpen(ctx, input.ShiftID)
	if err != nil {
		return nil, err
	}
	if s.OwnerUserID == input.UserID {
		return nil, apperror.Validation(apperror.CodeCollaboratorIsOwner, "user_id", "the shift owner cannot be a collaborator")
	}

	c := &model.Collaborator{
		ShiftID:   s.ID,
		UserID:    input.UserID,
		AddedBy:   input.Actor.UserID,
		CreatedAt: uc.now(),
	}
	if err := uc.repo.AddCollaborator(ctx, c); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Conflict(apperror.CodeCollaboratorExists, "user is already a collaborator")
		}
		return nil, fmt.Errorf("add collaborator: %w", err)
	}
	uc.logger.Info("collaborator added", zap.String("shift_id", s.ID), zap.String("user_id", c.UserID))
	return c, nil
}

func (uc *shiftUseCase) RemoveCollaborator(ctx context.Context, input *dto.CollaboratorInput) error {
	s, err := uc.requireOpen(ctx, input.ShiftID)
	if err != nil {
		return err
	}
	removed, err := uc.repo.RemoveCollaborator(ctx, s.ID, input.UserID)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NotFound(apperror.CodeCollaboratorNotFound, "user is not a collaborator on this shift")
	}
	uc.logger.Info("collaborator removed", zap.String("shift_id", s.ID), zap.String("user_id", input.UserID))
	return nil
}

func (uc *shiftUseCase) ListCollaborators(ctx context.Context, shiftID string) ([]model.Collaborator, error) {
	return uc.repo.ListCollaborators(ctx, shiftID)
}

func (uc *shiftUseCase) nextInitial(ctx context.Context) (cash.Initial, error) {
	last, err := uc.repo.FindLastClosed(ctx)
	if err != nil {
		return cash.Initial{}, err
	}
	var carry *cash.Carry
	if last != nil {
		carry = &cash.Carry{Cash: last.InheritedCash.Decimal, Coins: last.InheritedCoins.Decimal}
	}
	pending, err := uc.adjustments.PendingTotal(ctx)
	if err != nil {
		return cash.Initial{}, err
	}
	return cash.NextInitial(carry, pending, uc.bootstrap), nil
}

// closeInput gathers the ledgers a close reads. It returns product revenue
// alongside so callers can report it.
func (uc *shiftUseCase) closeInput(ctx context.Context, s *model.Shift, input *dto.CloseShiftInput) (cash.CloseInput, decimal.Decimal, error) {
	revenue, err := uc.movements.TotalRevenue(ctx, s.ID)
	if err != nil {
		return cash.CloseInput{}, decimal.Zero, err
	}
	decl, err := uc.payments.GetDeclaration(ctx, s.ID)
	if err != nil {
		return cash.CloseInput{}, decimal.Zero, err
	}
	declaredCash := decimal.NullDecimal{}
	if decl != nil {
		declaredCash = decl.Cash
	}
	adjustments, err := uc.adjustments.ShiftTotal(ctx, s.ID)
	if err != nil {
		return cash.CloseInput{}, decimal.Zero, err
	}

	return cash.CloseInput{
		InitialCash:      s.InitialCash,
		InitialCoins:     s.InitialCoins,
		CashSales:        cash.CashSales(declaredCash, revenue),
		TotalAdjustments: adjustments,
		CountedCash:      input.CountedCash,
		CountedCoins:     input.CountedCoins,
		Notes:            input.Notes,
		ConfirmLowCash:   input.ConfirmLowCash,
		ConfirmLowCoins:  input.ConfirmLowCoins,
	}, revenue, nil
}

func (uc *shiftUseCase) requireOpen(ctx context.Context, id string) (*model.Shift, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperror.NotFound(apperror.CodeShiftNotFound, "shift not found")
	}
	if !s.IsOpen() {
		return nil, apperror.NotFound(apperror.CodeShiftClosed, "shift is closed").With("shift_id", s.ID)
	}
	return s, nil
}

func (uc *shiftUseCase) withCollaborators(ctx context.Context, s *model.Shift) (*model.Shift, error) {
	collaborators, err := uc.repo.ListCollaborators(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Collaborators = collaborators
	return s, nil
}

func validateCounted(input *dto.CloseShiftInput) error {
	if input.CountedCash.IsNegative() {
		return apperror.Validation(apperror.CodeInvalidAmount, "counted_cash", "amount must not be negative")
	}
	if input.CountedCoins.IsNegative() {
		return apperror.Validation(apperror.CodeInvalidAmount, "counted_coins", "amount must not be negative")
	}
	return nil
}

func alreadyOpen(shiftID string) error {
	err := apperror.Conflict(apperror.CodeShiftAlreadyOpen, "a shift is already open")
	if shiftID != "" {
		return err.With("shift_id", shiftID)
	}
	return err
}

func noOpenShift() error {
	return apperror.NotFound(apperror.CodeNoOpenShift, "no shift is open")
}
