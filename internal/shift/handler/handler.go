package handler

import (
	"context"

	shiftv1 "github.com/fekuna/omnipos-shift-service/api/shift/v1"
	adjustmentH "github.com/fekuna/omnipos-shift-service/internal/adjustment/handler"
	"github.com/fekuna/omnipos-shift-service/internal/auth"
	"github.com/fekuna/omnipos-shift-service/internal/cash"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	movementH "github.com/fekuna/omnipos-shift-service/internal/movement/handler"
	paymentH "github.com/fekuna/omnipos-shift-service/internal/payment/handler"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-shift-service/internal/shift"
	"github.com/fekuna/omnipos-shift-service/internal/shift/dto"
)

type ShiftHandler struct {
	shiftv1.UnimplementedShiftServiceServer

	uc     shift.UseCase
	logger logger.ZapLogger
}

func NewShiftHandler(uc shift.UseCase, log logger.ZapLogger) *ShiftHandler {
	return &ShiftHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ShiftHandler) OpenShift(ctx context.Context, req *shiftv1.OpenShiftRequest) (*shiftv1.ShiftResponse, error) {
	actor, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	input := &dto.OpenShiftInput{Actor: actor, Notes: req.Notes}
	initialCash, err := cash.ParseOptionalAmount("initial_cash", req.InitialCash)
	if err != nil {
		return nil, err
	}
	if initialCash.Valid {
		input.InitialCash = &initialCash.Decimal
	}
	initialCoins, err := cash.ParseOptionalAmount("initial_coins", req.InitialCoins)
	if err != nil {
		return nil, err
	}
	if initialCoins.Valid {
		input.InitialCoins = &initialCoins.Decimal
	}

	s, err := h.uc.OpenShift(ctx, input)
	if err != nil {
		return nil, err
	}
	return &shiftv1.ShiftResponse{Shift: MapShiftToProto(s)}, nil
}

func (h *ShiftHandler) CloseShift(ctx context.Context, req *shiftv1.CloseShiftRequest) (*shiftv1.ShiftResponse, error) {
	input, err := closeInput(ctx, req)
	if err != nil {
		return nil, err
	}
	s, err := h.uc.CloseShift(ctx, input)
	if err != nil {
		return nil, err
	}
	return &shiftv1.ShiftResponse{Shift: MapShiftToProto(s)}, nil
}

func (h *ShiftHandler) PreviewClose(ctx context.Context, req *shiftv1.CloseShiftRequest) (*shiftv1.ClosePreviewResponse, error) {
	input, err := closeInput(ctx, req)
	if err != nil {
		return nil, err
	}
	p, err := h.uc.PreviewClose(ctx, input)
	if err != nil {
		return nil, err
	}
	return &shiftv1.ClosePreviewResponse{
		ShiftID:          p.ShiftID,
		Revenue:          shiftv1.Money(p.Revenue),
		CashSales:        shiftv1.Money(p.CashSales),
		TotalAdjustments: shiftv1.Money(p.TotalAdjustments),
		ExpectedCash:     shiftv1.Money(p.Result.ExpectedCash),
		ExpectedTotal:    shiftv1.Money(p.Result.ExpectedTotal),
		CountedTotal:     shiftv1.Money(p.Result.CountedTotal),
		Divergence:       shiftv1.Money(p.Result.Divergence),
		LowCash:          p.Result.LowCash,
		LowCoins:         p.Result.LowCoins,
		Unconfirmed:      p.Unconfirmed,
		NotesRequired:    p.NotesRequired,
	}, nil
}

func (h *ShiftHandler) StageValues(ctx context.Context, req *shiftv1.StageValuesRequest) (*shiftv1.ShiftResponse, error) {
	actor, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	input := &dto.StageValuesInput{Actor: actor, ShiftID: req.ShiftID, GasExchange: req.GasExchange}
	if input.FinalCash, err = cash.ParseOptionalAmount("final_cash", req.FinalCash); err != nil {
		return nil, err
	}
	if input.FinalCoins, err = cash.ParseOptionalAmount("final_coins", req.FinalCoins); err != nil {
		return nil, err
	}

	s, err := h.uc.StageValues(ctx, input)
	if err != nil {
		return nil, err
	}
	return &shiftv1.ShiftResponse{Shift: MapShiftToProto(s)}, nil
}

func (h *ShiftHandler) GetCurrentShift(ctx context.Context, _ *shiftv1.Empty) (*shiftv1.ShiftResponse, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}
	s, err := h.uc.GetCurrentShift(ctx)
	if err != nil {
		return nil, err
	}
	return &shiftv1.ShiftResponse{Shift: MapShiftToProto(s)}, nil
}

func (h *ShiftHandler) GetShift(ctx context.Context, req *shiftv1.GetShiftRequest) (*shiftv1.ShiftResponse, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}
	s, err := h.uc.GetShift(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &shiftv1.ShiftResponse{Shift: MapShiftToProto(s)}, nil
}

func (h *ShiftHandler) ListShifts(ctx context.Context, req *shiftv1.ListShiftsRequest) (*shiftv1.ListShiftsResponse, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}

	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	shifts, total, err := h.uc.ListShifts(ctx, &dto.ShiftFilters{
		Status:   req.Status,
		Page:     int(req.Page),
		PageSize: int(req.PageSize),
	})
	if err != nil {
		return nil, err
	}

	resp := &shiftv1.ListShiftsResponse{Shifts: make([]*shiftv1.Shift, 0, len(shifts)), Total: int32(total)}
	for i := range shifts {
		resp.Shifts = append(resp.Shifts, MapShiftToProto(&shifts[i]))
	}
	return resp, nil
}

func (h *ShiftHandler) GetShiftSummary(ctx context.Context, req *shiftv1.GetShiftRequest) (*shiftv1.ShiftSummaryResponse, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}
	sum, err := h.uc.GetSummary(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	resp := &shiftv1.ShiftSummaryResponse{
		Shift:            MapShiftToProto(sum.Shift),
		Movements:        make([]*shiftv1.Movement, 0, len(sum.Movements)),
		Revenue:          shiftv1.Money(sum.Revenue),
		Payments:         paymentH.MapTotalsToProto(&sum.Payments),
		Consistency:      paymentH.MapConsistencyToProto(&sum.Consistency),
		Adjustments:      make([]*shiftv1.Adjustment, 0, len(sum.Adjustments)),
		TotalAdjustments: shiftv1.Money(sum.TotalAdjustments),
		ExpectedCash:     shiftv1.Money(sum.ExpectedCash),
		ExpectedTotal:    shiftv1.Money(sum.ExpectedTotal),
		Warnings:         sum.Warnings,
	}
	for i := range sum.Movements {
		resp.Movements = append(resp.Movements, movementH.MapMovementToProto(&sum.Movements[i]))
	}
	for i := range sum.Adjustments {
		resp.Adjustments = append(resp.Adjustments, adjustmentH.MapAdjustmentToProto(&sum.Adjustments[i]))
	}
	return resp, nil
}

func (h *ShiftHandler) GetNextInitial(ctx context.Context, _ *shiftv1.Empty) (*shiftv1.NextInitialResponse, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}
	next, err := h.uc.NextInitial(ctx)
	if err != nil {
		return nil, err
	}
	return &shiftv1.NextInitialResponse{
		InitialCash:    shiftv1.Money(next.Cash),
		InitialCoins:   shiftv1.Money(next.Coins),
		PendingApplied: shiftv1.Money(next.PendingApplied),
		Bootstrapped:   next.Bootstrapped,
	}, nil
}

func (h *ShiftHandler) AddCollaborator(ctx context.Context, req *shiftv1.CollaboratorRequest) (*shiftv1.CollaboratorResponse, error) {
	actor, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	c, err := h.uc.AddCollaborator(ctx, &dto.CollaboratorInput{Actor: actor, ShiftID: req.ShiftID, UserID: req.UserID})
	if err != nil {
		return nil, err
	}
	return &shiftv1.CollaboratorResponse{Collaborator: mapCollaboratorToProto(c)}, nil
}

func (h *ShiftHandler) RemoveCollaborator(ctx context.Context, req *shiftv1.CollaboratorRequest) (*shiftv1.Empty, error) {
	actor, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.uc.RemoveCollaborator(ctx, &dto.CollaboratorInput{Actor: actor, ShiftID: req.ShiftID, UserID: req.UserID}); err != nil {
		return nil, err
	}
	return &shiftv1.Empty{}, nil
}

func (h *ShiftHandler) ListCollaborators(ctx context.Context, req *shiftv1.GetShiftRequest) (*shiftv1.ListCollaboratorsResponse, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}
	collaborators, err := h.uc.ListCollaborators(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	resp := &shiftv1.ListCollaboratorsResponse{Collaborators: make([]*shiftv1.Collaborator, 0, len(collaborators))}
	for i := range collaborators {
		resp.Collaborators = append(resp.Collaborators, mapCollaboratorToProto(&collaborators[i]))
	}
	return resp, nil
}

func closeInput(ctx context.Context, req *shiftv1.CloseShiftRequest) (*dto.CloseShiftInput, error) {
	actor, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	countedCash, err := cash.ParseAmount("counted_cash", req.CountedCash)
	if err != nil {
		return nil, err
	}
	countedCoins, err := cash.ParseAmount("counted_coins", req.CountedCoins)
	if err != nil {
		return nil, err
	}
	return &dto.CloseShiftInput{
		Actor:           actor,
		CountedCash:     countedCash,
		CountedCoins:    countedCoins,
		Notes:           req.Notes,
		ConfirmLowCash:  req.ConfirmLowCash,
		ConfirmLowCoins: req.ConfirmLowCoins,
	}, nil
}

func MapShiftToProto(s *model.Shift) *shiftv1.Shift {
	out := &shiftv1.Shift{
		ID:                s.ID,
		OwnerUserID:       s.OwnerUserID,
		StartTime:         shiftv1.Timestamp(s.StartTime),
		EndTime:           shiftv1.OptionalTimestamp(s.EndTime),
		InitialCash:       shiftv1.Money(s.InitialCash),
		InitialCoins:      shiftv1.Money(s.InitialCoins),
		PendingApplied:    shiftv1.Money(s.PendingApplied),
		CountedFinalCash:  shiftv1.OptionalMoney(s.CountedFinalCash),
		CountedFinalCoins: shiftv1.OptionalMoney(s.CountedFinalCoins),
		ExpectedCash:      shiftv1.OptionalMoney(s.ExpectedCash),
		ExpectedTotal:     shiftv1.OptionalMoney(s.ExpectedTotal),
		CashDivergence:    shiftv1.OptionalMoney(s.CashDivergence),
		InheritedCash:     shiftv1.OptionalMoney(s.InheritedCash),
		InheritedCoins:    shiftv1.OptionalMoney(s.InheritedCoins),
		Notes:             s.Notes,
		StagedFinalCash:   shiftv1.OptionalMoney(s.StagedFinalCash),
		StagedFinalCoins:  shiftv1.OptionalMoney(s.StagedFinalCoins),
		GasExchange:       s.GasExchange,
	}
	for i := range s.Collaborators {
		out.Collaborators = append(out.Collaborators, *mapCollaboratorToProto(&s.Collaborators[i]))
	}
	return out
}

func mapCollaboratorToProto(c *model.Collaborator) *shiftv1.Collaborator {
	return &shiftv1.Collaborator{
		ShiftID:   c.ShiftID,
		UserID:    c.UserID,
		AddedBy:   c.AddedBy,
		CreatedAt: shiftv1.Timestamp(c.CreatedAt),
	}
}
