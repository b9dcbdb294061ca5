package handler

import (
	"context"

	shiftv1 "github.com/fekuna/omnipos-shift-service/api/shift/v1"
	"github.com/fekuna/omnipos-shift-service/internal/adjustment"
	"github.com/fekuna/omnipos-shift-service/internal/adjustment/dto"
	"github.com/fekuna/omnipos-shift-service/internal/auth"
	"github.com/fekuna/omnipos-shift-service/internal/cash"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

type AdjustmentHandler struct {
	shiftv1.UnimplementedAdjustmentServiceServer

	uc     adjustment.UseCase
	logger logger.ZapLogger
}

func NewAdjustmentHandler(uc adjustment.UseCase, log logger.ZapLogger) *AdjustmentHandler {
	return &AdjustmentHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AdjustmentHandler) CreateAdjustment(ctx context.Context, req *shiftv1.CreateAdjustmentRequest) (*shiftv1.AdjustmentResponse, error) {
	actor, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := cash.ParseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	a, err := h.uc.CreateAdjustment(ctx, &dto.CreateAdjustmentInput{
		Actor:   actor,
		Type:    model.AdjustmentType(req.Type),
		Amount:  amount,
		Reason:  req.Reason,
		ShiftID: req.ShiftID,
	})
	if err != nil {
		return nil, err
	}
	return &shiftv1.AdjustmentResponse{Adjustment: MapAdjustmentToProto(a)}, nil
}

func (h *AdjustmentHandler) ListAdjustments(ctx context.Context, req *shiftv1.ListAdjustmentsRequest) (*shiftv1.ListAdjustmentsResponse, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}

	adjustments, err := h.uc.ListByShift(ctx, req.ShiftID)
	if err != nil {
		return nil, err
	}
	return listResponse(adjustments), nil
}

func (h *AdjustmentHandler) ListPendingAdjustments(ctx context.Context, _ *shiftv1.Empty) (*shiftv1.ListAdjustmentsResponse, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}

	pending, err := h.uc.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return listResponse(pending), nil
}

func listResponse(adjustments []model.CashAdjustment) *shiftv1.ListAdjustmentsResponse {
	resp := &shiftv1.ListAdjustmentsResponse{Adjustments: make([]*shiftv1.Adjustment, 0, len(adjustments))}
	for i := range adjustments {
		resp.Adjustments = append(resp.Adjustments, MapAdjustmentToProto(&adjustments[i]))
	}
	resp.Total = shiftv1.Money(cash.Total(adjustments, func(a model.CashAdjustment) decimal.Decimal { return a.Amount }))
	return resp
}

func MapAdjustmentToProto(a *model.CashAdjustment) *shiftv1.Adjustment {
	out := &shiftv1.Adjustment{
		ID:          a.ID,
		Type:        string(a.Type),
		Amount:      shiftv1.Money(a.Amount),
		Reason:      a.Reason,
		ActorUserID: a.ActorUserID,
		SourceIP:    a.SourceIP,
		Pending:     a.Pending(),
		CreatedAt:   shiftv1.Timestamp(a.CreatedAt),
	}
	if a.ShiftID != nil {
		out.ShiftID = *a.ShiftID
	}
	return out
}
