package handler

import (
	"context"

	shiftv1 "github.com/fekuna/omnipos-shift-service/api/shift/v1"
	"github.com/fekuna/omnipos-shift-service/internal/auth"
	"github.com/fekuna/omnipos-shift-service/internal/cash"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/movement"
	"github.com/fekuna/omnipos-shift-service/internal/movement/dto"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MovementHandler serves employee writes only. entry_qty reaches the use
// case through the restock listener, never through this handler.
type MovementHandler struct {
	shiftv1.UnimplementedMovementServiceServer

	uc     movement.UseCase
	logger logger.ZapLogger
}

func NewMovementHandler(uc movement.UseCase, log logger.ZapLogger) *MovementHandler {
	return &MovementHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *MovementHandler) RecordMovement(ctx context.Context, req *shiftv1.RecordMovementRequest) (*shiftv1.MovementResponse, error) {
	actor, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := h.uc.RecordMovement(ctx, toInput(actor, req))
	if err != nil {
		return nil, err
	}
	return &shiftv1.MovementResponse{Movement: MapMovementToProto(rec)}, nil
}

func (h *MovementHandler) ListMovements(ctx context.Context, req *shiftv1.ListMovementsRequest) (*shiftv1.ListMovementsResponse, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}

	records, err := h.uc.ListMovements(ctx, req.ShiftID)
	if err != nil {
		return nil, err
	}
	return listResponse(records), nil
}

func (h *MovementHandler) StageDraft(ctx context.Context, req *shiftv1.RecordMovementRequest) (*shiftv1.DraftResponse, error) {
	actor, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	d, err := h.uc.StageDraft(ctx, toInput(actor, req))
	if err != nil {
		return nil, err
	}
	return &shiftv1.DraftResponse{Draft: mapDraftToProto(d)}, nil
}

func (h *MovementHandler) ListDrafts(ctx context.Context, req *shiftv1.ListMovementsRequest) (*shiftv1.ListDraftsResponse, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}

	drafts, err := h.uc.ListDrafts(ctx, req.ShiftID)
	if err != nil {
		return nil, err
	}
	resp := &shiftv1.ListDraftsResponse{Drafts: make([]*shiftv1.MovementDraft, 0, len(drafts))}
	for i := range drafts {
		resp.Drafts = append(resp.Drafts, mapDraftToProto(&drafts[i]))
	}
	return resp, nil
}

func (h *MovementHandler) SaveDrafts(ctx context.Context, req *shiftv1.ListMovementsRequest) (*shiftv1.ListMovementsResponse, error) {
	actor, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	saved, err := h.uc.SaveDrafts(ctx, req.ShiftID)
	if err != nil {
		return nil, err
	}
	h.logger.Info("movement drafts saved", zap.String("shift_id", req.ShiftID), zap.String("user_id", actor.UserID), zap.Int("count", len(saved)))
	return listResponse(saved), nil
}

func (h *MovementHandler) DiscardDrafts(ctx context.Context, req *shiftv1.ListMovementsRequest) (*shiftv1.Empty, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}
	if err := h.uc.DiscardDrafts(ctx, req.ShiftID); err != nil {
		return nil, err
	}
	return &shiftv1.Empty{}, nil
}

func toInput(actor auth.UserContext, req *shiftv1.RecordMovementRequest) *dto.RecordMovementInput {
	return &dto.RecordMovementInput{
		Actor:     actor,
		ShiftID:   req.ShiftID,
		ProductID: req.ProductID,
		Field:     model.MovementField(req.Field),
		Value:     req.Value,
	}
}

func listResponse(records []model.MovementRecord) *shiftv1.ListMovementsResponse {
	resp := &shiftv1.ListMovementsResponse{Movements: make([]*shiftv1.Movement, 0, len(records))}
	for i := range records {
		resp.Movements = append(resp.Movements, MapMovementToProto(&records[i]))
	}
	resp.TotalRevenue = shiftv1.Money(cash.Total(records, func(r model.MovementRecord) decimal.Decimal { return r.ItemTotal() }))
	return resp
}

// MapMovementToProto includes the derived sold quantity and item total.
func MapMovementToProto(m *model.MovementRecord) *shiftv1.Movement {
	return &shiftv1.Movement{
		ID:            m.ID,
		ShiftID:       m.ShiftID,
		ProductID:     m.ProductID,
		EntryQty:      m.EntryQty,
		ArrivalQty:    m.ArrivalQty,
		LeftoverQty:   m.LeftoverQty,
		DiscardQty:    m.DiscardQty,
		ConsumedQty:   m.ConsumedQty,
		SoldQty:       m.SoldQty(),
		PriceSnapshot: shiftv1.Money(m.PriceSnapshot),
		ItemTotal:     shiftv1.Money(m.ItemTotal()),
		Overdrawn:     m.Overdrawn(),
	}
}

func mapDraftToProto(d *model.MovementDraft) *shiftv1.MovementDraft {
	fields := make(map[string]int64, len(d.Fields))
	for f, v := range d.Fields {
		fields[string(f)] = v
	}
	return &shiftv1.MovementDraft{ShiftID: d.ShiftID, ProductID: d.ProductID, Fields: fields}
}
