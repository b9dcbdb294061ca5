package handler

import (
	"context"

	shiftv1 "github.com/fekuna/omnipos-shift-service/api/shift/v1"
	"github.com/fekuna/omnipos-shift-service/internal/auth"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-shift-service/internal/timeline"
	"github.com/fekuna/omnipos-shift-service/internal/timeline/dto"
)

type TimelineHandler struct {
	shiftv1.UnimplementedTimelineServiceServer

	uc     timeline.UseCase
	logger logger.ZapLogger
}

func NewTimelineHandler(uc timeline.UseCase, log logger.ZapLogger) *TimelineHandler {
	return &TimelineHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *TimelineHandler) ListTimeline(ctx context.Context, req *shiftv1.TimelineRequest) (*shiftv1.TimelineResponse, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}
	events, total, err := h.uc.ListTimeline(ctx, toFilters(req))
	if err != nil {
		return nil, err
	}
	return response(events, total), nil
}

func (h *TimelineHandler) SearchTimeline(ctx context.Context, req *shiftv1.TimelineRequest) (*shiftv1.TimelineResponse, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}
	events, total, err := h.uc.SearchTimeline(ctx, toFilters(req))
	if err != nil {
		return nil, err
	}
	return response(events, total), nil
}

func toFilters(req *shiftv1.TimelineRequest) *dto.TimelineFilters {
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	return &dto.TimelineFilters{
		ShiftID:  req.ShiftID,
		Action:   req.Action,
		Query:    req.Query,
		Page:     int(req.Page),
		PageSize: int(req.PageSize),
	}
}

func response(events []model.TimelineEvent, total int) *shiftv1.TimelineResponse {
	resp := &shiftv1.TimelineResponse{Events: make([]*shiftv1.TimelineEvent, 0, len(events)), Total: int32(total)}
	for _, e := range events {
		out := &shiftv1.TimelineEvent{
			ID:          e.ID,
			Action:      e.Action,
			ActorUserID: e.ActorUserID,
			Description: e.Description,
			Metadata:    e.Metadata,
			CreatedAt:   shiftv1.Timestamp(e.CreatedAt),
		}
		if e.ShiftID != nil {
			out.ShiftID = *e.ShiftID
		}
		resp.Events = append(resp.Events, out)
	}
	return resp
}
