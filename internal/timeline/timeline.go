// Package timeline is the audit trail of register events.
package timeline

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-shift-service/internal/timeline/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sink accepts audit events. Use cases record after their transaction
// commits, so a failing sink never rolls back a state change.
type Sink interface {
	Record(ctx context.Context, event *model.TimelineEvent) error
}

type Repository interface {
	Create(ctx context.Context, event *model.TimelineEvent) error
	FindAll(ctx context.Context, filters *dto.TimelineFilters) ([]model.TimelineEvent, int, error)
}

// Searcher is the full-text side of the timeline.
type Searcher interface {
	Search(ctx context.Context, filters *dto.TimelineFilters) ([]model.TimelineEvent, int, error)
}

type UseCase interface {
	ListTimeline(ctx context.Context, filters *dto.TimelineFilters) ([]model.TimelineEvent, int, error)
	SearchTimeline(ctx context.Context, filters *dto.TimelineFilters) ([]model.TimelineEvent, int, error)
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(action string, shiftID *string, actorUserID, description string, metadata model.Metadata) *model.TimelineEvent {
	if metadata == nil {
		metadata = model.Metadata{}
	}
	return &model.TimelineEvent{
		ID:          uuid.New().String(),
		Action:      action,
		ShiftID:     shiftID,
		ActorUserID: actorUserID,
		Description: description,
		Metadata:    metadata,
		CreatedAt:   time.Now().UTC(),
	}
}

// Emit records e and logs, rather than returns, a sink failure.
func Emit(ctx context.Context, sink Sink, log logger.ZapLogger, e *model.TimelineEvent) {
	if sink == nil {
		return
	}
	if err := sink.Record(ctx, e); err != nil {
		log.Error("failed to record timeline event", zap.String("action", e.Action), zap.String("event_id", e.ID), zap.Error(err))
	}
}
