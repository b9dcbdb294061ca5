package usecase

import (
	"context"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-shift-service/internal/timeline"
	"github.com/fekuna/omnipos-shift-service/internal/timeline/dto"
	"go.uber.org/zap"
)

type timelineUseCase struct {
	repo     timeline.Repository
	searcher timeline.Searcher
	logger   logger.ZapLogger
}

// NewTimelineUseCase accepts a nil searcher; search then runs on the
// database.
func NewTimelineUseCase(repo timeline.Repository, searcher timeline.Searcher, log logger.ZapLogger) timeline.UseCase {
	return &timelineUseCase{repo: repo, searcher: searcher, logger: log}
}

func (uc *timelineUseCase) ListTimeline(ctx context.Context, filters *dto.TimelineFilters) ([]model.TimelineEvent, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *timelineUseCase) SearchTimeline(ctx context.Context, filters *dto.TimelineFilters) ([]model.TimelineEvent, int, error) {
	if uc.searcher != nil {
		events, count, err := uc.searcher.Search(ctx, filters)
		if err == nil {
			return events, count, nil
		}
		uc.logger.Error("timeline search failed, falling back to DB", zap.Error(err))
	}
	return uc.repo.FindAll(ctx, filters)
}
