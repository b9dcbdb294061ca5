package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database/databasetest"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-shift-service/internal/timeline"
	"github.com/fekuna/omnipos-shift-service/internal/timeline/dto"
	"github.com/fekuna/omnipos-shift-service/internal/timeline/repository"
	"go.uber.org/zap/zaptest"
)

type failingSearcher struct{ calls int }

func (s *failingSearcher) Search(context.Context, *dto.TimelineFilters) ([]model.TimelineEvent, int, error) {
	s.calls++
	return nil, 0, errors.New("cluster unavailable")
}

func seed(t *testing.T, repo *repository.SQLRepository) {
	t.Helper()
	shiftID := "s-1"
	base := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	events := []*model.TimelineEvent{
		timeline.NewEvent(model.ActionShiftOpened, &shiftID, "u-1", "Shift opened with 200.00 cash", nil),
		timeline.NewEvent(model.ActionCashWithdrawal, nil, "admin", "Withdrawal of 50.00: bank deposit", model.Metadata{"amount": "50.00"}),
		timeline.NewEvent(model.ActionShiftClosed, &shiftID, "u-1", "Shift closed with divergence 0.00", nil),
	}
	for i, e := range events {
		e.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.Record(context.Background(), e); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
}

func TestListTimelineFilters(t *testing.T) {
	repo := repository.NewSQLRepository(databasetest.Open(t))
	seed(t, repo)
	uc := NewTimelineUseCase(repo, nil, logger.Wrap(zaptest.NewLogger(t)))
	ctx := context.Background()

	all, count, err := uc.ListTimeline(ctx, &dto.TimelineFilters{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if count != 3 || all[0].Action != model.ActionShiftClosed {
		t.Fatalf("expected newest first, got %d events starting with %s", count, all[0].Action)
	}

	byShift, count, err := uc.ListTimeline(ctx, &dto.TimelineFilters{ShiftID: "s-1", PageSize: 1, Page: 2})
	if err != nil {
		t.Fatalf("list by shift: %v", err)
	}
	if count != 2 || len(byShift) != 1 || byShift[0].Action != model.ActionShiftOpened {
		t.Fatalf("unexpected page %v (count %d)", byShift, count)
	}

	withdrawals, _, err := uc.ListTimeline(ctx, &dto.TimelineFilters{Action: model.ActionCashWithdrawal})
	if err != nil || len(withdrawals) != 1 {
		t.Fatalf("filter by action: %v, %v", withdrawals, err)
	}
	if withdrawals[0].ShiftID != nil || withdrawals[0].Metadata["amount"] != "50.00" {
		t.Fatalf("unexpected withdrawal event %+v", withdrawals[0])
	}
}

func TestSearchFallsBackToDatabase(t *testing.T) {
	repo := repository.NewSQLRepository(databasetest.Open(t))
	seed(t, repo)
	searcher := &failingSearcher{}
	uc := NewTimelineUseCase(repo, searcher, logger.Wrap(zaptest.NewLogger(t)))

	events, count, err := uc.SearchTimeline(context.Background(), &dto.TimelineFilters{Query: "BANK"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if searcher.calls != 1 {
		t.Fatalf("expected search index to be tried first")
	}
	if count != 1 || events[0].Action != model.ActionCashWithdrawal {
		t.Fatalf("unexpected fallback result %v", events)
	}
}
