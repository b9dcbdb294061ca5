package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/adjustment/dto"
	adjustmentRepo "github.com/fekuna/omnipos-shift-service/internal/adjustment/repository"
	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"github.com/fekuna/omnipos-shift-service/internal/auth"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database/databasetest"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	shiftRepo "github.com/fekuna/omnipos-shift-service/internal/shift/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"
)

type memorySink struct {
	mu     sync.Mutex
	events []*model.TimelineEvent
}

func (s *memorySink) Record(_ context.Context, e *model.TimelineEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

var admin = auth.UserContext{UserID: "admin-1", Role: auth.RoleAdmin, SourceIP: "10.1.1.1"}

func newUseCase(t *testing.T) (*adjustmentUseCase, *shiftRepo.SQLRepository, *memorySink) {
	t.Helper()
	db := databasetest.Open(t)
	shifts := shiftRepo.NewSQLRepository(db)
	sink := &memorySink{}
	uc := NewAdjustmentUseCase(
		adjustmentRepo.NewSQLRepository(db),
		shifts,
		database.NewTransactor(db),
		sink,
		10,
		logger.Wrap(zaptest.NewLogger(t)),
	).(*adjustmentUseCase)
	return uc, shifts, sink
}

func openShift(t *testing.T, shifts *shiftRepo.SQLRepository, id string) *model.Shift {
	t.Helper()
	now := time.Now().UTC()
	s := &model.Shift{
		BaseModel:    model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		OwnerUserID:  "u-1",
		StartTime:    now,
		InitialCash:  decimal.NewFromInt(200),
		InitialCoins: decimal.NewFromInt(50),
	}
	if ok, err := shifts.CreateIfNoneOpen(context.Background(), s); err != nil || !ok {
		t.Fatalf("open shift: ok=%v err=%v", ok, err)
	}
	return s
}

func withdraw(amount string) *dto.CreateAdjustmentInput {
	return &dto.CreateAdjustmentInput{
		Actor:  admin,
		Type:   model.AdjustmentWithdraw,
		Amount: decimal.RequireFromString(amount),
		Reason: "bank deposit run",
	}
}

func TestCreateAdjustmentRequiresAdmin(t *testing.T) {
	uc, _, sink := newUseCase(t)
	input := withdraw("50")
	input.Actor = auth.UserContext{UserID: "u-1", Role: auth.RoleEmployee}

	_, err := uc.CreateAdjustment(context.Background(), input)
	if !apperror.IsKind(err, apperror.KindAuthorization) {
		t.Fatalf("expected authorization error, got %v", err)
	}
	if len(sink.events) != 0 {
		t.Fatal("rejected adjustment must not emit events")
	}
}

func TestCreateAdjustmentValidation(t *testing.T) {
	uc, _, _ := newUseCase(t)

	tests := []struct {
		name   string
		mutate func(*dto.CreateAdjustmentInput)
		code   apperror.Code
	}{
		{"zero amount", func(in *dto.CreateAdjustmentInput) { in.Amount = decimal.Zero }, apperror.CodeInvalidAmount},
		{"negative amount", func(in *dto.CreateAdjustmentInput) { in.Amount = decimal.NewFromInt(-5) }, apperror.CodeInvalidAmount},
		{"short reason", func(in *dto.CreateAdjustmentInput) { in.Reason = "  bank  " }, apperror.CodeReasonTooShort},
		{"bad type", func(in *dto.CreateAdjustmentInput) { in.Type = "refund" }, apperror.CodeInvalidAdjustmentType},
		{"unknown target", func(in *dto.CreateAdjustmentInput) { in.ShiftID = "missing" }, apperror.CodeShiftNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := withdraw("50")
			tt.mutate(in)
			if _, err := uc.CreateAdjustment(context.Background(), in); apperror.CodeOf(err) != tt.code {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestAdjustmentAttachesToOpenShift(t *testing.T) {
	uc, shifts, sink := newUseCase(t)
	ctx := context.Background()
	s := openShift(t, shifts, "s-1")

	a, err := uc.CreateAdjustment(ctx, withdraw("50"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Pending() || *a.ShiftID != s.ID {
		t.Fatalf("expected attachment to open shift, got %+v", a)
	}

	adj := withdraw("12.50")
	adj.Type = model.AdjustmentAdjustment
	if _, err := uc.CreateAdjustment(ctx, adj); err != nil {
		t.Fatalf("create adjustment: %v", err)
	}

	total, err := uc.ShiftTotal(ctx, s.ID)
	if err != nil {
		t.Fatalf("shift total: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("62.50")) {
		t.Fatalf("both types count toward the shift total, got %s", total)
	}

	if len(sink.events) != 2 || sink.events[0].Action != model.ActionCashWithdrawal || sink.events[0].Metadata["pending"] != "false" {
		t.Fatalf("unexpected events %+v", sink.events)
	}
}

func TestPendingAdjustmentsConsumedOnce(t *testing.T) {
	uc, shifts, sink := newUseCase(t)
	ctx := context.Background()

	for _, amount := range []string{"30", "10"} {
		a, err := uc.CreateAdjustment(ctx, withdraw(amount))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if !a.Pending() {
			t.Fatal("no open shift means pending")
		}
	}
	if sink.events[0].ShiftID != nil || sink.events[0].Metadata["pending"] != "true" {
		t.Fatalf("pending event must have no shift, got %+v", sink.events[0])
	}

	pending, err := uc.PendingTotal(ctx)
	if err != nil || !pending.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected pending 40, got %s, %v", pending, err)
	}

	s := openShift(t, shifts, "s-1")
	consumed, err := uc.ConsumePending(ctx, s.ID)
	if err != nil || !consumed.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected consumed 40, got %s, %v", consumed, err)
	}

	pending, err = uc.PendingTotal(ctx)
	if err != nil || !pending.IsZero() {
		t.Fatalf("pending must be drained after consumption, got %s, %v", pending, err)
	}
	again, err := uc.ConsumePending(ctx, s.ID)
	if err != nil || !again.IsZero() {
		t.Fatalf("second consumption must be empty, got %s, %v", again, err)
	}

	list, err := uc.ListPending(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("expected no pending adjustments, got %v, %v", list, err)
	}

	total, err := uc.ShiftTotal(ctx, s.ID)
	if err != nil || !total.IsZero() {
		t.Fatalf("consumed pending entries are not part of the shift total, got %s, %v", total, err)
	}
}

func TestAdjustmentOnClosedShiftRejected(t *testing.T) {
	uc, shifts, _ := newUseCase(t)
	s := openShift(t, shifts, "s-1")
	end := time.Now().UTC()
	s.EndTime = &end
	if err := shifts.Close(context.Background(), s); err != nil {
		t.Fatalf("close: %v", err)
	}

	in := withdraw("20")
	in.ShiftID = s.ID
	if _, err := uc.CreateAdjustment(context.Background(), in); apperror.CodeOf(err) != apperror.CodeShiftClosed {
		t.Fatalf("expected shift closed, got %v", err)
	}
}
