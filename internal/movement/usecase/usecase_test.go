package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	catalogRepo "github.com/fekuna/omnipos-shift-service/internal/catalog/repository"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/movement/draft"
	"github.com/fekuna/omnipos-shift-service/internal/movement/dto"
	movementRepo "github.com/fekuna/omnipos-shift-service/internal/movement/repository"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database/databasetest"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	shiftRepo "github.com/fekuna/omnipos-shift-service/internal/shift/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	uc       *movementUseCase
	shifts   *shiftRepo.SQLRepository
	products *catalogRepo.SQLRepository
	drafts   *draft.MemoryStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := databasetest.Open(t)
	f := &fixture{
		shifts:   shiftRepo.NewSQLRepository(db),
		products: catalogRepo.NewSQLRepository(db),
		drafts:   draft.NewMemoryStore(),
	}
	f.uc = NewMovementUseCase(
		movementRepo.NewSQLRepository(db),
		f.shifts,
		f.products,
		f.drafts,
		database.NewTransactor(db),
		logger.Wrap(zaptest.NewLogger(t)),
	).(*movementUseCase)

	ctx := context.Background()
	for _, p := range []*model.Product{
		{ID: "coxinha", Name: "Coxinha", BasePrice: decimal.RequireFromString("3.50"), IsActive: true},
		{ID: "suco", Name: "Suco", BasePrice: decimal.RequireFromString("6.00"), IsActive: true},
	} {
		if err := f.products.Upsert(ctx, p); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}
	return f
}

func (f *fixture) openShift(t *testing.T, id string) *model.Shift {
	t.Helper()
	now := time.Now().UTC()
	s := &model.Shift{
		BaseModel:    model.BaseModel{ID: id, CreatedAt: now, UpdatedAt: now},
		OwnerUserID:  "u-1",
		StartTime:    now,
		InitialCash:  decimal.NewFromInt(200),
		InitialCoins: decimal.NewFromInt(50),
	}
	if ok, err := f.shifts.CreateIfNoneOpen(context.Background(), s); err != nil || !ok {
		t.Fatalf("open shift: ok=%v err=%v", ok, err)
	}
	return s
}

func (f *fixture) closeShift(t *testing.T, s *model.Shift) {
	t.Helper()
	end := time.Now().UTC()
	s.EndTime = &end
	if err := f.shifts.Close(context.Background(), s); err != nil {
		t.Fatalf("close shift: %v", err)
	}
}

func record(shiftID, productID string, field model.MovementField, value int64) *dto.RecordMovementInput {
	return &dto.RecordMovementInput{ShiftID: shiftID, ProductID: productID, Field: field, Value: value}
}

func TestRecordMovementDerivesSoldAndTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.openShift(t, "s-1")

	if _, err := f.uc.SetEntry(ctx, &dto.SetEntryInput{ProductID: "coxinha", Quantity: 10}); err != nil {
		t.Fatalf("set entry: %v", err)
	}
	if _, err := f.uc.RecordMovement(ctx, record(s.ID, "coxinha", model.FieldLeftover, 2)); err != nil {
		t.Fatalf("leftover: %v", err)
	}
	rec, err := f.uc.RecordMovement(ctx, record(s.ID, "coxinha", model.FieldDiscard, 1))
	if err != nil {
		t.Fatalf("discard: %v", err)
	}

	if rec.SoldQty() != 7 {
		t.Fatalf("expected sold 7, got %d", rec.SoldQty())
	}
	if !rec.ItemTotal().Equal(decimal.RequireFromString("24.50")) {
		t.Fatalf("expected 24.50, got %s", rec.ItemTotal())
	}

	revenue, err := f.uc.TotalRevenue(ctx, s.ID)
	if err != nil {
		t.Fatalf("revenue: %v", err)
	}
	if !revenue.Equal(decimal.RequireFromString("24.50")) {
		t.Fatalf("expected revenue 24.50, got %s", revenue)
	}
}

func TestPriceSnapshotIsStable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.openShift(t, "s-1")

	if _, err := f.uc.SetEntry(ctx, &dto.SetEntryInput{ShiftID: s.ID, ProductID: "suco", Quantity: 5}); err != nil {
		t.Fatalf("set entry: %v", err)
	}
	if err := f.products.Upsert(ctx, &model.Product{ID: "suco", Name: "Suco", BasePrice: decimal.NewFromInt(9), IsActive: true}); err != nil {
		t.Fatalf("reprice: %v", err)
	}
	rec, err := f.uc.RecordMovement(ctx, record(s.ID, "suco", model.FieldLeftover, 1))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !rec.PriceSnapshot.Equal(decimal.NewFromInt(6)) {
		t.Fatalf("price snapshot must keep first-write price, got %s", rec.PriceSnapshot)
	}
	if !rec.ItemTotal().Equal(decimal.NewFromInt(24)) {
		t.Fatalf("expected 24, got %s", rec.ItemTotal())
	}
}

func TestRecordMovementValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.openShift(t, "s-1")

	tests := []struct {
		name  string
		input *dto.RecordMovementInput
		kind  apperror.Kind
		code  apperror.Code
	}{
		{"entry rejected", record(s.ID, "coxinha", model.FieldEntry, 3), apperror.KindValidation, apperror.CodeFieldNotEditable},
		{"unknown field", record(s.ID, "coxinha", "sold_qty", 3), apperror.KindValidation, apperror.CodeUnknownField},
		{"negative", record(s.ID, "coxinha", model.FieldArrival, -1), apperror.KindValidation, apperror.CodeInvalidQuantity},
		{"missing shift id", record("", "coxinha", model.FieldArrival, 1), apperror.KindValidation, apperror.CodeInvalidArgument},
		{"unknown shift", record("nope", "coxinha", model.FieldArrival, 1), apperror.KindNotFound, apperror.CodeShiftNotFound},
		{"unknown product", record(s.ID, "ghost", model.FieldArrival, 1), apperror.KindNotFound, apperror.CodeProductNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.RecordMovement(ctx, tt.input)
			if !apperror.IsKind(err, tt.kind) || apperror.CodeOf(err) != tt.code {
				t.Fatalf("expected %s/%s, got %v", tt.kind, tt.code, err)
			}
		})
	}

	records, err := f.uc.ListMovements(ctx, s.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("rejected writes must not create records, got %d", len(records))
	}
}

func TestClosedShiftIsFrozen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.openShift(t, "s-1")
	if _, err := f.uc.RecordMovement(ctx, record(s.ID, "coxinha", model.FieldArrival, 4)); err != nil {
		t.Fatalf("record: %v", err)
	}
	f.closeShift(t, s)

	_, err := f.uc.RecordMovement(ctx, record(s.ID, "coxinha", model.FieldArrival, 9))
	if apperror.CodeOf(err) != apperror.CodeShiftClosed || !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected closed shift not found error, got %v", err)
	}
	if _, err := f.uc.SetEntry(ctx, &dto.SetEntryInput{ProductID: "coxinha", Quantity: 1}); apperror.CodeOf(err) != apperror.CodeNoOpenShift {
		t.Fatalf("expected no open shift, got %v", err)
	}

	records, err := f.uc.ListMovements(ctx, s.ID)
	if err != nil || len(records) != 1 || records[0].ArrivalQty != 4 {
		t.Fatalf("closed shift records must be unchanged, got %+v, %v", records, err)
	}
}

func TestOverdrawnIsClamped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.openShift(t, "s-1")

	rec, err := f.uc.RecordMovement(ctx, record(s.ID, "coxinha", model.FieldLeftover, 3))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.SoldQty() != 0 || !rec.Overdrawn() || !rec.ItemTotal().IsZero() {
		t.Fatalf("expected clamped overdrawn record, got %+v", rec)
	}
}

func TestDraftsFlushOnlyOnSave(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.openShift(t, "s-1")

	if _, err := f.uc.StageDraft(ctx, record(s.ID, "coxinha", model.FieldArrival, 12)); err != nil {
		t.Fatalf("stage: %v", err)
	}
	d, err := f.uc.StageDraft(ctx, record(s.ID, "coxinha", model.FieldLeftover, 2))
	if err != nil {
		t.Fatalf("stage: %v", err)
	}
	if d.Fields[model.FieldArrival] != 12 || d.Fields[model.FieldLeftover] != 2 {
		t.Fatalf("unexpected draft %+v", d)
	}
	if _, err := f.uc.StageDraft(ctx, record(s.ID, "coxinha", model.FieldEntry, 1)); apperror.CodeOf(err) != apperror.CodeFieldNotEditable {
		t.Fatalf("drafts must reject entry_qty, got %v", err)
	}

	records, err := f.uc.ListMovements(ctx, s.ID)
	if err != nil || len(records) != 0 {
		t.Fatalf("drafts must not be committed before save, got %v, %v", records, err)
	}

	saved, err := f.uc.SaveDrafts(ctx, s.ID)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(saved) != 1 || saved[0].ArrivalQty != 12 || saved[0].LeftoverQty != 2 || saved[0].SoldQty() != 10 {
		t.Fatalf("unexpected saved records %+v", saved)
	}

	drafts, err := f.uc.ListDrafts(ctx, s.ID)
	if err != nil || len(drafts) != 0 {
		t.Fatalf("save must clear drafts, got %v, %v", drafts, err)
	}
}

func TestDiscardDrafts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.openShift(t, "s-1")

	if _, err := f.uc.StageDraft(ctx, record(s.ID, "suco", model.FieldConsumed, 1)); err != nil {
		t.Fatalf("stage: %v", err)
	}
	if err := f.uc.DiscardDrafts(ctx, s.ID); err != nil {
		t.Fatalf("discard: %v", err)
	}
	saved, err := f.uc.SaveDrafts(ctx, s.ID)
	if err != nil || len(saved) != 0 {
		t.Fatalf("nothing to save after discard, got %v, %v", saved, err)
	}
}

func TestSaveDraftsOnClosedShiftKeepsBuffer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.openShift(t, "s-1")

	if _, err := f.uc.StageDraft(ctx, record(s.ID, "suco", model.FieldArrival, 3)); err != nil {
		t.Fatalf("stage: %v", err)
	}
	f.closeShift(t, s)

	if _, err := f.uc.SaveDrafts(ctx, s.ID); apperror.CodeOf(err) != apperror.CodeShiftClosed {
		t.Fatalf("expected closed shift error, got %v", err)
	}
	drafts, err := f.uc.ListDrafts(ctx, s.ID)
	if err != nil || len(drafts) != 1 {
		t.Fatalf("failed save must keep drafts, got %v, %v", drafts, err)
	}
}
