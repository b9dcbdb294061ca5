package cash

import (
	"testing"

	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var testPolicy = Policy{MinCash: d("200"), MinCoins: d("50"), MaxDivergence: d("5")}

func TestSoldAndItemTotal(t *testing.T) {
	tests := []struct {
		name      string
		q         Quantities
		price     string
		wantSold  int64
		wantTotal string
	}{
		{"basic", Quantities{Entry: 10, Leftover: 2, Discard: 1}, "3.50", 7, "24.50"},
		{"arrival counts", Quantities{Entry: 4, Arrival: 6, Leftover: 1, Consumed: 2}, "2", 7, "14"},
		{"clamped", Quantities{Entry: 1, Leftover: 3}, "9.99", 0, "0"},
		{"empty", Quantities{}, "5", 0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Sold(); got != tt.wantSold {
				t.Fatalf("sold: got %d, want %d", got, tt.wantSold)
			}
			if got := ItemTotal(tt.q, d(tt.price)); !got.Equal(d(tt.wantTotal)) {
				t.Fatalf("item total: got %s, want %s", got, tt.wantTotal)
			}
		})
	}
}

func TestRawSoldNegative(t *testing.T) {
	q := Quantities{Entry: 2, Leftover: 1, Discard: 2, Consumed: 1}
	if q.RawSold() != -2 {
		t.Fatalf("expected raw -2, got %d", q.RawSold())
	}
	if q.Sold() != 0 {
		t.Fatalf("expected clamp to 0, got %d", q.Sold())
	}
}

func TestSumTotals(t *testing.T) {
	totals := Sum([]Line{
		{Method: "cash", Gross: d("100"), Rate: d("0")},
		{Method: "pix", Gross: d("50"), Rate: d("0")},
		{Method: "stone_card", Gross: d("30"), Rate: d("3.5")},
		{Method: "stone_voucher", Gross: d("0"), Rate: d("6")},
		{Method: "pagbank_card", Gross: d("0"), Rate: d("2.39")},
	})

	if !totals.Gross.Equal(d("180")) {
		t.Fatalf("gross: got %s", totals.Gross)
	}
	if !totals.Net.Equal(d("178.95")) {
		t.Fatalf("net: got %s", totals.Net)
	}
	if !totals.Interest.Equal(d("1.05")) {
		t.Fatalf("interest: got %s", totals.Interest)
	}
	if len(totals.Lines) != 5 {
		t.Fatalf("expected all five lines, got %d", len(totals.Lines))
	}
	if !totals.Lines[0].Net.Equal(totals.Lines[0].Gross) {
		t.Fatal("cash net must equal gross")
	}
	if !totals.Gross.Sub(totals.Net).Equal(totals.Interest) {
		t.Fatal("gross - net must equal interest")
	}
}

func TestNetAmountZeroRateIsExact(t *testing.T) {
	gross := d("123.456")
	if got := NetAmount(gross, decimal.Zero); !got.Equal(gross) {
		t.Fatalf("expected exact passthrough, got %s", got)
	}
}

func TestCashSalesFallback(t *testing.T) {
	revenue := d("87.50")
	if got := CashSales(decimal.NullDecimal{}, revenue); !got.Equal(revenue) {
		t.Fatalf("expected revenue fallback, got %s", got)
	}
	declared := decimal.NewNullDecimal(d("90"))
	if got := CashSales(declared, revenue); !got.Equal(d("90")) {
		t.Fatalf("expected declared cash, got %s", got)
	}
}

func TestCheckConsistency(t *testing.T) {
	eps := d("0.01")

	ok := CheckConsistency(decimal.NewNullDecimal(d("60")), d("40"), d("100"), eps)
	if !ok.Consistent {
		t.Fatalf("expected consistent, diff %s", ok.Difference)
	}

	off := CheckConsistency(decimal.NewNullDecimal(d("60")), d("40.50"), d("100"), eps)
	if off.Consistent {
		t.Fatal("expected inconsistency warning")
	}
	if !off.Difference.Equal(d("0.5")) {
		t.Fatalf("unexpected difference %s", off.Difference)
	}

	fallback := CheckConsistency(decimal.NullDecimal{}, decimal.Zero, d("100"), eps)
	if !fallback.Consistent {
		t.Fatal("absent cash falls back to revenue and must be consistent")
	}
}

func TestNextInitial(t *testing.T) {
	boot := Bootstrap{Cash: d("200"), Coins: d("50")}

	first := NextInitial(nil, decimal.Zero, boot)
	if !first.Cash.Equal(d("200")) || !first.Coins.Equal(d("50")) || !first.Bootstrapped {
		t.Fatalf("unexpected bootstrap %+v", first)
	}

	carry := &Carry{Cash: d("245"), Coins: d("55")}
	next := NextInitial(carry, d("40"), boot)
	if !next.Cash.Equal(d("205")) {
		t.Fatalf("expected 205, got %s", next.Cash)
	}
	if !next.Coins.Equal(d("55")) {
		t.Fatalf("coins pass through, got %s", next.Coins)
	}
	if !next.PendingApplied.Equal(d("40")) {
		t.Fatalf("expected pending 40, got %s", next.PendingApplied)
	}

	drained := NextInitial(&Carry{Cash: d("30"), Coins: d("-5")}, d("100"), boot)
	if !drained.Cash.IsZero() || !drained.Coins.IsZero() {
		t.Fatalf("expected clamps to zero, got %+v", drained)
	}
}

func TestNextInitialCashNeverNegative(t *testing.T) {
	for _, carry := range []string{"0", "10", "250.75", "-3"} {
		for _, pending := range []string{"0", "5", "300"} {
			got := NextInitialCash(d(carry), d(pending))
			if got.IsNegative() {
				t.Fatalf("carry %s pending %s: negative %s", carry, pending, got)
			}
			want := d(carry).Sub(d(pending))
			if want.IsNegative() {
				want = decimal.Zero
			}
			if !got.Equal(want) {
				t.Fatalf("carry %s pending %s: got %s, want %s", carry, pending, got, want)
			}
		}
	}
}

func TestCarryFromClose(t *testing.T) {
	c := CarryFromClose(d("245"), d("55"), d("50"))
	if !c.Cash.Equal(d("195")) || !c.Coins.Equal(d("55")) {
		t.Fatalf("unexpected carry %+v", c)
	}
}

func baseClose() CloseInput {
	return CloseInput{
		InitialCash:      d("200"),
		InitialCoins:     d("50"),
		CashSales:        d("100"),
		TotalAdjustments: d("50"),
	}
}

func TestReconcileBalanced(t *testing.T) {
	in := baseClose()
	in.CountedCash = d("245")
	in.CountedCoins = d("55")

	r, err := Reconcile(in, testPolicy)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !r.ExpectedCash.Equal(d("250")) || !r.ExpectedTotal.Equal(d("300")) {
		t.Fatalf("unexpected expected figures %+v", r)
	}
	if !r.Divergence.IsZero() {
		t.Fatalf("expected zero divergence, got %s", r.Divergence)
	}
}

func TestReconcileDivergenceNeedsNotes(t *testing.T) {
	in := baseClose()
	in.CountedCash = d("260")
	in.CountedCoins = d("60")

	r, err := Reconcile(in, testPolicy)
	if !r.Divergence.Equal(d("20")) {
		t.Fatalf("expected divergence 20, got %s", r.Divergence)
	}
	if apperror.CodeOf(err) != apperror.CodeDivergenceUnexplained {
		t.Fatalf("expected unexplained divergence, got %v", err)
	}
	if !apperror.IsKind(err, apperror.KindBusinessRule) {
		t.Fatalf("expected business rule error, got %v", err)
	}

	in.Notes = "  "
	if _, err := Reconcile(in, testPolicy); err == nil {
		t.Fatal("blank notes must not satisfy the rule")
	}

	in.Notes = "customer paid in cash for yesterday's order"
	if _, err := Reconcile(in, testPolicy); err != nil {
		t.Fatalf("expected success with notes, got %v", err)
	}
}

func TestReconcileDivergenceSymmetric(t *testing.T) {
	in := baseClose()
	in.CountedCash = d("230")
	in.CountedCoins = d("50")

	r, err := Reconcile(in, testPolicy)
	if !r.Divergence.Equal(d("-20")) {
		t.Fatalf("expected shortfall -20, got %s", r.Divergence)
	}
	if apperror.CodeOf(err) != apperror.CodeDivergenceUnexplained {
		t.Fatalf("shortfall must also require notes, got %v", err)
	}
}

func TestReconcileWithinTolerance(t *testing.T) {
	in := baseClose()
	in.CountedCash = d("249")
	in.CountedCoins = d("55")

	r, err := Reconcile(in, testPolicy)
	if err != nil {
		t.Fatalf("divergence of 4 is within tolerance: %v", err)
	}
	if !r.Divergence.Equal(d("4")) {
		t.Fatalf("expected 4, got %s", r.Divergence)
	}
}

func TestReconcileLowFloat(t *testing.T) {
	in := baseClose()
	in.CountedCash = d("150")
	in.CountedCoins = d("60")
	in.Notes = "short"

	_, err := Reconcile(in, testPolicy)
	var appErr *apperror.Error
	if err == nil {
		t.Fatal("expected low float error")
	}
	appErr = err.(*apperror.Error)
	if appErr.Code != apperror.CodeLowFloatUnconfirmed {
		t.Fatalf("unexpected code %s", appErr.Code)
	}
	if appErr.Metadata["categories"] != "cash" {
		t.Fatalf("expected cash category, got %q", appErr.Metadata["categories"])
	}

	in.CountedCoins = d("10")
	_, err = Reconcile(in, testPolicy)
	if err.(*apperror.Error).Metadata["categories"] != "cash,coins" {
		t.Fatalf("expected both categories, got %v", err)
	}

	in.ConfirmLowCash = true
	in.ConfirmLowCoins = true
	if _, err := Reconcile(in, testPolicy); err != nil {
		t.Fatalf("confirmed low float with notes should pass: %v", err)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"50", "50", false},
		{" 12.30 ", "12.3", false},
		{"-4.5", "-4.5", false},
		{"abc", "", true},
		{"", "", true},
		{"1.005", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAmount("amount", tt.raw)
			if tt.wantErr {
				if !apperror.IsKind(err, apperror.KindValidation) || apperror.CodeOf(err) != apperror.CodeInvalidAmount {
					t.Fatalf("expected invalid amount, got %v", err)
				}
				return
			}
			if err != nil || !got.Equal(d(tt.want)) {
				t.Fatalf("got %s, %v; want %s", got, err, tt.want)
			}
		})
	}

	empty, err := ParseOptionalAmount("cash", "")
	if err != nil || empty.Valid {
		t.Fatalf("empty optional amount must be absent, got %v, %v", empty, err)
	}
}

func TestTotal(t *testing.T) {
	got := Total([]string{"1.10", "2.20", "3"}, d)
	if !got.Equal(d("6.30")) {
		t.Fatalf("expected 6.30, got %s", got)
	}
}
