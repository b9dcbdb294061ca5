package cash

import (
	"strings"

	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"github.com/shopspring/decimal"
)

// Policy holds the close-time thresholds.
type Policy struct {
	MinCash       decimal.Decimal
	MinCoins      decimal.Decimal
	MaxDivergence decimal.Decimal
}

type CloseInput struct {
	InitialCash      decimal.Decimal
	InitialCoins     decimal.Decimal
	CashSales        decimal.Decimal
	TotalAdjustments decimal.Decimal
	CountedCash      decimal.Decimal
	CountedCoins     decimal.Decimal
	Notes            string
	ConfirmLowCash   bool
	ConfirmLowCoins  bool
}

type Result struct {
	ExpectedCash  decimal.Decimal
	ExpectedTotal decimal.Decimal
	CountedTotal  decimal.Decimal
	Divergence    decimal.Decimal
	LowCash       bool
	LowCoins      bool
}

// Figures computes expected and counted totals without applying policy.
func Figures(in CloseInput, p Policy) Result {
	expectedCash := in.InitialCash.Add(in.CashSales).Sub(in.TotalAdjustments)
	expectedTotal := expectedCash.Add(in.InitialCoins)
	countedTotal := in.CountedCash.Add(in.CountedCoins)
	return Result{
		ExpectedCash:  expectedCash,
		ExpectedTotal: expectedTotal,
		CountedTotal:  countedTotal,
		Divergence:    countedTotal.Sub(expectedTotal),
		LowCash:       in.CountedCash.LessThan(p.MinCash),
		LowCoins:      in.CountedCoins.LessThan(p.MinCoins),
	}
}

// Reconcile computes the close figures and enforces the low-float and
// divergence rules. The low-float check runs first.
func Reconcile(in CloseInput, p Policy) (Result, error) {
	r := Figures(in, p)

	var unconfirmed []string
	if r.LowCash && !in.ConfirmLowCash {
		unconfirmed = append(unconfirmed, "cash")
	}
	if r.LowCoins && !in.ConfirmLowCoins {
		unconfirmed = append(unconfirmed, "coins")
	}
	if len(unconfirmed) > 0 {
		categories := strings.Join(unconfirmed, ",")
		return r, apperror.BusinessRule(apperror.CodeLowFloatUnconfirmed,
			"counted float below recommended minimum requires confirmation: "+categories,
			map[string]string{
				"categories": categories,
				"min_cash":   p.MinCash.StringFixed(2),
				"min_coins":  p.MinCoins.StringFixed(2),
			})
	}

	if r.Divergence.Abs().GreaterThan(p.MaxDivergence) && strings.TrimSpace(in.Notes) == "" {
		return r, apperror.BusinessRule(apperror.CodeDivergenceUnexplained,
			"cash divergence above tolerance requires notes",
			map[string]string{
				"divergence":     r.Divergence.StringFixed(2),
				"max_divergence": p.MaxDivergence.StringFixed(2),
			})
	}

	return r, nil
}
