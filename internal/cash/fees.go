package cash

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// NetAmount returns gross * (1 - rate/100) rounded to cents. Rate is a
// percentage.
func NetAmount(gross, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return gross
	}
	factor := decimal.NewFromInt(1).Sub(rate.Div(hundred))
	return gross.Mul(factor).Round(2)
}

// Line is one payment method's declared gross and the rate applied to it.
type Line struct {
	Method string
	Gross  decimal.Decimal
	Rate   decimal.Decimal
	Net    decimal.Decimal
}

type Totals struct {
	Gross    decimal.Decimal
	Net      decimal.Decimal
	Interest decimal.Decimal
	Lines    []Line
}

// Sum nets every line and folds them into totals. Interest is always
// Gross - Net.
func Sum(lines []Line) Totals {
	t := Totals{Gross: decimal.Zero, Net: decimal.Zero, Lines: make([]Line, len(lines))}
	for i, l := range lines {
		l.Net = NetAmount(l.Gross, l.Rate)
		t.Gross = t.Gross.Add(l.Gross)
		t.Net = t.Net.Add(l.Net)
		t.Lines[i] = l
	}
	t.Interest = t.Gross.Sub(t.Net)
	return t
}

// CashSales is the declared cash total, or product revenue when no cash
// figure was declared.
func CashSales(declared decimal.NullDecimal, revenue decimal.Decimal) decimal.Decimal {
	if declared.Valid {
		return declared.Decimal
	}
	return revenue
}

// Consistency compares declared payments against product revenue.
type Consistency struct {
	DeclaredTotal decimal.Decimal
	Revenue       decimal.Decimal
	Difference    decimal.Decimal
	Consistent    bool
}

// CheckConsistency is advisory. otherMethods is the sum of every non-cash
// declared gross.
func CheckConsistency(declaredCash decimal.NullDecimal, otherMethods, revenue, epsilon decimal.Decimal) Consistency {
	total := CashSales(declaredCash, revenue).Add(otherMethods)
	diff := total.Sub(revenue)
	return Consistency{
		DeclaredTotal: total,
		Revenue:       revenue,
		Difference:    diff,
		Consistent:    diff.Abs().LessThanOrEqual(epsilon),
	}
}
