package shiftv1

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money renders an amount with two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// OptionalMoney renders "" for an absent amount.
func OptionalMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return Money(d.Decimal)
}

func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func OptionalTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Timestamp(*t)
}
