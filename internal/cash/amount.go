package cash

import (
	"strings"

	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"github.com/shopspring/decimal"
)

// ParseAmount reads a money amount in cents precision. field names the input
// in the validation error.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, apperror.Validation(apperror.CodeInvalidAmount, field, "amount is required")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperror.Validation(apperror.CodeInvalidAmount, field, "amount is not a number")
	}
	if !d.Equal(d.Round(2)) {
		return decimal.Zero, apperror.Validation(apperror.CodeInvalidAmount, field, "amount has more than two decimal places")
	}
	return d, nil
}

// ParseOptionalAmount returns an invalid NullDecimal for an empty input.
func ParseOptionalAmount(field, raw string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := ParseAmount(field, raw)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// Total folds amount over items.
func Total[T any](items []T, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(amount(it))
	}
	return total
}
