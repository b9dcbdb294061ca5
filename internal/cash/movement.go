package cash

import "github.com/shopspring/decimal"

// Quantities are the per-product counts recorded during a shift.
type Quantities struct {
	Entry    int64
	Arrival  int64
	Leftover int64
	Discard  int64
	Consumed int64
}

// RawSold is the unclamped sold figure; negative means the counts do not
// add up.
func (q Quantities) RawSold() int64 {
	return q.Entry + q.Arrival - q.Leftover - q.Discard - q.Consumed
}

// Sold clamps RawSold at zero.
func (q Quantities) Sold() int64 {
	if s := q.RawSold(); s > 0 {
		return s
	}
	return 0
}

func ItemTotal(q Quantities, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(q.Sold()))
}
