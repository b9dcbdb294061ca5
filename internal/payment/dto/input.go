package dto

import (
	"github.com/fekuna/omnipos-shift-service/internal/auth"
	"github.com/shopspring/decimal"
)

type DeclarePaymentsInput struct {
	Actor   auth.UserContext
	ShiftID string
	// Cash is optional; when absent close falls back to product revenue.
	Cash         decimal.NullDecimal
	Pix          decimal.Decimal
	StoneCard    decimal.Decimal
	StoneVoucher decimal.Decimal
	PagBankCard  decimal.Decimal
}

type UpdateRatesInput struct {
	Actor            auth.UserContext
	PixRate          decimal.Decimal
	StoneCardRate    decimal.Decimal
	StoneVoucherRate decimal.Decimal
	PagBankCardRate  decimal.Decimal
}
