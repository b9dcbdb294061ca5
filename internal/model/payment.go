package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodPix          PaymentMethod = "pix"
	MethodStoneCard    PaymentMethod = "stone_card"
	MethodStoneVoucher PaymentMethod = "stone_voucher"
	MethodPagBankCard  PaymentMethod = "pagbank_card"
)

// PaymentMethods is the fixed reporting order.
var PaymentMethods = []PaymentMethod{MethodCash, MethodPix, MethodStoneCard, MethodStoneVoucher, MethodPagBankCard}

// PaymentDeclaration is the per-shift declared gross total per method,
// with the fee rates that were current when it was saved.
type PaymentDeclaration struct {
	ShiftID          string              `db:"shift_id" json:"shift_id"`
	Cash             decimal.NullDecimal `db:"cash" json:"cash"`
	Pix              decimal.Decimal     `db:"pix" json:"pix"`
	StoneCard        decimal.Decimal     `db:"stone_card" json:"stone_card"`
	StoneVoucher     decimal.Decimal     `db:"stone_voucher" json:"stone_voucher"`
	PagBankCard      decimal.Decimal     `db:"pagbank_card" json:"pagbank_card"`
	RateVersion      int64               `db:"rate_version" json:"rate_version"`
	PixRate          decimal.Decimal     `db:"pix_rate" json:"pix_rate"`
	StoneCardRate    decimal.Decimal     `db:"stone_card_rate" json:"stone_card_rate"`
	StoneVoucherRate decimal.Decimal     `db:"stone_voucher_rate" json:"stone_voucher_rate"`
	PagBankCardRate  decimal.Decimal     `db:"pagbank_card_rate" json:"pagbank_card_rate"`
	CreatedAt        time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time           `db:"updated_at" json:"updated_at"`
}

// Gross returns the declared amount for a method; undeclared cash is zero.
func (p *PaymentDeclaration) Gross(m PaymentMethod) decimal.Decimal {
	switch m {
	case MethodCash:
		if p.Cash.Valid {
			return p.Cash.Decimal
		}
		return decimal.Zero
	case MethodPix:
		return p.Pix
	case MethodStoneCard:
		return p.StoneCard
	case MethodStoneVoucher:
		return p.StoneVoucher
	case MethodPagBankCard:
		return p.PagBankCard
	}
	return decimal.Zero
}

// Rates returns the snapshot taken when the declaration was saved.
func (p *PaymentDeclaration) Rates() RateConfig {
	return RateConfig{
		Version:          p.RateVersion,
		PixRate:          p.PixRate,
		StoneCardRate:    p.StoneCardRate,
		StoneVoucherRate: p.StoneVoucherRate,
		PagBankCardRate:  p.PagBankCardRate,
	}
}

// RateConfig is one version of the processor fee table, in percent.
type RateConfig struct {
	Version          int64           `db:"version" json:"version"`
	PixRate          decimal.Decimal `db:"pix_rate" json:"pix_rate"`
	StoneCardRate    decimal.Decimal `db:"stone_card_rate" json:"stone_card_rate"`
	StoneVoucherRate decimal.Decimal `db:"stone_voucher_rate" json:"stone_voucher_rate"`
	PagBankCardRate  decimal.Decimal `db:"pagbank_card_rate" json:"pagbank_card_rate"`
	UpdatedBy        string          `db:"updated_by" json:"updated_by"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

// Rate returns the fee percentage for a method. Cash is always zero.
func (r RateConfig) Rate(m PaymentMethod) decimal.Decimal {
	switch m {
	case MethodPix:
		return r.PixRate
	case MethodStoneCard:
		return r.StoneCardRate
	case MethodStoneVoucher:
		return r.StoneVoucherRate
	case MethodPagBankCard:
		return r.PagBankCardRate
	}
	return decimal.Zero
}
