package dto

import (
	"github.com/fekuna/omnipos-shift-service/internal/cash"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/shopspring/decimal"
)

type ShiftFilters struct {
	// Status is "open", "closed" or empty for both.
	Status   string
	Page     int
	PageSize int
}

// ClosePreview is what a close would compute right now, with the policy
// checks the caller still has to satisfy.
type ClosePreview struct {
	ShiftID          string
	Revenue          decimal.Decimal
	CashSales        decimal.Decimal
	TotalAdjustments decimal.Decimal
	Result           cash.Result
	// Unconfirmed lists the low-float categories missing a confirmation.
	Unconfirmed   []string
	NotesRequired bool
}

type Summary struct {
	Shift            *model.Shift
	Movements        []model.MovementRecord
	Revenue          decimal.Decimal
	Payments         cash.Totals
	Consistency      cash.Consistency
	Adjustments      []model.CashAdjustment
	TotalAdjustments decimal.Decimal
	ExpectedCash     decimal.Decimal
	ExpectedTotal    decimal.Decimal
	Warnings         []string
}
