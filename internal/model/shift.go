package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift is one work session at the register. Dollar figures that only
// exist after close are nullable.
type Shift struct {
	BaseModel
	OwnerUserID       string              `db:"owner_user_id" json:"owner_user_id"`
	StartTime         time.Time           `db:"start_time" json:"start_time"`
	EndTime           *time.Time          `db:"end_time" json:"end_time"`
	InitialCash       decimal.Decimal     `db:"initial_cash" json:"initial_cash"`
	InitialCoins      decimal.Decimal     `db:"initial_coins" json:"initial_coins"`
	PendingApplied    decimal.Decimal     `db:"pending_applied" json:"pending_applied"`
	CountedFinalCash  decimal.NullDecimal `db:"counted_final_cash" json:"counted_final_cash"`
	CountedFinalCoins decimal.NullDecimal `db:"counted_final_coins" json:"counted_final_coins"`
	ExpectedCash      decimal.NullDecimal `db:"expected_cash" json:"expected_cash"`
	ExpectedTotal     decimal.NullDecimal `db:"expected_total" json:"expected_total"`
	CashDivergence    decimal.NullDecimal `db:"cash_divergence" json:"cash_divergence"`
	InheritedCash     decimal.NullDecimal `db:"inherited_cash" json:"inherited_cash"`
	InheritedCoins    decimal.NullDecimal `db:"inherited_coins" json:"inherited_coins"`
	Notes             string              `db:"notes" json:"notes"`
	StagedFinalCash   decimal.NullDecimal `db:"staged_final_cash" json:"staged_final_cash"`
	StagedFinalCoins  decimal.NullDecimal `db:"staged_final_coins" json:"staged_final_coins"`
	GasExchange       bool                `db:"gas_exchange" json:"gas_exchange"`
	Collaborators     []Collaborator      `db:"-" json:"collaborators"`
}

func (s *Shift) IsOpen() bool {
	return s != nil && s.EndTime == nil
}

type Collaborator struct {
	ShiftID   string    `db:"shift_id" json:"shift_id"`
	UserID    string    `db:"user_id" json:"user_id"`
	AddedBy   string    `db:"added_by" json:"added_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
