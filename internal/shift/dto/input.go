package dto

import (
	"github.com/fekuna/omnipos-shift-service/internal/auth"
	"github.com/shopspring/decimal"
)

type OpenShiftInput struct {
	Actor auth.UserContext
	// InitialCash and InitialCoins override the inherited float when set.
	InitialCash  *decimal.Decimal
	InitialCoins *decimal.Decimal
	Notes        string
}

type CloseShiftInput struct {
	Actor           auth.UserContext
	CountedCash     decimal.Decimal
	CountedCoins    decimal.Decimal
	Notes           string
	ConfirmLowCash  bool
	ConfirmLowCoins bool
}

type StageValuesInput struct {
	Actor       auth.UserContext
	ShiftID     string
	FinalCash   decimal.NullDecimal
	FinalCoins  decimal.NullDecimal
	GasExchange bool
}

type CollaboratorInput struct {
	Actor   auth.UserContext
	ShiftID string
	UserID  string
}
