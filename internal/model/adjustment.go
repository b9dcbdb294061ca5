package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type AdjustmentType string

const (
	AdjustmentWithdraw   AdjustmentType = "withdraw"
	AdjustmentAdjustment AdjustmentType = "adjustment"
)

func (t AdjustmentType) Valid() bool {
	return t == AdjustmentWithdraw || t == AdjustmentAdjustment
}

// CashAdjustment is an immutable administrator withdrawal or adjustment. A
// nil ShiftID means it was issued while no shift was open.
type CashAdjustment struct {
	ID          string          `db:"id" json:"id"`
	ShiftID     *string         `db:"shift_id" json:"shift_id"`
	Type        AdjustmentType  `db:"type" json:"type"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Reason      string          `db:"reason" json:"reason"`
	ActorUserID string          `db:"actor_user_id" json:"actor_user_id"`
	SourceIP    string          `db:"source_ip" json:"source_ip"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

func (a *CashAdjustment) Pending() bool {
	return a.ShiftID == nil
}
