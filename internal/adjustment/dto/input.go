package dto

import (
	"github.com/fekuna/omnipos-shift-service/internal/auth"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/shopspring/decimal"
)

type CreateAdjustmentInput struct {
	Actor  auth.UserContext
	Type   model.AdjustmentType
	Amount decimal.Decimal
	Reason string
	// ShiftID targets a specific open shift. When empty the adjustment
	// attaches to the open shift, or stays pending if none is open.
	ShiftID string
}
