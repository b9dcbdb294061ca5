package dto

import (
	"github.com/fekuna/omnipos-shift-service/internal/auth"
	"github.com/fekuna/omnipos-shift-service/internal/model"
)

// RecordMovementInput is an employee write of one quantity field.
type RecordMovementInput struct {
	Actor     auth.UserContext
	ShiftID   string
	ProductID string
	Field     model.MovementField
	Value     int64
}

// SetEntryInput is the restock feed's write of entry_qty. An empty ShiftID
// targets the open shift.
type SetEntryInput struct {
	ShiftID   string
	ProductID string
	Quantity  int64
}
