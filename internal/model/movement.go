package model

import (
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/cash"
	"github.com/shopspring/decimal"
)

type MovementField string

const (
	FieldEntry    MovementField = "entry_qty"
	FieldArrival  MovementField = "arrival_qty"
	FieldLeftover MovementField = "leftover_qty"
	FieldDiscard  MovementField = "discard_qty"
	FieldConsumed MovementField = "consumed_qty"
)

// EmployeeFields lists the quantities an employee may write. EntryQty is
// owned by the restock feed.
var EmployeeFields = []MovementField{FieldArrival, FieldLeftover, FieldDiscard, FieldConsumed}

func (f MovementField) EmployeeEditable() bool {
	for _, e := range EmployeeFields {
		if e == f {
			return true
		}
	}
	return false
}

// MovementRecord is one product's activity within one shift.
type MovementRecord struct {
	ID            string          `db:"id" json:"id"`
	ShiftID       string          `db:"shift_id" json:"shift_id"`
	ProductID     string          `db:"product_id" json:"product_id"`
	EntryQty      int64           `db:"entry_qty" json:"entry_qty"`
	ArrivalQty    int64           `db:"arrival_qty" json:"arrival_qty"`
	LeftoverQty   int64           `db:"leftover_qty" json:"leftover_qty"`
	DiscardQty    int64           `db:"discard_qty" json:"discard_qty"`
	ConsumedQty   int64           `db:"consumed_qty" json:"consumed_qty"`
	PriceSnapshot decimal.Decimal `db:"price_snapshot" json:"price_snapshot"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

func (m *MovementRecord) quantities() cash.Quantities {
	return cash.Quantities{
		Entry:    m.EntryQty,
		Arrival:  m.ArrivalQty,
		Leftover: m.LeftoverQty,
		Discard:  m.DiscardQty,
		Consumed: m.ConsumedQty,
	}
}

func (m *MovementRecord) SoldQty() int64 {
	return m.quantities().Sold()
}

func (m *MovementRecord) ItemTotal() decimal.Decimal {
	return cash.ItemTotal(m.quantities(), m.PriceSnapshot)
}

// Overdrawn reports that more stock left the shelf than was available, so
// SoldQty was clamped.
func (m *MovementRecord) Overdrawn() bool {
	return m.quantities().RawSold() < 0
}

// Set writes a single quantity field.
func (m *MovementRecord) Set(field MovementField, value int64) {
	switch field {
	case FieldEntry:
		m.EntryQty = value
	case FieldArrival:
		m.ArrivalQty = value
	case FieldLeftover:
		m.LeftoverQty = value
	case FieldDiscard:
		m.DiscardQty = value
	case FieldConsumed:
		m.ConsumedQty = value
	}
}

// MovementDraft holds uncommitted employee edits for one product.
type MovementDraft struct {
	ShiftID   string                  `json:"shift_id"`
	ProductID string                  `json:"product_id"`
	Fields    map[MovementField]int64 `json:"fields"`
}
