package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	ActionShiftOpened    = "shift_opened"
	ActionShiftClosed    = "shift_closed"
	ActionCashDivergence = "cash_divergence"
	ActionCashWithdrawal = "cash_withdrawal"
)

// Metadata is stored as a JSON object column.
type Metadata map[string]string

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *Metadata) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*m = Metadata{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("metadata: unsupported type %T", src)
	}
	out := Metadata{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &out); err != nil {
			return err
		}
	}
	*m = out
	return nil
}

type TimelineEvent struct {
	ID          string    `db:"id" json:"id"`
	Action      string    `db:"action" json:"action"`
	ShiftID     *string   `db:"shift_id" json:"shift_id,omitempty"`
	ActorUserID string    `db:"actor_user_id" json:"actor_user_id"`
	Description string    `db:"description" json:"description"`
	Metadata    Metadata  `db:"metadata" json:"metadata"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
