package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database"
	"github.com/jmoiron/sqlx"
)

const adjustmentColumns = `a.id AS id, a.shift_id AS shift_id, a.type AS type, a.amount AS amount,
    a.reason AS reason, a.actor_user_id AS actor_user_id, a.source_ip AS source_ip, a.created_at AS created_at`

// SQLRepository never updates or deletes cash_adjustments rows.
type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, a *model.CashAdjustment) error {
	query := `
        INSERT INTO cash_adjustments (id, shift_id, type, amount, reason, actor_user_id, source_ip, created_at)
        VALUES (:id, :shift_id, :type, :amount, :reason, :actor_user_id, :source_ip, :created_at)
    `
	if _, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, a); err != nil {
		return fmt.Errorf("insert adjustment: %w", err)
	}
	return nil
}

func (r *SQLRepository) FindByShift(ctx context.Context, shiftID string) ([]model.CashAdjustment, error) {
	return r.list(ctx, `SELECT `+adjustmentColumns+` FROM cash_adjustments a
        WHERE a.shift_id = ? ORDER BY a.created_at, a.id`, shiftID)
}

func (r *SQLRepository) FindPending(ctx context.Context) ([]model.CashAdjustment, error) {
	return r.list(ctx, `SELECT `+adjustmentColumns+` FROM cash_adjustments a
        LEFT JOIN cash_adjustment_consumptions c ON c.adjustment_id = a.id
        WHERE a.shift_id IS NULL AND c.adjustment_id IS NULL
        ORDER BY a.created_at, a.id`)
}

func (r *SQLRepository) FindConsumedBy(ctx context.Context, shiftID string) ([]model.CashAdjustment, error) {
	return r.list(ctx, `SELECT `+adjustmentColumns+` FROM cash_adjustments a
        JOIN cash_adjustment_consumptions c ON c.adjustment_id = a.id
        WHERE c.shift_id = ? ORDER BY a.created_at, a.id`, shiftID)
}

func (r *SQLRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.CashAdjustment, error) {
	conn := database.Conn(ctx, r.DB)
	adjustments := []model.CashAdjustment{}
	if err := sqlx.SelectContext(ctx, conn, &adjustments, conn.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	return adjustments, nil
}

func (r *SQLRepository) Consume(ctx context.Context, shiftID string, adjustmentIDs []string, at time.Time) error {
	conn := database.Conn(ctx, r.DB)
	query := conn.Rebind(`INSERT INTO cash_adjustment_consumptions (adjustment_id, shift_id, created_at) VALUES (?, ?, ?)`)
	for _, id := range adjustmentIDs {
		if _, err := conn.ExecContext(ctx, query, id, shiftID, at); err != nil {
			return fmt.Errorf("consume adjustment %s: %w", id, err)
		}
	}
	return nil
}
