package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database"
	"github.com/jmoiron/sqlx"
)

const movementColumns = `id, shift_id, product_id, entry_qty, arrival_qty, leftover_qty, discard_qty,
    consumed_qty, price_snapshot, created_at, updated_at`

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) FindByShiftAndProduct(ctx context.Context, shiftID, productID string) (*model.MovementRecord, error) {
	conn := database.Conn(ctx, r.DB)
	var m model.MovementRecord
	query := conn.Rebind(`SELECT ` + movementColumns + ` FROM movement_records WHERE shift_id = ? AND product_id = ?`)
	if err := sqlx.GetContext(ctx, conn, &m, query, shiftID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find movement: %w", err)
	}
	return &m, nil
}

func (r *SQLRepository) FindByShift(ctx context.Context, shiftID string) ([]model.MovementRecord, error) {
	conn := database.Conn(ctx, r.DB)
	records := []model.MovementRecord{}
	query := conn.Rebind(`SELECT ` + movementColumns + ` FROM movement_records WHERE shift_id = ? ORDER BY created_at, product_id`)
	if err := sqlx.SelectContext(ctx, conn, &records, query, shiftID); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return records, nil
}

func (r *SQLRepository) CreateIfAbsent(ctx context.Context, m *model.MovementRecord) error {
	query := `
        INSERT INTO movement_records (
            id, shift_id, product_id, entry_qty, arrival_qty, leftover_qty, discard_qty,
            consumed_qty, price_snapshot, created_at, updated_at
        )
        VALUES (
            :id, :shift_id, :product_id, :entry_qty, :arrival_qty, :leftover_qty, :discard_qty,
            :consumed_qty, :price_snapshot, :created_at, :updated_at
        )
        ON CONFLICT (shift_id, product_id) DO NOTHING
    `
	if _, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, m); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// UpdateField never touches price_snapshot.
func (r *SQLRepository) UpdateField(ctx context.Context, shiftID, productID string, field model.MovementField, value int64, at time.Time) error {
	column, err := fieldColumn(field)
	if err != nil {
		return err
	}
	conn := database.Conn(ctx, r.DB)
	query := conn.Rebind(`UPDATE movement_records SET ` + column + ` = ?, updated_at = ? WHERE shift_id = ? AND product_id = ?`)
	res, err := conn.ExecContext(ctx, query, value, at, shiftID, productID)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("update movement %s/%s: record not found", shiftID, productID)
	}
	return nil
}

// fieldColumn whitelists the column names that may be interpolated.
func fieldColumn(field model.MovementField) (string, error) {
	switch field {
	case model.FieldEntry, model.FieldArrival, model.FieldLeftover, model.FieldDiscard, model.FieldConsumed:
		return string(field), nil
	}
	return "", fmt.Errorf("unknown movement field %q", field)
}
