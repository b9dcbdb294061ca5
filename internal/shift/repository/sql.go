package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database"
	"github.com/fekuna/omnipos-shift-service/internal/shift/dto"
	"github.com/jmoiron/sqlx"
)

const shiftColumns = `id, owner_user_id, start_time, end_time, initial_cash, initial_coins, pending_applied,
    counted_final_cash, counted_final_coins, expected_cash, expected_total, cash_divergence,
    inherited_cash, inherited_coins, notes, staged_final_cash, staged_final_coins, gas_exchange,
    created_at, updated_at`

// SQLRepository serves both Postgres and SQLite. Every statement goes
// through database.Conn so it joins the caller's transaction.
type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

// CreateIfNoneOpen inserts s unless another shift is open. The partial
// unique index on open shifts makes the insert a no-op in that case.
func (r *SQLRepository) CreateIfNoneOpen(ctx context.Context, s *model.Shift) (bool, error) {
	query := `
        INSERT INTO shifts (
            id, owner_user_id, start_time, initial_cash, initial_coins, pending_applied,
            notes, gas_exchange, created_at, updated_at
        )
        VALUES (
            :id, :owner_user_id, :start_time, :initial_cash, :initial_coins, :pending_applied,
            :notes, :gas_exchange, :created_at, :updated_at
        )
        ON CONFLICT DO NOTHING
    `
	res, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, s)
	if err != nil {
		return false, fmt.Errorf("insert shift: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert shift: %w", err)
	}
	return n == 1, nil
}

func (r *SQLRepository) FindOpen(ctx context.Context) (*model.Shift, error) {
	return r.findOne(ctx, `WHERE end_time IS NULL`, "")
}

func (r *SQLRepository) FindOpenForUpdate(ctx context.Context) (*model.Shift, error) {
	return r.findOne(ctx, `WHERE end_time IS NULL`, database.ForUpdate(database.Conn(ctx, r.DB)))
}

func (r *SQLRepository) FindByID(ctx context.Context, id string) (*model.Shift, error) {
	return r.findOne(ctx, `WHERE id = ?`, "", id)
}

func (r *SQLRepository) FindByIDForShare(ctx context.Context, id string) (*model.Shift, error) {
	return r.findOne(ctx, `WHERE id = ?`, database.ForShare(database.Conn(ctx, r.DB)), id)
}

func (r *SQLRepository) FindLastClosed(ctx context.Context) (*model.Shift, error) {
	return r.findOne(ctx, `WHERE end_time IS NOT NULL ORDER BY end_time DESC, id DESC`, "")
}

func (r *SQLRepository) findOne(ctx context.Context, where, lock string, args ...interface{}) (*model.Shift, error) {
	conn := database.Conn(ctx, r.DB)
	var s model.Shift
	query := conn.Rebind(`SELECT ` + shiftColumns + ` FROM shifts ` + where + ` LIMIT 1` + lock)
	if err := sqlx.GetContext(ctx, conn, &s, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find shift: %w", err)
	}
	return &s, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.ShiftFilters) ([]model.Shift, int, error) {
	conn := database.Conn(ctx, r.DB)

	whereClause := ""
	switch f.Status {
	case "open":
		whereClause = " WHERE end_time IS NULL"
	case "closed":
		whereClause = " WHERE end_time IS NOT NULL"
	}

	var count int
	if err := sqlx.GetContext(ctx, conn, &count, "SELECT count(*) FROM shifts"+whereClause); err != nil {
		return nil, 0, fmt.Errorf("count shifts: %w", err)
	}

	query := "SELECT " + shiftColumns + " FROM shifts" + whereClause + " ORDER BY start_time DESC, id DESC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	shifts := []model.Shift{}
	if err := sqlx.SelectContext(ctx, conn, &shifts, query); err != nil {
		return nil, 0, fmt.Errorf("list shifts: %w", err)
	}
	return shifts, count, nil
}

// Close writes the finalized figures. It only touches a shift that is still
// open.
func (r *SQLRepository) Close(ctx context.Context, s *model.Shift) error {
	query := `
        UPDATE shifts
        SET end_time = :end_time,
            counted_final_cash = :counted_final_cash,
            counted_final_coins = :counted_final_coins,
            expected_cash = :expected_cash,
            expected_total = :expected_total,
            cash_divergence = :cash_divergence,
            inherited_cash = :inherited_cash,
            inherited_coins = :inherited_coins,
            notes = :notes,
            updated_at = :updated_at
        WHERE id = :id AND end_time IS NULL
    `
	res, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, s)
	if err != nil {
		return fmt.Errorf("close shift: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("close shift: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("close shift %s: no open row updated", s.ID)
	}
	return nil
}

func (r *SQLRepository) StageValues(ctx context.Context, s *model.Shift) (bool, error) {
	query := `
        UPDATE shifts
        SET staged_final_cash = :staged_final_cash,
            staged_final_coins = :staged_final_coins,
            gas_exchange = :gas_exchange,
            updated_at = :updated_at
        WHERE id = :id AND end_time IS NULL
    `
	res, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, s)
	if err != nil {
		return false, fmt.Errorf("stage shift values: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("stage shift values: %w", err)
	}
	return n == 1, nil
}

func (r *SQLRepository) AddCollaborator(ctx context.Context, c *model.Collaborator) error {
	query := `
        INSERT INTO shift_collaborators (shift_id, user_id, added_by, created_at)
        VALUES (:shift_id, :user_id, :added_by, :created_at)
    `
	_, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, c)
	return err
}

func (r *SQLRepository) RemoveCollaborator(ctx context.Context, shiftID, userID string) (bool, error) {
	conn := database.Conn(ctx, r.DB)
	res, err := conn.ExecContext(ctx,
		conn.Rebind(`DELETE FROM shift_collaborators WHERE shift_id = ? AND user_id = ?`), shiftID, userID)
	if err != nil {
		return false, fmt.Errorf("remove collaborator: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove collaborator: %w", err)
	}
	return n > 0, nil
}

func (r *SQLRepository) ListCollaborators(ctx context.Context, shiftID string) ([]model.Collaborator, error) {
	conn := database.Conn(ctx, r.DB)
	collaborators := []model.Collaborator{}
	query := conn.Rebind(`SELECT shift_id, user_id, added_by, created_at FROM shift_collaborators
        WHERE shift_id = ? ORDER BY created_at, user_id`)
	if err := sqlx.SelectContext(ctx, conn, &collaborators, query, shiftID); err != nil {
		return nil, fmt.Errorf("list collaborators: %w", err)
	}
	return collaborators, nil
}
