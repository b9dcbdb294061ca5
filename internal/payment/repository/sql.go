package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database"
	"github.com/jmoiron/sqlx"
)

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) FindByShift(ctx context.Context, shiftID string) (*model.PaymentDeclaration, error) {
	conn := database.Conn(ctx, r.DB)
	var p model.PaymentDeclaration
	query := conn.Rebind(`
        SELECT shift_id, cash, pix, stone_card, stone_voucher, pagbank_card, rate_version,
               pix_rate, stone_card_rate, stone_voucher_rate, pagbank_card_rate, created_at, updated_at
        FROM payment_declarations WHERE shift_id = ?`)
	if err := sqlx.GetContext(ctx, conn, &p, query, shiftID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find payment declaration: %w", err)
	}
	return &p, nil
}

// Upsert keeps the original created_at when the shift re-declares.
func (r *SQLRepository) Upsert(ctx context.Context, p *model.PaymentDeclaration) error {
	query := `
        INSERT INTO payment_declarations (
            shift_id, cash, pix, stone_card, stone_voucher, pagbank_card, rate_version,
            pix_rate, stone_card_rate, stone_voucher_rate, pagbank_card_rate, created_at, updated_at
        )
        VALUES (
            :shift_id, :cash, :pix, :stone_card, :stone_voucher, :pagbank_card, :rate_version,
            :pix_rate, :stone_card_rate, :stone_voucher_rate, :pagbank_card_rate, :created_at, :updated_at
        )
        ON CONFLICT (shift_id) DO UPDATE
        SET cash = excluded.cash,
            pix = excluded.pix,
            stone_card = excluded.stone_card,
            stone_voucher = excluded.stone_voucher,
            pagbank_card = excluded.pagbank_card,
            rate_version = excluded.rate_version,
            pix_rate = excluded.pix_rate,
            stone_card_rate = excluded.stone_card_rate,
            stone_voucher_rate = excluded.stone_voucher_rate,
            pagbank_card_rate = excluded.pagbank_card_rate,
            updated_at = excluded.updated_at
    `
	if _, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, p); err != nil {
		return fmt.Errorf("upsert payment declaration: %w", err)
	}
	return nil
}

func (r *SQLRepository) FindCurrentRates(ctx context.Context) (*model.RateConfig, error) {
	conn := database.Conn(ctx, r.DB)
	var rc model.RateConfig
	query := `
        SELECT version, pix_rate, stone_card_rate, stone_voucher_rate, pagbank_card_rate, updated_by, created_at
        FROM rate_configs ORDER BY version DESC LIMIT 1`
	if err := sqlx.GetContext(ctx, conn, &rc, query); err != nil {
		return nil, fmt.Errorf("find current rates: %w", err)
	}
	return &rc, nil
}

func (r *SQLRepository) CreateRates(ctx context.Context, rc *model.RateConfig) error {
	query := `
        INSERT INTO rate_configs (version, pix_rate, stone_card_rate, stone_voucher_rate, pagbank_card_rate, updated_by, created_at)
        VALUES (:version, :pix_rate, :stone_card_rate, :stone_voucher_rate, :pagbank_card_rate, :updated_by, :created_at)
    `
	if _, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, rc); err != nil {
		return fmt.Errorf("insert rates: %w", err)
	}
	return nil
}
