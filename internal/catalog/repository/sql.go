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

func (r *SQLRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	conn := database.Conn(ctx, r.DB)
	var p model.Product
	query := conn.Rebind(`SELECT id, name, base_price, category_id, min_stock, is_active FROM products WHERE id = ? LIMIT 1`)
	if err := sqlx.GetContext(ctx, conn, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

func (r *SQLRepository) Upsert(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (id, name, base_price, category_id, min_stock, is_active)
        VALUES (:id, :name, :base_price, :category_id, :min_stock, :is_active)
        ON CONFLICT (id) DO UPDATE
        SET name = excluded.name,
            base_price = excluded.base_price,
            category_id = excluded.category_id,
            min_stock = excluded.min_stock,
            is_active = excluded.is_active
    `
	if _, err := sqlx.NamedExecContext(ctx, database.Conn(ctx, r.DB), query, p); err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}
