package model

import "github.com/shopspring/decimal"

// Product is the slice of the catalog the register needs.
type Product struct {
	ID         string          `db:"id" json:"id"`
	Name       string          `db:"name" json:"name"`
	BasePrice  decimal.Decimal `db:"base_price" json:"base_price"`
	CategoryID *string         `db:"category_id" json:"category_id"`
	MinStock   int64           `db:"min_stock" json:"min_stock"`
	IsActive   bool            `db:"is_active" json:"is_active"`
}
