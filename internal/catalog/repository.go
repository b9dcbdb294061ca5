// Package catalog is the read side of the product catalog the register
// prices movements against.
package catalog

import (
	"context"

	"github.com/fekuna/omnipos-shift-service/internal/model"
)

type Repository interface {
	// FindByID returns nil, nil when the product does not exist.
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Upsert(ctx context.Context, p *model.Product) error
}
