package payment

import (
	"context"

	"github.com/fekuna/omnipos-shift-service/internal/model"
)

type Repository interface {
	// FindByShift returns nil, nil when nothing was declared yet.
	FindByShift(ctx context.Context, shiftID string) (*model.PaymentDeclaration, error)
	Upsert(ctx context.Context, p *model.PaymentDeclaration) error
	FindCurrentRates(ctx context.Context) (*model.RateConfig, error)
	CreateRates(ctx context.Context, r *model.RateConfig) error
}

// RateCache holds the current rate version. Get returns nil, nil on a miss.
type RateCache interface {
	Get(ctx context.Context) (*model.RateConfig, error)
	Set(ctx context.Context, r *model.RateConfig) error
	Invalidate(ctx context.Context) error
}
