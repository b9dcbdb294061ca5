package payment

import (
	"context"

	"github.com/fekuna/omnipos-shift-service/internal/cash"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/payment/dto"
	"github.com/shopspring/decimal"
)

// RevenueSource is the product revenue the consistency check compares
// against.
type RevenueSource interface {
	TotalRevenue(ctx context.Context, shiftID string) (decimal.Decimal, error)
}

type UseCase interface {
	DeclarePayments(ctx context.Context, input *dto.DeclarePaymentsInput) (*model.PaymentDeclaration, error)
	GetDeclaration(ctx context.Context, shiftID string) (*model.PaymentDeclaration, error)
	GetTotals(ctx context.Context, shiftID string) (*cash.Totals, error)
	CheckConsistency(ctx context.Context, shiftID string) (*cash.Consistency, error)

	GetRates(ctx context.Context) (*model.RateConfig, error)
	UpdateRates(ctx context.Context, input *dto.UpdateRatesInput) (*model.RateConfig, error)
}
