package handler

import (
	"context"

	shiftv1 "github.com/fekuna/omnipos-shift-service/api/shift/v1"
	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"github.com/fekuna/omnipos-shift-service/internal/auth"
	"github.com/fekuna/omnipos-shift-service/internal/cash"
	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/payment"
	"github.com/fekuna/omnipos-shift-service/internal/payment/dto"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	shiftv1.UnimplementedPaymentServiceServer

	uc     payment.UseCase
	logger logger.ZapLogger
}

func NewPaymentHandler(uc payment.UseCase, log logger.ZapLogger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PaymentHandler) DeclarePayments(ctx context.Context, req *shiftv1.DeclarePaymentsRequest) (*shiftv1.DeclarationResponse, error) {
	actor, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	input := &dto.DeclarePaymentsInput{Actor: actor, ShiftID: req.ShiftID}
	if input.Cash, err = cash.ParseOptionalAmount("cash", req.Cash); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		field string
		raw   string
		dst   *decimal.Decimal
	}{
		{"pix", req.Pix, &input.Pix},
		{"stone_card", req.StoneCard, &input.StoneCard},
		{"stone_voucher", req.StoneVoucher, &input.StoneVoucher},
		{"pagbank_card", req.PagBankCard, &input.PagBankCard},
	} {
		v, err := cash.ParseOptionalAmount(f.field, f.raw)
		if err != nil {
			return nil, err
		}
		*f.dst = v.Decimal
	}

	decl, err := h.uc.DeclarePayments(ctx, input)
	if err != nil {
		return nil, err
	}
	return &shiftv1.DeclarationResponse{Declaration: mapDeclarationToProto(decl)}, nil
}

func (h *PaymentHandler) GetTotals(ctx context.Context, req *shiftv1.GetTotalsRequest) (*shiftv1.PaymentTotalsResponse, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}

	totals, err := h.uc.GetTotals(ctx, req.ShiftID)
	if err != nil {
		return nil, err
	}
	consistency, err := h.uc.CheckConsistency(ctx, req.ShiftID)
	if err != nil {
		return nil, err
	}
	return &shiftv1.PaymentTotalsResponse{
		Totals:      MapTotalsToProto(totals),
		Consistency: MapConsistencyToProto(consistency),
	}, nil
}

func (h *PaymentHandler) GetRates(ctx context.Context, _ *shiftv1.Empty) (*shiftv1.RatesResponse, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}

	rc, err := h.uc.GetRates(ctx)
	if err != nil {
		return nil, err
	}
	return &shiftv1.RatesResponse{Rates: mapRatesToProto(rc)}, nil
}

func (h *PaymentHandler) UpdateRates(ctx context.Context, req *shiftv1.UpdateRatesRequest) (*shiftv1.RatesResponse, error) {
	actor, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	input := &dto.UpdateRatesInput{Actor: actor}
	for _, f := range []struct {
		field string
		raw   string
		dst   *decimal.Decimal
	}{
		{"pix_rate", req.PixRate, &input.PixRate},
		{"stone_card_rate", req.StoneCardRate, &input.StoneCardRate},
		{"stone_voucher_rate", req.StoneVoucherRate, &input.StoneVoucherRate},
		{"pagbank_card_rate", req.PagBankCardRate, &input.PagBankCardRate},
	} {
		v, err := decimal.NewFromString(f.raw)
		if err != nil {
			return nil, invalidRate(f.field)
		}
		*f.dst = v
	}

	rc, err := h.uc.UpdateRates(ctx, input)
	if err != nil {
		return nil, err
	}
	return &shiftv1.RatesResponse{Rates: mapRatesToProto(rc)}, nil
}

func mapDeclarationToProto(p *model.PaymentDeclaration) *shiftv1.PaymentDeclaration {
	return &shiftv1.PaymentDeclaration{
		ShiftID:      p.ShiftID,
		Cash:         shiftv1.OptionalMoney(p.Cash),
		Pix:          shiftv1.Money(p.Pix),
		StoneCard:    shiftv1.Money(p.StoneCard),
		StoneVoucher: shiftv1.Money(p.StoneVoucher),
		PagBankCard:  shiftv1.Money(p.PagBankCard),
		RateVersion:  p.RateVersion,
		UpdatedAt:    shiftv1.Timestamp(p.UpdatedAt),
	}
}

func mapRatesToProto(r *model.RateConfig) *shiftv1.Rates {
	return &shiftv1.Rates{
		Version:          r.Version,
		PixRate:          r.PixRate.String(),
		StoneCardRate:    r.StoneCardRate.String(),
		StoneVoucherRate: r.StoneVoucherRate.String(),
		PagBankCardRate:  r.PagBankCardRate.String(),
		UpdatedBy:        r.UpdatedBy,
		CreatedAt:        shiftv1.Timestamp(r.CreatedAt),
	}
}

// MapTotalsToProto keeps the fixed method order of t.Lines.
func MapTotalsToProto(t *cash.Totals) *shiftv1.PaymentTotals {
	out := &shiftv1.PaymentTotals{
		Gross:    shiftv1.Money(t.Gross),
		Net:      shiftv1.Money(t.Net),
		Interest: shiftv1.Money(t.Interest),
		Lines:    make([]*shiftv1.PaymentLine, 0, len(t.Lines)),
	}
	for _, l := range t.Lines {
		out.Lines = append(out.Lines, &shiftv1.PaymentLine{
			Method: l.Method,
			Gross:  shiftv1.Money(l.Gross),
			Rate:   l.Rate.String(),
			Net:    shiftv1.Money(l.Net),
		})
	}
	return out
}

func MapConsistencyToProto(c *cash.Consistency) *shiftv1.Consistency {
	return &shiftv1.Consistency{
		DeclaredTotal: shiftv1.Money(c.DeclaredTotal),
		Revenue:       shiftv1.Money(c.Revenue),
		Difference:    shiftv1.Money(c.Difference),
		Consistent:    c.Consistent,
	}
}

func invalidRate(field string) error {
	return apperror.Validation(apperror.CodeInvalidRate, field, "rate must be a number between 0 and 100")
}
