package server

import (
	"context"
	"net"
	"testing"

	shiftv1 "github.com/fekuna/omnipos-shift-service/api/shift/v1"
	"github.com/fekuna/omnipos-shift-service/config"
	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"github.com/fekuna/omnipos-shift-service/internal/auth"
	"github.com/fekuna/omnipos-shift-service/internal/movement/draft"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database/databasetest"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/i18n"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/middleware"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type clients struct {
	shifts   shiftv1.ShiftServiceClient
	payments shiftv1.PaymentServiceClient
	timeline shiftv1.TimelineServiceClient
	health   grpc_health_v1.HealthClient
}

func newTestServer(t *testing.T) *clients {
	t.Helper()
	if err := i18n.Init(); err != nil {
		t.Fatalf("i18n init: %v", err)
	}

	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	srv := New(&Deps{
		DB:     databasetest.Open(t),
		Drafts: draft.NewMemoryStore(),
		Cash: config.CashConfig{
			MinCashRecommended:  d("200"),
			MinCoinsRecommended: d("50"),
			MaxCashDivergence:   d("5"),
			MinReasonLength:     10,
			BootstrapCash:       d("200"),
			BootstrapCoins:      d("50"),
			ConsistencyEpsilon:  d("0.01"),
		},
		Logger: logger.Wrap(zaptest.NewLogger(t)),
	})

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.GRPC.Serve(lis) }()
	t.Cleanup(srv.GRPC.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &clients{
		shifts:   shiftv1.NewShiftServiceClient(conn),
		payments: shiftv1.NewPaymentServiceClient(conn),
		timeline: shiftv1.NewTimelineServiceClient(conn),
		health:   grpc_health_v1.NewHealthClient(conn),
	}
}

func asUser(userID, role string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(),
		auth.MetadataUserID, userID,
		auth.MetadataUserRole, role,
	)
}

func errorInfo(t *testing.T, err error) *errdetails.ErrorInfo {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected a status error, got %v", err)
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			return info
		}
	}
	t.Fatalf("status %v carries no ErrorInfo", st)
	return nil
}

func TestShiftRoundTrip(t *testing.T) {
	c := newTestServer(t)
	ctx := asUser("emp-1", auth.RoleEmployee)

	opened, err := c.shifts.OpenShift(ctx, &shiftv1.OpenShiftRequest{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if opened.Shift.InitialCash != "200.00" || opened.Shift.InitialCoins != "50.00" {
		t.Fatalf("unexpected bootstrap float %+v", opened.Shift)
	}
	shiftID := opened.Shift.ID

	_, err = c.shifts.OpenShift(ctx, &shiftv1.OpenShiftRequest{})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
	if info := errorInfo(t, err); info.Reason != string(apperror.CodeShiftAlreadyOpen) || info.Domain != middleware.ErrorDomain {
		t.Fatalf("unexpected error info %+v", info)
	}

	if _, err := c.payments.DeclarePayments(ctx, &shiftv1.DeclarePaymentsRequest{ShiftID: shiftID, Cash: "100", Pix: "20"}); err != nil {
		t.Fatalf("declare: %v", err)
	}

	preview, err := c.shifts.PreviewClose(ctx, &shiftv1.CloseShiftRequest{CountedCash: "320", CountedCoins: "50"})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if preview.ExpectedCash != "300.00" || preview.Divergence != "20.00" || !preview.NotesRequired {
		t.Fatalf("unexpected preview %+v", preview)
	}

	_, err = c.shifts.CloseShift(ctx, &shiftv1.CloseShiftRequest{CountedCash: "320", CountedCoins: "50"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
	if info := errorInfo(t, err); info.Reason != string(apperror.CodeDivergenceUnexplained) {
		t.Fatalf("unexpected reason %q", info.Reason)
	}

	closed, err := c.shifts.CloseShift(ctx, &shiftv1.CloseShiftRequest{CountedCash: "300", CountedCoins: "50"})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if closed.Shift.EndTime == "" || closed.Shift.CashDivergence != "0.00" {
		t.Fatalf("unexpected closed shift %+v", closed.Shift)
	}

	next, err := c.shifts.GetNextInitial(ctx, &shiftv1.Empty{})
	if err != nil {
		t.Fatalf("next initial: %v", err)
	}
	if next.InitialCash != "300.00" || next.InitialCoins != "50.00" || next.Bootstrapped {
		t.Fatalf("unexpected next initial %+v", next)
	}

	events, err := c.timeline.ListTimeline(ctx, &shiftv1.TimelineRequest{ShiftID: shiftID})
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	seen := map[string]bool{}
	for _, e := range events.Events {
		seen[e.Action] = true
	}
	if !seen["shift_opened"] || !seen["shift_closed"] {
		t.Fatalf("expected open and close events, got %v", seen)
	}
}

func TestRejectsMissingIdentity(t *testing.T) {
	c := newTestServer(t)

	_, err := c.shifts.GetCurrentShift(context.Background(), &shiftv1.Empty{})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
	if info := errorInfo(t, err); info.Reason != string(apperror.CodeMissingIdentity) {
		t.Fatalf("unexpected reason %q", info.Reason)
	}
}

func TestRatesRequireAdmin(t *testing.T) {
	c := newTestServer(t)
	req := &shiftv1.UpdateRatesRequest{PixRate: "0", StoneCardRate: "3.5", StoneVoucherRate: "6", PagBankCardRate: "2.39"}

	_, err := c.payments.UpdateRates(asUser("emp-1", auth.RoleEmployee), req)
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}

	resp, err := c.payments.UpdateRates(asUser("admin-1", auth.RoleAdmin), req)
	if err != nil {
		t.Fatalf("update rates: %v", err)
	}
	if !decimal.RequireFromString(resp.Rates.StoneCardRate).Equal(decimal.RequireFromString("3.5")) || resp.Rates.UpdatedBy != "admin-1" {
		t.Fatalf("unexpected rates %+v", resp.Rates)
	}
}

func TestHealth(t *testing.T) {
	c := newTestServer(t)
	resp, err := c.health.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if resp.Status != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Fatalf("unexpected status %v", resp.Status)
	}
}
