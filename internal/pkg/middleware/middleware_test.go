package middleware

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"github.com/fekuna/omnipos-shift-service/internal/auth"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/i18n"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"go.uber.org/zap/zaptest"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/omnipos.shift.v1.ShiftService/CloseShift"}

func TestContextInterceptor(t *testing.T) {
	tests := []struct {
		name   string
		md     metadata.MD
		peer   net.Addr
		wantIP string
	}{
		{
			name:   "forwarded first hop",
			md:     metadata.Pairs(auth.MetadataUserID, "u-1", auth.MetadataForwardedFor, "203.0.113.9, 10.0.0.1"),
			peer:   &net.TCPAddr{IP: net.ParseIP("10.0.0.1"), Port: 5000},
			wantIP: "203.0.113.9",
		},
		{
			name:   "peer fallback",
			md:     metadata.Pairs(auth.MetadataUserID, "u-1"),
			peer:   &net.TCPAddr{IP: net.ParseIP("192.168.1.20"), Port: 5000},
			wantIP: "192.168.1.20",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := metadata.NewIncomingContext(context.Background(), tt.md)
			ctx = peer.NewContext(ctx, &peer.Peer{Addr: tt.peer})

			var got auth.UserContext
			_, err := ContextInterceptor()(ctx, nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
				got = auth.FromContext(ctx)
				return nil, nil
			})
			if err != nil {
				t.Fatalf("interceptor: %v", err)
			}
			if got.UserID != "u-1" || got.SourceIP != tt.wantIP {
				t.Fatalf("unexpected identity %+v", got)
			}
		})
	}
}

func TestErrorInterceptor(t *testing.T) {
	if err := i18n.Init(); err != nil {
		t.Fatalf("i18n: %v", err)
	}
	intercept := ErrorInterceptor(logger.Wrap(zaptest.NewLogger(t)))

	call := func(ctx context.Context, err error) *status.Status {
		t.Helper()
		_, got := intercept(ctx, nil, info, func(context.Context, interface{}) (interface{}, error) {
			return nil, err
		})
		st, ok := status.FromError(got)
		if !ok {
			t.Fatalf("expected a status error, got %v", got)
		}
		return st
	}

	t.Run("business rule localized", func(t *testing.T) {
		ctx := WithLocale(context.Background(), "pt-BR")
		err := apperror.BusinessRule(apperror.CodeDivergenceUnexplained, "notes required",
			map[string]string{"divergence": "20.00", "max_divergence": "5.00"})
		st := call(ctx, err)
		if st.Code() != codes.FailedPrecondition {
			t.Fatalf("got %v", st.Code())
		}
		var localized *errdetails.LocalizedMessage
		for _, d := range st.Details() {
			if m, ok := d.(*errdetails.LocalizedMessage); ok {
				localized = m
			}
		}
		if localized == nil || localized.Locale != "pt-BR" {
			t.Fatalf("expected pt-BR message, got %+v", localized)
		}
		if Code(st.Err()) != apperror.CodeDivergenceUnexplained {
			t.Fatalf("expected code in ErrorInfo, got %q", Code(st.Err()))
		}
	})

	t.Run("validation carries field", func(t *testing.T) {
		st := call(context.Background(), apperror.Validation(apperror.CodeInvalidAmount, "counted_cash", "bad"))
		if st.Code() != codes.InvalidArgument {
			t.Fatalf("got %v", st.Code())
		}
		found := false
		for _, d := range st.Details() {
			if br, ok := d.(*errdetails.BadRequest); ok && br.FieldViolations[0].Field == "counted_cash" {
				found = true
			}
		}
		if !found {
			t.Fatal("expected a BadRequest field violation")
		}
	})

	t.Run("internal hides cause", func(t *testing.T) {
		st := call(context.Background(), errors.New("pq: connection refused"))
		if st.Code() != codes.Internal || st.Message() != "An unexpected error occurred" {
			t.Fatalf("unexpected status %v %q", st.Code(), st.Message())
		}
	})

	t.Run("status passes through", func(t *testing.T) {
		st := call(context.Background(), status.Error(codes.Unavailable, "draining"))
		if st.Code() != codes.Unavailable {
			t.Fatalf("got %v", st.Code())
		}
	})
}
